package repository

import (
	"context"
	"testing"

	"foodieframe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, repo PostRepository, userID uint, title, category string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:      userID,
		Title:       title,
		Description: "a longer description",
		Category:    category,
		Steps:       "mix and bake",
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_CRUD(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	created := seedPost(t, repo, 1, "Banana Bread", "Baking")

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Banana Bread", got.Title)

	got.Title = "Banana Bread v2"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Banana Bread v2", updated.Title)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	require.Error(t, err)
}

func TestPostRepository_GetByCategoryCaseInsensitive(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	seedPost(t, repo, 1, "Banana Bread", "Baking")
	seedPost(t, repo, 1, "Pad Thai", "Thai")

	posts, err := repo.GetByCategory(ctx, "baking")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Banana Bread", posts[0].Title)
}

func TestPostRepository_Search(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	bread := seedPost(t, repo, 1, "Banana Bread", "Baking")
	bread.Tags = "breakfast,sweet"
	require.NoError(t, repo.Update(ctx, bread))
	seedPost(t, repo, 1, "Pad Thai", "Thai")

	byTitle, err := repo.Search(ctx, "banana", 10)
	require.NoError(t, err)
	assert.Len(t, byTitle, 1)

	byTag, err := repo.Search(ctx, "breakfast", 10)
	require.NoError(t, err)
	assert.Len(t, byTag, 1)
}

func TestPostRepository_AllMediaURLs(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	withImage := seedPost(t, repo, 1, "Banana Bread", "Baking")
	withImage.Image = "/uploads/images/abc_bread.jpg"
	require.NoError(t, repo.Update(ctx, withImage))

	withBoth := seedPost(t, repo, 1, "Pad Thai", "Thai")
	withBoth.Image = "/uploads/images/def_thai.jpg"
	withBoth.Video = "/uploads/videos/def_thai.mp4"
	require.NoError(t, repo.Update(ctx, withBoth))

	seedPost(t, repo, 1, "Plain", "Misc")

	urls, err := repo.AllMediaURLs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"/uploads/images/abc_bread.jpg",
		"/uploads/images/def_thai.jpg",
		"/uploads/videos/def_thai.mp4",
	}, urls)
}
