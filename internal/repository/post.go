package repository

import (
	"context"
	"errors"

	"foodieframe/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for recipe posts.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByUser(ctx context.Context, userID uint) ([]models.Post, error)
	GetByCategory(ctx context.Context, category string) ([]models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Search(ctx context.Context, query string, limit int) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	AllMediaURLs(ctx context.Context) ([]string, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) GetByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) GetByCategory(ctx context.Context, category string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", category).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Search(ctx context.Context, query string, limit int) ([]models.Post, error) {
	var posts []models.Post
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)", pattern, pattern).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AllMediaURLs returns every image and video path referenced by a post.
// The orphan sweep uses it to decide which uploaded files are still live.
func (r *postRepository) AllMediaURLs(ctx context.Context) ([]string, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Select("image", "video").
		Where("image <> '' OR video <> ''").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var urls []string
	for _, p := range posts {
		if p.Image != "" {
			urls = append(urls, p.Image)
		}
		if p.Video != "" {
			urls = append(urls, p.Video)
		}
	}
	return urls, nil
}
