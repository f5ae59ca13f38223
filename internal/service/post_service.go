package service

import (
	"context"
	"mime/multipart"
	"strings"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
)

// MediaStorage abstracts the uploads directory for services.
type MediaStorage interface {
	Save(file *multipart.FileHeader) (string, error)
	Delete(urlPath, trigger string)
}

// PostService provides recipe post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	media    MediaStorage
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, media MediaStorage) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, media: media}
}

// PostInput carries the fields accepted when creating or updating a post.
type PostInput struct {
	UserID      uint
	Title       string
	Description string
	Category    string
	Image       string
	Video       string
	Steps       string
	Tags        string
}

func validatePostInput(in PostInput) error {
	if len(strings.TrimSpace(in.Title)) < 3 {
		return models.NewValidationError("Title must be at least 3 characters long")
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		return models.NewValidationError("Description must be at least 10 characters long")
	}
	if strings.TrimSpace(in.Category) == "" {
		return models.NewValidationError("Category is required")
	}
	if strings.TrimSpace(in.Steps) == "" {
		return models.NewValidationError("Steps are required")
	}
	return nil
}

// CreatePost validates the input and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, in PostInput) (*models.Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Video:       in.Video,
		Steps:       in.Steps,
		Tags:        in.Tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostWithUpload stores the uploaded media first, then the post
// referencing the stored file URLs. Stored files are cleaned up if the
// post itself cannot be saved.
func (s *PostService) CreatePostWithUpload(ctx context.Context, in PostInput, image, video *multipart.FileHeader) (*models.Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	var saved []string
	cleanup := func() {
		for _, url := range saved {
			s.media.Delete(url, "post_create_failed")
		}
	}

	if image != nil {
		url, err := s.media.Save(image)
		if err != nil {
			return nil, err
		}
		in.Image = url
		saved = append(saved, url)
	}
	if video != nil {
		url, err := s.media.Save(video)
		if err != nil {
			cleanup()
			return nil, err
		}
		in.Video = url
		saved = append(saved, url)
	}

	post := &models.Post{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Video:       in.Video,
		Steps:       in.Steps,
		Tags:        in.Tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		cleanup()
		return nil, err
	}
	return post, nil
}

// GetAllPosts returns posts, newest first.
func (s *PostService) GetAllPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.postRepo.List(ctx, limit, offset)
}

// GetPostByID returns one post by id.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetPostsByUser returns a user's posts, newest first.
func (s *PostService) GetPostsByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.postRepo.GetByUser(ctx, userID)
}

// GetPostsByCategory returns posts in a category, newest first.
func (s *PostService) GetPostsByCategory(ctx context.Context, category string) ([]models.Post, error) {
	return s.postRepo.GetByCategory(ctx, category)
}

// SearchPosts finds posts whose title or tags contain the term.
func (s *PostService) SearchPosts(ctx context.Context, query string, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.postRepo.Search(ctx, query, limit)
}

// UpdatePost overwrites every mutable field of the post.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in PostInput) (*models.Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Description = in.Description
	post.Category = in.Category
	post.Image = in.Image
	post.Video = in.Video
	post.Steps = in.Steps
	post.Tags = in.Tags

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and best-effort deletes its media files.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	if post.Image != "" {
		s.media.Delete(post.Image, "post_delete")
	}
	if post.Video != "" {
		s.media.Delete(post.Video, "post_delete")
	}
	return nil
}

// DeletePostFiles removes the post's media files without touching the post
// record, reporting which URLs were targeted.
func (s *PostService) DeletePostFiles(ctx context.Context, id uint) ([]string, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var removed []string
	if post.Image != "" {
		s.media.Delete(post.Image, "maintenance")
		removed = append(removed, post.Image)
	}
	if post.Video != "" {
		s.media.Delete(post.Video, "maintenance")
		removed = append(removed, post.Video)
	}
	return removed, nil
}
