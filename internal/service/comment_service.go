package service

import (
	"context"
	"strings"
	"time"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
)

// commentTimeLayout matches the formatted string clients already parse.
const commentTimeLayout = "2006-01-02 15:04:05"

// CommentService provides comment logic for posts and events.
type CommentService struct {
	commentRepo repository.CommentRepository
	now         func() time.Time
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, now: time.Now}
}

// CommentInput carries the fields accepted when creating a comment.
type CommentInput struct {
	UserID  uint
	PostID  *uint
	EventID *uint
	Content string
}

// CreateComment requires exactly one target (post or event) and non-blank
// content; the timestamp is set server-side.
func (s *CommentService) CreateComment(ctx context.Context, in CommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Comment content cannot be blank")
	}
	if (in.PostID == nil) == (in.EventID == nil) {
		return nil, models.NewValidationError("Comment must target exactly one of a post or an event")
	}

	comment := &models.Comment{
		UserID:    in.UserID,
		PostID:    in.PostID,
		EventID:   in.EventID,
		Content:   in.Content,
		CreatedAt: s.now().Format(commentTimeLayout),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentByID returns one comment by id.
func (s *CommentService) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// GetAllComments returns a page of comments, oldest first.
func (s *CommentService) GetAllComments(ctx context.Context, limit, offset int) ([]models.Comment, error) {
	return s.commentRepo.List(ctx, limit, offset)
}

// GetCommentsByUser returns a user's comments.
func (s *CommentService) GetCommentsByUser(ctx context.Context, userID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByUser(ctx, userID)
}

// GetCommentsByPost returns a post's comments, oldest first.
func (s *CommentService) GetCommentsByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByPost(ctx, postID)
}

// GetCommentsByEvent returns an event's comments, oldest first.
func (s *CommentService) GetCommentsByEvent(ctx context.Context, eventID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByEvent(ctx, eventID)
}

// UpdateComment replaces the content only; targets and timestamp are fixed.
func (s *CommentService) UpdateComment(ctx context.Context, id uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Comment content cannot be blank")
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.Content = content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}
