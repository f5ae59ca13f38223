package repository

import (
	"context"
	"errors"

	"foodieframe/internal/models"

	"gorm.io/gorm"
)

// SavedRecipeRepository defines persistence operations for saved recipes.
type SavedRecipeRepository interface {
	Get(ctx context.Context, userID, postID uint) (*models.SavedRecipe, error)
	ListByUser(ctx context.Context, userID uint) ([]models.SavedRecipe, error)
	Create(ctx context.Context, saved *models.SavedRecipe) error
	Update(ctx context.Context, saved *models.SavedRecipe) error
	Delete(ctx context.Context, userID, postID uint) (int64, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type savedRecipeRepository struct {
	db *gorm.DB
}

// NewSavedRecipeRepository returns a new SavedRecipeRepository implementation.
func NewSavedRecipeRepository(db *gorm.DB) SavedRecipeRepository {
	return &savedRecipeRepository{db: db}
}

// Get returns the saved entry, or nil when none exists.
func (r *savedRecipeRepository) Get(ctx context.Context, userID, postID uint) (*models.SavedRecipe, error) {
	var saved models.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &saved, nil
}

func (r *savedRecipeRepository) ListByUser(ctx context.Context, userID uint) ([]models.SavedRecipe, error) {
	var saved []models.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return saved, nil
}

func (r *savedRecipeRepository) Create(ctx context.Context, saved *models.SavedRecipe) error {
	if err := r.db.WithContext(ctx).Create(saved).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Recipe is already saved")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *savedRecipeRepository) Update(ctx context.Context, saved *models.SavedRecipe) error {
	if err := r.db.WithContext(ctx).Save(saved).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *savedRecipeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SavedRecipe{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// Delete removes the entry and reports how many rows were removed.
func (r *savedRecipeRepository) Delete(ctx context.Context, userID, postID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.SavedRecipe{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}
