package repository

import (
	"context"
	"errors"

	"foodieframe/internal/models"

	"gorm.io/gorm"
)

// InteractionRepository defines persistence operations for recipe interactions.
type InteractionRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Interaction, error)
	Find(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (*models.Interaction, error)
	Create(ctx context.Context, interaction *models.Interaction) error
	Update(ctx context.Context, interaction *models.Interaction) error
	Delete(ctx context.Context, id uint) error
	DeleteMatching(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (int64, error)
	DeleteByRecipeAndType(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error)
	CountByRecipe(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error)
	ListAllByRecipe(ctx context.Context, recipeID uint) ([]models.Interaction, error)
	ListByRecipe(ctx context.Context, recipeID uint, typ models.InteractionType) ([]models.Interaction, error)
	ListByUser(ctx context.Context, userID uint, typ models.InteractionType) ([]models.Interaction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository returns a new InteractionRepository implementation.
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetByID(ctx context.Context, id uint) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).First(&interaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Interaction", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &interaction, nil
}

// Find returns the first matching interaction, or nil when none exists.
func (r *interactionRepository) Find(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND interaction_type = ?", userID, recipeID, typ).
		First(&interaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &interaction, nil
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	if err := r.db.WithContext(ctx).Create(interaction).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *interactionRepository) Update(ctx context.Context, interaction *models.Interaction) error {
	if err := r.db.WithContext(ctx).Save(interaction).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *interactionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Interaction{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteMatching removes all interactions of the given type for the pair and
// returns how many rows were removed.
func (r *interactionRepository) DeleteMatching(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND interaction_type = ?", userID, recipeID, typ).
		Delete(&models.Interaction{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByRecipeAndType removes every interaction of the type on a recipe.
func (r *interactionRepository) DeleteByRecipeAndType(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND interaction_type = ?", recipeID, typ).
		Delete(&models.Interaction{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *interactionRepository) ListAllByRecipe(ctx context.Context, recipeID uint) ([]models.Interaction, error) {
	var interactions []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&interactions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return interactions, nil
}

func (r *interactionRepository) CountByRecipe(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Interaction{}).
		Where("recipe_id = ? AND interaction_type = ?", recipeID, typ).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *interactionRepository) ListByRecipe(ctx context.Context, recipeID uint, typ models.InteractionType) ([]models.Interaction, error) {
	var interactions []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND interaction_type = ?", recipeID, typ).
		Order("created_at DESC").
		Find(&interactions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return interactions, nil
}

func (r *interactionRepository) ListByUser(ctx context.Context, userID uint, typ models.InteractionType) ([]models.Interaction, error) {
	var interactions []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND interaction_type = ?", userID, typ).
		Order("created_at DESC").
		Find(&interactions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return interactions, nil
}
