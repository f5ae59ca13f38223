package service

import (
	"context"
	"strings"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
)

// InteractionService provides like/favorite/comment logic for recipes.
type InteractionService struct {
	interactionRepo repository.InteractionRepository
}

// NewInteractionService returns a new InteractionService.
func NewInteractionService(interactionRepo repository.InteractionRepository) *InteractionService {
	return &InteractionService{interactionRepo: interactionRepo}
}

// CreateInteraction records an interaction. LIKE and FAVORITE are
// idempotent: an existing row for (user, recipe, type) is returned instead
// of a duplicate. COMMENT always inserts a new row.
func (s *InteractionService) CreateInteraction(ctx context.Context, userID, recipeID uint, typ models.InteractionType, content string) (*models.Interaction, error) {
	if typ == models.InteractionTypeComment && strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Comment content cannot be blank")
	}

	if typ != models.InteractionTypeComment {
		existing, err := s.interactionRepo.Find(ctx, userID, recipeID, typ)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	interaction := &models.Interaction{
		UserID:   userID,
		RecipeID: recipeID,
		Type:     typ,
		Content:  content,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

// GetRecipeInteractions returns every interaction on a recipe.
func (s *InteractionService) GetRecipeInteractions(ctx context.Context, recipeID uint) ([]models.Interaction, error) {
	return s.interactionRepo.ListAllByRecipe(ctx, recipeID)
}

// GetRecipeInteractionsByType returns a recipe's interactions of one type.
func (s *InteractionService) GetRecipeInteractionsByType(ctx context.Context, recipeID uint, typ models.InteractionType) ([]models.Interaction, error) {
	return s.interactionRepo.ListByRecipe(ctx, recipeID, typ)
}

// GetUserInteractionsByType returns a user's interactions of one type.
func (s *InteractionService) GetUserInteractionsByType(ctx context.Context, userID uint, typ models.InteractionType) ([]models.Interaction, error) {
	return s.interactionRepo.ListByUser(ctx, userID, typ)
}

// GetInteractionCount counts interactions of one type on a recipe.
func (s *InteractionService) GetInteractionCount(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error) {
	return s.interactionRepo.CountByRecipe(ctx, recipeID, typ)
}

// HasUserInteracted reports whether the interaction exists.
func (s *InteractionService) HasUserInteracted(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (bool, error) {
	existing, err := s.interactionRepo.Find(ctx, userID, recipeID, typ)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

// UpdateInteraction replaces the content of an existing interaction.
func (s *InteractionService) UpdateInteraction(ctx context.Context, id uint, content string) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	interaction.Content = content
	if err := s.interactionRepo.Update(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

// DeleteInteraction removes one interaction by id.
func (s *InteractionService) DeleteInteraction(ctx context.Context, id uint) error {
	if _, err := s.interactionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.interactionRepo.Delete(ctx, id)
}

// DeleteUserInteraction removes the (user, recipe, type) interaction.
func (s *InteractionService) DeleteUserInteraction(ctx context.Context, userID, recipeID uint, typ models.InteractionType) error {
	_, err := s.interactionRepo.DeleteMatching(ctx, userID, recipeID, typ)
	return err
}

// DeleteRecipeInteractionsByType removes every interaction of the type on
// the recipe.
func (s *InteractionService) DeleteRecipeInteractionsByType(ctx context.Context, recipeID uint, typ models.InteractionType) error {
	_, err := s.interactionRepo.DeleteByRecipeAndType(ctx, recipeID, typ)
	return err
}
