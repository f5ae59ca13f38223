package service

import (
	"context"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
)

// SavedRecipeService provides bookmark logic for recipes.
type SavedRecipeService struct {
	savedRepo repository.SavedRecipeRepository
	postRepo  repository.PostRepository
}

// NewSavedRecipeService returns a new SavedRecipeService.
func NewSavedRecipeService(savedRepo repository.SavedRecipeRepository, postRepo repository.PostRepository) *SavedRecipeService {
	return &SavedRecipeService{savedRepo: savedRepo, postRepo: postRepo}
}

// SaveRecipe bookmarks the post for the user, with an optional note.
// Saving twice is a conflict.
func (s *SavedRecipeService) SaveRecipe(ctx context.Context, userID, postID uint, note string) (*models.SavedRecipe, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	existing, err := s.savedRepo.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Recipe is already saved")
	}

	saved := &models.SavedRecipe{
		UserID: userID,
		PostID: postID,
		Note:   note,
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// GetUserSavedRecipes returns the user's bookmarks, newest first.
func (s *SavedRecipeService) GetUserSavedRecipes(ctx context.Context, userID uint) ([]models.SavedRecipe, error) {
	return s.savedRepo.ListByUser(ctx, userID)
}

// IsRecipeSaved reports whether the bookmark exists.
func (s *SavedRecipeService) IsRecipeSaved(ctx context.Context, userID, postID uint) (bool, error) {
	existing, err := s.savedRepo.Get(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

// GetSavedRecipe returns the bookmark for the pair.
func (s *SavedRecipeService) GetSavedRecipe(ctx context.Context, userID, postID uint) (*models.SavedRecipe, error) {
	saved, err := s.savedRepo.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, models.NewNotFoundError("Saved recipe", postID)
	}
	return saved, nil
}

// UpdateNote replaces the note of an existing bookmark.
func (s *SavedRecipeService) UpdateNote(ctx context.Context, userID, postID uint, note string) (*models.SavedRecipe, error) {
	saved, err := s.savedRepo.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, models.NewNotFoundError("Saved recipe", postID)
	}
	saved.Note = note
	if err := s.savedRepo.Update(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// RemoveSavedRecipe deletes the bookmark.
func (s *SavedRecipeService) RemoveSavedRecipe(ctx context.Context, userID, postID uint) error {
	removed, err := s.savedRepo.Delete(ctx, userID, postID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return models.NewNotFoundError("Saved recipe", postID)
	}
	return nil
}

// CountSavesByRecipe counts how many users saved the post.
func (s *SavedRecipeService) CountSavesByRecipe(ctx context.Context, postID uint) (int64, error) {
	return s.savedRepo.CountByPost(ctx, postID)
}
