package server

import (
	"foodieframe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SaveRecipe handles POST /api/saved-recipes
func (s *Server) SaveRecipe(c *fiber.Ctx) error {
	var req struct {
		UserID uint   `json:"userId"`
		PostID uint   `json:"postId"`
		Note   string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	saved, err := s.savedService.SaveRecipe(c.Context(), req.UserID, req.PostID, req.Note)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GetUserSavedRecipes handles GET /api/saved-recipes/user/:userId
func (s *Server) GetUserSavedRecipes(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	saved, err := s.savedService.GetUserSavedRecipes(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(saved)
}

// GetSavedRecipe handles GET /api/saved-recipes/user/:userId/post/:postId
func (s *Server) GetSavedRecipe(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	saved, err := s.savedService.GetSavedRecipe(c.Context(), userID, postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(saved)
}

// IsRecipeSaved handles GET /api/saved-recipes/user/:userId/post/:postId/exists
func (s *Server) IsRecipeSaved(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	exists, err := s.savedService.IsRecipeSaved(c.Context(), userID, postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"saved": exists})
}

// CountSavesByRecipe handles GET /api/saved-recipes/post/:postId/count
func (s *Server) CountSavesByRecipe(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	count, err := s.savedService.CountSavesByRecipe(c.Context(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// UpdateSavedRecipeNote handles PUT /api/saved-recipes/user/:userId/post/:postId
func (s *Server) UpdateSavedRecipeNote(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Note string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	saved, err := s.savedService.UpdateNote(c.Context(), userID, postID, req.Note)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(saved)
}

// RemoveSavedRecipe handles DELETE /api/saved-recipes/user/:userId/post/:postId
func (s *Server) RemoveSavedRecipe(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.savedService.RemoveSavedRecipe(c.Context(), userID, postID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
