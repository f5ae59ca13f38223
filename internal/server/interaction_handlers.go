package server

import (
	"strings"

	"foodieframe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateInteraction handles POST /api/interactions
func (s *Server) CreateInteraction(c *fiber.Ctx) error {
	var req struct {
		UserID   uint   `json:"userId"`
		RecipeID uint   `json:"recipeId"`
		Type     string `json:"type"`
		Content  string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	typ, ok := models.ParseInteractionType(strings.ToUpper(req.Type))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid interaction type"))
	}

	interaction, err := s.interactionService.CreateInteraction(c.Context(), req.UserID, req.RecipeID, typ, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(interaction)
}

// GetRecipeInteractions handles GET /api/interactions/recipe/:recipeId
func (s *Server) GetRecipeInteractions(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	interactions, err := s.interactionService.GetRecipeInteractions(c.Context(), recipeID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(interactions)
}

// GetRecipeInteractionsByType handles GET /api/interactions/recipe/:recipeId/type/:type
func (s *Server) GetRecipeInteractionsByType(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}
	typ, err := s.parseInteractionType(c)
	if err != nil {
		return nil
	}

	interactions, err := s.interactionService.GetRecipeInteractionsByType(c.Context(), recipeID, typ)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(interactions)
}

// GetInteractionCount handles GET /api/interactions/recipe/:recipeId/type/:type/count
func (s *Server) GetInteractionCount(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}
	typ, err := s.parseInteractionType(c)
	if err != nil {
		return nil
	}

	count, err := s.interactionService.GetInteractionCount(c.Context(), recipeID, typ)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// GetUserInteractionsByType handles GET /api/interactions/user/:userId/type/:type
func (s *Server) GetUserInteractionsByType(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	typ, err := s.parseInteractionType(c)
	if err != nil {
		return nil
	}

	interactions, err := s.interactionService.GetUserInteractionsByType(c.Context(), userID, typ)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(interactions)
}

// HasUserInteracted handles GET /api/interactions/exists/:userId/:recipeId/:type
func (s *Server) HasUserInteracted(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}
	typ, err := s.parseInteractionType(c)
	if err != nil {
		return nil
	}

	exists, err := s.interactionService.HasUserInteracted(c.Context(), userID, recipeID, typ)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"exists": exists})
}

// UpdateInteraction handles PUT /api/interactions/:id
func (s *Server) UpdateInteraction(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	interaction, err := s.interactionService.UpdateInteraction(c.Context(), id, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(interaction)
}

// DeleteInteraction handles DELETE /api/interactions/:id
func (s *Server) DeleteInteraction(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.interactionService.DeleteInteraction(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteUserInteraction handles DELETE /api/interactions/user/:userId/recipe/:recipeId/type/:type
func (s *Server) DeleteUserInteraction(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}
	typ, err := s.parseInteractionType(c)
	if err != nil {
		return nil
	}

	if err := s.interactionService.DeleteUserInteraction(c.Context(), userID, recipeID, typ); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteRecipeInteractionsByType handles DELETE /api/interactions/recipe/:recipeId/type/:type
func (s *Server) DeleteRecipeInteractionsByType(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}
	typ, err := s.parseInteractionType(c)
	if err != nil {
		return nil
	}

	if err := s.interactionService.DeleteRecipeInteractionsByType(c.Context(), recipeID, typ); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
