package server

import (
	"foodieframe/internal/models"
	"foodieframe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"userId"`
		PostID  *uint  `json:"postId"`
		EventID *uint  `json:"eventId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CommentInput{
		UserID:  req.UserID,
		PostID:  req.PostID,
		EventID: req.EventID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	comments, err := s.commentService.GetAllComments(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comments)
}

// GetComment handles GET /api/comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetCommentByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comment)
}

// GetUserComments handles GET /api/comments/user/:userId
func (s *Server) GetUserComments(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.GetCommentsByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comments)
}

// GetPostComments handles GET /api/comments/post/:postId
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.GetCommentsByPost(c.Context(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comments)
}

// GetEventComments handles GET /api/comments/event/:eventId
func (s *Server) GetEventComments(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "eventId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.GetCommentsByEvent(c.Context(), eventID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comments)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
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

	comment, err := s.commentService.UpdateComment(c.Context(), id, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
