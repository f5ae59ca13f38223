package server

import (
	"foodieframe/internal/models"
	"foodieframe/internal/service"

	"github.com/gofiber/fiber/v2"
)

type eventRequest struct {
	UserID      uint   `json:"userId" form:"userId"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
	Date        string `json:"date" form:"date"`
	Location    string `json:"location" form:"location"`
	Time        string `json:"time" form:"time"`
}

func (r eventRequest) toInput() service.EventInput {
	return service.EventInput{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Date:        r.Date,
		Location:    r.Location,
		Time:        r.Time,
	}
}

// CreateEvent handles POST /api/events
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.CreateEvent(c.Context(), req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// UploadEvent handles POST /api/events/upload (multipart form with an
// optional image file)
func (s *Server) UploadEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, _ := c.FormFile("image")

	event, err := s.eventService.CreateEventWithUpload(c.Context(), req.toInput(), image)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// GetEvents handles GET /api/events
func (s *Server) GetEvents(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	events, err := s.eventService.GetAllEvents(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(events)
}

// GetEvent handles GET /api/events/:id
func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	event, err := s.eventService.GetEventByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(event)
}

// GetUserEvents handles GET /api/events/user/:userId
func (s *Server) GetUserEvents(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	events, err := s.eventService.GetEventsByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(events)
}

// SearchEvents handles GET /api/events/search?q=...
func (s *Server) SearchEvents(c *fiber.Ctx) error {
	events, err := s.eventService.SearchEvents(c.Context(), c.Query("q"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(events)
}

// UpdateEvent handles PUT /api/events/:id
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.UpdateEvent(c.Context(), id, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(event)
}

// DeleteEvent handles DELETE /api/events/:id
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.eventService.DeleteEvent(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
