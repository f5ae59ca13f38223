package server

import (
	"foodieframe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SweepOrphanedFiles handles POST /api/maintenance/sweep-orphans
func (s *Server) SweepOrphanedFiles(c *fiber.Ctx) error {
	report, err := s.maintenance.SweepOrphanedFiles(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(report)
}

// DeletePostFiles handles DELETE /api/maintenance/posts/:id/files
func (s *Server) DeletePostFiles(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	removed, err := s.postService.DeletePostFiles(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"removed": removed})
}
