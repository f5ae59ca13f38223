package server

import (
	"strings"

	"foodieframe/internal/models"
	"foodieframe/internal/service"

	"github.com/gofiber/fiber/v2"
)

type groupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatorID   uint   `json:"creatorId"`
	ImageURL    string `json:"imageUrl"`
	Privacy     string `json:"privacy"`
}

// parseGroupPrivacy maps a request value onto a GroupPrivacy. An empty value
// is allowed; the service applies the PUBLIC default.
func parseGroupPrivacy(c *fiber.Ctx, raw string) (models.GroupPrivacy, error) {
	if raw == "" {
		return "", nil
	}
	switch privacy := models.GroupPrivacy(strings.ToUpper(raw)); privacy {
	case models.GroupPrivacyPublic, models.GroupPrivacyPrivate:
		return privacy, nil
	}
	_ = models.RespondWithError(c, fiber.StatusBadRequest,
		models.NewValidationError("Invalid group privacy"))
	return "", errResponseWritten
}

// CreateGroup handles POST /api/recipe-groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	privacy, err := parseGroupPrivacy(c, req.Privacy)
	if err != nil {
		return nil
	}

	group, err := s.groupService.CreateGroup(c.Context(), service.GroupInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   req.CreatorID,
		ImageURL:    req.ImageURL,
		Privacy:     privacy,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// GetGroups handles GET /api/recipe-groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	groups, err := s.groupService.GetAllGroups(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(groups)
}

// GetGroup handles GET /api/recipe-groups/:id
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	group, err := s.groupService.GetGroupByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(group)
}

// GetGroupsByCreator handles GET /api/recipe-groups/creator/:userId
func (s *Server) GetGroupsByCreator(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	groups, err := s.groupService.GetGroupsByCreator(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(groups)
}

// SearchGroups handles GET /api/recipe-groups/search?q=...
func (s *Server) SearchGroups(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	groups, err := s.groupService.SearchGroups(c.Context(), c.Query("q"), page.Limit)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(groups)
}

// GetPublicGroups handles GET /api/recipe-groups/public
func (s *Server) GetPublicGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.GetPublicGroups(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(groups)
}

// UpdateGroup handles PUT /api/recipe-groups/:id
func (s *Server) UpdateGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	privacy, err := parseGroupPrivacy(c, req.Privacy)
	if err != nil {
		return nil
	}

	group, err := s.groupService.UpdateGroup(c.Context(), id, service.GroupInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Privacy:     privacy,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(group)
}

// DeleteGroup handles DELETE /api/recipe-groups/:id
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.groupService.DeleteGroup(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddGroupMember handles POST /api/recipe-groups/:id/members
func (s *Server) AddGroupMember(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint   `json:"userId"`
		Role   string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var role models.MemberRole
	if req.Role != "" {
		parsed, ok := models.ParseMemberRole(strings.ToUpper(req.Role))
		if !ok {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid member role"))
		}
		role = parsed
	}

	member, err := s.groupService.AddMember(c.Context(), groupID, req.UserID, role)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

// GetGroupMembers handles GET /api/recipe-groups/:id/members
func (s *Server) GetGroupMembers(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	members, err := s.groupService.GetGroupMembers(c.Context(), groupID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(members)
}

// GetActiveGroupMembers handles GET /api/recipe-groups/:id/members/active
func (s *Server) GetActiveGroupMembers(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	members, err := s.groupService.GetActiveGroupMembers(c.Context(), groupID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(members)
}

// GetGroupAdmins handles GET /api/recipe-groups/:id/members/admins
func (s *Server) GetGroupAdmins(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	admins, err := s.groupService.GetGroupAdmins(c.Context(), groupID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(admins)
}

// CountGroupMembers handles GET /api/recipe-groups/:id/members/count
func (s *Server) CountGroupMembers(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.groupService.CountGroupMembers(c.Context(), groupID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// IsGroupMember handles GET /api/recipe-groups/:id/members/:userId/is-member
func (s *Server) IsGroupMember(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	isMember, err := s.groupService.IsUserMember(c.Context(), groupID, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"member": isMember})
}

// IsGroupAdmin handles GET /api/recipe-groups/:id/members/:userId/is-admin
func (s *Server) IsGroupAdmin(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	isAdmin, err := s.groupService.IsUserAdmin(c.Context(), groupID, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"admin": isAdmin})
}

// UpdateGroupMemberRole handles PUT /api/recipe-groups/:id/members/:userId/role
func (s *Server) UpdateGroupMemberRole(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	role, ok := models.ParseMemberRole(strings.ToUpper(req.Role))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid member role"))
	}

	member, err := s.groupService.UpdateMemberRole(c.Context(), groupID, userID, role)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(member)
}

// UpdateGroupMemberStatus handles PUT /api/recipe-groups/:id/members/:userId/status
func (s *Server) UpdateGroupMemberStatus(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	status, ok := models.ParseMembershipStatus(strings.ToUpper(req.Status))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid membership status"))
	}

	member, err := s.groupService.UpdateMemberStatus(c.Context(), groupID, userID, status)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(member)
}

// RemoveGroupMember handles DELETE /api/recipe-groups/:id/members/:userId
func (s *Server) RemoveGroupMember(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.groupService.RemoveMember(c.Context(), groupID, userID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserMemberships handles GET /api/recipe-groups/user/:userId/memberships
func (s *Server) GetUserMemberships(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	memberships, err := s.groupService.GetUserMemberships(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(memberships)
}

// GetUserGroups handles GET /api/recipe-groups/user/:userId
func (s *Server) GetUserGroups(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	groups, err := s.groupService.GetUserGroups(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(groups)
}
