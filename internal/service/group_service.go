package service

import (
	"context"
	"strings"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
)

// GroupService provides recipe group and membership logic.
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService returns a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, userRepo: userRepo}
}

// GroupInput carries the fields accepted when creating or updating a group.
type GroupInput struct {
	Name        string
	Description string
	CreatorID   uint
	ImageURL    string
	Privacy     models.GroupPrivacy
}

func validateGroupName(name string) error {
	n := len(strings.TrimSpace(name))
	if n < 3 || n > 50 {
		return models.NewValidationError("Group name must be between 3 and 50 characters")
	}
	return nil
}

// CreateGroup enforces case-insensitive name uniqueness and creates the
// creator's ADMIN membership in the same transaction as the group.
func (s *GroupService) CreateGroup(ctx context.Context, in GroupInput) (*models.RecipeGroup, error) {
	if err := validateGroupName(in.Name); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.CreatorID); err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A group with this name already exists")
	}

	privacy := in.Privacy
	if privacy == "" {
		privacy = models.GroupPrivacyPublic
	}

	group := &models.RecipeGroup{
		Name:        in.Name,
		Description: in.Description,
		CreatorID:   in.CreatorID,
		ImageURL:    in.ImageURL,
		Privacy:     privacy,
	}
	if err := s.groupRepo.CreateWithAdmin(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetAllGroups returns groups, newest first.
func (s *GroupService) GetAllGroups(ctx context.Context, limit, offset int) ([]models.RecipeGroup, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.groupRepo.List(ctx, limit, offset)
}

// GetGroupByID returns one group by id.
func (s *GroupService) GetGroupByID(ctx context.Context, id uint) (*models.RecipeGroup, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// GetGroupsByCreator returns groups created by the user.
func (s *GroupService) GetGroupsByCreator(ctx context.Context, creatorID uint) ([]models.RecipeGroup, error) {
	return s.groupRepo.ListByCreator(ctx, creatorID)
}

// SearchGroups finds groups whose name contains the term.
func (s *GroupService) SearchGroups(ctx context.Context, query string, limit int) ([]models.RecipeGroup, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.groupRepo.Search(ctx, query, limit)
}

// GetPublicGroups returns PUBLIC groups only.
func (s *GroupService) GetPublicGroups(ctx context.Context) ([]models.RecipeGroup, error) {
	return s.groupRepo.ListPublic(ctx)
}

// UpdateGroup overwrites the group's mutable fields, re-checking name
// uniqueness when the name changes.
func (s *GroupService) UpdateGroup(ctx context.Context, id uint, in GroupInput) (*models.RecipeGroup, error) {
	if err := validateGroupName(in.Name); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(group.Name, in.Name) {
		existing, err := s.groupRepo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("A group with this name already exists")
		}
	}

	group.Name = in.Name
	group.Description = in.Description
	group.ImageURL = in.ImageURL
	if in.Privacy != "" {
		group.Privacy = in.Privacy
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes the memberships first, then the group.
func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.groupRepo.DeleteWithMembers(ctx, id)
}

// AddMember adds a user to the group. Duplicate pairs are rejected.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID uint, role models.MemberRole) (*models.RecipeGroupMember, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User is already a member of this group")
	}

	if role == "" {
		role = models.MemberRoleMember
	}
	member := &models.RecipeGroupMember{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
		Status:  models.MembershipStatusActive,
	}
	if err := s.groupRepo.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetGroupMembers returns every membership row of the group.
func (s *GroupService) GetGroupMembers(ctx context.Context, groupID uint) ([]models.RecipeGroupMember, error) {
	return s.groupRepo.ListMembers(ctx, groupID)
}

// GetActiveGroupMembers returns ACTIVE memberships only.
func (s *GroupService) GetActiveGroupMembers(ctx context.Context, groupID uint) ([]models.RecipeGroupMember, error) {
	return s.groupRepo.ListMembersByStatus(ctx, groupID, models.MembershipStatusActive)
}

// GetGroupAdmins returns ADMIN memberships of the group.
func (s *GroupService) GetGroupAdmins(ctx context.Context, groupID uint) ([]models.RecipeGroupMember, error) {
	return s.groupRepo.ListMembersByRole(ctx, groupID, models.MemberRoleAdmin)
}

// UpdateMemberRole changes the member's role. The pair must exist.
func (s *GroupService) UpdateMemberRole(ctx context.Context, groupID, userID uint, role models.MemberRole) (*models.RecipeGroupMember, error) {
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, models.NewNotFoundError("Member", userID)
	}
	member.Role = role
	if err := s.groupRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateMemberStatus changes the member's status. The pair must exist.
func (s *GroupService) UpdateMemberStatus(ctx context.Context, groupID, userID uint, status models.MembershipStatus) (*models.RecipeGroupMember, error) {
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, models.NewNotFoundError("Member", userID)
	}
	member.Status = status
	if err := s.groupRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember deletes the membership row.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID uint) error {
	return s.groupRepo.DeleteMember(ctx, groupID, userID)
}

// GetUserMemberships returns every membership row for the user.
func (s *GroupService) GetUserMemberships(ctx context.Context, userID uint) ([]models.RecipeGroupMember, error) {
	return s.groupRepo.ListMembershipsForUser(ctx, userID)
}

// GetUserGroups returns the groups where the user is ACTIVE.
func (s *GroupService) GetUserGroups(ctx context.Context, userID uint) ([]models.RecipeGroup, error) {
	return s.groupRepo.ListGroupsForUser(ctx, userID)
}

// IsUserMember reports whether the pair exists in any status.
func (s *GroupService) IsUserMember(ctx context.Context, groupID, userID uint) (bool, error) {
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// IsUserAdmin reports whether the user holds the ADMIN role in the group.
func (s *GroupService) IsUserAdmin(ctx context.Context, groupID, userID uint) (bool, error) {
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return false, err
	}
	return member != nil && member.Role == models.MemberRoleAdmin, nil
}

// CountGroupMembers counts ACTIVE members only.
func (s *GroupService) CountGroupMembers(ctx context.Context, groupID uint) (int64, error) {
	return s.groupRepo.CountActiveMembers(ctx, groupID)
}
