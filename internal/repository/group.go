package repository

import (
	"context"
	"errors"

	"foodieframe/internal/models"

	"gorm.io/gorm"
)

// GroupRepository defines persistence operations for recipe groups and
// their memberships.
type GroupRepository interface {
	GetByID(ctx context.Context, id uint) (*models.RecipeGroup, error)
	GetByName(ctx context.Context, name string) (*models.RecipeGroup, error)
	List(ctx context.Context, limit, offset int) ([]models.RecipeGroup, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]models.RecipeGroup, error)
	Search(ctx context.Context, query string, limit int) ([]models.RecipeGroup, error)
	CreateWithAdmin(ctx context.Context, group *models.RecipeGroup) error
	Update(ctx context.Context, group *models.RecipeGroup) error
	DeleteWithMembers(ctx context.Context, id uint) error

	GetMember(ctx context.Context, groupID, userID uint) (*models.RecipeGroupMember, error)
	CreateMember(ctx context.Context, member *models.RecipeGroupMember) error
	UpdateMember(ctx context.Context, member *models.RecipeGroupMember) error
	DeleteMember(ctx context.Context, groupID, userID uint) error
	ListMembers(ctx context.Context, groupID uint) ([]models.RecipeGroupMember, error)
	ListMembersByStatus(ctx context.Context, groupID uint, status models.MembershipStatus) ([]models.RecipeGroupMember, error)
	ListMembersByRole(ctx context.Context, groupID uint, role models.MemberRole) ([]models.RecipeGroupMember, error)
	CountActiveMembers(ctx context.Context, groupID uint) (int64, error)
	ListPublic(ctx context.Context) ([]models.RecipeGroup, error)
	ListMembershipsForUser(ctx context.Context, userID uint) ([]models.RecipeGroupMember, error)
	ListGroupsForUser(ctx context.Context, userID uint) ([]models.RecipeGroup, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository returns a new GroupRepository implementation.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.RecipeGroup, error) {
	var group models.RecipeGroup
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Group", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) GetByName(ctx context.Context, name string) (*models.RecipeGroup, error) {
	var group models.RecipeGroup
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context, limit, offset int) ([]models.RecipeGroup, error) {
	var groups []models.RecipeGroup
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) ListByCreator(ctx context.Context, creatorID uint) ([]models.RecipeGroup, error) {
	var groups []models.RecipeGroup
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) Search(ctx context.Context, query string, limit int) ([]models.RecipeGroup, error) {
	var groups []models.RecipeGroup
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", pattern).
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

// CreateWithAdmin inserts the group and its creator's ADMIN membership in
// one transaction.
func (r *groupRepository) CreateWithAdmin(ctx context.Context, group *models.RecipeGroup) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &models.RecipeGroupMember{
			GroupID: group.ID,
			UserID:  group.CreatorID,
			Role:    models.MemberRoleAdmin,
			Status:  models.MembershipStatusActive,
		}
		return tx.Create(member).Error
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Group name already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) Update(ctx context.Context, group *models.RecipeGroup) error {
	if err := r.db.WithContext(ctx).Save(group).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Group name already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteWithMembers removes memberships first, then the group, in one
// transaction.
func (r *groupRepository) DeleteWithMembers(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.RecipeGroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RecipeGroup{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetMember returns the membership row, or nil when none exists.
func (r *groupRepository) GetMember(ctx context.Context, groupID, userID uint) (*models.RecipeGroupMember, error) {
	var member models.RecipeGroupMember
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &member, nil
}

func (r *groupRepository) CreateMember(ctx context.Context, member *models.RecipeGroupMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User is already a member of this group")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) UpdateMember(ctx context.Context, member *models.RecipeGroupMember) error {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) DeleteMember(ctx context.Context, groupID, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.RecipeGroupMember{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID uint) ([]models.RecipeGroupMember, error) {
	var members []models.RecipeGroupMember
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

func (r *groupRepository) ListMembersByStatus(ctx context.Context, groupID uint, status models.MembershipStatus) ([]models.RecipeGroupMember, error) {
	var members []models.RecipeGroupMember
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, status).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

func (r *groupRepository) ListMembersByRole(ctx context.Context, groupID uint, role models.MemberRole) ([]models.RecipeGroupMember, error) {
	var members []models.RecipeGroupMember
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND role = ?", groupID, role).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

func (r *groupRepository) ListPublic(ctx context.Context) ([]models.RecipeGroup, error) {
	var groups []models.RecipeGroup
	if err := r.db.WithContext(ctx).
		Where("privacy = ?", models.GroupPrivacyPublic).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) ListMembershipsForUser(ctx context.Context, userID uint) ([]models.RecipeGroupMember, error) {
	var members []models.RecipeGroupMember
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

func (r *groupRepository) CountActiveMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RecipeGroupMember{}).
		Where("group_id = ? AND status = ?", groupID, models.MembershipStatusActive).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// ListGroupsForUser returns the groups where the user holds an ACTIVE membership.
func (r *groupRepository) ListGroupsForUser(ctx context.Context, userID uint) ([]models.RecipeGroup, error) {
	var groups []models.RecipeGroup
	if err := r.db.WithContext(ctx).
		Table("recipe_groups").
		Joins("JOIN recipe_group_members m ON m.group_id = recipe_groups.id").
		Where("m.user_id = ? AND m.status = ?", userID, models.MembershipStatusActive).
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}
