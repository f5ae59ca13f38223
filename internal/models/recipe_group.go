package models

import "time"

// GroupPrivacy controls who can see a recipe group.
type GroupPrivacy string

const (
	// GroupPrivacyPublic makes the group visible to everyone.
	GroupPrivacyPublic GroupPrivacy = "PUBLIC"
	// GroupPrivacyPrivate hides the group from public listings.
	GroupPrivacyPrivate GroupPrivacy = "PRIVATE"
)

// MemberRole defines a member's role in a recipe group.
type MemberRole string

const (
	// MemberRoleMember is the default role.
	MemberRoleMember MemberRole = "MEMBER"
	// MemberRoleModerator can moderate group content.
	MemberRoleModerator MemberRole = "MODERATOR"
	// MemberRoleAdmin administers the group. The creator starts as ADMIN.
	MemberRoleAdmin MemberRole = "ADMIN"
)

// MembershipStatus tracks the lifecycle of a group membership.
type MembershipStatus string

const (
	// MembershipStatusPending awaits approval.
	MembershipStatusPending MembershipStatus = "PENDING"
	// MembershipStatusActive is a full member. Member counts cover ACTIVE only.
	MembershipStatusActive MembershipStatus = "ACTIVE"
	// MembershipStatusBanned is excluded from the group.
	MembershipStatusBanned MembershipStatus = "BANNED"
)

// ParseMemberRole maps a request value onto a MemberRole.
func ParseMemberRole(s string) (MemberRole, bool) {
	switch MemberRole(s) {
	case MemberRoleMember, MemberRoleModerator, MemberRoleAdmin:
		return MemberRole(s), true
	}
	return "", false
}

// ParseMembershipStatus maps a request value onto a MembershipStatus.
func ParseMembershipStatus(s string) (MembershipStatus, bool) {
	switch MembershipStatus(s) {
	case MembershipStatusPending, MembershipStatusActive, MembershipStatusBanned:
		return MembershipStatus(s), true
	}
	return "", false
}

// RecipeGroup is a named collection of users sharing recipes.
type RecipeGroup struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"uniqueIndex;not null" json:"name"`
	Description string       `json:"description"`
	CreatorID   uint         `gorm:"not null;index" json:"creatorId"`
	ImageURL    string       `json:"imageUrl"`
	Privacy     GroupPrivacy `gorm:"type:varchar(20);not null;default:'PUBLIC'" json:"privacy"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// RecipeGroupMember maps users to recipe groups with a role and status.
type RecipeGroupMember struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	GroupID   uint             `gorm:"not null;uniqueIndex:idx_group_member" json:"groupId"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_group_member" json:"userId"`
	Role      MemberRole       `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	Status    MembershipStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time        `json:"joinedAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
