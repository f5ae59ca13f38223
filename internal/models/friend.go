package models

import "time"

// FriendshipStatus represents the status of a friend relationship.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a request awaiting acceptance.
	FriendshipStatusPending FriendshipStatus = "PENDING"
	// FriendshipStatusAccepted indicates an accepted friendship.
	FriendshipStatusAccepted FriendshipStatus = "ACCEPTED"
	// FriendshipStatusBlocked indicates the friend is blocked by the user.
	FriendshipStatusBlocked FriendshipStatus = "BLOCKED"
)

// Friend is one directional row of a friend relationship. The row records
// who initiated; services treat an ACCEPTED row as symmetric.
type Friend struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_friend_pair" json:"userId"`
	FriendID  uint             `gorm:"not null;uniqueIndex:idx_friend_pair" json:"friendId"`
	Status    FriendshipStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt time.Time        `json:"createdDate"`
	UpdatedAt time.Time        `json:"updatedDate"`
}

// TableName specifies the table name for GORM
func (Friend) TableName() string {
	return "friends"
}
