package models

// Comment is a user comment on either a post or an event (exactly one).
// CreatedAt is a formatted string set server-side, kept as the original
// clients expect it.
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"userId"`
	PostID    *uint  `gorm:"index" json:"postId"`
	EventID   *uint  `gorm:"index" json:"eventId"`
	Content   string `gorm:"not null" json:"content"`
	CreatedAt string `json:"createdAt"`
}
