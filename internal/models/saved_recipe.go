package models

import "time"

// SavedRecipe bookmarks a post for a user, with an optional note.
type SavedRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_post" json:"postId"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"savedAt"`
}
