package models

import "time"

// Post represents a recipe shared by a user. Image and Video hold
// `/uploads/<type>/<file>` paths when media was uploaded with the post.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userID"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Image       string    `json:"image"`
	Video       string    `json:"video"`
	Steps       string    `gorm:"not null" json:"steps"`
	Tags        string    `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
