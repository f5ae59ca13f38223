package models

import "time"

// DefaultEventImage is used when an event is created without an image.
const DefaultEventImage = "https://example.com/default-image.jpg"

// Event represents a culinary event. Date and Time are free-form strings;
// validation enforces a minimum length rather than a format.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Image       string    `json:"image"`
	Date        string    `gorm:"not null" json:"date"`
	Location    string    `gorm:"not null" json:"location"`
	Time        string    `gorm:"not null" json:"time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
