package models

import "time"

// InteractionType classifies a user's interaction with a recipe.
type InteractionType string

const (
	// InteractionTypeLike marks a like. One per (user, recipe).
	InteractionTypeLike InteractionType = "LIKE"
	// InteractionTypeFavorite marks a favorite. One per (user, recipe).
	InteractionTypeFavorite InteractionType = "FAVORITE"
	// InteractionTypeComment marks a comment interaction. Never deduplicated.
	InteractionTypeComment InteractionType = "COMMENT"
)

// ParseInteractionType maps a path/query value onto an InteractionType.
func ParseInteractionType(s string) (InteractionType, bool) {
	switch InteractionType(s) {
	case InteractionTypeLike, InteractionTypeFavorite, InteractionTypeComment:
		return InteractionType(s), true
	}
	return "", false
}

// Interaction is a like, favorite, or comment directed at a recipe.
type Interaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"userId"`
	RecipeID  uint            `gorm:"not null;index" json:"recipeId"`
	Type      InteractionType `gorm:"type:varchar(20);not null;column:interaction_type" json:"interactionType"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
