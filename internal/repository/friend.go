package repository

import (
	"context"
	"errors"

	"foodieframe/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines persistence operations for friend relationships.
// Rows are directional; services decide how to treat the reverse direction.
type FriendRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Friend, error)
	GetPair(ctx context.Context, userID, friendID uint) (*models.Friend, error)
	Create(ctx context.Context, friend *models.Friend) error
	UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error
	Delete(ctx context.Context, id uint) error
	DeleteBetween(ctx context.Context, userID1, userID2 uint) error
	ListByUserAndStatus(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friend, error)
	ListByFriendAndStatus(ctx context.Context, friendID uint, status models.FriendshipStatus) ([]models.Friend, error)
	FriendsOf(ctx context.Context, userID uint) ([]models.User, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository returns a new FriendRepository implementation.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.Friend, error) {
	var friend models.Friend
	if err := r.db.WithContext(ctx).First(&friend, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friend, nil
}

// GetPair returns the row from userID toward friendID, or nil when none exists.
func (r *friendRepository) GetPair(ctx context.Context, userID, friendID uint) (*models.Friend, error) {
	var friend models.Friend
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&friend).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &friend, nil
}

func (r *friendRepository) Create(ctx context.Context, friend *models.Friend) error {
	if err := r.db.WithContext(ctx).Create(friend).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Friend request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Friend{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Friend{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteBetween removes rows in both directions between the two users.
func (r *friendRepository) DeleteBetween(ctx context.Context, userID1, userID2 uint) error {
	if err := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID1, userID2, userID2, userID1).
		Delete(&models.Friend{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) ListByUserAndStatus(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friend, error) {
	var friends []models.Friend
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Find(&friends).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}

// ListByFriendAndStatus returns rows addressed to friendID with the status,
// e.g. a user's incoming pending requests.
func (r *friendRepository) ListByFriendAndStatus(ctx context.Context, friendID uint, status models.FriendshipStatus) ([]models.Friend, error) {
	var friends []models.Friend
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", friendID, status).
		Find(&friends).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}

// FriendsOf returns the users on the other end of ACCEPTED rows, in either direction.
func (r *friendRepository) FriendsOf(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friends f ON (users.id = f.user_id OR users.id = f.friend_id)").
		Where("f.status = ? AND (f.user_id = ? OR f.friend_id = ?) AND users.id != ?",
			models.FriendshipStatusAccepted, userID, userID, userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
