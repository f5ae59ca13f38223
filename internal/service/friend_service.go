package service

import (
	"context"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
)

// FriendService drives the friendship state machine. Rows are directional;
// the relationship itself is symmetric once ACCEPTED.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{friendRepo: friendRepo, userRepo: userRepo}
}

// SendFriendRequest creates a PENDING row toward the target. An existing row
// for the ordered pair is returned as-is; a reverse PENDING row is
// auto-accepted instead of creating a duplicate.
func (s *FriendService) SendFriendRequest(ctx context.Context, userID, friendID uint) (*models.Friend, error) {
	if userID == friendID {
		return nil, models.NewValidationError("Users cannot send friend requests to themselves")
	}
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetPair(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	reverse, err := s.friendRepo.GetPair(ctx, friendID, userID)
	if err != nil {
		return nil, err
	}
	if reverse != nil && reverse.Status == models.FriendshipStatusPending {
		if err := s.friendRepo.UpdateStatus(ctx, reverse.ID, models.FriendshipStatusAccepted); err != nil {
			return nil, err
		}
		return s.friendRepo.GetPair(ctx, friendID, userID)
	}
	if reverse != nil {
		return reverse, nil
	}

	friend := &models.Friend{
		UserID:   userID,
		FriendID: friendID,
		Status:   models.FriendshipStatusPending,
	}
	if err := s.friendRepo.Create(ctx, friend); err != nil {
		return nil, err
	}
	return friend, nil
}

// AcceptFriendRequest flips the row from friendID toward userID to ACCEPTED.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, friendID uint) (*models.Friend, error) {
	friend, err := s.friendRepo.GetPair(ctx, friendID, userID)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, models.NewNotFoundError("Friend request", friendID)
	}
	if friend.Status != models.FriendshipStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.friendRepo.UpdateStatus(ctx, friend.ID, models.FriendshipStatusAccepted); err != nil {
		return nil, err
	}
	return s.friendRepo.GetPair(ctx, friendID, userID)
}

// AcceptFriendRequestByID flips a specific pending row to ACCEPTED.
func (s *FriendService) AcceptFriendRequestByID(ctx context.Context, id uint) (*models.Friend, error) {
	friend, err := s.friendRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if friend.Status != models.FriendshipStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.friendRepo.UpdateStatus(ctx, friend.ID, models.FriendshipStatusAccepted); err != nil {
		return nil, err
	}
	return s.friendRepo.GetByID(ctx, friend.ID)
}

// RejectFriendRequest deletes the pending row from friendID toward userID.
func (s *FriendService) RejectFriendRequest(ctx context.Context, userID, friendID uint) error {
	friend, err := s.friendRepo.GetPair(ctx, friendID, userID)
	if err != nil {
		return err
	}
	if friend == nil {
		return models.NewNotFoundError("Friend request", friendID)
	}
	return s.friendRepo.Delete(ctx, friend.ID)
}

// RemoveFriend deletes the relationship rows in both directions.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	return s.friendRepo.DeleteBetween(ctx, userID, friendID)
}

// BlockUser removes any existing relationship and inserts a fresh BLOCKED
// row from the blocker toward the blocked user.
func (s *FriendService) BlockUser(ctx context.Context, userID, blockedUserID uint) (*models.Friend, error) {
	if userID == blockedUserID {
		return nil, models.NewValidationError("Users cannot block themselves")
	}

	if err := s.friendRepo.DeleteBetween(ctx, userID, blockedUserID); err != nil {
		return nil, err
	}

	friend := &models.Friend{
		UserID:   userID,
		FriendID: blockedUserID,
		Status:   models.FriendshipStatusBlocked,
	}
	if err := s.friendRepo.Create(ctx, friend); err != nil {
		return nil, err
	}
	return friend, nil
}

// UnblockUser deletes the row only if the relationship is currently BLOCKED.
func (s *FriendService) UnblockUser(ctx context.Context, userID, blockedUserID uint) error {
	friend, err := s.friendRepo.GetPair(ctx, userID, blockedUserID)
	if err != nil {
		return err
	}
	if friend == nil || friend.Status != models.FriendshipStatusBlocked {
		return nil
	}
	return s.friendRepo.Delete(ctx, friend.ID)
}

// GetUserFriends returns ACCEPTED rows in both directions.
func (s *FriendService) GetUserFriends(ctx context.Context, userID uint) ([]models.Friend, error) {
	sent, err := s.friendRepo.ListByUserAndStatus(ctx, userID, models.FriendshipStatusAccepted)
	if err != nil {
		return nil, err
	}
	received, err := s.friendRepo.ListByFriendAndStatus(ctx, userID, models.FriendshipStatusAccepted)
	if err != nil {
		return nil, err
	}
	return append(sent, received...), nil
}

// GetFriendUsers returns the user records of a user's accepted friends.
func (s *FriendService) GetFriendUsers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.FriendsOf(ctx, userID)
}

// GetPendingRequests returns pending requests sent to the user.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friend, error) {
	return s.friendRepo.ListByFriendAndStatus(ctx, userID, models.FriendshipStatusPending)
}

// GetSentRequests returns pending requests the user has sent.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.Friend, error) {
	return s.friendRepo.ListByUserAndStatus(ctx, userID, models.FriendshipStatusPending)
}

// GetBlockedUsers returns the user's BLOCKED rows.
func (s *FriendService) GetBlockedUsers(ctx context.Context, userID uint) ([]models.Friend, error) {
	return s.friendRepo.ListByUserAndStatus(ctx, userID, models.FriendshipStatusBlocked)
}

// AreFriends reports whether an ACCEPTED row exists in either direction.
func (s *FriendService) AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	first, err := s.friendRepo.GetPair(ctx, userID1, userID2)
	if err != nil {
		return false, err
	}
	if first != nil && first.Status == models.FriendshipStatusAccepted {
		return true, nil
	}
	second, err := s.friendRepo.GetPair(ctx, userID2, userID1)
	if err != nil {
		return false, err
	}
	return second != nil && second.Status == models.FriendshipStatusAccepted, nil
}
