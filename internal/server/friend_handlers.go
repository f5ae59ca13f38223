package server

import (
	"foodieframe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseFriendPair extracts the :userId and :friendId route parameters.
func (s *Server) parseFriendPair(c *fiber.Ctx) (uint, uint, error) {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return 0, 0, err
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return 0, 0, err
	}
	return userID, friendID, nil
}

// SendFriendRequest handles POST /api/friends/request/:userId/:friendId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	friend, err := s.friendService.SendFriendRequest(c.Context(), userID, friendID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(friend)
}

// AcceptFriendRequest handles PUT /api/friends/accept/:userId/:friendId
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	friend, err := s.friendService.AcceptFriendRequest(c.Context(), userID, friendID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(friend)
}

// AcceptFriendRequestByID handles PUT /api/friends/accept/:id
func (s *Server) AcceptFriendRequestByID(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friend, err := s.friendService.AcceptFriendRequestByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(friend)
}

// RejectFriendRequest handles DELETE /api/friends/reject/:userId/:friendId
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	if err := s.friendService.RejectFriendRequest(c.Context(), userID, friendID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveFriend handles DELETE /api/friends/remove/:userId/:friendId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	if err := s.friendService.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// BlockUser handles POST /api/friends/block/:userId/:friendId
func (s *Server) BlockUser(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	friend, err := s.friendService.BlockUser(c.Context(), userID, friendID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(friend)
}

// UnblockUser handles DELETE /api/friends/unblock/:userId/:friendId
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	if err := s.friendService.UnblockUser(c.Context(), userID, friendID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFriends handles GET /api/friends/user/:userId
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friends, err := s.friendService.GetUserFriends(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(friends)
}

// GetFriendUsers handles GET /api/friends/user/:userId/users
func (s *Server) GetFriendUsers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	users, err := s.friendService.GetFriendUsers(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// GetPendingRequests handles GET /api/friends/user/:userId/pending
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	requests, err := s.friendService.GetPendingRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(requests)
}

// GetSentRequests handles GET /api/friends/user/:userId/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	requests, err := s.friendService.GetSentRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(requests)
}

// GetBlockedUsers handles GET /api/friends/user/:userId/blocked
func (s *Server) GetBlockedUsers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	blocked, err := s.friendService.GetBlockedUsers(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(blocked)
}

// AreFriends handles GET /api/friends/is-friend/:userId/:friendId
func (s *Server) AreFriends(c *fiber.Ctx) error {
	userID, friendID, err := s.parseFriendPair(c)
	if err != nil {
		return nil
	}

	areFriends, err := s.friendService.AreFriends(c.Context(), userID, friendID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"friends": areFriends})
}
