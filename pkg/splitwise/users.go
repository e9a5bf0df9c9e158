package splitwise

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Current retrieves the currently authenticated user
func (s *userService) Current(ctx context.Context) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}

	if err := s.client.get(ctx, "get_current_user", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	return result.User, nil
}

// Get retrieves a user by id
func (s *userService) Get(ctx context.Context, userID int64) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}

	endpoint := fmt.Sprintf("get_user/%d", userID)
	if err := s.client.get(ctx, endpoint, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get user %d", userID)
	}

	return result.User, nil
}
