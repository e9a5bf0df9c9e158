package splitwise

import (
	"context"

	"github.com/pkg/errors"
)

// friendService implements the FriendService interface
type friendService struct {
	client *Client
}

// List retrieves all friends of the current user
func (s *friendService) List(ctx context.Context) ([]*Friend, error) {
	var result struct {
		Friends []*Friend `json:"friends"`
	}

	if err := s.client.get(ctx, "get_friends", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get friends")
	}

	return result.Friends, nil
}
