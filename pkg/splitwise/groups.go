package splitwise

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// groupService implements the GroupService interface
type groupService struct {
	client *Client
}

// List retrieves all groups of the current user
func (s *groupService) List(ctx context.Context) ([]*Group, error) {
	var result struct {
		Groups []*Group `json:"groups"`
	}

	if err := s.client.get(ctx, "get_groups", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get groups")
	}

	return result.Groups, nil
}

// Get retrieves a single group by id
func (s *groupService) Get(ctx context.Context, groupID int64) (*Group, error) {
	var result struct {
		Group *Group `json:"group"`
	}

	endpoint := fmt.Sprintf("get_group/%d", groupID)
	if err := s.client.get(ctx, endpoint, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get group %d", groupID)
	}

	return result.Group, nil
}

// Create creates a new group
func (s *groupService) Create(ctx context.Context, params *CreateGroupParams) (*Group, error) {
	if params == nil {
		return nil, errors.New("params are required")
	}
	if params.Name == "" {
		return nil, errors.New("group name is required")
	}

	body := map[string]interface{}{
		"name": params.Name,
	}
	if params.Description != "" {
		body["description"] = params.Description
	}
	if params.GroupType != "" {
		body["group_type"] = params.GroupType
	}
	if params.SimplifyByDefault {
		body["simplify_by_default"] = true
	}

	var result struct {
		Group *Group `json:"group"`
	}

	if err := s.client.post(ctx, "create_group", body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create group")
	}

	if result.Group == nil {
		return nil, errors.New("group creation returned no group")
	}

	return result.Group, nil
}
