package splitwise

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	client *Client
}

// List retrieves recent notifications, newest first
func (s *notificationService) List(ctx context.Context, limit int) ([]*Notification, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result struct {
		Notifications []*Notification `json:"notifications"`
	}

	if err := s.client.get(ctx, "get_notifications", query, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get notifications")
	}

	return result.Notifications, nil
}
