package splitwise

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// commentService implements the CommentService interface
type commentService struct {
	client *Client
}

// List retrieves all comments on an expense
func (s *commentService) List(ctx context.Context, expenseID int64) ([]*Comment, error) {
	query := url.Values{}
	query.Set("expense_id", strconv.FormatInt(expenseID, 10))

	var result struct {
		Comments []*Comment `json:"comments"`
	}

	if err := s.client.get(ctx, "get_comments", query, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get comments for expense %d", expenseID)
	}

	return result.Comments, nil
}

// Create adds a comment to an expense
func (s *commentService) Create(ctx context.Context, expenseID int64, content string) (*Comment, error) {
	if content == "" {
		return nil, errors.New("comment content is required")
	}

	body := map[string]interface{}{
		"expense_id": expenseID,
		"content":    content,
	}

	var result struct {
		Comment *Comment `json:"comment"`
	}

	if err := s.client.post(ctx, "create_comment", body, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to comment on expense %d", expenseID)
	}

	if result.Comment == nil {
		return nil, errors.New("comment creation returned no comment")
	}

	return result.Comment, nil
}
