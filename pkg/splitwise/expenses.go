package splitwise

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// expenseService implements the ExpenseService interface
type expenseService struct {
	client *Client
}

// List retrieves expenses matching the filter
func (s *expenseService) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	query := url.Values{}
	if filter != nil {
		if filter.GroupID != 0 {
			query.Set("group_id", strconv.FormatInt(filter.GroupID, 10))
		}
		if filter.FriendID != 0 {
			query.Set("friend_id", strconv.FormatInt(filter.FriendID, 10))
		}
		if filter.DatedAfter != nil {
			query.Set("dated_after", filter.DatedAfter.Format(time.RFC3339))
		}
		if filter.DatedBefore != nil {
			query.Set("dated_before", filter.DatedBefore.Format(time.RFC3339))
		}
		if filter.Limit > 0 {
			query.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			query.Set("offset", strconv.Itoa(filter.Offset))
		}
	}

	var result struct {
		Expenses []*Expense `json:"expenses"`
	}

	if err := s.client.get(ctx, "get_expenses", query, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get expenses")
	}

	return result.Expenses, nil
}

// Get retrieves a single expense by id
func (s *expenseService) Get(ctx context.Context, expenseID int64) (*Expense, error) {
	var result struct {
		Expense *Expense `json:"expense"`
	}

	endpoint := fmt.Sprintf("get_expense/%d", expenseID)
	if err := s.client.get(ctx, endpoint, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get expense %d", expenseID)
	}

	return result.Expense, nil
}

// Create creates a new expense split among users.
//
// The API takes per-user shares as indexed keys of the form
// users__{index}__{property}, with all monetary values as decimal strings.
func (s *expenseService) Create(ctx context.Context, params *CreateExpenseParams) (*Expense, error) {
	if params == nil {
		return nil, errors.New("params are required")
	}

	body := map[string]interface{}{
		"description": params.Description,
		"cost":        params.Cost,
	}
	if params.CurrencyCode != "" {
		body["currency_code"] = params.CurrencyCode
	}
	if params.GroupID != 0 {
		body["group_id"] = params.GroupID
	}
	if params.CategoryID != 0 {
		body["category_id"] = params.CategoryID
	}
	for i, u := range params.Users {
		body[fmt.Sprintf("users__%d__user_id", i)] = u.UserID
		body[fmt.Sprintf("users__%d__paid_share", i)] = u.PaidShare
		body[fmt.Sprintf("users__%d__owed_share", i)] = u.OwedShare
	}

	var result struct {
		Expenses []*Expense `json:"expenses"`
	}

	if err := s.client.post(ctx, "create_expense", body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create expense")
	}

	if len(result.Expenses) == 0 {
		return nil, errors.New("expense creation returned no expense")
	}

	return result.Expenses[0], nil
}

// Delete deletes an expense
func (s *expenseService) Delete(ctx context.Context, expenseID int64) error {
	var result struct {
		Success bool `json:"success"`
	}

	endpoint := fmt.Sprintf("delete_expense/%d", expenseID)
	if err := s.client.post(ctx, endpoint, nil, &result); err != nil {
		return errors.Wrapf(err, "failed to delete expense %d", expenseID)
	}

	if !result.Success {
		return errors.Errorf("expense %d was not deleted", expenseID)
	}

	return nil
}
