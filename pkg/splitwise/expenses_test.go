package splitwise

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tejas-uk/splitwise-mcp/internal/types"
)

func TestExpenseService_List(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"expenses": [
			{
				"id": 1001,
				"description": "Dinner",
				"cost": "100.00",
				"currency_code": "USD",
				"group_id": 42
			},
			{
				"id": 1002,
				"description": "Taxi",
				"cost": "35.00",
				"currency_code": "USD"
			}
		]
	}`

	mockTransport.On("Get", mock.Anything, "get_expenses", mock.MatchedBy(func(query url.Values) bool {
		return query.Get("group_id") == "42" && query.Get("limit") == "10"
	}), mock.Anything).Return(response, nil)

	expenses, err := client.Expenses.List(context.Background(), &ExpenseFilter{
		GroupID: 42,
		Limit:   10,
	})

	assert.NoError(t, err)
	assert.Len(t, expenses, 2)
	assert.Equal(t, int64(1001), expenses[0].ID)
	assert.Equal(t, "Dinner", expenses[0].Description)
	assert.Equal(t, "100.00", expenses[0].Cost)
	assert.Equal(t, int64(42), expenses[0].GroupID)

	mockTransport.AssertExpectations(t)
}

func TestExpenseService_List_NoFilter(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get", mock.Anything, "get_expenses", mock.MatchedBy(func(query url.Values) bool {
		return len(query) == 0
	}), mock.Anything).Return(`{"expenses": []}`, nil)

	expenses, err := client.Expenses.List(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, expenses)

	mockTransport.AssertExpectations(t)
}

func TestExpenseService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"expense": {
			"id": 1001,
			"description": "Dinner",
			"cost": "100.00",
			"currency_code": "USD",
			"users": [
				{"user_id": 1, "paid_share": "100.00", "owed_share": "50.00"},
				{"user_id": 2, "paid_share": "0.00", "owed_share": "50.00"}
			]
		}
	}`

	mockTransport.On("Get", mock.Anything, "get_expense/1001", mock.Anything, mock.Anything).
		Return(response, nil)

	expense, err := client.Expenses.Get(context.Background(), 1001)

	assert.NoError(t, err)
	assert.Equal(t, int64(1001), expense.ID)
	require.Len(t, expense.Users, 2)
	assert.Equal(t, "100.00", expense.Users[0].PaidShare)
	assert.Equal(t, "50.00", expense.Users[1].OwedShare)

	mockTransport.AssertExpectations(t)
}

func TestExpenseService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"expenses": [
			{
				"id": 2001,
				"description": "Dinner",
				"cost": "100.00",
				"currency_code": "USD"
			}
		],
		"errors": {}
	}`

	mockTransport.On("Post", mock.Anything, "create_expense", mock.MatchedBy(func(body interface{}) bool {
		fields := body.(map[string]interface{})
		return fields["description"] == "Dinner" &&
			fields["cost"] == "100.00" &&
			fields["users__0__user_id"] == int64(1) &&
			fields["users__0__paid_share"] == "100.00" &&
			fields["users__1__owed_share"] == "50.00"
	}), mock.Anything).Return(response, nil)

	expense, err := client.Expenses.Create(context.Background(), &CreateExpenseParams{
		Description:  "Dinner",
		Cost:         "100.00",
		CurrencyCode: "USD",
		Users: []ExpenseUserShare{
			{UserID: 1, PaidShare: "100.00", OwedShare: "50.00"},
			{UserID: 2, PaidShare: "0.00", OwedShare: "50.00"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2001), expense.ID)
	assert.Equal(t, "Dinner", expense.Description)

	mockTransport.AssertExpectations(t)
}

func TestExpenseService_Create_APIError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	apiErr := &types.APIError{
		StatusCode: 200,
		Messages: map[string][]string{
			"base": {"The total of everyone's owed shares is different than the total cost"},
		},
	}

	mockTransport.On("Post", mock.Anything, "create_expense", mock.Anything, mock.Anything).
		Return(nil, apiErr)

	expense, err := client.Expenses.Create(context.Background(), &CreateExpenseParams{
		Description: "Dinner",
		Cost:        "100.00",
	})

	assert.Error(t, err)
	assert.Nil(t, expense)

	got, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Contains(t, got.Error(), "owed shares")

	mockTransport.AssertExpectations(t)
}

func TestExpenseService_Create_EmptyResponse(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Post", mock.Anything, "create_expense", mock.Anything, mock.Anything).
		Return(`{"expenses": [], "errors": {}}`, nil)

	expense, err := client.Expenses.Create(context.Background(), &CreateExpenseParams{
		Description: "Dinner",
		Cost:        "100.00",
	})

	assert.Error(t, err)
	assert.Nil(t, expense)
	assert.Contains(t, err.Error(), "no expense")

	mockTransport.AssertExpectations(t)
}

func TestExpenseService_Delete(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Post", mock.Anything, "delete_expense/1001", mock.Anything, mock.Anything).
		Return(`{"success": true}`, nil)

	err := client.Expenses.Delete(context.Background(), 1001)

	assert.NoError(t, err)
	mockTransport.AssertExpectations(t)
}

func TestExpenseService_Delete_Failed(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Post", mock.Anything, "delete_expense/1001", mock.Anything, mock.Anything).
		Return(`{"success": false}`, nil)

	err := client.Expenses.Delete(context.Background(), 1001)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not deleted")

	mockTransport.AssertExpectations(t)
}
