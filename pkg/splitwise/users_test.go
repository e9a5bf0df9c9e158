package splitwise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tejas-uk/splitwise-mcp/internal/types"
)

func TestUserService_Current(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"user": {
			"id": 79774,
			"first_name": "Ada",
			"last_name": "Lovelace",
			"email": "ada@example.com",
			"registration_status": "confirmed",
			"default_currency": "USD"
		}
	}`

	mockTransport.On("Get", mock.Anything, "get_current_user", mock.Anything, mock.Anything).
		Return(response, nil)

	user, err := client.Users.Current(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(79774), user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.FullName())

	mockTransport.AssertExpectations(t)
}

func TestUserService_Current_NotAuthenticated(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get", mock.Anything, "get_current_user", mock.Anything, mock.Anything).
		Return(nil, types.ErrNotAuthenticated)

	user, err := client.Users.Current(context.Background())

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	mockTransport.AssertExpectations(t)
}

func TestUserService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"user": {
			"id": 12345,
			"first_name": "Grace",
			"last_name": "Hopper"
		}
	}`

	mockTransport.On("Get", mock.Anything, "get_user/12345", mock.Anything, mock.Anything).
		Return(response, nil)

	user, err := client.Users.Get(context.Background(), 12345)

	assert.NoError(t, err)
	assert.Equal(t, int64(12345), user.ID)
	assert.Equal(t, "Grace Hopper", user.FullName())

	mockTransport.AssertExpectations(t)
}
