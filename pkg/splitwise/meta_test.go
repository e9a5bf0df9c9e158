package splitwise

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMetaService_Currencies(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"currencies": [
			{"currency_code": "USD", "unit": "$"},
			{"currency_code": "EUR", "unit": "€"}
		]
	}`

	mockTransport.On("Get", mock.Anything, "get_currencies", mock.Anything, mock.Anything).
		Return(response, nil)

	currencies, err := client.Meta.Currencies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, currencies, 2)
	assert.Equal(t, "USD", currencies[0].CurrencyCode)
	assert.Equal(t, "$", currencies[0].Unit)

	mockTransport.AssertExpectations(t)
}

func TestMetaService_Categories(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"categories": [
			{
				"id": 1,
				"name": "Food and drink",
				"subcategories": [
					{"id": 12, "name": "Dining out"},
					{"id": 13, "name": "Groceries"}
				]
			}
		]
	}`

	mockTransport.On("Get", mock.Anything, "get_categories", mock.Anything, mock.Anything).
		Return(response, nil)

	categories, err := client.Meta.Categories(context.Background())

	assert.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Food and drink", categories[0].Name)
	require.Len(t, categories[0].Subcategories, 2)
	assert.Equal(t, "Dining out", categories[0].Subcategories[0].Name)

	mockTransport.AssertExpectations(t)
}

func TestNotificationService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"notifications": [
			{"id": 501, "type": 0, "content": "Grace added \"Dinner\""}
		]
	}`

	mockTransport.On("Get", mock.Anything, "get_notifications", mock.MatchedBy(func(query url.Values) bool {
		return query.Get("limit") == "10"
	}), mock.Anything).Return(response, nil)

	notifications, err := client.Notifications.List(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Content, "Dinner")

	mockTransport.AssertExpectations(t)
}
