package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejas-uk/splitwise-mcp/internal/types"
)

func TestGet_DecodesResult(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user": {"id": 79774, "first_name": "Ada"}}`))
	}))
	defer server.Close()

	transport := NewRESTTransport(&Options{BaseURL: server.URL})
	transport.SetAuth("test-key")

	var result struct {
		User struct {
			ID        int64  `json:"id"`
			FirstName string `json:"first_name"`
		} `json:"user"`
	}

	query := url.Values{}
	query.Set("limit", "10")

	err := transport.Get(context.Background(), "get_current_user", query, &result)

	require.NoError(t, err)
	assert.Equal(t, "/get_current_user", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "limit=10", gotQuery)
	assert.Equal(t, int64(79774), result.User.ID)
	assert.Equal(t, "Ada", result.User.FirstName)
}

func TestGet_RequiresAuth(t *testing.T) {
	transport := NewRESTTransport(&Options{BaseURL: "http://localhost:1"})

	err := transport.Get(context.Background(), "get_friends", nil, nil)

	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestPost_SendsJSONBody(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		gotBody = string(payload)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := NewRESTTransport(&Options{BaseURL: server.URL})
	transport.SetAuth("test-key")

	body := map[string]interface{}{"name": "Trip"}
	err := transport.Post(context.Background(), "create_group", body, nil)

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"name": "Trip"}`, gotBody)
}

func TestExecute_SuccessBodyWithErrors(t *testing.T) {
	// create_expense reports validation failures as 200 with a populated
	// errors object and an empty expenses list
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"expenses": [], "errors": {"base": ["The total of everyone's paid shares ($90.00) is different than the total cost ($100.00)"]}}`))
	}))
	defer server.Close()

	transport := NewRESTTransport(&Options{BaseURL: server.URL})
	transport.SetAuth("test-key")

	err := transport.Post(context.Background(), "create_expense", map[string]interface{}{}, nil)

	require.Error(t, err)
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "paid shares")
}

func TestHandleHTTPError_MapsStatusCodes(t *testing.T) {
	transport := &RESTTransport{}

	tests := []struct {
		name       string
		statusCode int
		body       []byte
		expected   error
	}{
		{"401 unauthorized", http.StatusUnauthorized, nil, types.ErrNotAuthenticated},
		{"403 forbidden", http.StatusForbidden, nil, types.ErrForbidden},
		{"404 not found", http.StatusNotFound, nil, types.ErrNotFound},
		{"429 rate limited", http.StatusTooManyRequests, nil, types.ErrRateLimited},
		{"504 gateway timeout", http.StatusGatewayTimeout, nil, types.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transport.handleHTTPError(tt.statusCode, tt.body)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestHandleHTTPError_ServerError_IncludesDescriptionAndBody(t *testing.T) {
	transport := &RESTTransport{}

	err := transport.handleHTTPError(500, []byte(`{"error": "Database connection failed"}`))

	assert.Error(t, err)
	assert.ErrorIs(t, err, types.ErrServerError)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Internal Server Error")
	assert.Contains(t, err.Error(), "Database connection failed")
}

func TestHandleHTTPError_BadRequest_DecodesFieldErrors(t *testing.T) {
	transport := &RESTTransport{}

	err := transport.handleHTTPError(400, []byte(`{"errors": {"cost": ["must be positive"]}}`))

	require.Error(t, err)
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "cost: must be positive")
}

func TestDecodeAPIError(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected string
	}{
		{"flat error string", []byte(`{"error": "Invalid API request"}`), "Invalid API request"},
		{"field map", []byte(`{"errors": {"base": ["boom"]}}`), "boom"},
		{"flat list", []byte(`{"errors": ["first", "second"]}`), "first; second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := decodeAPIError(400, tt.body)
			require.NotNil(t, apiErr)
			assert.Contains(t, apiErr.Error(), tt.expected)
		})
	}

	t.Run("clean body yields nil", func(t *testing.T) {
		assert.Nil(t, decodeAPIError(200, []byte(`{"expenses": [{"id": 1}]}`)))
		assert.Nil(t, decodeAPIError(200, []byte(`{"errors": {}}`)))
	})
}
