package splitwise

import (
	"errors"

	internalTypes "github.com/tejas-uk/splitwise-mcp/internal/types"
)

// Sentinel errors returned by the transport. Aliased so callers can match
// with errors.Is without importing internal packages.
var (
	// ErrNotAuthenticated is returned when the API key is missing or invalid
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrForbidden is returned when the API key lacks access to a resource
	ErrForbidden = internalTypes.ErrForbidden

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError
)

// Error represents an API error with code and status
type Error = internalTypes.Error

// APIError represents a structured error payload from the Splitwise API
type APIError = internalTypes.APIError

// IsAPIError extracts a Splitwise error payload from err, if present
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
