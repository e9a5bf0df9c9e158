package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default Splitwise API base URL
	DefaultBaseURL = "https://secure.splitwise.com/api/v3.0"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "splitwise-mcp/1.0.0"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when the API key lacks access to a resource
	ErrForbidden = errors.New("access forbidden")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")
)
