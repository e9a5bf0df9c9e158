package types

import (
	"fmt"
	"sort"
	"strings"
)

// Error represents an API error
type Error struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Details    map[string]interface{} `json:"details,omitempty"`
	RequestID  string                 `json:"requestId,omitempty"`
	Err        error                  `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("error: %s", e.Code)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// APIError represents a structured error payload from the Splitwise API.
// The API reports failures either as {"error": "..."} or as
// {"errors": {"base": ["...", ...], "<field>": [...]}}.
type APIError struct {
	StatusCode int                 `json:"statusCode"`
	Messages   map[string][]string `json:"messages"`
}

// Error implements the error interface. Fields are rendered in sorted
// order so the message is stable across runs.
func (e *APIError) Error() string {
	fields := make([]string, 0, len(e.Messages))
	for field := range e.Messages {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		for _, msg := range e.Messages[field] {
			if field == "base" || field == "" {
				parts = append(parts, msg)
			} else {
				parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
			}
		}
	}
	if len(parts) == 0 {
		return "splitwise API error"
	}
	return strings.Join(parts, "; ")
}

// HasMessages reports whether the payload carried any error text
func (e *APIError) HasMessages() bool {
	for _, msgs := range e.Messages {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}
