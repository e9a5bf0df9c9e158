package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/tejas-uk/splitwise-mcp/internal/types"
)

const (
	authHeaderKey = "Authorization"
	requestIDKey  = "X-Request-Id"
	contentType   = "application/json"
)

// RESTTransport handles communication with the Splitwise REST API
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	apiKey      string
	logger      types.Logger
	hooks       *types.Hooks
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// SetAuth sets the API key used as a bearer token
func (t *RESTTransport) SetAuth(apiKey string) {
	t.apiKey = apiKey
}

// Get executes a GET request against an API endpoint
func (t *RESTTransport) Get(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	target := t.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	return t.execute(ctx, req, result)
}

// Post executes a POST request with a JSON body against an API endpoint
func (t *RESTTransport) Post(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	target := t.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	return t.execute(ctx, req, result)
}

// execute sends the request and decodes the response into result
func (t *RESTTransport) execute(ctx context.Context, req *http.Request, result interface{}) error {
	// Check authentication
	if t.apiKey == "" {
		return types.ErrNotAuthenticated
	}

	// Set headers
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(authHeaderKey, "Bearer "+t.apiKey)
	req.Header.Set(requestIDKey, uuid.New().String())

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, req)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("API request", "method", req.Method, "url", req.URL.String())
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(req)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return t.handleHTTPError(resp.StatusCode, respBody)
	}

	// Some success responses still carry an errors object, e.g. create_expense
	// returns 200 with {"expenses": [], "errors": {"base": [...]}}.
	if apiErr := decodeAPIError(resp.StatusCode, respBody); apiErr != nil {
		return apiErr
	}

	// Unmarshal result
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
	}

	return nil
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError handles HTTP errors
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return types.ErrNotAuthenticated
	case http.StatusForbidden:
		return types.ErrForbidden
	case http.StatusNotFound:
		return types.ErrNotFound
	case http.StatusTooManyRequests:
		return types.ErrRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return types.ErrTimeout
	case http.StatusBadRequest:
		if apiErr := decodeAPIError(statusCode, body); apiErr != nil {
			return apiErr
		}
		return &types.Error{
			Code:       "BAD_REQUEST",
			Message:    "bad request",
			StatusCode: statusCode,
		}
	default:
		if statusCode >= 500 {
			msg := fmt.Sprintf("server error: %d", statusCode)
			if desc := http.StatusText(statusCode); desc != "" {
				msg = fmt.Sprintf("server error: %d (%s)", statusCode, desc)
			}
			if apiErr := decodeAPIError(statusCode, body); apiErr != nil {
				msg = fmt.Sprintf("%s: %s", msg, apiErr.Error())
			}
			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    msg,
				StatusCode: statusCode,
				Err:        types.ErrServerError,
			}
		}
		if apiErr := decodeAPIError(statusCode, body); apiErr != nil {
			return apiErr
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
		}
	}
}

// decodeAPIError extracts a Splitwise error payload from a response body.
// Returns nil when the body carries no error text.
func decodeAPIError(statusCode int, body []byte) *types.APIError {
	var envelope struct {
		Error  string          `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	messages := map[string][]string{}
	if envelope.Error != "" {
		messages["base"] = []string{envelope.Error}
	}

	if len(envelope.Errors) > 0 {
		// "errors" is usually a field->messages map, but older endpoints
		// return a flat list of strings.
		var fields map[string][]string
		if err := json.Unmarshal(envelope.Errors, &fields); err == nil {
			for field, msgs := range fields {
				messages[field] = append(messages[field], msgs...)
			}
		} else {
			var flat []string
			if err := json.Unmarshal(envelope.Errors, &flat); err == nil {
				messages["base"] = append(messages["base"], flat...)
			}
		}
	}

	apiErr := &types.APIError{
		StatusCode: statusCode,
		Messages:   messages,
	}
	if !apiErr.HasMessages() {
		return nil
	}
	return apiErr
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
