package splitwise

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/tejas-uk/splitwise-mcp/internal/transport"
	internalTypes "github.com/tejas-uk/splitwise-mcp/internal/types"
)

const (
	// DefaultBaseURL is the default Splitwise API base URL
	DefaultBaseURL = "https://secure.splitwise.com/api/v3.0"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "splitwise-mcp/1.0.0"
)

// Client is the main Splitwise API client
type Client struct {
	// Service interfaces
	Users         UserService
	Friends       FriendService
	Expenses      ExpenseService
	Groups        GroupService
	Comments      CommentService
	Notifications NotificationService
	Meta          MetaService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// APIKey is a Splitwise personal access token used as a bearer token
	APIKey string

	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP communication with the Splitwise API
type Transport interface {
	Get(ctx context.Context, endpoint string, query url.Values, result interface{}) error
	Post(ctx context.Context, endpoint string, body interface{}, result interface{}) error
	SetAuth(apiKey string)
}

// NewClient creates a new Splitwise client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		// Use provided options if available, otherwise create new ones
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		// Override DSN if provided separately
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		// Set default environment if not provided
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		// Initialize Sentry
		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Create transport using the internal package
	transportOpts := &transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	}
	trans := transport.NewRESTTransport(transportOpts)

	// Set auth if API key provided
	if opts.APIKey != "" {
		trans.SetAuth(opts.APIKey)
	}

	// Create client
	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	// Initialize services
	c.initServices()

	return c, nil
}

// NewClientWithAPIKey creates a client with an API key
func NewClientWithAPIKey(apiKey string) (*Client, error) {
	return NewClient(&ClientOptions{
		APIKey: apiKey,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Users = &userService{client: c}
	c.Friends = &friendService{client: c}
	c.Expenses = &expenseService{client: c}
	c.Groups = &groupService{client: c}
	c.Comments = &commentService{client: c}
	c.Notifications = &notificationService{client: c}
	c.Meta = &metaService{client: c}
}

// SetAPIKey sets the API key used for authentication
func (c *Client) SetAPIKey(apiKey string) {
	c.transport.SetAuth(apiKey)
}

// get executes a GET request against the API
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	return c.execute(ctx, endpoint, func() error {
		return c.transport.Get(ctx, endpoint, query, result)
	})
}

// post executes a POST request against the API
func (c *Client) post(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.execute(ctx, endpoint, func() error {
		return c.transport.Post(ctx, endpoint, body, result)
	})
}

// execute runs a transport call with rate limiting and Sentry capture
func (c *Client) execute(ctx context.Context, endpoint string, call func() error) error {
	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			captureError(ctx, endpoint, err)
			return err
		}
	}

	start := time.Now()
	err := call()
	duration := time.Since(start)

	// Capture errors in Sentry
	if err != nil {
		captureErrorWithContext(ctx, endpoint, duration, err)
	}

	return err
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	// Flush Sentry events with a 2 second timeout
	sentry.Flush(2 * time.Second)
}

// captureError sends an error to Sentry using the hub from ctx when present
func captureError(ctx context.Context, endpoint string, err error) {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// captureErrorWithContext tags the Sentry event with the failing endpoint
func captureErrorWithContext(ctx context.Context, endpoint string, duration time.Duration, err error) {
	scopeFn := func(scope *sentry.Scope) {
		scope.SetTag("splitwise.endpoint", endpoint)
		scope.SetContext("splitwise", map[string]interface{}{
			"endpoint": endpoint,
			"duration": duration.String(),
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scopeFn(scope)
			hub.CaptureException(err)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scopeFn(scope)
		sentry.CaptureException(err)
	})
}
