// Package caronsale provides a CarOnSale buyer API client abstracted behind
// interfaces for testability.
package caronsale

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// AuctionClient defines the interface for reading running auctions.
type AuctionClient interface {
	RunningAuctions(ctx context.Context) (*AuctionPage, error)
}

// Authenticator defines the interface for obtaining an auth header pair.
type Authenticator interface {
	Authenticate(ctx context.Context) (*AuthHeader, error)
}

// Progress wraps a blocking call with a visible in-flight indicator.
type Progress interface {
	Run(ctx context.Context, fn func(context.Context) error) error
}

type passthrough struct{}

func (passthrough) Run(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Credentials identifies the buyer account used to authenticate.
type Credentials struct {
	UserEmail string
	Password  string
}

// Client implements AuctionClient and Authenticator against the CarOnSale
// REST API. Tokens are never cached: every listing call authenticates.
type Client struct {
	baseURL     string
	creds       Credentials
	httpClient  *http.Client
	log         *slog.Logger
	progress    Progress
	rateLimiter *RateLimiter
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for progress and classified failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithProgress wraps every network call in p, typically a terminal spinner.
func WithProgress(p Progress) Option {
	return func(c *Client) {
		c.progress = p
	}
}

// WithRateLimiter injects a limiter consulted before every request.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// New creates a new CarOnSale client targeting baseURL.
func New(baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		progress:   passthrough{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ AuctionClient = (*Client)(nil)
	_ Authenticator = (*Client)(nil)
)
