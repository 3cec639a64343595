// Package http implements the wiki services on top of the MediaWiki HTTP
// API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/fehwiki"
	"golang.org/x/time/rate"
)

// Client defaults.
const (
	// DefaultAPIURL is the MediaWiki API endpoint of the wiki.
	DefaultAPIURL = "https://feheroes.fandom.com/api.php"

	// DefaultFetchTimeout is the default timeout for HTTP requests.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRequestsPerSecond limits how fast the API is queried.
	DefaultRequestsPerSecond = 5

	// DefaultUserAgent identifies the client to the wiki.
	DefaultUserAgent = "fehwiki/1.0 (+https://github.com/fwojciec/fehwiki)"
)

// DefaultRetryDelays returns the backoff delays for request retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Client performs rate-limited, retried requests against the MediaWiki API.
type Client struct {
	apiURL      string
	userAgent   string
	timeout     time.Duration
	rps         float64
	retryDelays []time.Duration

	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL sets the API endpoint.
// Defaults to DefaultAPIURL if not specified.
func WithAPIURL(u string) Option {
	return func(c *Client) {
		c.apiURL = u
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit sets the maximum number of requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.rps = rps
	}
}

// WithRetryDelays sets the delays between attempts. No delays disables
// retries.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(c *Client) {
		c.retryDelays = delays
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		apiURL:      DefaultAPIURL,
		userAgent:   DefaultUserAgent,
		timeout:     DefaultFetchTimeout,
		rps:         DefaultRequestsPerSecond,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}
	c.limiter = rate.NewLimiter(rate.Limit(c.rps), 1)

	return c
}

// apiError is the error object MediaWiki returns instead of a result.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// get queries the API with params and decodes the JSON response into v.
// Transport failures are reported as EUNAVAILABLE.
func (c *Client) get(ctx context.Context, params url.Values, v any) error {
	params.Set("format", "json")
	u := c.apiURL + "?" + params.Encode()

	body, err := withRetry(ctx, c.retryDelays, func(ctx context.Context) ([]byte, error) {
		return c.do(ctx, u)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fehwiki.Errorf(fehwiki.EUNAVAILABLE, "wiki request failed: %v", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fehwiki.Errorf(fehwiki.EUNAVAILABLE, "invalid wiki response: %v", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, u string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, permanent(err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, permanent(err)
		}
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

// permanentError marks a failure that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error {
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}
