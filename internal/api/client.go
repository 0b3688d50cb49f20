package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// maxErrorBodyBytes bounds how much of an error response body is kept for
// diagnostics.
const maxErrorBodyBytes = 2048

// Envelope is implemented by response types that carry an application-level
// status inside a 2xx response body. StatusError returns nil when the
// embedded status reports success, otherwise a *StatusError.
//
// Response types without an embedded status (the newer *.googleapis.com
// APIs report failures through the HTTP status code) return nil
// unconditionally.
type Envelope interface {
	StatusError() error
}

// Client is the low-level HTTP client shared by all Maps Platform calls.
type Client struct {
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	limits     *ratelimit.Registry
	signer     *Signer
	log        zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig replaces the default backoff policy.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithRateLimits attaches a rate limit registry. Without one, no
// client-side throttling occurs.
func WithRateLimits(reg *ratelimit.Registry) Option {
	return func(c *Client) {
		c.limits = reg
	}
}

// WithSigner enables premium-plan URL signing for classic endpoints. When a
// signer is set, classic requests authenticate with the client ID and
// signature instead of the API key.
func WithSigner(s *Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithLogger sets the structured logger for attempt instrumentation.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a low-level client. The API key may be empty only when a
// signer is configured.
func New(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry:  DefaultRetryConfig(),
		limits: ratelimit.NewRegistry(),
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" && c.signer == nil {
		return nil, fmt.Errorf("API key is required")
	}
	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// GetJSON performs a classic-endpoint GET: credentials are appended to the
// query string (API key, or client ID plus signature when a signer is
// configured), the rate limiter is consulted for each category, and the
// attempt is retried per the backoff policy.
func (c *Client) GetJSON(ctx context.Context, apis []ratelimit.API, rawurl string, query url.Values, out Envelope) error {
	u, err := url.Parse(rawurl)
	if err != nil {
		return fmt.Errorf("invalid service URL: %w", err)
	}
	if c.signer != nil {
		c.signer.SignURL(u, query)
	} else {
		query.Set("key", c.apiKey)
		u.RawQuery = query.Encode()
	}
	return c.call(ctx, apis, http.MethodGet, u.String(), nil, nil, out)
}

// PostJSON performs a newer-endpoint POST: the body is marshaled as JSON
// and credentials travel in the X-Goog-Api-Key header. Extra headers (the
// Places API field mask, for one) may be passed in headers; nil is fine.
func (c *Client) PostJSON(ctx context.Context, apis []ratelimit.API, rawurl string, headers map[string]string, body any, out Envelope) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.call(ctx, apis, http.MethodPost, rawurl, headers, data, out)
}

// call throttles, then drives attempts through the retry loop.
func (c *Client) call(ctx context.Context, apis []ratelimit.API, method, rawurl string, headers map[string]string, body []byte, out Envelope) error {
	c.limits.Limit(ctx, apis...)

	log := c.log.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("url", redactURL(rawurl)).
		Logger()
	log.Debug().Msg("calling Google Maps Platform")

	return Retry(ctx, c.retry, log, func(ctx context.Context) error {
		return c.attempt(ctx, method, rawurl, headers, body, out)
	})
}

// attempt performs exactly one HTTP round trip and returns nil or a
// *ClassifiedError.
func (c *Client) attempt(ctx context.Context, method, rawurl string, headers map[string]string, body []byte, out Envelope) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, reader)
	if err != nil {
		return Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classify(&NetworkError{Err: err})
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		// The response arrived but its body did not survive the read.
		// Treated like any other malformed body: not retried.
		return Classify(&DecodeError{Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Classify(&HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(data, maxErrorBodyBytes),
		})
	}

	if err := json.Unmarshal(data, out); err != nil {
		return Classify(&DecodeError{Err: err})
	}
	if serr := out.StatusError(); serr != nil {
		return Classify(serr)
	}
	return nil
}

// redactURL strips credentials from a URL before it reaches log output.
func redactURL(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return rawurl
	}
	q := u.Query()
	for _, param := range []string{"key", "signature"} {
		if q.Has(param) {
			q.Set(param, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func truncate(data []byte, limit int) string {
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
