package gomaps

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gomaps/client-go/internal/api"
	"github.com/gomaps/client-go/internal/ratelimit"
)

// RetryConfig configures exponential backoff between retry attempts.
type RetryConfig = api.RetryConfig

// DefaultRetryConfig returns the default backoff policy.
func DefaultRetryConfig() *RetryConfig {
	return api.DefaultRetryConfig()
}

type rateLimitSpec struct {
	api      ratelimit.API
	requests uint64
	per      time.Duration
}

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL       string
	placesNewURL  string
	validationURL string
	httpClient    *http.Client
	timeout       time.Duration
	retry         *RetryConfig
	logger        *zerolog.Logger
	clientID      string
	signingKey    string
	rateLimits    []rateLimitSpec
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the classic-endpoint base URL
// (https://maps.googleapis.com/maps/api). Mostly useful for testing.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithPlacesNewURL overrides the Places API (New) base URL
// (https://places.googleapis.com/v1).
func WithPlacesNewURL(url string) Option {
	return func(c *clientConfig) {
		c.placesNewURL = url
	}
}

// WithAddressValidationURL overrides the Address Validation endpoint.
func WithAddressValidationURL(url string) Option {
	return func(c *clientConfig) {
		c.validationURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-attempt HTTP timeout. The retry loop has its own
// independent time budget, set through WithRetryConfig.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetryConfig replaces the default backoff policy.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *clientConfig) {
		c.retry = cfg
	}
}

// WithRateLimit caps the client-side request rate for an API category at
// requests per the given duration. The limiter tracks the cumulative
// average since the category's first request; calls that would push the
// average over the cap sleep before being issued. Categories without a
// configured limit are unlimited.
func WithRateLimit(api API, requests uint64, per time.Duration) Option {
	return func(c *clientConfig) {
		c.rateLimits = append(c.rateLimits, rateLimitSpec{api: api, requests: requests, per: per})
	}
}

// WithLogger enables structured logging of request attempts, backoff, and
// throttling decisions.
func WithLogger(log zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &log
	}
}

// WithClientID enables premium-plan authentication for classic endpoints:
// requests carry the client ID and an HMAC signature of the URL instead of
// an API key. signingKey is the URL-safe base64 key issued by Google.
func WithClientID(clientID, signingKey string) Option {
	return func(c *clientConfig) {
		c.clientID = clientID
		c.signingKey = signingKey
	}
}
