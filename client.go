package gomaps

import (
	"fmt"

	"github.com/gomaps/client-go/internal/api"
	"github.com/gomaps/client-go/internal/ratelimit"
)

// API selects a Google Maps Platform API category for rate limiting.
type API = ratelimit.API

// API categories. APIAll is observed in addition to the per-API category on
// every call, so a single request may be throttled by both.
const (
	APIAll               = ratelimit.All
	APIDirections        = ratelimit.Directions
	APIDistanceMatrix    = ratelimit.DistanceMatrix
	APIElevation         = ratelimit.Elevation
	APIGeocoding         = ratelimit.Geocoding
	APIPlaces            = ratelimit.Places
	APIPlacesNew         = ratelimit.PlacesNew
	APITimeZone          = ratelimit.TimeZone
	APIAddressValidation = ratelimit.AddressValidation
)

const (
	defaultBaseURL              = "https://maps.googleapis.com/maps/api"
	defaultPlacesNewURL         = "https://places.googleapis.com/v1"
	defaultAddressValidationURL = "https://addressvalidation.googleapis.com/v1:validateAddress"
)

// Client is a Google Maps Platform API client. A Client is safe for
// concurrent use; rate limit state is shared across all calls made through
// the same instance.
type Client struct {
	apiClient     *api.Client
	baseURL       string
	placesNewURL  string
	validationURL string
}

// New creates a client authenticated by an API key. Premium plan customers
// may pass WithClientID instead of an API key for classic endpoints.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:       defaultBaseURL,
		placesNewURL:  defaultPlacesNewURL,
		validationURL: defaultAddressValidationURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if apiKey == "" && cfg.clientID == "" {
		return nil, ErrMissingAPIKey
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:     apiClient,
		baseURL:       cfg.baseURL,
		placesNewURL:  cfg.placesNewURL,
		validationURL: cfg.validationURL,
	}, nil
}

// buildAPIClient creates and configures the low-level client from the given
// config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retry != nil {
		apiOpts = append(apiOpts, api.WithRetryConfig(cfg.retry))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(*cfg.logger))
	}
	if cfg.clientID != "" {
		signer, err := api.NewSigner(cfg.clientID, cfg.signingKey)
		if err != nil {
			return nil, fmt.Errorf("URL signing setup failed: %w", err)
		}
		apiOpts = append(apiOpts, api.WithSigner(signer))
	}

	if len(cfg.rateLimits) > 0 {
		reg := ratelimit.NewRegistry()
		for _, rl := range cfg.rateLimits {
			reg.Set(rl.api, rl.requests, rl.per)
		}
		apiOpts = append(apiOpts, api.WithRateLimits(reg))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}
	if cfg.httpClient != nil {
		hc := cfg.httpClient
		if cfg.timeout > 0 {
			// Apply the timeout without mutating the caller's client.
			clone := *hc
			clone.Timeout = cfg.timeout
			hc = &clone
		}
		apiClient.SetHTTPClient(hc)
	}
	return apiClient, nil
}
