package gomaps

import (
	"errors"

	"github.com/gomaps/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when neither an API key nor a premium
	// plan client ID is provided.
	ErrMissingAPIKey = errors.New("API key is required")
)

// NetworkError represents a transport-level failure: the HTTP exchange
// could not be established or completed. Always retried.
type NetworkError = api.NetworkError

// HTTPError represents a non-success HTTP status from a Maps Platform
// endpoint. 5xx and 429 are retried; everything else is permanent.
type HTTPError = api.HTTPError

// DecodeError represents a response body that did not parse as the
// expected JSON shape. Never retried.
type DecodeError = api.DecodeError

// StatusError represents a non-success application-level status embedded
// in an otherwise well-formed response, such as REQUEST_DENIED or
// ZERO_RESULTS. Only UNKNOWN_ERROR is retried.
type StatusError = api.StatusError

// IsZeroResults reports whether err is an application-level ZERO_RESULTS
// status. Callers that treat an empty result set as a normal outcome can
// branch on this instead of inspecting the status code.
func IsZeroResults(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.Code == string(StatusZeroResults)
}
