package gomaps

import "github.com/gomaps/client-go/internal/api"

// Status is the application-level status embedded in classic Maps API
// response bodies, distinct from the HTTP status code.
type Status string

// Status codes shared across the classic Maps APIs. Individual APIs use a
// subset.
const (
	StatusOK                     Status = "OK"
	StatusZeroResults            Status = "ZERO_RESULTS"
	StatusOverDailyLimit         Status = "OVER_DAILY_LIMIT"
	StatusOverQueryLimit         Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied          Status = "REQUEST_DENIED"
	StatusInvalidRequest         Status = "INVALID_REQUEST"
	StatusUnknownError           Status = "UNKNOWN_ERROR"
	StatusNotFound               Status = "NOT_FOUND"
	StatusMaxWaypointsExceeded   Status = "MAX_WAYPOINTS_EXCEEDED"
	StatusMaxRouteLengthExceeded Status = "MAX_ROUTE_LENGTH_EXCEEDED"
)

// statusError converts a non-OK status and its optional error message into
// the error surfaced to callers. OK returns nil.
func (s Status) statusError(message string) error {
	if s == StatusOK {
		return nil
	}
	return &api.StatusError{Code: string(s), Message: message}
}
