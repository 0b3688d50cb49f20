package api

import (
	"fmt"
)

// NetworkError represents a transport-level failure: the HTTP exchange could
// not be established or completed (DNS, connect, reset, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError represents a response that arrived with a non-success HTTP
// status code. Body carries a truncated copy of the response body for
// diagnostics.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("HTTP %s", e.Status)
}

// DecodeError represents a response body that could not be read or did not
// parse as the expected JSON shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

// Unwrap returns the underlying read or parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusError represents a non-success application-level status embedded in
// an otherwise well-formed response body, such as REQUEST_DENIED or
// ZERO_RESULTS from a classic Maps API.
type StatusError struct {
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}
