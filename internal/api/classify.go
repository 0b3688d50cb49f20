package api

import "fmt"

// statusUnknownError is the one application-level status eligible for
// retries. Every other non-OK status is a semantic rejection that retrying
// the identical request cannot change.
const statusUnknownError = "UNKNOWN_ERROR"

// Class is the retry classification of a failed attempt.
type Class int

const (
	// ClassTransient marks a failure that may not recur: a retry, possibly
	// after a delay, has a reasonable chance of succeeding.
	ClassTransient Class = iota
	// ClassPermanent marks a failure that retrying the identical request
	// cannot change.
	ClassPermanent
)

// ClassifiedError wraps an attempt error together with its retry
// classification. The retry driver acts only on the Class; the wrapped
// error is what callers ultimately receive.
type ClassifiedError struct {
	Class Class
	Err   error
}

// Transient wraps err as a retryable failure.
func Transient(err error) *ClassifiedError {
	return &ClassifiedError{Class: ClassTransient, Err: err}
}

// Permanent wraps err as a non-retryable failure.
func Permanent(err error) *ClassifiedError {
	return &ClassifiedError{Class: ClassPermanent, Err: err}
}

func (e *ClassifiedError) Error() string {
	if e.Class == ClassTransient {
		return fmt.Sprintf("transient error: %v", e.Err)
	}
	return fmt.Sprintf("permanent error: %v", e.Err)
}

// Unwrap returns the wrapped attempt error.
func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// Classify maps an attempt error to its retry classification:
//
//   - NetworkError: transient — the exchange never completed.
//   - HTTPError: transient for 5xx and 429, permanent otherwise.
//   - DecodeError: permanent — a malformed body means the contract was
//     violated; retrying will not fix the shape.
//   - StatusError: transient only for UNKNOWN_ERROR, permanent otherwise.
//
// Unknown error types are permanent: never retry what cannot be reasoned
// about.
func Classify(err error) *ClassifiedError {
	switch e := err.(type) {
	case *NetworkError:
		return Transient(err)
	case *HTTPError:
		if e.StatusCode >= 500 || e.StatusCode == 429 {
			return Transient(err)
		}
		return Permanent(err)
	case *DecodeError:
		return Permanent(err)
	case *StatusError:
		if e.Code == statusUnknownError {
			return Transient(err)
		}
		return Permanent(err)
	}
	return Permanent(err)
}
