package api

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// RetryConfig configures exponential backoff between retry attempts.
type RetryConfig struct {
	// MaxAttempts caps the total number of attempts, including the first.
	// Zero means no attempt cap; only MaxElapsedTime bounds the loop.
	MaxAttempts int
	// InitialDelay is the backoff before the first retry.
	InitialDelay time.Duration
	// Multiplier is the factor by which the delay grows after each attempt.
	Multiplier float64
	// MaxDelay caps the delay between any two attempts.
	MaxDelay time.Duration
	// Jitter is the randomization factor (0.0 to 1.0) applied to each
	// delay to prevent synchronized retries.
	Jitter float64
	// MaxElapsedTime bounds the whole retry loop. Once the accumulated
	// time plus the next delay would exceed it, the loop stops with the
	// last error. Zero means no elapsed-time bound.
	MaxElapsedTime time.Duration
}

// DefaultRetryConfig returns the default backoff policy: 500ms initial
// delay growing 1.5x per attempt up to 60s, with up to 15 minutes total.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:    0,
		InitialDelay:   500 * time.Millisecond,
		Multiplier:     1.5,
		MaxDelay:       60 * time.Second,
		Jitter:         0.5,
		MaxElapsedTime: 15 * time.Minute,
	}
}

// Delay returns the backoff before retry number attempt (zero-based).
func (r *RetryConfig) Delay(attempt int) time.Duration {
	delay := float64(r.InitialDelay) * math.Pow(r.Multiplier, float64(attempt))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}

	if r.Jitter > 0 {
		jitterAmount := delay * r.Jitter
		delay = delay - jitterAmount + (rand.Float64() * 2 * jitterAmount)
	}

	return time.Duration(delay)
}

// Wait blocks for the backoff before retry number attempt, or until ctx is
// canceled.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.Delay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry runs op until it succeeds, fails permanently, or the backoff budget
// is exhausted. op reports retryable failures by returning a
// *ClassifiedError; any other error is treated as permanent. The error
// returned to the caller is always the underlying attempt error, never the
// classification wrapper — exhaustion reuses the final attempt's error.
func Retry(ctx context.Context, cfg *RetryConfig, log zerolog.Logger, op func(context.Context) error) error {
	start := time.Now()

	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}

		var cerr *ClassifiedError
		if !errors.As(err, &cerr) {
			return err
		}
		if cerr.Class == ClassPermanent {
			log.Error().Int("attempt", attempt+1).Err(cerr.Err).Msg("permanent error, not retrying")
			return cerr.Err
		}

		if cfg.MaxAttempts > 0 && attempt+1 >= cfg.MaxAttempts {
			log.Warn().Int("attempt", attempt+1).Err(cerr.Err).Msg("attempt budget exhausted")
			return cerr.Err
		}
		delay := cfg.Delay(attempt)
		if cfg.MaxElapsedTime > 0 && time.Since(start)+delay > cfg.MaxElapsedTime {
			log.Warn().Int("attempt", attempt+1).Err(cerr.Err).Msg("backoff time budget exhausted")
			return cerr.Err
		}

		log.Warn().
			Int("attempt", attempt+1).
			Dur("backoff", delay).
			Err(cerr.Err).
			Msg("transient error, retrying")

		if waitErr := sleepFor(ctx, delay); waitErr != nil {
			// Canceled mid-backoff: surface the last attempt's error,
			// consistent with exhaustion.
			return cerr.Err
		}
	}
}

func sleepFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
