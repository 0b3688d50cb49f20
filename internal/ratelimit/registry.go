package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// apiLimit holds the budget and the observed state for one API category.
type apiLimit struct {
	// Budget: requests per perDuration.
	requests    uint64
	perDuration time.Duration

	// Observed state. firstRequest is zero until the first call through
	// this category; once set it is never reset.
	firstRequest time.Time
	requestCount uint64
}

// Registry maps API categories to their configured limits. Categories with
// no entry are unlimited. A Registry is safe for concurrent use; the zero
// value is not usable, call NewRegistry.
type Registry struct {
	mu     sync.Mutex
	limits map[API]*apiLimit

	// Test hooks.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// NewRegistry returns an empty registry with no limits configured.
func NewRegistry() *Registry {
	return &Registry{
		limits: make(map[API]*apiLimit),
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// Set installs or replaces the budget for an API category. Replacing a
// budget preserves the observed request count and first-request time, so a
// mid-session tightening takes effect against the existing average.
func (r *Registry) Set(api API, requests uint64, per time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lim, ok := r.limits[api]; ok {
		lim.requests = requests
		lim.perDuration = per
		return
	}
	r.limits[api] = &apiLimit{requests: requests, perDuration: per}
}

// Limit observes one request against each of the given categories in order,
// sleeping as needed to keep the cumulative average rate of each category at
// or below its budget. Categories without a budget are skipped. The first
// observation on a category never sleeps. Sleeps from multiple categories
// accumulate.
//
// Limit never fails. If ctx is canceled mid-sleep the remaining delay is
// abandoned and the next category is processed; the caller's subsequent HTTP
// attempt will surface the context error.
func (r *Registry) Limit(ctx context.Context, apis ...API) {
	for _, api := range apis {
		if d := r.observe(api); d > 0 {
			r.sleep(ctx, d)
		}
	}
}

// observe records one request against a category and returns the sleep
// needed to pull the observed average back under the budget.
func (r *Registry) observe(api API) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	lim, ok := r.limits[api]
	if !ok {
		return 0
	}

	if lim.firstRequest.IsZero() {
		lim.firstRequest = r.now()
		lim.requestCount = 1
		return 0
	}

	elapsed := r.now().Sub(lim.firstRequest).Seconds()
	targetRate := float64(lim.requests) / lim.perDuration.Seconds()
	if elapsed <= 0 {
		// An observation within the same clock tick as firstRequest
		// reads as an infinite rate, and converting +Inf to a
		// Duration is implementation-defined. Charge one full budget
		// window instead.
		lim.requestCount++
		return lim.perDuration
	}
	currentRate := float64(lim.requestCount) / elapsed
	lim.requestCount++

	difference := currentRate - targetRate
	if difference <= 0 {
		return 0
	}
	// Catch-up heuristic: one inter-request interval at the target rate
	// plus the overrun, rounded to whole seconds.
	secs := math.Round(1/targetRate + difference)
	return time.Duration(secs) * time.Second
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
