// Package ratelimit implements client-side request throttling for the
// Google Maps Platform APIs.
//
// The limiter is deliberately coarse: it tracks the cumulative request count
// and the time of the first request per API category, and sleeps the calling
// goroutine whenever the observed long-run average rate exceeds the
// configured budget. There is no window rollover and no burst credit — the
// first several calls on a fresh category are effectively free relative to
// the long-run average, and a sustained burst is paid back with whole-second
// catch-up sleeps.
//
// Categories without a configured budget are unlimited. The catch-all
// ratelimit.All category is checked in addition to the per-API category, so
// a single call may accumulate sleeps from both.
package ratelimit
