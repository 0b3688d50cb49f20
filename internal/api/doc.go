// Package api contains the HTTP plumbing shared by every Google Maps
// Platform call: single-attempt request execution, error classification,
// the retry/backoff driver, client-side rate limiting hooks, and
// premium-plan URL signing.
//
// The flow for one logical request:
//
//  1. The rate limiter is consulted for the catch-all category and the
//     API-specific category; either may sleep the calling goroutine.
//  2. One HTTP attempt runs: build request, round trip, interpret the HTTP
//     status, decode the body, interpret the application-level status.
//  3. The attempt's failure, if any, is classified Transient or Permanent.
//     Transient failures are retried with exponential backoff; Permanent
//     failures and successes return immediately.
//
// Exhausting the backoff budget returns the last attempt's error unchanged —
// there is no separate "retries exhausted" error.
package api
