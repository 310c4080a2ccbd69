package api

import (
	"context"
	"math"
	"strconv"
	"time"
)

// Backoff characteristics of the Langbly API. Computed backoff starts at
// half a second and doubles per attempt up to 10s; a server-provided
// Retry-After hint is honored up to 30s. The caps intentionally differ.
const (
	backoffBase   = 500 * time.Millisecond
	backoffCap    = 10 * time.Second
	retryAfterCap = 30 * time.Second
)

// retryPolicy decides which responses are eligible for retry and how
// long to wait between attempts.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
	cap        time.Duration
	headerCap  time.Duration
}

func newRetryPolicy(maxRetries int) retryPolicy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return retryPolicy{
		maxRetries: maxRetries,
		base:       backoffBase,
		cap:        backoffCap,
		headerCap:  retryAfterCap,
	}
}

// retryable reports whether a status code is eligible for automatic
// retry. Everything outside this set fails immediately, including 401
// and the other 4xx codes.
func (p retryPolicy) retryable(statusCode int) bool {
	switch statusCode {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// delay computes the exponential backoff for the given attempt index.
func (p retryPolicy) delay(attempt int) time.Duration {
	d := float64(p.base) * math.Pow(2, float64(attempt))
	if d > float64(p.cap) {
		return p.cap
	}
	return time.Duration(d)
}

// headerDelay converts a Retry-After header into a wait duration, capped
// at headerCap. The second return is false when the header is absent or
// not a float, in which case the caller falls back to delay().
func (p retryPolicy) headerDelay(retryAfter string) (time.Duration, bool) {
	d, ok := parseRetryAfter(retryAfter)
	if !ok {
		return 0, false
	}
	if d > p.headerCap {
		d = p.headerCap
	}
	return d, true
}

// wait blocks for d or until ctx is done, whichever comes first.
func (p retryPolicy) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter parses a Retry-After header value as float seconds.
func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
