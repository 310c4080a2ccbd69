// Package api provides HTTP client functionality for communicating with
// the Langbly API. It handles authentication, request/response
// serialization, and automatic retry with backoff for transient failures.
//
// # Retry Behavior
//
// Each call runs an attempt loop with a single retry budget shared by
// transport faults and retriable HTTP statuses. By default a failed
// request is retried twice (3 attempts total) for:
//
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// All other non-success statuses fail immediately, including 401. The
// computed delay starts at 500ms and doubles per attempt, capped at 10s.
// When the server sends a Retry-After header that parses as float
// seconds, that value is used instead, capped at 30s; an unparseable
// header silently falls back to the computed delay.
//
// # Error Handling
//
// Failed calls terminate in exactly one typed error from the
// internal/apierrors package: TimeoutError or ConnectionError for
// transport faults (their messages include the total attempt count),
// AuthenticationError for 401, RateLimitError for 429 (carrying the
// server's Retry-After hint when present), and APIError for everything
// else. Error response bodies are parsed best-effort; a malformed
// payload degrades to the raw text and never fails the classification.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Attempt counters and
// backoff state are local to each call; the only shared piece is the
// optional rate limiter, which is itself concurrency-safe.
package api
