// Package apierrors provides shared error types for the Langbly client.
//
// Every failed API call terminates in exactly one of the types below:
// TimeoutError and ConnectionError for transport-level faults, and
// AuthenticationError, RateLimitError or APIError for HTTP responses.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a non-success HTTP response from the Langbly API
// that is neither an authentication nor a rate-limit failure. Code is
// the service error code from the response body, empty when the body
// carried none.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("API error %d", e.StatusCode)
	}
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// AuthenticationError represents a 401 response. The status is always
// 401 and the service code is always "UNAUTHENTICATED"; authentication
// failures are never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return "authentication failed"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// RateLimitError represents a 429 response that survived the retry
// budget. RetryAfter is the server-provided wait hint; zero when the
// Retry-After header was absent or unparseable.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	msg := "rate limit exceeded"
	if e.Message != "" {
		msg = fmt.Sprintf("rate limit exceeded: %s", e.Message)
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s)", msg, e.RetryAfter)
	}
	return msg
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// TimeoutError represents a request that timed out on every attempt.
type TimeoutError struct {
	URL      string
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %d attempts", e.URL, e.Attempts)
}

// ConnectionError represents a connection-level failure that persisted
// across every attempt.
type ConnectionError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}
