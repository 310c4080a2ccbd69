package langbly

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/langbly/langbly-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// LangblyError is implemented by all SDK errors.
type LangblyError interface {
	error
	LangblyError() // marker method
}

// APIError represents a non-success response from the Langbly API that
// is neither an authentication nor a rate-limit failure. Code carries
// the service error code from the response body, empty when none was
// provided.
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

// LangblyError implements the LangblyError interface.
func (e *APIError) LangblyError() {}

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

// AuthenticationError represents a 401 response. It is never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return "authentication failed"
}

// StatusCode returns 401; authentication failures always carry it.
func (e *AuthenticationError) StatusCode() int { return http.StatusUnauthorized }

// Code returns "UNAUTHENTICATED", the fixed service code for 401.
func (e *AuthenticationError) Code() string { return "UNAUTHENTICATED" }

// LangblyError implements the LangblyError interface.
func (e *AuthenticationError) LangblyError() {}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// RateLimitError represents a 429 response that survived the retry
// budget. RetryAfter is the server's wait hint; zero when the
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

// StatusCode returns 429; rate-limit failures always carry it.
func (e *RateLimitError) StatusCode() int { return http.StatusTooManyRequests }

// Code returns "RATE_LIMITED", the fixed service code for 429.
func (e *RateLimitError) Code() string { return "RATE_LIMITED" }

// LangblyError implements the LangblyError interface.
func (e *RateLimitError) LangblyError() {}

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

// LangblyError implements the LangblyError interface.
func (e *TimeoutError) LangblyError() {}

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

// LangblyError implements the LangblyError interface.
func (e *ConnectionError) LangblyError() {}

// wrapError converts internal API errors to public errors. This ensures
// that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var authErr *apierrors.AuthenticationError
	if errors.As(err, &authErr) {
		return &AuthenticationError{Message: authErr.Message}
	}

	var rateErr *apierrors.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{
			Message:    rateErr.Message,
			RetryAfter: rateErr.RetryAfter,
		}
	}

	var timeoutErr *apierrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		return &TimeoutError{
			URL:      timeoutErr.URL,
			Attempts: timeoutErr.Attempts,
		}
	}

	var connErr *apierrors.ConnectionError
	if errors.As(err, &connErr) {
		return &ConnectionError{
			Err:      connErr.Err,
			URL:      connErr.URL,
			Attempts: connErr.Attempts,
		}
	}

	if errors.Is(err, apierrors.ErrMissingAPIKey) {
		return ErrMissingAPIKey
	}

	return err
}
