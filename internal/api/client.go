package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/langbly/langbly-go/internal/apierrors"
)

// Defaults applied when no overriding option is given.
const (
	DefaultBaseURL    = "https://api.langbly.com"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
)

// Client is the HTTP API client. It is safe for concurrent use; each
// call carries its own attempt counter and response state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      retryPolicy
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMaxRetries sets how many times a failed request is retried.
// Transport faults and retriable statuses share this budget.
func WithMaxRetries(maxRetries int) Option {
	return func(c *Client) {
		c.retry = newRetryPolicy(maxRetries)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets the logger used for request and retry events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit caps outgoing calls at rps requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry:  newRetryPolicy(DefaultMaxRetries),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c, nil
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// do executes one API call against the given route. Transport faults and
// the retriable statuses (429, 500, 502, 503, 504) are retried with
// backoff out of a single shared budget of maxRetries; any other
// non-success status fails immediately. On success the response body is
// decoded into result.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	// Template request, cloned per attempt with a fresh body reader.
	// The request ID stays stable across retries of the same call.
	template, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	template.Header.Set("Authorization", "Bearer "+c.apiKey)
	template.Header.Set("Content-Type", "application/json")
	template.Header.Set("Accept", "application/json")
	template.Header.Set("X-Request-ID", uuid.NewString())

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	c.logger.Debug().Str("method", method).Str("url", u).Msg("api request")

	maxRetries := c.retry.maxRetries
	for attempt := 0; attempt <= maxRetries; attempt++ {
		req := template.Clone(ctx)
		if payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
			req.ContentLength = int64(len(payload))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt < maxRetries {
				delay := c.retry.delay(attempt)
				c.logger.Warn().Err(err).Str("url", u).
					Int("attempt", attempt+1).Dur("delay", delay).
					Msg("transport failure, retrying")
				if werr := c.retry.wait(ctx, delay); werr != nil {
					return werr
				}
				continue
			}
			return transportError(err, u, maxRetries+1)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			defer resp.Body.Close()
			if result != nil {
				if derr := json.NewDecoder(resp.Body).Decode(result); derr != nil {
					return fmt.Errorf("decode response: %w", derr)
				}
			}
			return nil
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		retryAfter := resp.Header.Get("Retry-After")

		if !c.retry.retryable(resp.StatusCode) || attempt == maxRetries {
			return classify(resp.StatusCode, retryAfter, respBody)
		}

		delay, ok := c.retry.headerDelay(retryAfter)
		if !ok {
			delay = c.retry.delay(attempt)
		}
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", u).
			Int("attempt", attempt+1).Dur("delay", delay).
			Msg("retriable status, backing off")
		if werr := c.retry.wait(ctx, delay); werr != nil {
			return werr
		}
	}

	// Unreachable: every iteration either returns or has budget left.
	return &apierrors.APIError{Message: "request loop exited without a result"}
}

// transportError classifies a transport-level failure once the retry
// budget is spent.
func transportError(err error, url string, attempts int) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &apierrors.TimeoutError{URL: url, Attempts: attempts}
	}
	return &apierrors.ConnectionError{Err: err, URL: url, Attempts: attempts}
}

// classify converts a failing HTTP response into its terminal error.
func classify(statusCode int, retryAfter string, body []byte) error {
	message, code := parseErrorBody(statusCode, body)

	switch statusCode {
	case http.StatusUnauthorized:
		return &apierrors.AuthenticationError{Message: message}
	case http.StatusTooManyRequests:
		e := &apierrors.RateLimitError{Message: message}
		// The hint is surfaced uncapped; only sleeps are capped.
		if d, ok := parseRetryAfter(retryAfter); ok {
			e.RetryAfter = d
		}
		return e
	default:
		return &apierrors.APIError{StatusCode: statusCode, Code: code, Message: message}
	}
}

// parseErrorBody extracts the service message and error code from an
// error payload. A malformed body degrades to the raw text, or to the
// status reason phrase when the body is empty; it never fails.
func parseErrorBody(statusCode int, body []byte) (message, code string) {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return env.Error.Message, env.Error.Status
	}
	if len(body) > 0 {
		return string(body), ""
	}
	return http.StatusText(statusCode), ""
}
