package langbly

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL    = "https://api.langbly.com"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
)

// Format specifies how translation input is interpreted.
type Format string

const (
	// FormatText treats input as plain text.
	FormatText Format = "text"
	// FormatHTML treats input as HTML, preserving markup.
	FormatHTML Format = "html"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	rateLimit  float64
	logger     *zerolog.Logger
}

// translateConfig holds configuration for a translate call.
type translateConfig struct {
	source string
	format Format
}

// languagesConfig holds configuration for a languages call.
type languagesConfig struct {
	target string
}

// Option configures the client.
type Option func(*clientConfig)

// TranslateOption configures a translate call.
type TranslateOption func(*translateConfig)

// LanguagesOption configures a languages call.
type LanguagesOption func(*languagesConfig)

// WithBaseURL overrides the API base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets how many times a failed request is retried.
// Transport faults and the statuses 429, 500, 502, 503 and 504 share
// this budget; zero disables retries. Default: 2.
func WithMaxRetries(maxRetries int) Option {
	return func(c *clientConfig) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
	}
}

// WithLogger sets the logger used for request and retry events.
// Logging is disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithRateLimit caps outgoing calls at rps requests per second across
// all goroutines sharing the client. Unlimited by default.
func WithRateLimit(rps float64) Option {
	return func(c *clientConfig) {
		c.rateLimit = rps
	}
}

// WithSource sets the source language code. The service auto-detects
// the source language when omitted.
func WithSource(code string) TranslateOption {
	return func(c *translateConfig) {
		c.source = code
	}
}

// WithFormat sets the input format. Default: FormatText.
func WithFormat(format Format) TranslateOption {
	return func(c *translateConfig) {
		c.format = format
	}
}

// WithTarget localizes language names into the given language.
func WithTarget(code string) LanguagesOption {
	return func(c *languagesConfig) {
		c.target = code
	}
}
