package langbly

import (
	"sync"

	"github.com/langbly/langbly-go/internal/api"
)

// Version is the SDK version.
const Version = "0.1.0"

// Client is the Langbly API client. It is safe for concurrent use;
// every call is an independent synchronous request with its own retry
// state.
type Client struct {
	apiClient *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new Langbly client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
		api.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(*cfg.logger))
	}
	if cfg.rateLimit > 0 {
		apiOpts = append(apiOpts, api.WithRateLimit(cfg.rateLimit))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close releases the transport's connections. The client is unusable
// afterwards; subsequent calls return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.Close()
	return nil
}
