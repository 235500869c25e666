package mailsniper

import "log/slog"

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.mailsniperapp.com"

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL string
	logger  *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. A trailing slash is removed.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithLogger sets a logger that receives one debug record per request.
// The API key is never logged. By default the client is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
