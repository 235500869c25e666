package mailsniper

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/mailsniper/client-go/internal/api"
)

// Version is the SDK version, reported in the User-Agent header.
const Version = api.Version

// HTTPDoer sends HTTP requests on behalf of the client. *http.Client
// satisfies it; timeouts, TLS, redirects and pooling are its concern.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the MailSniper API client. The API key and base URL are fixed
// at construction, so a Client is safe for concurrent use whenever its
// HTTPDoer is.
type Client struct {
	apiClient *api.Client
}

// New creates a client for apiKey that sends requests through transport.
//
// The key format is checked locally; a malformed key or a nil transport,
// including a typed nil such as (*http.Client)(nil), yields a
// *ConfigurationError before any request is made.
func New(apiKey string, transport HTTPDoer, opts ...Option) (*Client, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}
	if isNilDoer(transport) {
		return nil, &ConfigurationError{Message: "an HTTP client is required", Err: ErrMissingTransport}
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if strings.TrimSuffix(cfg.baseURL, "/") == "" {
		return nil, &ConfigurationError{Message: "a base URL is required", Err: ErrMissingBaseURL}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		HTTPClient: transport,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, &ConfigurationError{Message: err.Error()} //coverage:ignore
	}

	return &Client{apiClient: apiClient}, nil
}

func isNilDoer(d HTTPDoer) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// VerifyEmail verifies a single email address. The address is sent
// percent-encoded in the request path, so any string is accepted.
//
// Quota is populated on the result when the server reports it in the
// response headers.
func (c *Client) VerifyEmail(ctx context.Context, email string) (*EmailVerificationResult, error) {
	resp, err := c.apiClient.VerifyEmail(ctx, email)
	if err != nil {
		return nil, wrapError(err)
	}

	result := EmailVerificationResultFromMap(resp.Body, resp.Headers)
	return &result, nil
}

// GetUsage returns the account usage for the API key.
func (c *Client) GetUsage(ctx context.Context) (*UsageInfo, error) {
	resp, err := c.apiClient.GetUsage(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	usage := UsageInfoFromMap(resp.Body)
	return &usage, nil
}

// APIKey returns the API key the client was created with.
func (c *Client) APIKey() string {
	return c.apiClient.APIKey()
}

// BaseURL returns the API base URL, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
