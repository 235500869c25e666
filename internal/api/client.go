package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

// UserAgent is sent with every request.
const UserAgent = "MailSniper-Go-SDK/" + Version

// Doer sends an HTTP request and returns its response.
// *http.Client satisfies this interface.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the configuration for creating a new Client.
type Config struct {
	// BaseURL is the API endpoint. A single trailing slash is removed.
	BaseURL string
	// APIKey is sent as a bearer token on every request.
	APIKey string
	// HTTPClient performs the requests. Required.
	HTTPClient Doer
	// Logger receives debug records for each request. Optional.
	Logger *slog.Logger
}

// Client is the HTTP API client. It holds no mutable state and is safe for
// concurrent use when its Doer is.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient Doer
	logger     *slog.Logger
}

// Response is a decoded 2xx response.
type Response struct {
	StatusCode int
	// Body is the top-level JSON object. Numbers are json.Number values.
	Body map[string]any
	// Headers maps lower-cased header names to their first value.
	Headers map[string]string
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the base URL with any trailing slash removed.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKey returns the API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Do performs a request without a body against path and decodes the
// response. Non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string) (*Response, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to create request: %w", err), URL: url}
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "mailsniper request failed",
			"method", method, "path", path, "error", err)
		return nil, &NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "mailsniper request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return c.handleResponse(resp, url)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
}

func (c *Client) handleResponse(resp *http.Response, url string) (*Response, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err), URL: url}
	}

	headers := NormalizeHeaders(resp.Header)

	body, err := decodeBody(data)
	if err != nil {
		return nil, &ProtocolError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{
			StatusCode: resp.StatusCode,
			Body:       body,
			Headers:    headers,
		}, nil
	}

	return nil, BuildError(resp.StatusCode, body)
}

// decodeBody parses data as a single JSON object, keeping numbers as
// json.Number so integers survive without float rounding.
func decodeBody(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty body")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	body, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected JSON object, got %s", jsonKind(v))
	}
	return body, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// NormalizeHeaders lower-cases header names and keeps only the first value
// of each. Names that collide after lower-casing keep the value of the name
// that sorts first.
func NormalizeHeaders(h http.Header) map[string]string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	normalized := make(map[string]string, len(h))
	for _, name := range names {
		values := h[name]
		if len(values) == 0 {
			continue
		}
		key := strings.ToLower(name)
		if _, seen := normalized[key]; seen {
			continue
		}
		normalized[key] = values[0]
	}
	return normalized
}
