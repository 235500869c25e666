package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint paths.
const (
	verifyEmailPath = "/v1/verify/email/"
	usagePath       = "/v1/usage"
)

// VerifyEmailPath returns the request path for verifying email.
func VerifyEmailPath(email string) string {
	return verifyEmailPath + EscapeSegment(email)
}

// EscapeSegment percent-encodes every byte outside the RFC 3986 unreserved
// set. Unlike url.PathEscape it also encodes "@", "+" and the other
// sub-delimiters, so "test@example.com" becomes "test%40example.com".
func EscapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// VerifyEmail requests verification of a single address.
func (c *Client) VerifyEmail(ctx context.Context, email string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, VerifyEmailPath(email))
}

// GetUsage retrieves account usage for the API key.
func (c *Client) GetUsage(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, usagePath)
}
