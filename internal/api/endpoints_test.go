package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEndpoints_Requests(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*Client) (*Response, error)
		wantPath string
	}{
		{
			name:     "VerifyEmail",
			call:     func(c *Client) (*Response, error) { return c.VerifyEmail(context.Background(), "test@example.com") },
			wantPath: "/v1/verify/email/test%40example.com",
		},
		{
			name:     "VerifyEmail plus address",
			call:     func(c *Client) (*Response, error) { return c.VerifyEmail(context.Background(), "a+b@example.com") },
			wantPath: "/v1/verify/email/a%2Bb%40example.com",
		},
		{
			name:     "VerifyEmail empty",
			call:     func(c *Client) (*Response, error) { return c.VerifyEmail(context.Background(), "") },
			wantPath: "/v1/verify/email/",
		},
		{
			name:     "GetUsage",
			call:     func(c *Client) (*Response, error) { return c.GetUsage(context.Background()) },
			wantPath: "/v1/usage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method, rawPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method = r.Method
				rawPath = r.URL.EscapedPath()
				w.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()

			resp, err := tt.call(newTestClient(t, server.URL+"/"))
			if err != nil {
				t.Fatalf("%s() error = %v", tt.name, err)
			}
			if method != http.MethodGet {
				t.Errorf("method = %s, want GET", method)
			}
			if rawPath != tt.wantPath {
				t.Errorf("path = %s, want %s", rawPath, tt.wantPath)
			}
			if resp.Body["ok"] != true {
				t.Errorf("body = %v", resp.Body)
			}
		})
	}
}

func TestVerifyEmailPath(t *testing.T) {
	if got := VerifyEmailPath("test@example.com"); got != "/v1/verify/email/test%40example.com" {
		t.Errorf("VerifyEmailPath() = %s", got)
	}
}

func TestEscapeSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test@example.com", "test%40example.com"},
		{"user+tag@example.com", "user%2Btag%40example.com"},
		{"a b@example.com", "a%20b%40example.com"},
		{"a/b@example.com", "a%2Fb%40example.com"},
		{"~user_name-1.x", "~user_name-1.x"},
		{"ü@example.com", "%C3%BC%40example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeSegment(tt.in); got != tt.want {
				t.Errorf("EscapeSegment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
