//go:build integration

package integration

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	mailsniper "github.com/mailsniper/client-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("MAILSNIPER_API_KEY")
	baseURL = os.Getenv("MAILSNIPER_BASE_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: MAILSNIPER_API_KEY not set\n")
		os.Exit(0)
	}
	if baseURL == "" {
		baseURL = mailsniper.DefaultBaseURL
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T, key string) *mailsniper.Client {
	t.Helper()

	client, err := mailsniper.New(key, &http.Client{Timeout: 30 * time.Second},
		mailsniper.WithBaseURL(baseURL),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestIntegration_VerifyEmail(t *testing.T) {
	client := newClient(t, apiKey)
	ctx := context.Background()

	result, err := client.VerifyEmail(ctx, "support@gmail.com")
	if err != nil {
		t.Fatalf("VerifyEmail() error = %v", err)
	}

	t.Logf("Result: valid=%t disposable=%t risk=%d mx=%v",
		result.IsValid, result.IsDisposable, result.Risk, result.DNS.MXServers)

	if result.Domain != "gmail.com" {
		t.Errorf("Domain = %q, want gmail.com", result.Domain)
	}
	if !result.IsPublicProvider {
		t.Error("gmail.com should be reported as a public provider")
	}
	if result.Risk < 0 || result.Risk > 100 {
		t.Errorf("Risk = %d, want 0-100", result.Risk)
	}
	if q := result.Quota; q != nil {
		t.Logf("Quota: %d/%d (%.2f%%)", q.Used, q.Total, q.PercentageUsed())
		if q.Total < q.Used {
			t.Errorf("quota used %d exceeds total %d", q.Used, q.Total)
		}
	}
}

func TestIntegration_GetUsage(t *testing.T) {
	client := newClient(t, apiKey)

	usage, err := client.GetUsage(context.Background())
	if err != nil {
		t.Fatalf("GetUsage() error = %v", err)
	}

	t.Logf("Usage: %d/%d remaining=%d", usage.Used, usage.Total, usage.Remaining)

	if usage.Total < 0 || usage.Used < 0 {
		t.Errorf("usage = %+v, want non-negative counters", usage)
	}
	if usage.PercentageUsed < 0 || usage.PercentageUsed > 100 {
		t.Errorf("PercentageUsed = %.2f, want 0-100", usage.PercentageUsed)
	}
}

func TestIntegration_RejectedKey(t *testing.T) {
	client := newClient(t, "ms_00000000_00000000000000000000000000000000")

	_, err := client.GetUsage(context.Background())
	if !errors.Is(err, mailsniper.ErrUnauthorized) {
		t.Fatalf("GetUsage() error = %v, want ErrUnauthorized", err)
	}

	var apiErr *mailsniper.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
}
