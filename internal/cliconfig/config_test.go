package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	mailsniper "github.com/mailsniper/client-go"
)

const testKey = "ms_12345678_abcdef1234567890abcdef1234567890"

var envKeys = []string{
	"MAILSNIPER_API_KEY",
	"MAILSNIPER_BASE_URL",
	"MAILSNIPER_TIMEOUT",
	"MAILSNIPER_CONCURRENCY",
	"MAILSNIPER_LOG_LEVEL",
}

// clearEnv unsets every MAILSNIPER_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BaseURL != mailsniper.DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.BaseURL, mailsniper.DefaultBaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "mailsniper.yaml", `
api_key: `+testKey+`
base_url: https://staging.example.com
timeout: 5s
concurrency: 8
log_level: debug
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		APIKey:      testKey,
		BaseURL:     "https://staging.example.com",
		Timeout:     5 * time.Second,
		Concurrency: 8,
		LogLevel:    "debug",
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "bad.yaml", "concurrency: [not an int")

	if _, err := Load(path, ""); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "mailsniper.yaml", "base_url: https://file.example.com\nconcurrency: 2\n")
	t.Setenv("MAILSNIPER_BASE_URL", "https://env.example.com")
	t.Setenv("MAILSNIPER_TIMEOUT", "1m")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %s, want env value", cfg.BaseURL)
	}
	if cfg.Concurrency != 2 {
		t.Errorf("Concurrency = %d, want file value 2", cfg.Concurrency)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m", cfg.Timeout)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "MAILSNIPER_API_KEY="+testKey+"\nMAILSNIPER_CONCURRENCY=3\n")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != testKey {
		t.Errorf("APIKey = %s, want %s", cfg.APIKey, testKey)
	}
	if cfg.Concurrency != 3 {
		t.Errorf("Concurrency = %d, want 3", cfg.Concurrency)
	}
}

func TestLoad_EnvironmentOverridesDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "MAILSNIPER_LOG_LEVEL=debug\n")
	t.Setenv("MAILSNIPER_LOG_LEVEL", "warn")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
}

func TestLoad_InvalidEnvironmentValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAILSNIPER_CONCURRENCY", "many")

	if _, err := Load("", ""); err == nil {
		t.Error("Load() should fail on a non-integer concurrency")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.APIKey = testKey
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing key", func(c *Config) { c.APIKey = "" }, true},
		{"malformed key", func(c *Config) { c.APIKey = "ms_bad" }, true},
		{"empty base URL", func(c *Config) { c.BaseURL = "" }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MalformedKeyIsConfigurationError(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "not-a-key"

	err := cfg.Validate()
	if !errors.Is(err, mailsniper.ErrInvalidAPIKey) {
		t.Errorf("Validate() error = %v, want ErrInvalidAPIKey", err)
	}
}
