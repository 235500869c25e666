// Package cliconfig loads configuration for the mailsniper command.
//
// Values are layered, later sources winning: built-in defaults, a YAML
// file, a .env file, then MAILSNIPER_* environment variables. Command-line
// flags are applied on top by the caller.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	mailsniper "github.com/mailsniper/client-go"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "MAILSNIPER"

// Config holds the settings of the mailsniper command.
type Config struct {
	APIKey      string        `yaml:"api_key" envconfig:"API_KEY"`
	BaseURL     string        `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	Concurrency int           `yaml:"concurrency" envconfig:"CONCURRENCY"`
	LogLevel    string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:     mailsniper.DefaultBaseURL,
		Timeout:     30 * time.Second,
		Concurrency: 4,
		LogLevel:    "info",
	}
}

// Load builds a Config from defaults, the YAML file at path, the dotenv
// file at envFile and the environment. Missing files are skipped; an
// empty path skips that source.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			// Variables already set in the environment take precedence.
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks that required fields are set and valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New(EnvPrefix + "_API_KEY is required")
	}
	if err := mailsniper.ValidateAPIKey(c.APIKey); err != nil {
		return err
	}
	if c.BaseURL == "" {
		return errors.New("base URL must not be empty")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}
