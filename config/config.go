package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment prefix of every setting, e.g. IOAPP_API_BASE_URL.
const Prefix = "IOAPP"

// Config holds all application configuration.
type Config struct {
	API     APIConfig     `envconfig:"API"`
	Polling PollingConfig `envconfig:"POLL"`
	Locale  string        `envconfig:"LOCALE" default:"it"`
}

// APIConfig holds the bonus backend settings.
type APIConfig struct {
	BaseURL    string        `envconfig:"BASE_URL" default:"http://localhost:3000/api/v1"`
	Token      string        `envconfig:"TOKEN"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RetryCount int           `envconfig:"RETRY_COUNT" default:"2"`
}

// PollingConfig controls how long an accepted activation is polled.
type PollingConfig struct {
	Interval time.Duration `envconfig:"INTERVAL" default:"1s"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"9s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "http://localhost:3000/api/v1",
			Timeout:    10 * time.Second,
			RetryCount: 2,
		},
		Polling: PollingConfig{
			Interval: time.Second,
			Timeout:  9 * time.Second,
		},
		Locale: "it",
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s_API_BASE_URL must be an absolute URL, got %q", Prefix, c.API.BaseURL)
	}
	if c.API.RetryCount < 0 {
		return errors.New("IOAPP_API_RETRY_COUNT must not be negative")
	}
	if c.Polling.Interval <= 0 {
		return errors.New("IOAPP_POLL_INTERVAL must be positive")
	}
	if c.Polling.Timeout < c.Polling.Interval {
		return fmt.Errorf("IOAPP_POLL_TIMEOUT (%s) must be at least IOAPP_POLL_INTERVAL (%s)", c.Polling.Timeout, c.Polling.Interval)
	}
	return nil
}
