package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("IOAPP_API_BASE_URL", "https://api.example.org/v2")
	t.Setenv("IOAPP_API_TOKEN", "secret")
	t.Setenv("IOAPP_POLL_INTERVAL", "250ms")
	t.Setenv("IOAPP_POLL_TIMEOUT", "3s")
	t.Setenv("IOAPP_LOCALE", "en")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org/v2", cfg.API.BaseURL)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 250*time.Millisecond, cfg.Polling.Interval)
	assert.Equal(t, 3*time.Second, cfg.Polling.Timeout)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("IOAPP_API_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Polling.Timeout = 10 * time.Millisecond
	assert.ErrorContains(t, cfg.Validate(), "IOAPP_POLL_TIMEOUT")

	cfg = Default()
	cfg.API.RetryCount = -1
	assert.Error(t, cfg.Validate())
}
