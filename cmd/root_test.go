package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["tui"])
	assert.True(t, names["activate"])
}

func TestLoadConfigAppliesLocaleFlag(t *testing.T) {
	t.Setenv("IOAPP_LOCALE", "it")
	t.Cleanup(func() { locale = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "it", cfg.Locale)

	locale = "en"
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadConfigRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("IOAPP_API_BASE_URL", "not a url")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.4.0")
	assert.Equal(t, "1.4.0", rootCmd.Version)
}
