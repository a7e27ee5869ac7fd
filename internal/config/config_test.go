package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/device-hub/internal/config"
)

func TestLoad_RequiresTokenSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "some-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 7, cfg.SessionTTLDays)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "some-secret")
	t.Setenv("PORT", "9999")
	t.Setenv("SESSION_TTL_DAYS", "14")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 14, cfg.SessionTTLDays)
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "some-secret")
	t.Setenv("SESSION_TTL_DAYS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
