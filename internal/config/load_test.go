package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate the process environment via t.Setenv and therefore
// must not run in parallel.

func TestLoad(t *testing.T) {
	t.Run("defaults apply with only a database URL set", func(t *testing.T) {
		t.Setenv("MEMOPAD_DATABASE_URL", "postgres://localhost:5432/memopad")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, "postgres://localhost:5432/memopad", cfg.Database.URL)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("MEMOPAD_DATABASE_URL", "postgres://localhost:5432/memopad")
		t.Setenv("MEMOPAD_SERVER_PORT", "9090")
		t.Setenv("MEMOPAD_SERVER_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
	})

	t.Run("missing database URL fails validation", func(t *testing.T) {
		t.Setenv("MEMOPAD_DATABASE_URL", "")

		cfg, err := Load()
		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("unknown log level fails validation", func(t *testing.T) {
		t.Setenv("MEMOPAD_DATABASE_URL", "postgres://localhost:5432/memopad")
		t.Setenv("MEMOPAD_SERVER_LOG_LEVEL", "verbose")

		cfg, err := Load()
		assert.Nil(t, cfg)
		require.Error(t, err)
	})
}
