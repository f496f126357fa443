package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STONKS_LOG_LEVEL", "STONKS_LOG_FORMAT", "STONKS_DB_PATH", "STONKS_ADDR", "STONKS_SEASON"} {
		// Setenv registers the restore; unset so defaults apply
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "stonks.db", cfg.DBPath)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "dawn", cfg.Season)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		clearEnvVars(t)
		t.Setenv("STONKS_LOG_LEVEL", "debug")
		t.Setenv("STONKS_LOG_FORMAT", "json")
		t.Setenv("STONKS_DB_PATH", "/tmp/x.db")
		t.Setenv("STONKS_ADDR", ":9000")
		t.Setenv("STONKS_SEASON", "dawn-2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "/tmp/x.db", cfg.DBPath)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "dawn-2", cfg.Season)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Chdir(t.TempDir())
		clearEnvVars(t)
		t.Setenv("STONKS_LOG_FORMAT", "xml")

		_, err := Load()
		assert.Error(t, err)
	})
}
