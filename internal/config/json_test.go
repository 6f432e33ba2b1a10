package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"db_driver":       "pgx",
		"database_dsn":    "postgres://db/scheduler",
		"log_level":       "debug",
		"log_file":        "scheduler.log",
		"metrics_addr":    ":9102",
		"connect_timeout": "10s",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"log_level": "warn",
	})

	t.Run("loads all fields", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			DBDriver:       "pgx",
			DatabaseDSN:    "postgres://db/scheduler",
			LogLevel:       "debug",
			LogFile:        "scheduler.log",
			MetricsAddr:    ":9102",
			ConnectTimeout: 10 * time.Second,
		}, cfg)
	})

	t.Run("absent keys keep earlier values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, DefaultSQLiteDSN, cfg.DatabaseDSN)
		assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabaseDSN: "keep"}
		parseJson(cfg)
		assert.Equal(t, "keep", cfg.DatabaseDSN)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
