package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBDriver:       "sqlite",
		DatabaseDSN:    "file:" + filepath.Join(dir, "scheduler.db") + "?_pragma=busy_timeout(5000)&_txlock=immediate",
		LogLevel:       "debug",
		LogFile:        filepath.Join(dir, "scheduler.log"),
		ConnectTimeout: 5 * time.Second,
	}
}

func TestApp_RunPersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	app, err := NewApp(ctx, cfg, strings.NewReader("create_patient alice pw1\nquit\n"), false)
	require.NoError(t, err)
	app.Run(ctx)

	app, err = NewApp(ctx, cfg, strings.NewReader("create_patient alice pw1\nquit\n"), false)
	require.NoError(t, err)
	app.Run(ctx)

	logData, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"msg":"account created"`)
	assert.Contains(t, string(logData), `"msg":"starting scheduler"`)
	assert.Contains(t, string(logData), `"msg":"command rejected"`)
}

func TestNewApp_CreatesLogDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "scheduler.log")

	app, err := NewApp(context.Background(), cfg, strings.NewReader("quit\n"), false)
	require.NoError(t, err)
	app.Run(context.Background())

	_, err = os.Stat(cfg.LogFile)
	require.NoError(t, err)
}

func TestNewApp_BadDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBDriver = "mysql"

	_, err := NewApp(context.Background(), cfg, strings.NewReader(""), false)
	require.Error(t, err)
}

func TestNewApp_BadLogFile(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg.LogFile = filepath.Join(blocker, "logs", "x.log")

	_, err := NewApp(context.Background(), cfg, strings.NewReader(""), false)
	require.Error(t, err)
}
