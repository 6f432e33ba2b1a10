package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// dotenvFiles is a seam for tests. Missing files are skipped.
var dotenvFiles = []string{".env"}

// Environment variables read by parseEnv.
const (
	envDBDriver       = "SCHEDULER_DB_DRIVER"
	envDatabaseDSN    = "SCHEDULER_DATABASE_DSN"
	envLogLevel       = "SCHEDULER_LOG_LEVEL"
	envLogFile        = "SCHEDULER_LOG_FILE"
	envMetricsAddr    = "SCHEDULER_METRICS_ADDR"
	envConnectTimeout = "SCHEDULER_CONNECT_TIMEOUT"
)

// parseEnv loads dotenvFiles into the process environment (never replacing
// variables that are already set) and overlays every SCHEDULER_* variable
// that is present. It panics on an unreadable .env file or a malformed
// timeout, like the other config stages.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(envDBDriver); ok {
		cfg.DBDriver = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(envMetricsAddr); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := os.LookupEnv(envConnectTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.ConnectTimeout = d
	}
}
