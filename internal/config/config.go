// Package config handles configuration for the scheduler CLI: defaults,
// .env and environment overlay, JSON overlay and command-line flags.
package config

import "time"

// DefaultSQLiteDSN points at a scheduler.db file in the working directory.
// BEGIN IMMEDIATE and the busy timeout make writers from several processes
// queue up on the file lock instead of failing at once.
const DefaultSQLiteDSN = "file:scheduler.db?_pragma=busy_timeout(5000)&_txlock=immediate"

// Config holds runtime settings for the scheduler.
//
// Fields:
//   - DBDriver: database/sql driver name, "sqlite" or "pgx".
//   - DatabaseDSN: data source name for DBDriver.
//   - LogLevel: debug, info, warn or error.
//   - LogFile: diagnostic log destination; empty means stderr.
//   - MetricsAddr: listen address for /metrics; empty disables it.
//   - ConnectTimeout: how long to wait for the store at startup.
type Config struct {
	DBDriver       string
	DatabaseDSN    string
	LogLevel       string
	LogFile        string
	MetricsAddr    string
	ConnectTimeout time.Duration
}

// LoadDefaults populates c with a local SQLite setup.
func (c *Config) LoadDefaults() {
	c.DBDriver = "sqlite"
	c.DatabaseDSN = DefaultSQLiteDSN
	c.LogLevel = "info"
	c.LogFile = ""
	c.MetricsAddr = ""
	c.ConnectTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from .env and SCHEDULER_* variables, an optional JSON file and finally
// command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
