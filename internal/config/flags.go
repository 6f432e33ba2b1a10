package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   database driver: sqlite or pgx
//	-d string   database DSN
//	-v string   log level
//	-l string   log file (empty for stderr)
//	-m string   metrics listen address (empty to disable)
//	-t int      connect timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs first so -c / -config do not
// trip the parser. It panics on a malformed value.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-v", "-l", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBDriver, "b", cfg.DBDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file, stderr if empty")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address to expose /metrics on, disabled if empty")
	timeout := fs.Int("t", int(cfg.ConnectTimeout.Seconds()), "connect timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// an unset -t keeps sub-second timeouts from earlier stages intact
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.ConnectTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
