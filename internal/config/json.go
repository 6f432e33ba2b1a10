package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vaxscheduler/internal/flagx"
	"github.com/dmitrijs2005/vaxscheduler/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling the config file. Interval
// fields use timex.Duration so they can be written as "5s".
type JsonConfig struct {
	DBDriver       string         `json:"db_driver"`
	DatabaseDSN    string         `json:"database_dsn"`
	LogLevel       string         `json:"log_level"`
	LogFile        string         `json:"log_file"`
	MetricsAddr    string         `json:"metrics_addr"`
	ConnectTimeout timex.Duration `json:"connect_timeout"`
}

// parseJson overlays cfg with the file named by -c / -config, if any.
// Only keys present with a non-zero value replace earlier settings.
// It panics if the file cannot be read or is not valid JSON.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.DBDriver, jc.DBDriver)
	setIfNotEmpty(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFile, jc.LogFile)
	setIfNotEmpty(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.ConnectTimeout.Duration > 0 {
		cfg.ConnectTimeout = jc.ConnectTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
