package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the environment DTO. Empty values leave Config unchanged.
type envConfig struct {
	DatabasePath string `env:"CARFLOW_DB_PATH"`
	Latency      string `env:"CARFLOW_LATENCY"`
	AgenciesFile string `env:"CARFLOW_AGENCIES_FILE"`
	LogLevel     string `env:"CARFLOW_LOG_LEVEL"`
	LogFormat    string `env:"CARFLOW_LOG_FORMAT"`
}

// parseEnv overlays Config with CARFLOW_* variables. Panics on malformed
// values.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(fmt.Errorf("read env: %w", err))
	}

	setIfNotEmpty(&cfg.DatabasePath, ec.DatabasePath)
	setIfNotEmpty(&cfg.AgenciesFile, ec.AgenciesFile)
	setIfNotEmpty(&cfg.LogLevel, ec.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, ec.LogFormat)

	if strings.TrimSpace(ec.Latency) != "" {
		d, err := parseMillis(ec.Latency)
		if err != nil {
			panic(fmt.Errorf("CARFLOW_LATENCY: %w", err))
		}
		cfg.Latency = d
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseMillis accepts "250ms", "1s" or a bare number of milliseconds.
func parseMillis(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("latency must be like 250ms, 1s or a number of milliseconds: %w", err)
	}
	return d, nil
}
