package config

import "time"

// Config holds runtime settings for the CarFlow CLI.
//
// Fields:
//   - DatabasePath: SQLite file that backs local storage.
//   - Latency: artificial delay of account operations.
//   - AgenciesFile: optional JSON agency directory; empty uses the built-in list.
//   - LogLevel, LogFormat: diagnostics verbosity and "text" or "json" output.
type Config struct {
	DatabasePath string
	Latency      time.Duration
	AgenciesFile string
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "carflow.db"
	c.Latency = 500 * time.Millisecond
	c.AgenciesFile = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
