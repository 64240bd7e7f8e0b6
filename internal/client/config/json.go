package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/carflow/internal/flagx"
	"github.com/dmitrijs2005/carflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell a missing key apart from a zero value.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	Latency      *timex.Duration `json:"latency"`
	AgenciesFile *string         `json:"agencies_file"`
	LogLevel     *string         `json:"log_level"`
	LogFormat    *string         `json:"log_format"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Without the flag nothing is loaded. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.AgenciesFile, jc.AgenciesFile)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	if jc.Latency != nil {
		cfg.Latency = jc.Latency.Duration
	}
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
