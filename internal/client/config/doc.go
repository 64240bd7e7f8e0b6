// Package config loads runtime configuration for the CarFlow CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. CARFLOW_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database
//	-t int      latency of account operations (milliseconds)
//	-g string   JSON file with the agency directory
//	-v string   log level (debug, info, warn, error)
//
// Environment
//
//	CARFLOW_DB_PATH, CARFLOW_LATENCY ("250ms" or bare milliseconds),
//	CARFLOW_AGENCIES_FILE, CARFLOW_LOG_LEVEL, CARFLOW_LOG_FORMAT
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the latency, so it can be either a
// string like "500ms" or integer nanoseconds. Missing keys keep the previous
// value:
//
//	{
//	  "database_path": "carflow.db",
//	  "latency": "500ms",
//	  "agencies_file": "agencies.json",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
