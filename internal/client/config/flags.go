package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/carflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database path
//	-t int      latency in milliseconds
//	-g string   agency directory file
//	-v string   log level
//
// os.Args is filtered with flagx.FilterArgs first so that -c/-config and
// unknown flags do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-g", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database")
	latency := fs.Int64("t", cfg.Latency.Milliseconds(), "latency of account operations (in milliseconds)")
	fs.StringVar(&cfg.AgenciesFile, "g", cfg.AgenciesFile, "JSON file with the agency directory")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.Latency = time.Duration(*latency) * time.Millisecond
		}
	})
}
