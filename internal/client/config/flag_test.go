package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-d", "/tmp/c.db", "-t", "0", "-g", "ag.json", "-v", "debug"},
			expected: &Config{DatabasePath: "/tmp/c.db", Latency: 0, AgenciesFile: "ag.json", LogLevel: "debug"}},
		{name: "equals form and foreign flags", args: []string{"cmd", "-c", "x.json", "-t=250", "-z", "1"},
			expected: &Config{Latency: 250 * time.Millisecond}},
		{name: "no flags keep values", args: []string{"cmd"},
			expected: &Config{}},
		{name: "incorrect latency", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_LatencyKeptWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-d", "x.db"}
	config := &Config{Latency: 1500 * time.Microsecond}
	parseFlags(config)
	assert.Equal(t, 1500*time.Microsecond, config.Latency)

	os.Args = []string{"cmd", "-t", "2"}
	parseFlags(config)
	assert.Equal(t, 2*time.Millisecond, config.Latency)
}
