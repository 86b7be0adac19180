// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseBool accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive); anything else reports no value.
func parseBool(val string) (bool, bool) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the DECCALC_ prefix) to the CLI flag it
// corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"SCALE", "scale", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ResultScale = parsed
		}
	}},
	{"WORKERS", "workers", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"PARALLEL_THRESHOLD", "parallel-threshold", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ParallelThreshold = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"METRICS_ADDR", "metrics-addr", func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},

	// Boolean overrides
	{"VERBOSE", "v", func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.Verbose = parsed
		}
	}},
	{"QUIET", "q", func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.Quiet = parsed
		}
	}},
	{"LIGHT", "light", func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.LightTheme = parsed
		}
	}},
}

// applyEnvOverrides applies every environment override whose flag was not
// explicitly set on the command line. Command-line flags always win.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
