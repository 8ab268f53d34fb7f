// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as uint64, or the default value if not set
// or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 is getEnvInt for int64 values.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as time.Duration, or the default value if not
// set or invalid. Accepts formats like "5m", "30s", "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override: the env key
// (without the LIMBCALC_ prefix), the flag name(s) that shadow it, and the
// function that applies it.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(c *AppConfig, key string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"BASE", []string{"base"}, func(c *AppConfig, k string) { c.Base = getEnvInt(k, c.Base) }},
	{"SAMPLES", []string{"samples"}, func(c *AppConfig, k string) { c.Samples = getEnvInt(k, c.Samples) }},
	{"MAX_BITS", []string{"max-bits"}, func(c *AppConfig, k string) { c.MaxBits = getEnvUint64(k, c.MaxBits) }},
	{"WORKERS", []string{"workers"}, func(c *AppConfig, k string) { c.Workers = getEnvInt(k, c.Workers) }},
	{"SEED", []string{"seed"}, func(c *AppConfig, k string) { c.Seed = getEnvInt64(k, c.Seed) }},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, k string) { c.Timeout = getEnvDuration(k, c.Timeout) }},

	// String overrides
	{"ROUNDING", []string{"rounding", "r"}, func(c *AppConfig, k string) { c.Rounding = getEnvString(k, c.Rounding) }},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, k string) { c.MetricsAddr = getEnvString(k, c.MetricsAddr) }},
	{"OUTPUT", []string{"o", "output"}, func(c *AppConfig, k string) { c.Output = getEnvString(k, c.Output) }},

	// Boolean overrides
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, k string) { c.Verbose = getEnvBool(k, c.Verbose) }},
	{"QUIET", []string{"q", "quiet"}, func(c *AppConfig, k string) { c.Quiet = getEnvBool(k, c.Quiet) }},
	{"JSON", []string{"json"}, func(c *AppConfig, k string) { c.JSON = getEnvBool(k, c.JSON) }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, k string) { c.NoColor = getEnvBool(k, c.NoColor) }},
	{"TUI", []string{"tui"}, func(c *AppConfig, k string) { c.TUI = getEnvBool(k, c.TUI) }},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with LIMBCALC_):
//   - BASE, SAMPLES, MAX_BITS, WORKERS, SEED, TIMEOUT, ROUNDING,
//     METRICS_ADDR, OUTPUT, VERBOSE, QUIET, JSON, NO_COLOR, TUI
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		o.apply(config, o.envKey)
	}
}
