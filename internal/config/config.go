// Package config loads runtime settings for the CLI: defaults first, then a
// JSON file, then command-line flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings.
//
// Driver selects the slot-store backend: "sqlite" (default), "postgres",
// or "memory" (nothing survives exit). DSN is the database path or
// connection string, unused by the memory backend. SessionSecret signs the
// persisted session token; SessionTTL bounds how long a restored session
// stays valid.
type Config struct {
	Driver        string
	DSN           string
	SessionSecret string
	SessionTTL    time.Duration
}

// LoadDefaults populates c with a runnable local setup.
func (c *Config) LoadDefaults() {
	c.Driver = "sqlite"
	c.DSN = "hiresphere.db"
	c.SessionSecret = "hiresphere-dev-secret"
	c.SessionTTL = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
