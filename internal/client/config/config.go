// Package config loads runtime settings for the artshop CLI.
package config

import "time"

// Config holds runtime settings for the artshop CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the local SQLite file holding the saved session.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDBPath  string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:9000/api"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "artshop.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if given), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
