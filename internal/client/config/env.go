package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with environment tags. Unset variables leave the
// current values untouched.
type envConfig struct {
	APIBaseURL     string        `env:"ARTSHOP_API_URL"`
	RequestTimeout time.Duration `env:"ARTSHOP_REQUEST_TIMEOUT"`
	SessionDBPath  string        `env:"ARTSHOP_SESSION_DB"`
	LogLevel       string        `env:"ARTSHOP_LOG_LEVEL"`
}

// parseEnv overlays cfg with values from the process environment.
func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	return nil
}
