package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cheikhtourad19/artshop-cli/internal/flagx"
	"github.com/cheikhtourad19/artshop-cli/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "15s" or as integer nanoseconds. Zero values leave the current Config
// untouched, so a partial file only overrides what it names.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDBPath  string         `json:"session_db_path"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no file is given, cfg is left as is.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
