// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validSources = map[string]bool{
	SourceCSV: true, SourceSQLite: true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Dataset validation
	if !validSources[c.Dataset.Source] {
		errs = append(errs, fmt.Sprintf("dataset.source: must be one of csv, sqlite; got %q", c.Dataset.Source))
	}
	if c.Dataset.Source != SourceSQLite && c.Dataset.Path != "" {
		if _, err := os.Stat(c.Dataset.Path); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("dataset.path: file %q does not exist", c.Dataset.Path))
		}
	}
	if c.Dataset.Source == SourceSQLite && c.Database.Path == "" {
		errs = append(errs, "database.path: required when dataset.source is sqlite")
	}

	// Dashboard validation
	if c.Dashboard.TopN < 0 {
		errs = append(errs, fmt.Sprintf("dashboard.top_n: must be positive, got %d", c.Dashboard.TopN))
	}
	for i, origin := range c.Dashboard.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Sprintf("dashboard.cors_origins[%d]: must be * or an http(s) origin, got %q", i, origin))
		}
	}

	return errs
}
