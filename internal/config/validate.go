package config

import (
	"errors"
	"fmt"
	"net"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors and inconsistencies.
// Returns nil if valid, or an error describing the problem.
func Validate(cfg *Config) error {
	var errs []error

	// Log format must be valid
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.LogFormat] {
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: fmt.Sprintf("must be 'json' or 'text' (got %q)", cfg.LogFormat),
		})
	}

	// Log level must be valid
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.LogLevel] {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: debug, info, warn, error (got %q)", cfg.LogLevel),
		})
	}

	// Metrics address must be host:port when metrics are enabled
	if cfg.MetricsEnabled {
		if _, _, err := net.SplitHostPort(cfg.MetricsAddr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "metrics_addr",
				Message: fmt.Sprintf("must be host:port (got %q)", cfg.MetricsAddr),
			})
		}
	}

	// TUI and demo are mutually exclusive shells
	if cfg.TUIEnabled && cfg.Demo {
		errs = append(errs, ValidationError{
			Field:   "demo",
			Message: "-demo cannot be combined with -tui",
		})
	}

	// Activity buffer must hold at least one line
	if cfg.ActivityLines < 1 {
		errs = append(errs, ValidationError{
			Field:   "activity_lines",
			Message: "must be at least 1",
		})
	}

	// t-digest compression bounds
	if cfg.StatsCompression < 20 || cfg.StatsCompression > 1000 {
		errs = append(errs, ValidationError{
			Field:   "stats_compression",
			Message: fmt.Sprintf("must be in [20, 1000] (got %v)", cfg.StatsCompression),
		})
	}

	return errors.Join(errs...)
}
