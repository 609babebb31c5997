// Package config provides configuration management for go-proc-table.
package config

// Config holds all configuration options for the process table simulator.
type Config struct {
	// Shell selection
	TUIEnabled bool `json:"tui"`
	Demo       bool `json:"demo"`

	// Observability
	MetricsEnabled bool   `json:"metrics_enabled"`
	MetricsAddr    string `json:"metrics_addr"`
	Verbose        bool   `json:"verbose"`
	LogFormat      string `json:"log_format"` // json, text
	LogLevel       string `json:"log_level"`  // debug, info, warn, error

	// Activity log
	ActivityLines int `json:"activity_lines"`

	// Stats
	StatsCompression float64 `json:"stats_compression"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		// Shell
		TUIEnabled: false,
		Demo:       false,

		// Observability
		MetricsEnabled: false,
		MetricsAddr:    "0.0.0.0:17092",
		Verbose:        false,
		LogFormat:      "text",
		LogLevel:       "info",

		// Activity log
		ActivityLines: 100,

		// Stats
		StatsCompression: 100,
	}
}
