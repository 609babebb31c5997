package config

import (
	"errors"
	"strings"
	"testing"
)

// =============================================================================
// Tests: DefaultConfig
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TUIEnabled {
		t.Error("TUIEnabled = true, want false (plain menu is the default shell)")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ActivityLines < 1 {
		t.Errorf("ActivityLines = %d, want >= 1", cfg.ActivityLines)
	}

	// The defaults must pass their own validation.
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) = %v, want nil", err)
	}
}

// =============================================================================
// Tests: Validate
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.LogFormat = "xml" },
			wantField: "log_format",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.LogLevel = "trace" },
			wantField: "log_level",
		},
		{
			name: "bad metrics addr",
			mutate: func(c *Config) {
				c.MetricsEnabled = true
				c.MetricsAddr = "no-port"
			},
			wantField: "metrics_addr",
		},
		{
			name: "metrics addr ignored when disabled",
			mutate: func(c *Config) {
				c.MetricsEnabled = false
				c.MetricsAddr = "no-port"
			},
			wantField: "",
		},
		{
			name: "tui and demo conflict",
			mutate: func(c *Config) {
				c.TUIEnabled = true
				c.Demo = true
			},
			wantField: "demo",
		},
		{
			name:      "activity lines too small",
			mutate:    func(c *Config) { c.ActivityLines = 0 },
			wantField: "activity_lines",
		},
		{
			name:      "compression too small",
			mutate:    func(c *Config) { c.StatsCompression = 1 },
			wantField: "stats_compression",
		},
		{
			name:      "compression too large",
			mutate:    func(c *Config) { c.StatsCompression = 5000 },
			wantField: "stats_compression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantField)
			}
		})
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = "xml"
	cfg.LogLevel = "trace"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	var vErr ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("error does not unwrap to ValidationError: %v", err)
	}
	if !strings.Contains(err.Error(), "log_format") || !strings.Contains(err.Error(), "log_level") {
		t.Errorf("joined error missing a field: %v", err)
	}
}
