package config

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line flags and returns a Config.
func ParseFlags() (*Config, error) {
	cfg := DefaultConfig()

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `go-proc-table - an in-memory OS process table simulator

Usage:
  go-proc-table [flags]

Shell:
`)
		printFlagCategory([]string{"tui", "demo"})

		fmt.Fprintf(os.Stderr, "\nObservability:\n")
		printFlagCategory([]string{"metrics", "metrics-addr", "v", "log-format", "log-level"})

		fmt.Fprintf(os.Stderr, "\nTuning:\n")
		printFlagCategory([]string{"activity-lines", "stats-compression"})

		fmt.Fprintf(os.Stderr, `
Examples:
  # Interactive numeric menu on stdin
  go-proc-table

  # Terminal dashboard shell
  go-proc-table -tui

  # Scripted walkthrough, then exit
  go-proc-table -demo

  # Menu shell with Prometheus metrics
  go-proc-table -metrics -metrics-addr 127.0.0.1:17092

`)
	}

	// Shell flags
	flag.BoolVar(&cfg.TUIEnabled, "tui", cfg.TUIEnabled, "Run the terminal dashboard shell instead of the plain menu")
	flag.BoolVar(&cfg.Demo, "demo", cfg.Demo, "Run a scripted walkthrough and exit (no interactive input)")

	// Observability
	flag.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Serve Prometheus metrics")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus metrics address")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose logging")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `Log format: "json" or "text"`)
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, `Log level: "debug", "info", "warn", "error"`)

	// Tuning
	flag.IntVar(&cfg.ActivityLines, "activity-lines", cfg.ActivityLines, "Recent operation lines retained for the dashboard")
	flag.Float64Var(&cfg.StatsCompression, "stats-compression", cfg.StatsCompression, "t-digest compression for latency quantiles")

	flag.Parse()

	return cfg, nil
}

// printFlagCategory prints flags matching the given names (helper for usage).
func printFlagCategory(names []string) {
	flag.VisitAll(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				fmt.Fprintf(os.Stderr, "  -%-20s %s\n", f.Name, f.Usage)
			}
		}
	})
}
