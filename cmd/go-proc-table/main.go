// Package main provides the go-proc-table CLI entry point.
//
// go-proc-table is a didactic, in-memory model of an OS process table: it
// tracks process creation, parent/child hierarchy, a simulated call stack
// per process, and placement of processes into a ready or I/O-wait queue.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomizedcoder/go-proc-table/internal/config"
	"github.com/randomizedcoder/go-proc-table/internal/logging"
	"github.com/randomizedcoder/go-proc-table/internal/metrics"
	"github.com/randomizedcoder/go-proc-table/internal/registry"
	"github.com/randomizedcoder/go-proc-table/internal/shell"
	"github.com/randomizedcoder/go-proc-table/internal/stats"
	"github.com/randomizedcoder/go-proc-table/internal/tui"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/go-proc-table
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag early (before flag parsing)
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-version" || arg == "--version" || arg == "version" {
			fmt.Printf("go-proc-table %s\n", version)
			return 0
		}
	}

	// Parse command-line flags
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return 1
	}

	// Initialize logger
	// When the TUI owns the terminal, suppress logs to avoid interfering
	// with its rendering
	var logger *slog.Logger
	if cfg.TUIEnabled {
		logger = logging.NewNopLogger()
	} else {
		logger = logging.NewLogger(cfg.LogFormat, cfg.LogLevel, cfg.Verbose)
	}
	logging.SetDefault(logger)

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	logger.Info("starting",
		"version", version,
		"tui", cfg.TUIEnabled,
		"demo", cfg.Demo,
		"metrics", cfg.MetricsEnabled,
	)

	// Stats tracker and optional metrics collector
	tracker := stats.NewOpTracker(cfg.StatsCompression)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector(metrics.CollectorConfig{Version: version})
	}

	// Wire registry hooks: every operation feeds the tracker, and the
	// collector when metrics are on
	hooks := registry.Hooks{
		OnOperation: func(op, outcome string, elapsed time.Duration) {
			tracker.Record(op, outcome, elapsed)
			if collector != nil {
				collector.HandleOperation(op, outcome, elapsed)
				s := tracker.Stats()
				collector.SetLatencyQuantiles(s.P50, s.P95, s.P99)
			}
		},
	}
	if collector != nil {
		hooks.OnCreate = collector.HandleCreate
		hooks.OnCall = collector.HandleCall
		hooks.OnTransition = collector.HandleTransition
		hooks.OnTerminate = collector.HandleTerminate
	}

	reg := registry.New(logger, hooks)

	// Optional metrics server
	var metricsAddr string
	if cfg.MetricsEnabled {
		srv := metrics.NewServer(cfg.MetricsAddr, logger)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
			return 1
		}
		metricsAddr = srv.Addr()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	// Demo mode: scripted walkthrough, no interactive input
	if cfg.Demo {
		shell.RunDemo(reg, os.Stdout)
		return 0
	}

	// TUI shell
	if cfg.TUIEnabled {
		activity := logging.NewActivityLog(cfg.ActivityLines, logger)
		model := tui.New(tui.Config{
			Registry:    reg,
			Activity:    activity,
			Tracker:     tracker,
			MetricsAddr: metricsAddr,
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			logger.Error("tui_failed", "error", err)
			return 1
		}
		return 0
	}

	// Plain menu shell
	printBanner(cfg, metricsAddr)

	sh := shell.New(shell.Config{
		Registry: reg,
		In:       os.Stdin,
		Out:      os.Stdout,
		Activity: logging.NewActivityLog(cfg.ActivityLines, logger),
		Logger:   logger,
	})
	if err := sh.Run(); err != nil {
		logger.Error("shell_failed", "error", err)
		return 1
	}

	// Session summary
	s := tracker.Stats()
	logger.Info("session_summary",
		"operations", s.Total,
		"failures", s.Failures,
		"p50", s.P50,
		"p99", s.P99,
		"elapsed", s.Elapsed,
	)

	return 0
}

// printBanner prints the startup banner for the plain shell.
func printBanner(cfg *config.Config, metricsAddr string) {
	fmt.Println()
	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║                       go-proc-table                        ║")
	fmt.Println("║        In-Memory OS Process Table Simulation               ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()
	if metricsAddr != "" {
		fmt.Printf("  Metrics:  http://%s/metrics\n", metricsAddr)
	}
	fmt.Printf("  Logs:     %s (%s)\n", cfg.LogFormat, cfg.LogLevel)
	fmt.Println()
}
