// Package metrics provides Prometheus metrics collection and export for the
// process table.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randomizedcoder/go-proc-table/internal/proc"
)

// Collector owns the process-table metrics. Gauges are maintained
// incrementally from registry hook events, so the collector never has to
// call back into the registry.
type Collector struct {
	// --- Panel 1: Table Overview ---
	info           *prometheus.GaugeVec
	liveProcesses  prometheus.Gauge
	readyQueueLen  prometheus.Gauge
	ioQueueLen     prometheus.Gauge

	// --- Panel 2: Lifecycle ---
	createdTotal    prometheus.Counter
	terminatedTotal prometheus.Counter
	callPushesTotal prometheus.Counter

	// --- Panel 3: Operations ---
	operationsTotal *prometheus.CounterVec

	// --- Panel 4: Latency (fed from the stats tracker's digest) ---
	latencyP50Seconds prometheus.Gauge
	latencyP95Seconds prometheus.Gauge
	latencyP99Seconds prometheus.Gauge
}

// CollectorConfig holds configuration for the collector.
type CollectorConfig struct {
	Version string
}

// NewCollector creates a collector registered with the default registerer.
func NewCollector(cfg CollectorConfig) *Collector {
	return NewCollectorWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry creates a collector with a custom registry.
// Useful for testing.
func NewCollectorWithRegistry(cfg CollectorConfig, registry prometheus.Registerer) *Collector {
	c := &Collector{
		info: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "proc_table_info",
				Help: "Information about the simulator (value always 1)",
			},
			[]string{"version"},
		),
		liveProcesses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proc_table_live_processes",
			Help: "Processes currently in the table",
		}),
		readyQueueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proc_table_ready_queue_length",
			Help: "Processes in the ready queue",
		}),
		ioQueueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proc_table_io_queue_length",
			Help: "Processes in the I/O-wait queue",
		}),
		createdTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proc_table_processes_created_total",
			Help: "Total processes created",
		}),
		terminatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proc_table_processes_terminated_total",
			Help: "Total processes terminated",
		}),
		callPushesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proc_table_call_stack_pushes_total",
			Help: "Total function names pushed onto call stacks",
		}),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proc_table_operations_total",
				Help: "Total registry operations by name and outcome",
			},
			[]string{"op", "outcome"},
		),
		latencyP50Seconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proc_table_operation_latency_p50_seconds",
			Help: "Median operation latency",
		}),
		latencyP95Seconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proc_table_operation_latency_p95_seconds",
			Help: "P95 operation latency",
		}),
		latencyP99Seconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proc_table_operation_latency_p99_seconds",
			Help: "P99 operation latency",
		}),
	}

	registry.MustRegister(
		// Panel 1: Table Overview
		c.info,
		c.liveProcesses,
		c.readyQueueLen,
		c.ioQueueLen,

		// Panel 2: Lifecycle
		c.createdTotal,
		c.terminatedTotal,
		c.callPushesTotal,

		// Panel 3: Operations
		c.operationsTotal,

		// Panel 4: Latency
		c.latencyP50Seconds,
		c.latencyP95Seconds,
		c.latencyP99Seconds,
	)

	c.info.WithLabelValues(cfg.Version).Set(1)

	return c
}

// HandleCreate records a process entering the table (and the ready queue).
// Matches registry.Hooks.OnCreate.
func (c *Collector) HandleCreate(pid int) {
	c.createdTotal.Inc()
	c.liveProcesses.Inc()
	c.readyQueueLen.Inc()
}

// HandleCall records a call-stack push. Matches registry.Hooks.OnCall.
func (c *Collector) HandleCall(pid int, funcName string) {
	c.callPushesTotal.Inc()
}

// HandleTransition keeps the queue gauges in step with queue moves.
// Matches registry.Hooks.OnTransition.
func (c *Collector) HandleTransition(pid int, from, to proc.State) {
	switch from {
	case proc.StateReady:
		c.readyQueueLen.Dec()
	case proc.StateIOWait:
		c.ioQueueLen.Dec()
	}

	switch to {
	case proc.StateReady:
		c.readyQueueLen.Inc()
	case proc.StateIOWait:
		c.ioQueueLen.Inc()
	}
}

// HandleTerminate records a process leaving the table.
// Matches registry.Hooks.OnTerminate.
func (c *Collector) HandleTerminate(pid int) {
	c.terminatedTotal.Inc()
	c.liveProcesses.Dec()
}

// HandleOperation records an operation outcome.
// Matches registry.Hooks.OnOperation.
func (c *Collector) HandleOperation(op, outcome string, elapsed time.Duration) {
	c.operationsTotal.WithLabelValues(op, outcome).Inc()
}

// SetLatencyQuantiles publishes operation latency quantiles.
func (c *Collector) SetLatencyQuantiles(p50, p95, p99 time.Duration) {
	c.latencyP50Seconds.Set(p50.Seconds())
	c.latencyP95Seconds.Set(p95.Seconds())
	c.latencyP99Seconds.Set(p99.Seconds())
}
