// Package stats tracks operation counts and latency quantiles for the
// process table.
//
// Latencies go into a t-digest (compression 100 by default, ~10KB), so
// quantiles stay cheap no matter how many operations a session runs.
// Thread-safe: Record and Stats take the tracker lock.
package stats

import (
	"sync"
	"time"

	"github.com/influxdata/tdigest"
)

// DefaultCompression is the default t-digest compression.
const DefaultCompression = 100

// Clock interface for testing with deterministic time.
type Clock interface {
	Now() time.Time
}

// realClock uses time.Now() for production.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// OpTracker records per-operation outcomes and latencies.
type OpTracker struct {
	mu sync.Mutex

	digest      *tdigest.TDigest
	compression float64

	total     int64
	failures  int64
	byOp      map[string]int64
	byOutcome map[string]int64

	startTime time.Time
	clock     Clock
}

// OpStats is a point-in-time snapshot of tracker state.
type OpStats struct {
	// Total is the number of operations recorded.
	Total int64

	// Failures is the number of operations with a non-"ok" outcome.
	Failures int64

	// ByOp counts operations per operation name.
	ByOp map[string]int64

	// ByOutcome counts operations per outcome label.
	ByOutcome map[string]int64

	// Latency quantiles across all recorded operations.
	// Zero when nothing has been recorded.
	P50 time.Duration
	P95 time.Duration
	P99 time.Duration

	// Elapsed is the time since tracking started.
	Elapsed time.Duration
}

// NewOpTracker creates a tracker with the real clock.
// compression <= 0 uses DefaultCompression.
func NewOpTracker(compression float64) *OpTracker {
	return NewOpTrackerWithClock(compression, realClock{})
}

// NewOpTrackerWithClock creates a tracker with a custom clock for testing.
func NewOpTrackerWithClock(compression float64, clock Clock) *OpTracker {
	if compression <= 0 {
		compression = DefaultCompression
	}
	return &OpTracker{
		digest:      tdigest.NewWithCompression(compression),
		compression: compression,
		byOp:        make(map[string]int64),
		byOutcome:   make(map[string]int64),
		startTime:   clock.Now(),
		clock:       clock,
	}
}

// Record adds one operation observation. Matches the signature of
// registry.Hooks.OnOperation so the tracker can be wired directly.
func (t *OpTracker) Record(op, outcome string, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	t.byOp[op]++
	t.byOutcome[outcome]++
	if outcome != "ok" {
		t.failures++
	}

	// Store microseconds; sub-microsecond ops still register as a sample.
	us := float64(elapsed.Microseconds())
	if us < 0 {
		us = 0
	}
	t.digest.Add(us, 1)
}

// Stats returns a snapshot of the current counters and quantiles.
func (t *OpTracker) Stats() OpStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := OpStats{
		Total:     t.total,
		Failures:  t.failures,
		ByOp:      make(map[string]int64, len(t.byOp)),
		ByOutcome: make(map[string]int64, len(t.byOutcome)),
		Elapsed:   t.clock.Now().Sub(t.startTime),
	}
	for k, v := range t.byOp {
		s.ByOp[k] = v
	}
	for k, v := range t.byOutcome {
		s.ByOutcome[k] = v
	}

	if t.total > 0 {
		s.P50 = t.quantile(0.50)
		s.P95 = t.quantile(0.95)
		s.P99 = t.quantile(0.99)
	}

	return s
}

// quantile reads a latency quantile from the digest as a duration.
// Must be called with mu held and total > 0.
func (t *OpTracker) quantile(q float64) time.Duration {
	us := t.digest.Quantile(q)
	if us < 0 {
		return 0
	}
	return time.Duration(us * float64(time.Microsecond))
}

// Reset clears all counters and restarts tracking.
func (t *OpTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.digest = tdigest.NewWithCompression(t.compression)
	t.total = 0
	t.failures = 0
	t.byOp = make(map[string]int64)
	t.byOutcome = make(map[string]int64)
	t.startTime = t.clock.Now()
}
