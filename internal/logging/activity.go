package logging

import (
	"log/slog"
	"strings"
	"sync"
)

const (
	// DefaultActivityLines is the default number of status lines retained.
	DefaultActivityLines = 100
)

// ActivityLog retains the most recent operation status lines.
// It buffers lines in a ring for the TUI's activity pane and logs each
// line at a level classified by outcome.
type ActivityLog struct {
	logger *slog.Logger

	// Circular buffer of recent lines
	buffer []string
	bufIdx int
	mu     sync.Mutex
}

// NewActivityLog creates an activity log retaining up to capacity lines.
// A nil logger disables logging; capacity <= 0 uses DefaultActivityLines.
func NewActivityLog(capacity int, logger *slog.Logger) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultActivityLines
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ActivityLog{
		logger: logger,
		buffer: make([]string, capacity),
	}
}

// Append records a status line.
func (a *ActivityLog) Append(line string) {
	a.mu.Lock()
	a.buffer[a.bufIdx] = line
	a.bufIdx = (a.bufIdx + 1) % len(a.buffer)
	a.mu.Unlock()

	a.logger.Log(nil, classifyLine(line), "activity", "line", line)
}

// Recent returns up to n of the most recent lines, oldest first.
func (a *ActivityLog) Recent(n int) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	size := len(a.buffer)
	if n > size {
		n = size
	}

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := (a.bufIdx - n + i + size) % size
		if a.buffer[idx] != "" {
			lines = append(lines, a.buffer[idx])
		}
	}

	return lines
}

// classifyLine picks a log level for a status line. Failure reports from
// the shells all contain "not" ("Process not found.", "Process not in
// ready queue.", "Process not found in I/O queue.").
func classifyLine(line string) slog.Level {
	if strings.Contains(strings.ToLower(line), " not ") ||
		strings.HasPrefix(line, "Process not") {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
