package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// =============================================================================
// Tests: parseLevel
// =============================================================================

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Tests: NewLoggerWithWriter
// =============================================================================

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "json", "info")

	logger.Info("test_event", "pid", 1)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if entry["msg"] != "test_event" {
		t.Errorf("msg = %v, want test_event", entry["msg"])
	}
	if entry["pid"] != float64(1) {
		t.Errorf("pid = %v, want 1", entry["pid"])
	}
}

func TestNewLoggerWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "text", "info")

	logger.Info("test_event")

	if !strings.Contains(buf.String(), "msg=test_event") {
		t.Errorf("text output missing msg: %s", buf.String())
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "json", "warn")

	logger.Info("suppressed")
	logger.Warn("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("info line emitted at warn level")
	}
	if !strings.Contains(out, "emitted") {
		t.Error("warn line missing at warn level")
	}
}

// =============================================================================
// Tests: NewLogger
// =============================================================================

func TestNewLogger_VerboseOverride(t *testing.T) {
	logger := NewLogger("json", "error", true)

	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("verbose logger does not enable debug level")
	}
}

// =============================================================================
// Tests: ActivityLog
// =============================================================================

func TestActivityLog_Recent(t *testing.T) {
	a := NewActivityLog(10, nil)

	a.Append("Created process: PID=1")
	a.Append("Process 1 moved to I/O queue.")
	a.Append("Process 1 terminated.")

	got := a.Recent(10)
	want := []string{
		"Created process: PID=1",
		"Process 1 moved to I/O queue.",
		"Process 1 terminated.",
	}
	if len(got) != len(want) {
		t.Fatalf("Recent(10) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Recent(10)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestActivityLog_Wraparound(t *testing.T) {
	a := NewActivityLog(3, nil)

	a.Append("one")
	a.Append("two")
	a.Append("three")
	a.Append("four")

	got := a.Recent(3)
	want := []string{"two", "three", "four"}
	if len(got) != 3 {
		t.Fatalf("Recent(3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Recent(3)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestActivityLog_Empty(t *testing.T) {
	a := NewActivityLog(5, nil)

	if got := a.Recent(5); len(got) != 0 {
		t.Errorf("Recent on empty log = %v, want empty", got)
	}
}

func TestActivityLog_ClassifiesFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "json", "warn")
	a := NewActivityLog(5, logger)

	a.Append("Process 1 terminated.") // info: filtered at warn level
	a.Append("Process not found.")    // warn: emitted

	out := buf.String()
	if strings.Contains(out, "terminated") {
		t.Error("success line logged at warn level")
	}
	if !strings.Contains(out, "Process not found.") {
		t.Error("failure line not logged at warn level")
	}
}
