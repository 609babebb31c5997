package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/randomizedcoder/go-proc-table/internal/logging"
	"github.com/randomizedcoder/go-proc-table/internal/registry"
)

// =============================================================================
// Helpers
// =============================================================================

// runSession feeds a scripted input to a fresh shell and returns the
// transcript.
func runSession(t *testing.T, input string) string {
	t.Helper()

	reg := registry.New(nil, registry.Hooks{})
	var out bytes.Buffer

	sh := New(Config{
		Registry: reg,
		In:       strings.NewReader(input),
		Out:      &out,
	})
	if err := sh.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	return out.String()
}

func wantContains(t *testing.T, transcript string, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if !strings.Contains(transcript, line) {
			t.Errorf("transcript missing %q\ntranscript:\n%s", line, transcript)
		}
	}
}

// =============================================================================
// Tests: menu loop
// =============================================================================

func TestShell_CreateAndExit(t *testing.T) {
	transcript := runSession(t, "1 init -1 0")

	wantContains(t, transcript,
		"Created process: PID=1",
		"Exiting...",
	)
}

func TestShell_FullSession(t *testing.T) {
	// create init, create child of 1, call on 2, request io 2, show state,
	// complete io 2, terminate 1, show state, exit.
	input := "1 init -1  1 child 1  2 2 read_disk  3 2  6  4 2  5 1  6  0"
	transcript := runSession(t, input)

	wantContains(t, transcript,
		"Created process: PID=1",
		"Created process: PID=2",
		"Process 2 called function: read_disk",
		"Process 2 moved to I/O queue.",
		"Process 2 completed I/O and returned to ready queue.",
		"Process 1 terminated.",
		"(No processes created yet)",
	)

	// The final report still lists the surviving child in the ready queue.
	last := transcript[strings.LastIndex(transcript, "--- Ready Queue ---"):]
	if !strings.Contains(last, "PID: 2, Name: child") {
		t.Errorf("final report missing surviving child:\n%s", last)
	}
}

func TestShell_ErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"call unknown pid", "2 9 boot 0", "Process not found."},
		{"request io unknown pid", "3 9 0", "Process not found."},
		{"request io not ready", "1 a -1  3 1  3 1  0", "Process not in ready queue."},
		{"complete io unknown pid", "4 9 0", "Process not found in I/O queue."},
		{"complete io not waiting", "1 a -1  4 1  0", "Process not found in I/O queue."},
		{"terminate unknown pid", "5 9 0", "Process not found."},
		{"invalid menu choice", "7 0", "Invalid choice."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantContains(t, runSession(t, tt.input), tt.want)
		})
	}
}

func TestShell_ShowState_Empty(t *testing.T) {
	transcript := runSession(t, "6 0")

	wantContains(t, transcript,
		"--- Ready Queue ---",
		"--- I/O Queue ---",
		"--- Process Tree ---",
		"(No processes created yet)",
	)
}

func TestShell_TreeIndentation(t *testing.T) {
	transcript := runSession(t, "1 init -1  1 child 1  1 grandchild 2  6 0")

	wantContains(t, transcript,
		"PID: 1, Name: init",
		"  PID: 2, Name: child",
		"    PID: 3, Name: grandchild",
	)
}

func TestShell_NonNumericInputReprompts(t *testing.T) {
	transcript := runSession(t, "x 6 0")

	wantContains(t, transcript, "Not a number: x", "--- Ready Queue ---")
}

func TestShell_EOFExits(t *testing.T) {
	transcript := runSession(t, "")

	wantContains(t, transcript, "Exiting...")
}

func TestShell_ActivityFeed(t *testing.T) {
	reg := registry.New(nil, registry.Hooks{})
	activity := logging.NewActivityLog(10, nil)
	var out bytes.Buffer

	sh := New(Config{
		Registry: reg,
		In:       strings.NewReader("1 init -1  5 9 0"),
		Out:      &out,
		Activity: activity,
	})
	if err := sh.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	recent := activity.Recent(10)
	if len(recent) != 2 {
		t.Fatalf("activity lines = %v, want 2 entries", recent)
	}
	if recent[0] != "Created process: PID=1" {
		t.Errorf("recent[0] = %q", recent[0])
	}
	if recent[1] != "Process not found." {
		t.Errorf("recent[1] = %q", recent[1])
	}
}

// =============================================================================
// Tests: demo mode
// =============================================================================

func TestRunDemo(t *testing.T) {
	reg := registry.New(nil, registry.Hooks{})
	var out bytes.Buffer

	RunDemo(reg, &out)

	wantContains(t, out.String(),
		"Created process: PID=1",
		"Created process: PID=2",
		"Process 2 called function: read_disk",
		"Process 2 moved to I/O queue.",
		"Process 2 completed I/O and returned to ready queue.",
		"Process 1 terminated.",
		"(No processes created yet)",
	)
}

// =============================================================================
// Tests: report rendering
// =============================================================================

func TestRenderReport_Sections(t *testing.T) {
	reg := registry.New(nil, registry.Hooks{})
	a := reg.Create("init", -1)
	b := reg.Create("worker", a)
	if err := reg.RequestIO(b); err != nil {
		t.Fatalf("RequestIO: %v", err)
	}

	report := RenderReport(reg.Snapshot())

	// Sections appear in order: ready, io, tree.
	readyIdx := strings.Index(report, "--- Ready Queue ---")
	ioIdx := strings.Index(report, "--- I/O Queue ---")
	treeIdx := strings.Index(report, "--- Process Tree ---")
	if !(readyIdx >= 0 && readyIdx < ioIdx && ioIdx < treeIdx) {
		t.Fatalf("sections out of order:\n%s", report)
	}

	ready := report[readyIdx:ioIdx]
	ioSection := report[ioIdx:treeIdx]
	if !strings.Contains(ready, "PID: 1, Name: init") {
		t.Errorf("ready section missing init:\n%s", ready)
	}
	if strings.Contains(ready, "PID: 2") {
		t.Errorf("ready section contains io-waiting process:\n%s", ready)
	}
	if !strings.Contains(ioSection, "PID: 2, Name: worker") {
		t.Errorf("io section missing worker:\n%s", ioSection)
	}
	if !strings.HasSuffix(report, "--------------------\n") {
		t.Errorf("report missing trailing rule:\n%s", report)
	}
}
