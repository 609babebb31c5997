package proc

import (
	"slices"
	"testing"
)

// =============================================================================
// Tests: State
// =============================================================================

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateReady, "ready"},
		{StateIOWait, "io_wait"},
		{StateTerminated, "terminated"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}

func TestState_Predicates(t *testing.T) {
	if !StateReady.IsRunnable() {
		t.Error("StateReady.IsRunnable() = false, want true")
	}
	if StateIOWait.IsRunnable() {
		t.Error("StateIOWait.IsRunnable() = true, want false")
	}
	if StateTerminated.IsRunnable() {
		t.Error("StateTerminated.IsRunnable() = true, want false")
	}

	if !StateTerminated.IsTerminal() {
		t.Error("StateTerminated.IsTerminal() = false, want true")
	}
	if StateReady.IsTerminal() || StateIOWait.IsTerminal() {
		t.Error("non-terminated states report IsTerminal() = true")
	}
}

// =============================================================================
// Tests: Process
// =============================================================================

func TestNew(t *testing.T) {
	p := New(3, "worker", 1)

	if p.PID != 3 {
		t.Errorf("PID = %d, want 3", p.PID)
	}
	if p.Name != "worker" {
		t.Errorf("Name = %q, want %q", p.Name, "worker")
	}
	if p.ParentPID != 1 {
		t.Errorf("ParentPID = %d, want 1", p.ParentPID)
	}
	if !p.HasParent() {
		t.Error("HasParent() = false, want true")
	}
	if len(p.ChildPIDs) != 0 {
		t.Errorf("new process has %d children, want 0", len(p.ChildPIDs))
	}
	if len(p.CallStack) != 0 {
		t.Errorf("new process has %d call stack entries, want 0", len(p.CallStack))
	}
}

func TestNew_NoParent(t *testing.T) {
	p := New(1, "init", NoParent)

	if p.HasParent() {
		t.Error("HasParent() = true, want false")
	}
}

func TestProcess_PushCall_AppendsInOrder(t *testing.T) {
	p := New(1, "init", NoParent)

	p.PushCall("open")
	p.PushCall("read")
	p.PushCall("close")

	want := []string{"open", "read", "close"}
	if !slices.Equal(p.CallStack, want) {
		t.Errorf("CallStack = %v, want %v", p.CallStack, want)
	}
}

func TestProcess_ChildBookkeeping(t *testing.T) {
	p := New(1, "init", NoParent)

	p.AddChild(2)
	p.AddChild(3)
	p.AddChild(4)

	p.RemoveChild(3)

	want := []int{2, 4}
	if !slices.Equal(p.ChildPIDs, want) {
		t.Errorf("ChildPIDs after remove = %v, want %v", p.ChildPIDs, want)
	}

	// Removing an absent child changes nothing.
	p.RemoveChild(99)
	if !slices.Equal(p.ChildPIDs, want) {
		t.Errorf("ChildPIDs after removing absent PID = %v, want %v", p.ChildPIDs, want)
	}
}
