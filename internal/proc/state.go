// Package proc defines the simulated process entity and its lifecycle states.
package proc

// State represents the current lifecycle state of a simulated process.
type State int

const (
	// StateReady is the initial state after creation: the process sits in
	// the ready queue.
	StateReady State = iota

	// StateIOWait indicates the process is blocked in the I/O queue.
	StateIOWait

	// StateTerminated indicates the process has been removed from the
	// table. Terminal: no further operation on its PID succeeds.
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateIOWait:
		return "io_wait"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// IsRunnable returns true if the process is eligible to run (ready queue).
func (s State) IsRunnable() bool {
	return s == StateReady
}

// IsTerminal returns true if the state is absorbing (terminated).
func (s State) IsTerminal() bool {
	return s == StateTerminated
}
