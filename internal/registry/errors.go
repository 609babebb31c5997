package registry

import "errors"

// Operation errors. All are informational: a failed operation is a no-op
// and never leaves partial state behind.
var (
	// ErrNotFound means the PID does not name a live process.
	ErrNotFound = errors.New("process not found")

	// ErrNotReady means the process exists but is not in the ready queue.
	ErrNotReady = errors.New("process not in ready queue")

	// ErrNotWaitingIO means the PID is not in the I/O queue. CompleteIO
	// deliberately does not distinguish an unknown PID from a live process
	// that is not blocked on I/O; both report this error.
	ErrNotWaitingIO = errors.New("process not found in I/O queue")
)
