// Package registry implements the process table: the single owner of all
// simulated process state.
//
// The registry maintains three views of the same set of processes and keeps
// them consistent across every operation:
//   - a parent/child hierarchy rooted at the first orphan process,
//   - a FIFO ready queue,
//   - a FIFO I/O-wait queue.
//
// Every live process is in exactly one of the two queues; a terminated
// process is in neither and its PID is never reused. All relationships are
// stored as PIDs into the canonical map, never as pointers.
package registry

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/randomizedcoder/go-proc-table/internal/proc"
)

// Operation names reported through Hooks.OnOperation.
const (
	OpCreate       = "create"
	OpCallFunction = "call_function"
	OpRequestIO    = "request_io"
	OpCompleteIO   = "complete_io"
	OpTerminate    = "terminate"
)

// Hooks contains optional callbacks for registry events.
// Nil callbacks are skipped. Callbacks run synchronously with the lock held,
// so they must not call back into the registry.
type Hooks struct {
	// OnCreate is called after a process enters the table.
	OnCreate func(pid int)

	// OnCall is called after a function name is pushed on a call stack.
	OnCall func(pid int, funcName string)

	// OnTransition is called on every queue move and on termination.
	OnTransition func(pid int, from, to proc.State)

	// OnTerminate is called after a process is removed from the table.
	OnTerminate func(pid int)

	// OnOperation is called once per public mutating operation with its
	// name, outcome ("ok" or the error's outcome label), and duration.
	OnOperation func(op, outcome string, elapsed time.Duration)
}

// Registry is the process table. A single instance owns all state; one
// mutex serializes the five mutating operations so that queue and tree
// updates within an operation are atomic with respect to each other.
type Registry struct {
	mu sync.RWMutex

	// nextPID is the next identifier to assign. Monotonic, never reused.
	nextPID int

	// procs is the canonical store. Everything else holds PIDs into it.
	procs map[int]*proc.Process

	// rootPID designates the hierarchy root for display traversal.
	// proc.NoParent means no root. Cleared (not reassigned) when the root
	// terminates.
	rootPID int

	readyQueue []int
	ioQueue    []int

	logger *slog.Logger
	hooks  Hooks
}

// New creates an empty registry. A nil logger disables logging.
func New(logger *slog.Logger, hooks Hooks) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		nextPID: 1,
		procs:   make(map[int]*proc.Process),
		rootPID: proc.NoParent,
		logger:  logger,
		hooks:   hooks,
	}
}

// Create allocates a new PID, registers the process, links it under its
// parent if parentPID resolves to a live process, designates it as root if
// no parent resolved and no root exists, and appends it to the ready queue.
//
// Create never fails: an unresolvable parentPID (including values <= 0)
// silently produces an orphan process. Returns the new PID.
func (r *Registry) Create(name string, parentPID int) int {
	start := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	parent := r.procs[parentPID] // nil when absent or parentPID <= 0

	pid := r.nextPID
	r.nextPID++

	parentLink := proc.NoParent
	if parent != nil {
		parentLink = parent.PID
	}
	p := proc.New(pid, name, parentLink)

	if parent != nil {
		parent.AddChild(pid)
	} else if r.rootPID == proc.NoParent {
		r.rootPID = pid
	}

	r.procs[pid] = p
	r.readyQueue = append(r.readyQueue, pid)

	r.logger.Info("process_created",
		"pid", pid,
		"name", name,
		"parent_pid", parentLink,
		"root", r.rootPID == pid,
	)

	if r.hooks.OnCreate != nil {
		r.hooks.OnCreate(pid)
	}
	r.observe(OpCreate, nil, start)

	return pid
}

// CallFunction pushes funcName onto the process's call stack. The stack is
// an append-only log; no operation ever pops it.
func (r *Registry) CallFunction(pid int, funcName string) error {
	start := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.procs[pid]
	if !ok {
		r.observe(OpCallFunction, ErrNotFound, start)
		return ErrNotFound
	}

	p.PushCall(funcName)
	r.logger.Debug("function_called", "pid", pid, "func", funcName, "depth", len(p.CallStack))

	if r.hooks.OnCall != nil {
		r.hooks.OnCall(pid, funcName)
	}
	r.observe(OpCallFunction, nil, start)
	return nil
}

// RequestIO moves a process from the ready queue to the tail of the I/O
// queue, preserving the relative order of the remaining ready processes.
// Returns ErrNotFound for an unknown PID, ErrNotReady when the process
// exists but is not in the ready queue. Failures change nothing.
func (r *Registry) RequestIO(pid int) error {
	start := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.procs[pid]; !ok {
		r.observe(OpRequestIO, ErrNotFound, start)
		return ErrNotFound
	}

	if !removeFromQueue(&r.readyQueue, pid) {
		r.observe(OpRequestIO, ErrNotReady, start)
		return ErrNotReady
	}
	r.ioQueue = append(r.ioQueue, pid)

	r.logger.Debug("io_requested", "pid", pid, "io_queue_len", len(r.ioQueue))

	if r.hooks.OnTransition != nil {
		r.hooks.OnTransition(pid, proc.StateReady, proc.StateIOWait)
	}
	r.observe(OpRequestIO, nil, start)
	return nil
}

// CompleteIO moves a process from the I/O queue to the tail of the ready
// queue. The returned position is the tail, not the process's original
// ready-queue position. Returns ErrNotWaitingIO both for an unknown PID and
// for a live process that is not in the I/O queue.
func (r *Registry) CompleteIO(pid int) error {
	start := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !removeFromQueue(&r.ioQueue, pid) {
		r.observe(OpCompleteIO, ErrNotWaitingIO, start)
		return ErrNotWaitingIO
	}
	r.readyQueue = append(r.readyQueue, pid)

	r.logger.Debug("io_completed", "pid", pid, "ready_queue_len", len(r.readyQueue))

	if r.hooks.OnTransition != nil {
		r.hooks.OnTransition(pid, proc.StateIOWait, proc.StateReady)
	}
	r.observe(OpCompleteIO, nil, start)
	return nil
}

// Terminate permanently removes a process: from whichever queue holds it,
// from its parent's child list, from the root designation if it was the
// root, and from the canonical store. The PID is never reused.
//
// Children of the terminated process keep their (now dangling) parent PID
// and are not re-parented or promoted to root; their subtrees simply become
// unreachable from the display traversal.
func (r *Registry) Terminate(pid int) error {
	start := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.procs[pid]
	if !ok {
		r.observe(OpTerminate, ErrNotFound, start)
		return ErrNotFound
	}

	var from proc.State
	if removeFromQueue(&r.readyQueue, pid) {
		from = proc.StateReady
	} else if removeFromQueue(&r.ioQueue, pid) {
		from = proc.StateIOWait
	}

	if parent, ok := r.procs[p.ParentPID]; ok {
		parent.RemoveChild(pid)
	}

	if r.rootPID == pid {
		r.rootPID = proc.NoParent
	}

	delete(r.procs, pid)

	r.logger.Info("process_terminated",
		"pid", pid,
		"name", p.Name,
		"orphaned_children", len(p.ChildPIDs),
	)

	if r.hooks.OnTransition != nil {
		r.hooks.OnTransition(pid, from, proc.StateTerminated)
	}
	if r.hooks.OnTerminate != nil {
		r.hooks.OnTerminate(pid)
	}
	r.observe(OpTerminate, nil, start)
	return nil
}

// State returns the queue-derived state of a PID and whether it is live.
func (r *Registry) State(pid int) (proc.State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.procs[pid]; !ok {
		return proc.StateTerminated, false
	}
	if slices.Contains(r.ioQueue, pid) {
		return proc.StateIOWait, true
	}
	return proc.StateReady, true
}

// Counts returns the live process count and both queue lengths.
func (r *Registry) Counts() (live, ready, ioWait int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.procs), len(r.readyQueue), len(r.ioQueue)
}

// removeFromQueue removes pid from the queue if present, preserving the
// order of the remaining entries. Reports whether pid was found.
func removeFromQueue(q *[]int, pid int) bool {
	i := slices.Index(*q, pid)
	if i < 0 {
		return false
	}
	*q = slices.Delete(*q, i, i+1)
	return true
}

// observe reports an operation outcome through Hooks.OnOperation.
// Must be called with the lock held.
func (r *Registry) observe(op string, err error, start time.Time) {
	if r.hooks.OnOperation == nil {
		return
	}
	r.hooks.OnOperation(op, Outcome(err), time.Since(start))
}

// Outcome maps an operation error to a short label for metrics and stats.
func Outcome(err error) string {
	switch err {
	case nil:
		return "ok"
	case ErrNotFound:
		return "not_found"
	case ErrNotReady:
		return "not_ready"
	case ErrNotWaitingIO:
		return "not_waiting_io"
	default:
		return "error"
	}
}
