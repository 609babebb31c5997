package proc

import "slices"

// NoParent is the sentinel parent PID for a process created without a
// resolvable parent. Valid PIDs start at 1.
const NoParent = 0

// Process is one entry in the simulated process table.
//
// Relationships are held as PIDs, never as pointers: the registry's
// canonical store is the only owner, and everything else (parent link,
// child lists, queue membership) is a lookup key into it. This makes
// dangling references after termination representable but harmless.
type Process struct {
	// PID is the unique process identifier. Assigned monotonically from 1,
	// never reused.
	PID int

	// Name is the display name. Not required to be unique.
	Name string

	// ParentPID is the PID of the parent at creation time, or NoParent.
	// The referent may have been terminated since; the link is not cleaned
	// up on parent termination.
	ParentPID int

	// ChildPIDs lists children in insertion order.
	ChildPIDs []int

	// CallStack is an append-only log of function names recorded against
	// this process. Nothing in the model ever pops it.
	CallStack []string
}

// New constructs a process with the given identity and parent link.
func New(pid int, name string, parentPID int) *Process {
	return &Process{
		PID:       pid,
		Name:      name,
		ParentPID: parentPID,
	}
}

// PushCall records a function name on the call stack.
func (p *Process) PushCall(funcName string) {
	p.CallStack = append(p.CallStack, funcName)
}

// AddChild appends a child PID to the child list.
func (p *Process) AddChild(pid int) {
	p.ChildPIDs = append(p.ChildPIDs, pid)
}

// RemoveChild removes a child PID from the child list, preserving the
// order of the remaining children. Removing an absent PID is a no-op.
func (p *Process) RemoveChild(pid int) {
	p.ChildPIDs = slices.DeleteFunc(p.ChildPIDs, func(c int) bool {
		return c == pid
	})
}

// HasParent reports whether the process was created with a resolved parent.
func (p *Process) HasParent() bool {
	return p.ParentPID != NoParent
}
