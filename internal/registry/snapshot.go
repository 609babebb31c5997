package registry

import "github.com/randomizedcoder/go-proc-table/internal/proc"

// QueueEntry is one process as seen in a queue listing.
type QueueEntry struct {
	PID  int
	Name string
}

// TreeRow is one process in the pre-order hierarchy traversal.
type TreeRow struct {
	PID   int
	Name  string
	Depth int
}

// Snapshot is a point-in-time, read-only copy of the registry's three
// views. Taking a snapshot never mutates the queues.
type Snapshot struct {
	// Ready lists the ready queue head to tail.
	Ready []QueueEntry

	// IOWait lists the I/O queue head to tail.
	IOWait []QueueEntry

	// Tree is the pre-order traversal from the root: root first, then each
	// child's subtree recursively in child-insertion order. Empty when no
	// root is designated, even if live processes remain (orphaned subtrees
	// are not reachable from the display traversal).
	Tree []TreeRow

	// HasRoot reports whether a root is currently designated.
	HasRoot bool

	// RootPID is the designated root, or proc.NoParent.
	RootPID int

	// Live is the number of processes in the table.
	Live int
}

// Snapshot returns a consistent copy of the queues and hierarchy.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Ready:   r.queueEntries(r.readyQueue),
		IOWait:  r.queueEntries(r.ioQueue),
		HasRoot: r.rootPID != proc.NoParent,
		RootPID: r.rootPID,
		Live:    len(r.procs),
	}

	if snap.HasRoot {
		snap.Tree = r.appendSubtree(nil, r.rootPID, 0)
	}

	return snap
}

// queueEntries resolves a PID queue to entries. Must be called with the
// lock held.
func (r *Registry) queueEntries(q []int) []QueueEntry {
	entries := make([]QueueEntry, 0, len(q))
	for _, pid := range q {
		if p, ok := r.procs[pid]; ok {
			entries = append(entries, QueueEntry{PID: p.PID, Name: p.Name})
		}
	}
	return entries
}

// appendSubtree appends the pre-order rows for pid's subtree.
// Must be called with the lock held.
func (r *Registry) appendSubtree(rows []TreeRow, pid, depth int) []TreeRow {
	p, ok := r.procs[pid]
	if !ok {
		return rows
	}
	rows = append(rows, TreeRow{PID: p.PID, Name: p.Name, Depth: depth})
	for _, child := range p.ChildPIDs {
		rows = r.appendSubtree(rows, child, depth+1)
	}
	return rows
}
