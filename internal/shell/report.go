package shell

import (
	"fmt"
	"strings"

	"github.com/randomizedcoder/go-proc-table/internal/registry"
)

// RenderReport formats a registry snapshot as the three-section state
// report: ready queue, I/O queue, then the indented process tree.
func RenderReport(snap registry.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n--- Ready Queue ---\n")
	writeQueue(&b, snap.Ready)

	b.WriteString("\n--- I/O Queue ---\n")
	writeQueue(&b, snap.IOWait)

	b.WriteString("\n--- Process Tree ---\n")
	if snap.HasRoot {
		for _, row := range snap.Tree {
			indent := strings.Repeat("  ", row.Depth)
			fmt.Fprintf(&b, "%sPID: %d, Name: %s\n", indent, row.PID, row.Name)
		}
	} else {
		b.WriteString("(No processes created yet)\n")
	}
	b.WriteString("--------------------\n")

	return b.String()
}

func writeQueue(b *strings.Builder, entries []registry.QueueEntry) {
	for _, e := range entries {
		fmt.Fprintf(b, "PID: %d, Name: %s\n", e.PID, e.Name)
	}
}
