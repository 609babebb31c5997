package shell

import (
	"fmt"
	"io"

	"github.com/randomizedcoder/go-proc-table/internal/registry"
)

// RunDemo drives the registry through a scripted walkthrough and prints
// each status line plus the final state report. Used by -demo as a
// no-input diagnostic mode.
func RunDemo(reg *registry.Registry, out io.Writer) {
	step := func(line string) {
		fmt.Fprintln(out, line)
	}

	init := reg.Create("init", -1)
	step(StatusCreate(init))

	child := reg.Create("child", init)
	step(StatusCreate(child))

	err := reg.CallFunction(child, "read_disk")
	step(StatusCall(child, "read_disk", err))

	err = reg.RequestIO(child)
	step(StatusRequestIO(child, err))

	fmt.Fprint(out, RenderReport(reg.Snapshot()))

	err = reg.CompleteIO(child)
	step(StatusCompleteIO(child, err))

	err = reg.Terminate(init)
	step(StatusTerminate(init, err))

	// The child survives its parent but the tree has no root to display.
	fmt.Fprint(out, RenderReport(reg.Snapshot()))
}
