// Package shell implements the interactive menu surface of the process
// table: the numeric-menu REPL, the status message catalog, and the
// show-state report renderer. The TUI shell reuses the catalog and the
// renderer so both surfaces speak the same language.
package shell

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/go-proc-table/internal/registry"
)

// StatusCreate reports a successful create.
func StatusCreate(pid int) string {
	return fmt.Sprintf("Created process: PID=%d", pid)
}

// StatusCall reports the outcome of a call-function operation.
func StatusCall(pid int, funcName string, err error) string {
	if err != nil {
		return "Process not found."
	}
	return fmt.Sprintf("Process %d called function: %s", pid, funcName)
}

// StatusRequestIO reports the outcome of a request-I/O operation.
func StatusRequestIO(pid int, err error) string {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return "Process not found."
	case errors.Is(err, registry.ErrNotReady):
		return "Process not in ready queue."
	case err != nil:
		return err.Error()
	}
	return fmt.Sprintf("Process %d moved to I/O queue.", pid)
}

// StatusCompleteIO reports the outcome of a complete-I/O operation.
// Unknown PID and not-waiting-on-I/O produce the same message.
func StatusCompleteIO(pid int, err error) string {
	if err != nil {
		return "Process not found in I/O queue."
	}
	return fmt.Sprintf("Process %d completed I/O and returned to ready queue.", pid)
}

// StatusTerminate reports the outcome of a terminate operation.
func StatusTerminate(pid int, err error) string {
	if err != nil {
		return "Process not found."
	}
	return fmt.Sprintf("Process %d terminated.", pid)
}
