package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/randomizedcoder/go-proc-table/internal/logging"
	"github.com/randomizedcoder/go-proc-table/internal/registry"
)

// Menu choices.
const (
	choiceExit        = 0
	choiceCreate      = 1
	choiceCall        = 2
	choiceRequestIO   = 3
	choiceCompleteIO  = 4
	choiceTerminate   = 5
	choiceShowState   = 6
)

// Shell is the plain line-mode menu REPL. Input and output are injected so
// tests can script a session.
type Shell struct {
	reg      *registry.Registry
	scanner  *bufio.Scanner
	out      io.Writer
	activity *logging.ActivityLog
	logger   *slog.Logger
}

// Config holds shell dependencies.
type Config struct {
	Registry *registry.Registry
	In       io.Reader
	Out      io.Writer

	// Activity receives every status line. Optional.
	Activity *logging.ActivityLog

	// Logger for session events. Optional.
	Logger *slog.Logger
}

// New creates a shell.
func New(cfg Config) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	scanner := bufio.NewScanner(cfg.In)
	scanner.Split(bufio.ScanWords)

	return &Shell{
		reg:      cfg.Registry,
		scanner:  scanner,
		out:      cfg.Out,
		activity: cfg.Activity,
		logger:   logger,
	}
}

// Run executes the menu loop until the user exits or input is exhausted.
func (s *Shell) Run() error {
	for {
		s.printMenu()

		choice, ok := s.readInt("Enter choice: ")
		if !ok {
			// Input exhausted: treat like exit.
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		switch choice {
		case choiceCreate:
			s.doCreate()
		case choiceCall:
			s.doCall()
		case choiceRequestIO:
			s.doRequestIO()
		case choiceCompleteIO:
			s.doCompleteIO()
		case choiceTerminate:
			s.doTerminate()
		case choiceShowState:
			fmt.Fprint(s.out, RenderReport(s.reg.Snapshot()))
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting...")
			s.logger.Info("shell_exit")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprint(s.out, `
--- OS Process Manager (Console) ---
1. Create Process
2. Call Function
3. Request I/O
4. Complete I/O
5. Terminate Process
6. Show State
0. Exit
`)
}

// =============================================================================
// Menu actions
// =============================================================================

func (s *Shell) doCreate() {
	name, ok := s.readWord("Enter process name: ")
	if !ok {
		return
	}
	parentPID, ok := s.readInt("Enter parent PID (-1 if none): ")
	if !ok {
		return
	}

	pid := s.reg.Create(name, parentPID)
	s.report(StatusCreate(pid))
}

func (s *Shell) doCall() {
	pid, ok := s.readInt("Enter PID: ")
	if !ok {
		return
	}
	funcName, ok := s.readWord("Enter function name: ")
	if !ok {
		return
	}

	err := s.reg.CallFunction(pid, funcName)
	s.report(StatusCall(pid, funcName, err))
}

func (s *Shell) doRequestIO() {
	pid, ok := s.readInt("Enter PID: ")
	if !ok {
		return
	}

	err := s.reg.RequestIO(pid)
	s.report(StatusRequestIO(pid, err))
}

func (s *Shell) doCompleteIO() {
	pid, ok := s.readInt("Enter PID: ")
	if !ok {
		return
	}

	err := s.reg.CompleteIO(pid)
	s.report(StatusCompleteIO(pid, err))
}

func (s *Shell) doTerminate() {
	pid, ok := s.readInt("Enter PID: ")
	if !ok {
		return
	}

	err := s.reg.Terminate(pid)
	s.report(StatusTerminate(pid, err))
}

// report prints a status line and records it in the activity log.
func (s *Shell) report(line string) {
	fmt.Fprintln(s.out, line)
	if s.activity != nil {
		s.activity.Append(line)
	}
}

// =============================================================================
// Input helpers
// =============================================================================

// readWord prompts and reads a single whitespace-delimited token.
// ok is false when input is exhausted.
func (s *Shell) readWord(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// readInt prompts until it reads a valid integer. Malformed tokens are the
// shell's problem, not the registry's: it re-prompts.
func (s *Shell) readInt(prompt string) (int, bool) {
	for {
		word, ok := s.readWord(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(word)
		if err != nil {
			fmt.Fprintf(s.out, "Not a number: %s\n", word)
			continue
		}
		return n, true
	}
}
