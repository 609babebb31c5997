package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomizedcoder/go-proc-table/internal/logging"
	"github.com/randomizedcoder/go-proc-table/internal/registry"
	"github.com/randomizedcoder/go-proc-table/internal/shell"
	"github.com/randomizedcoder/go-proc-table/internal/stats"
)

// =============================================================================
// Messages
// =============================================================================

// TickMsg is sent periodically to refresh the stats footer.
type TickMsg time.Time

// =============================================================================
// Model
// =============================================================================

// inputMode is the keyboard mode: picking a menu item or answering prompts.
type inputMode int

const (
	modeMenu inputMode = iota
	modePrompt
)

// action identifies the menu operation being collected.
type action int

const (
	actionCreate action = iota
	actionCall
	actionRequestIO
	actionCompleteIO
	actionTerminate
)

// menuItem is one row of the menu pane.
type menuItem struct {
	key    string
	label  string
	action action
}

var menuItems = []menuItem{
	{"1", "Create Process", actionCreate},
	{"2", "Call Function", actionCall},
	{"3", "Request I/O", actionRequestIO},
	{"4", "Complete I/O", actionCompleteIO},
	{"5", "Terminate Process", actionTerminate},
}

// actionPrompts lists the questions asked for each action, in order.
var actionPrompts = map[action][]string{
	actionCreate:     {"Process name", "Parent PID (-1 if none)"},
	actionCall:       {"PID", "Function name"},
	actionRequestIO:  {"PID"},
	actionCompleteIO: {"PID"},
	actionTerminate:  {"PID"},
}

// Model represents the TUI state.
type Model struct {
	// Dependencies
	reg         *registry.Registry
	activity    *logging.ActivityLog
	tracker     *stats.OpTracker
	metricsAddr string

	// Current state
	snap    registry.Snapshot
	opStats stats.OpStats

	// Input state
	mode    inputMode
	pending action
	prompts []string
	answers []string
	input   string

	// Last operation result
	status      string
	statusIsErr bool

	// Display
	width     int
	height    int
	startTime time.Time
	quitting  bool
}

// Config holds TUI dependencies.
type Config struct {
	Registry *registry.Registry

	// Activity receives every status line. Optional.
	Activity *logging.ActivityLog

	// Tracker feeds the latency footer. Optional.
	Tracker *stats.OpTracker

	// MetricsAddr is shown in the footer when metrics are being served.
	MetricsAddr string
}

// New creates a new TUI model.
func New(cfg Config) Model {
	m := Model{
		reg:         cfg.Registry,
		activity:    cfg.Activity,
		tracker:     cfg.Tracker,
		metricsAddr: cfg.MetricsAddr,
		mode:        modeMenu,
		startTime:   time.Now(),
		width:       80,
		height:      24,
	}
	m.snap = cfg.Registry.Snapshot()
	return m
}

// =============================================================================
// Bubble Tea Interface
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modePrompt {
			return m.updatePrompt(msg)
		}
		return m.updateMenu(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.snap = m.reg.Snapshot()
		if m.tracker != nil {
			m.opStats = m.tracker.Stats()
		}
		return m, tickCmd()
	}

	return m, nil
}

// updateMenu handles keys while picking a menu item.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		for _, item := range menuItems {
			if item.key == key {
				m.mode = modePrompt
				m.pending = item.action
				m.prompts = actionPrompts[item.action]
				m.answers = nil
				m.input = ""
				break
			}
		}
		return m, nil

	case "6", "r":
		// Show State: the report pane is always live, so this is a refresh.
		m.snap = m.reg.Snapshot()
		m.status = ""
		return m, nil
	}

	return m, nil
}

// updatePrompt handles keys while collecting prompt answers.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = modeMenu
		m.input = ""
		m.answers = nil
		return m, nil

	case tea.KeyEnter:
		if m.input == "" {
			return m, nil
		}
		m.answers = append(m.answers, m.input)
		m.input = ""
		if len(m.answers) == len(m.prompts) {
			m = m.execute()
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.input += " "
		return m, nil

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

// execute runs the collected action against the registry and records the
// resulting status line.
func (m Model) execute() Model {
	m.mode = modeMenu

	var status string
	var err error

	switch m.pending {
	case actionCreate:
		name := m.answers[0]
		parentPID, parseErr := strconv.Atoi(m.answers[1])
		if parseErr != nil {
			return m.parseFailure(m.answers[1])
		}
		pid := m.reg.Create(name, parentPID)
		status = shell.StatusCreate(pid)

	case actionCall:
		pid, parseErr := strconv.Atoi(m.answers[0])
		if parseErr != nil {
			return m.parseFailure(m.answers[0])
		}
		funcName := m.answers[1]
		err = m.reg.CallFunction(pid, funcName)
		status = shell.StatusCall(pid, funcName, err)

	case actionRequestIO:
		pid, parseErr := strconv.Atoi(m.answers[0])
		if parseErr != nil {
			return m.parseFailure(m.answers[0])
		}
		err = m.reg.RequestIO(pid)
		status = shell.StatusRequestIO(pid, err)

	case actionCompleteIO:
		pid, parseErr := strconv.Atoi(m.answers[0])
		if parseErr != nil {
			return m.parseFailure(m.answers[0])
		}
		err = m.reg.CompleteIO(pid)
		status = shell.StatusCompleteIO(pid, err)

	case actionTerminate:
		pid, parseErr := strconv.Atoi(m.answers[0])
		if parseErr != nil {
			return m.parseFailure(m.answers[0])
		}
		err = m.reg.Terminate(pid)
		status = shell.StatusTerminate(pid, err)
	}

	m.status = status
	m.statusIsErr = err != nil
	if m.activity != nil {
		m.activity.Append(status)
	}

	m.snap = m.reg.Snapshot()
	if m.tracker != nil {
		m.opStats = m.tracker.Stats()
	}
	m.answers = nil

	return m
}

// parseFailure reports a malformed numeric answer without touching the
// registry.
func (m Model) parseFailure(word string) Model {
	m.status = fmt.Sprintf("Not a number: %s", word)
	m.statusIsErr = true
	m.answers = nil
	return m
}

// =============================================================================
// Commands
// =============================================================================

// tickCmd returns a command that sends a tick after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// =============================================================================
// Accessors
// =============================================================================

// Elapsed returns the time since the shell started.
func (m Model) Elapsed() time.Duration {
	return time.Since(m.startTime)
}

// Status returns the last operation's status line.
func (m Model) Status() string {
	return m.status
}

// =============================================================================
// Formatting Helpers (used by view.go)
// =============================================================================

// formatDuration formats a duration as HH:MM:SS.
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	mi := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, mi, s)
}
