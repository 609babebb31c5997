package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/randomizedcoder/go-proc-table/internal/registry"
)

// activityPaneLines is how many recent status lines the dashboard shows.
const activityPaneLines = 6

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderState(),
		m.renderInput(),
		m.renderStatus(),
		m.renderActivity(),
		m.renderFooter(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// Header
// =============================================================================

func (m Model) renderHeader() string {
	header := fmt.Sprintf(
		" go-proc-table │ live: %d │ ready: %d │ io-wait: %d │ elapsed: %s ",
		m.snap.Live,
		len(m.snap.Ready),
		len(m.snap.IOWait),
		formatDuration(m.Elapsed()),
	)
	return headerStyle.Render(header)
}

// =============================================================================
// State report
// =============================================================================

func (m Model) renderState() string {
	var b strings.Builder

	b.WriteString(sectionHeaderStyle.Render("Ready Queue"))
	b.WriteString("\n")
	b.WriteString(renderQueue(m.snap.Ready))

	b.WriteString(sectionHeaderStyle.Render("I/O Queue"))
	b.WriteString("\n")
	b.WriteString(renderQueue(m.snap.IOWait))

	b.WriteString(sectionHeaderStyle.Render("Process Tree"))
	b.WriteString("\n")
	if m.snap.HasRoot {
		for _, row := range m.snap.Tree {
			indent := strings.Repeat("  ", row.Depth)
			line := fmt.Sprintf("%sPID: %d, Name: %s", indent, row.PID, row.Name)
			b.WriteString(treeStyle.Render(line))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(emptyStyle.Render("(No processes created yet)"))
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderQueue(entries []registry.QueueEntry) string {
	if len(entries) == 0 {
		return emptyStyle.Render("(empty)") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(treeStyle.Render(fmt.Sprintf("PID: %d, Name: %s", e.PID, e.Name)))
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Menu / prompt
// =============================================================================

func (m Model) renderInput() string {
	if m.mode == modePrompt {
		prompt := m.prompts[len(m.answers)]
		return promptStyle.Render(fmt.Sprintf(" %s: ", prompt)) +
			inputStyle.Render(m.input+"█")
	}

	var parts []string
	for _, item := range menuItems {
		parts = append(parts, menuKeyStyle.Render(item.key)+" "+menuLabelStyle.Render(item.label))
	}
	parts = append(parts, menuKeyStyle.Render("q")+" "+menuLabelStyle.Render("Quit"))

	return " " + strings.Join(parts, "   ")
}

// =============================================================================
// Status + activity
// =============================================================================

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return " " + statusErrStyle.Render(m.status)
	}
	return " " + statusOKStyle.Render(m.status)
}

func (m Model) renderActivity() string {
	if m.activity == nil {
		return ""
	}

	lines := m.activity.Recent(activityPaneLines)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Recent Activity"))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(activityStyle.Render("  " + line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// =============================================================================
// Footer
// =============================================================================

func (m Model) renderFooter() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("ops: %d", m.opStats.Total))
	if m.opStats.Total > 0 {
		parts = append(parts, fmt.Sprintf("p50: %s", m.opStats.P50))
		parts = append(parts, fmt.Sprintf("p99: %s", m.opStats.P99))
	}
	if m.metricsAddr != "" {
		parts = append(parts, fmt.Sprintf("metrics: http://%s/metrics", m.metricsAddr))
	}
	parts = append(parts, "esc cancels prompts • q quits")

	return footerStyle.Render(" " + strings.Join(parts, " │ "))
}
