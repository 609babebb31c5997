// Package tui provides the terminal dashboard shell for the process table.
//
// The TUI uses Bubble Tea for the application framework and Lipgloss for
// styling. It shows the live state report (queues + tree), a recent
// activity feed, and an operation-latency footer, and drives the same six
// menu operations as the plain shell.
package tui

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

// Colors based on a modern dark theme
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan

	colorSuccess = lipgloss.Color("#10B981") // Green
	colorError   = lipgloss.Color("#EF4444") // Red

	colorText      = lipgloss.Color("#E5E7EB") // Light gray
	colorTextMuted = lipgloss.Color("#9CA3AF") // Medium gray
	colorTextDim   = lipgloss.Color("#6B7280") // Dark gray
	colorBorder    = lipgloss.Color("#374151") // Border gray
)

// =============================================================================
// Styles
// =============================================================================

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	menuLabelStyle = lipgloss.NewStyle().
			Foreground(colorText)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	activityStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	treeStyle = lipgloss.NewStyle().
			Foreground(colorText)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			MarginTop(1)
)
