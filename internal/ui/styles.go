// Package ui provides Charm-based UI components for orderctl
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Text styles
	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Box styles
	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	// Status indicators
	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			SetString("✓")

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			SetString("✗")

	StatusPending = lipgloss.NewStyle().
			Foreground(Muted).
			SetString("○")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 1).
			Bold(true).
			Width(60).
			Align(lipgloss.Center)

	HintStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// Banner returns the orderctl ASCII banner
func Banner() string {
	banner := `
   ___  ___ ___  ___ ___ ___ ___ _____ _
  / _ \| _ \   \| __| _ \ __|_ _|_   _| |
 | (_) |   / |) | _||   / _| | |  | | | |__
  \___/|_|_\___/|___|_|_\___|___| |_| |____|`
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render(banner)
}

// Header renders a screen header bar
func Header(title string) string {
	return HeaderStyle.Render(title)
}

// tagStyles colors the leading classification tag of a report line.
var tagStyles = []struct {
	tag   string
	style lipgloss.Style
}{
	{"[CREATE]", SuccessStyle},
	{"[SKIP]", WarningStyle},
	{"[ERROR]", ErrorStyle},
}

// StyleReportLine colors the classification tag of a report line when color
// is enabled. The text itself is never altered, so piped output stays
// byte-identical to the plain report.
func StyleReportLine(line string) string {
	if !ColorEnabled() {
		return line
	}
	for _, ts := range tagStyles {
		if strings.HasPrefix(line, ts.tag) {
			return ts.style.Render(ts.tag) + strings.TrimPrefix(line, ts.tag)
		}
	}
	return line
}
