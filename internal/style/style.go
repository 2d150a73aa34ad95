// Package style provides consistent terminal styling using Lipgloss.
// Styling only applies when the diagnostic stream is an interactive
// terminal; CI logs get plain text.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// Success style for positive outcomes (green)
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)

	// Error style for failures (red)
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Bold(true)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)
)

// ErrorPrefix returns the prefix for fatal diagnostics, styled only when
// stderr is a terminal.
func ErrorPrefix() string {
	return errorPrefix(term.IsTerminal(int(os.Stderr.Fd())))
}

func errorPrefix(interactive bool) string {
	if interactive {
		return Error.Render("✗ Error:")
	}
	return "Error:"
}
