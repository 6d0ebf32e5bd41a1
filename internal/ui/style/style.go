// Package style provides shared styling primitives for CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
	Slate = lipgloss.Color("#667085")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Green)
	failureStyle = lipgloss.NewStyle().Foreground(Red)
	mutedStyle   = lipgloss.NewStyle().Foreground(Slate)
)

// Success renders a result line for a completed operation.
func Success(msg string) string {
	return successStyle.Render(Check) + " " + msg
}

// Failure renders a result line for a failed operation.
func Failure(msg string) string {
	return failureStyle.Render(Cross) + " " + msg
}

// Muted renders secondary detail text.
func Muted(msg string) string {
	return mutedStyle.Render(msg)
}
