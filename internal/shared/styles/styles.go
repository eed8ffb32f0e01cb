// Package styles centralizes the lipgloss styles used by the
// interactive session. Command outputs stay unstyled so pipeline
// hand-off remains plain text.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	User      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true) // green
	Path      = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))            // cyan
	Dollar    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("203")) // red
	Warning   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
	Banner    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	Info      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // grey
)
