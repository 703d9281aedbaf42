package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	titleStyle          = lipgloss.NewStyle().Bold(true)
	helpStyle           = lipgloss.NewStyle().Faint(true)
	errorStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	focusedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	buttonStyle         = lipgloss.NewStyle().Bold(true)
	disabledButtonStyle = lipgloss.NewStyle().Faint(true)
	linkStyle           = lipgloss.NewStyle().Underline(true)
	overlayBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
