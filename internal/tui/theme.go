package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Tab bar styles
	TabStyle       = lipgloss.NewStyle().Padding(0, 2)
	ActiveTabStyle = TabStyle.Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))
	InactiveTabStyle = TabStyle.
				Foreground(lipgloss.Color("#888888"))

	// Action colors
	ActionCallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ActionPutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ActionWaitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))

	// Result colors
	ResultWinStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	ResultLossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	ResultPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// General styles
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	SubtextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	BorderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555555"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	StatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	// Stat cards
	CardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	CardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
)
