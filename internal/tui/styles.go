package tui

import "github.com/charmbracelet/lipgloss"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	chargingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dischargingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	fullStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	idleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	gaugeHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	gaugeMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	gaugeLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
