package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)

	itemStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	itemSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	itemDoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)

	helpBarStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	promptStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	statusInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	footerCountStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerClearHintKey = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
