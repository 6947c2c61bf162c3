package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorBase   = lipgloss.Color("#221C1A")
	ColorMuted  = lipgloss.Color("#8C8078")
	ColorText   = lipgloss.Color("#E0D8D0")
	ColorAccent = lipgloss.Color("#E0A458")
	ColorGreen  = lipgloss.Color("#a6e3a1")
	ColorRed    = lipgloss.Color("#f38ba8")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(1, 2)
)
