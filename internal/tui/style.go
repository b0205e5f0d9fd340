package tui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	headerStyle   = lipgloss.NewStyle().Bold(true)
	helpBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	sortTagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	modalStyle       = lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	labelStyle       = lipgloss.NewStyle().Bold(true)
	focusedLabel     = labelStyle.Foreground(lipgloss.Color("33"))
	valueMuted       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	fieldErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
)
