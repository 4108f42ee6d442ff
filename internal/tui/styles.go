package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 5

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder())

	xStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	oStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	emptyStyle   = lipgloss.NewStyle().Faint(true)
	winningStyle = lipgloss.NewStyle().Background(lipgloss.Color("28"))
	cursorStyle  = lipgloss.NewStyle().BorderForeground(lipgloss.Color("226"))

	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)
