package render

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorPrimary = lipgloss.Color("#E50914")
	colorAccent  = lipgloss.Color("#FFD700")
	colorMuted   = lipgloss.Color("#8C8C8C")
	colorText    = lipgloss.Color("#EEEEEE")
)

const (
	kpiCardWidth = 20
	barRune      = "█"
)

var styleHeading = lipgloss.NewStyle().
	Foreground(colorText).
	Bold(true).
	MarginTop(1)

// KPI card styles.
var styleCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1).
	Width(kpiCardWidth)

var styleCardLabel = lipgloss.NewStyle().
	Foreground(colorMuted)

var styleCardValue = lipgloss.NewStyle().
	Foreground(colorAccent).
	Bold(true)

var styleBar = lipgloss.NewStyle().
	Foreground(colorPrimary)

var styleLabel = lipgloss.NewStyle().
	Foreground(colorText)

var styleMuted = lipgloss.NewStyle().
	Foreground(colorMuted)

var styleInsight = lipgloss.NewStyle().
	Foreground(colorText).
	Italic(true).
	MarginTop(1)
