package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorTeal      = lipgloss.Color("#2EC4B6")
	colorDarkTeal  = lipgloss.Color("#1B9E93")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
	colorMemory    = lipgloss.Color("#9B59B6")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTeal).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorTeal).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorTeal).
				Padding(1, 2)

	// Modal overlay
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorTeal).
			Padding(1, 3)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	heroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTeal).
			Align(lipgloss.Center)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	categoryStyle = lipgloss.NewStyle().
			Foreground(colorDarkTeal).
			Italic(true)

	// Chart bars
	moodBarStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	memoryBarStyle = lipgloss.NewStyle().
			Foreground(colorMemory)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)
