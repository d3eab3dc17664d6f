package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorEmerald   = lipgloss.Color("#10B981")
	colorEmeraldLt = lipgloss.Color("#6EE7B7")
	colorSlate     = lipgloss.Color("#94A3B8")
	colorSlateDk   = lipgloss.Color("#334155")
	colorAmber     = lipgloss.Color("#F59E0B")
	colorRose      = lipgloss.Color("#FDA4AF")
	colorPurple    = lipgloss.Color("#9333EA")
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorError     = lipgloss.Color("#EF4444")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	labelStyle  = lipgloss.NewStyle().Foreground(colorSlate)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorSlate)

	// dish cell categories
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorEmerald)
	servedStyle  = lipgloss.NewStyle().Foreground(colorSlate).Background(colorSlateDk)
	pendingStyle = lipgloss.NewStyle().Foreground(colorWhite)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	allergyMarkStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
	specialPendingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRose)
	specialProvidedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorEmeraldLt)
	pairingStyle         = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorPurple)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(0, 1)
	pickStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorEmerald)

	statusStyle    = lipgloss.NewStyle().Foreground(colorEmerald)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)
