// Package styles provides Lipgloss styling for menu and command output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary     = lipgloss.Color("#00BFFF") // Deep Sky Blue
	Accent      = lipgloss.Color("#FFD700") // Gold
	Muted       = lipgloss.Color("#808080") // Gray
	Success     = lipgloss.Color("#00FF7F") // Spring Green
	Warning     = lipgloss.Color("#FFA500") // Orange
	BorderColor = lipgloss.Color("#0f3460") // Border color

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingLeft(2)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Help key style
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Accent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Key code readout
	KeyCodeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginTop(1)

	// ASCII Art banner style
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// MenuItem renders one numbered menu line.
func MenuItem(key, label string) string {
	return MenuItemStyle.Render(HelpKeyStyle.Render("["+key+"]") + "  " + label)
}

// MutedStyle returns a muted text style.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Muted)
}
