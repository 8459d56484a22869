package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// SeatJamTheme contains the styles of the Seat Jam menus.
type SeatJamTheme struct {
	HUDControls lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemCleared lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultSeatJamTheme returns the default visual theme.
func DefaultSeatJamTheme() SeatJamTheme {
	return SeatJamTheme{
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemCleared: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeSeatJamTheme returns a grayscale theme.
func MonochromeSeatJamTheme() SeatJamTheme {
	theme := DefaultSeatJamTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemCleared = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// seatjamTheme is the theme used by new level pickers.
var seatjamTheme = DefaultSeatJamTheme()

// SetSeatJamTheme sets the global theme.
func SetSeatJamTheme(theme SeatJamTheme) {
	seatjamTheme = theme
}

// GetSeatJamTheme returns the current global theme.
func GetSeatJamTheme() SeatJamTheme {
	return seatjamTheme
}
