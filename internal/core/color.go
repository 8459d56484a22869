package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// groupPalette colors piece groups so neighbouring groups stay distinguishable.
var groupPalette = [...]Color{
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorOrange,
	ColorBrightBlue,
	ColorBrightRed,
}

// GroupColor returns the palette color for the i-th group, cycling when
// there are more groups than colors.
func GroupColor(i int) Color {
	return groupPalette[Wrap(i, len(groupPalette))]
}
