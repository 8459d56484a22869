package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seatjam/internal/core"
)

// ansiPalette holds the ANSI 256-color code of every core.Color.
// ColorDefault has no entry and renders unstyled.
var ansiPalette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer turns screen buffers into terminal output.
type Renderer struct {
	mono   bool
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer. A monochrome renderer drops all colors,
// which keeps seat labels readable on terminals without color support.
func NewRenderer(mono bool) *Renderer {
	styles := make(map[core.Color]lipgloss.Style, len(ansiPalette))
	for c, code := range ansiPalette {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		if c >= core.ColorBrightRed && c <= core.ColorBrightWhite {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return &Renderer{mono: mono, styles: styles}
}

// Render converts s to a string. Runs of equally colored cells share one
// style so the output carries as few escape sequences as possible.
func (r *Renderer) Render(s *core.Screen) string {
	if r.mono {
		return s.String()
	}

	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		spanColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != spanColor {
				r.flush(&out, &span, spanColor)
				spanColor = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		r.flush(&out, &span, spanColor)
	}
	return out.String()
}

func (r *Renderer) flush(out, span *strings.Builder, c core.Color) {
	if span.Len() == 0 {
		return
	}
	if style, ok := r.styles[c]; ok {
		out.WriteString(style.Render(span.String()))
	} else {
		out.WriteString(span.String())
	}
	span.Reset()
}

// screenRenderer is shared by every game model.
var screenRenderer = NewRenderer(false)

// SetMonochrome switches game rendering between colored and plain output.
func SetMonochrome(mono bool) {
	screenRenderer = NewRenderer(mono)
}

// RenderScreen renders s with the shared renderer.
func RenderScreen(s *core.Screen) string {
	return screenRenderer.Render(s)
}
