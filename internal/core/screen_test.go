package core

import (
	"strings"
	"testing"
)

// rows returns every screen row, for whole-screen comparisons.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		draw func(s *Screen)
		want []string
	}{
		{
			name: "blank",
			w:    4, h: 2,
			draw: func(*Screen) {},
			want: []string{"    ", "    "},
		},
		{
			name: "set ignores out of bounds",
			w:    3, h: 2,
			draw: func(s *Screen) {
				s.Set(1, 1, 'X')
				s.Set(-1, 0, 'A')
				s.Set(3, 0, 'A')
				s.Set(0, -1, 'A')
				s.Set(0, 2, 'A')
			},
			want: []string{"   ", " X "},
		},
		{
			name: "clear after rect",
			w:    3, h: 2,
			draw: func(s *Screen) {
				s.DrawRect(Rect{W: 3, H: 2}, '#')
				s.Clear()
			},
			want: []string{"   ", "   "},
		},
		{
			name: "text clipped at right edge",
			w:    6, h: 2,
			draw: func(s *Screen) {
				s.DrawTextWithColor(1, 0, "Row", ColorDefault)
				s.DrawTextWithColor(4, 1, "Seat", ColorDefault)
			},
			want: []string{" Row  ", "    Se"},
		},
		{
			name: "centered text",
			w:    8, h: 1,
			draw: func(s *Screen) { s.DrawTextCenteredWithColor(0, "A1", ColorDefault) },
			want: []string{"   A1   "},
		},
		{
			name: "rect",
			w:    5, h: 4,
			draw: func(s *Screen) { s.DrawRect(Rect{X: 1, Y: 1, W: 3, H: 2}, '.') },
			want: []string{"     ", " ... ", " ... ", "     "},
		},
		{
			name: "box",
			w:    6, h: 4,
			draw: func(s *Screen) { s.DrawBoxWithColor(Rect{W: 5, H: 4}, ColorDefault) },
			want: []string{"┌───┐ ", "│   │ ", "│   │ ", "└───┘ "},
		},
		{
			name: "line clipped at right edge",
			w:    5, h: 2,
			draw: func(s *Screen) { s.DrawHLine(2, 1, 6, '-', ColorGray) },
			want: []string{"     ", "  ---"},
		},
		{
			name: "empty rect draws nothing",
			w:    3, h: 1,
			draw: func(s *Screen) { s.DrawRect(Rect{X: 1, W: 0, H: 1}, '#') },
			want: []string{"   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.w, tt.h)
			tt.draw(s)
			got := rows(s)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for y := range tt.want {
				if got[y] != tt.want[y] {
					t.Errorf("row %d = %q, want %q", y, got[y], tt.want[y])
				}
			}
		})
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		if got := s.GetCell(p[0], p[1]).Rune; got != ' ' {
			t.Errorf("GetCell(%d, %d) = %q, want space", p[0], p[1], got)
		}
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want blank row", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextWithColor(0, 0, "Hello", ColorDefault)
	s.SetWithColor(0, 1, 'A', ColorBlue)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hel" {
		t.Errorf("Row(0) after shrink = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "Hel   " {
		t.Errorf("Row(0) after grow = %q", got)
	}
	if cell := s.GetCell(0, 1); cell.Rune != 'A' || cell.Color != ColorBlue {
		t.Errorf("colored cell lost on resize: %+v", cell)
	}
}

func TestScreenColorCells(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetWithColor(1, 1, '@', ColorRed)
	if cell := s.GetCell(1, 1); cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, want '@' in red", cell)
	}

	s.Set(1, 1, 'x')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	if cell := s.GetCell(-1, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out of bounds GetCell should be blank, got %+v", cell)
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextWithColor(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextWithColor(1, 0, "Seat→A1", ColorYellow)

	// Multi-byte runes occupy one column each
	if s.Row(0) != " Seat→A1    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	for x := 1; x <= 7; x++ {
		if s.GetCell(x, 0).Color != ColorYellow {
			t.Errorf("expected yellow at x=%d", x)
		}
	}
	if s.GetCell(8, 0).Color != ColorDefault {
		t.Error("color should not leak past the text")
	}
}

func TestScreenDrawTextCenteredRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCenteredWithColor(0, "→→", ColorCyan)
	if s.Row(0) != "    →→    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBoxWithColor(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBoxWithColor(Rect{W: 4, H: 3}, ColorGray)
	for _, p := range [][2]int{{0, 0}, {3, 0}, {0, 2}, {3, 2}, {1, 0}, {0, 1}} {
		if c := s.GetCell(p[0], p[1]).Color; c != ColorGray {
			t.Errorf("border cell (%d, %d) color = %v, want gray", p[0], p[1], c)
		}
	}
	if c := s.GetCell(1, 1).Color; c != ColorDefault {
		t.Errorf("interior color = %v, want default", c)
	}
}

func TestScreenDrawHLineColor(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 3, '▓', ColorGray)
	for x := 1; x <= 3; x++ {
		if c := s.GetCell(x, 0); c.Rune != '▓' || c.Color != ColorGray {
			t.Errorf("cell %d = %q %v", x, c.Rune, c.Color)
		}
	}
	if s.GetCell(4, 0).Rune != ' ' {
		t.Error("line should stop at its length")
	}
}
