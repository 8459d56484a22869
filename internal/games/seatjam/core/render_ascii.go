package core

import "strings"

// RenderASCII draws the board as text, one line per row. Each cell is the
// widest robot label wide plus a frame: seats are framed with [ ], aisle
// cells with spaces and blockers are filled with #. Robots show their label,
// empty cells a dot, and cells on path (other than its start) a star.
func RenderASCII(b *Board, path Path) string {
	g := b.Grid()

	width := 1
	for _, seat := range g.Seats() {
		if n := len(seat.SeatLabel()); n > width {
			width = n
		}
	}

	onPath := make(map[Pos]bool, len(path))
	for i, c := range path {
		if i > 0 {
			onPath[c.Key()] = true
		}
	}

	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			cell := g.Cell(row, col)
			if cell.HasBlocker() {
				sb.WriteString(strings.Repeat("#", width+2))
				continue
			}

			content := "."
			if r, ok := b.RobotAt(cell.Key()); ok {
				content = r.Label
			} else if onPath[cell.Key()] {
				content = "*"
			}

			open, closing := " ", " "
			if cell.IsSeat() {
				open, closing = "[", "]"
			}
			sb.WriteString(open)
			sb.WriteString(center(content, width))
			sb.WriteString(closing)
		}
	}
	return sb.String()
}

// center pads s with spaces to width, extra space going right.
func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
