package core

import "sort"

// SeatMap maps each seat label to its position.
type SeatMap map[string]Pos

// Labels returns the seat labels in sorted order.
func (m SeatMap) Labels() []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// MaxGridSide is the largest number of rows or columns a grid may have.
const MaxGridSide = 256

// Grid owns a fixed rows x cols rectangle of cells.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []*Cell
	seats map[string]*Cell
}

// NewGrid builds a grid where every position listed in seats becomes a seat
// carrying that label and every other position an aisle cell.
func NewGrid(rows, cols int, seats SeatMap) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalid("BAD_DIMENSIONS", "grid must be at least 1x1, got %dx%d", rows, cols)
	}
	if rows > MaxGridSide || cols > MaxGridSide {
		return nil, invalid("GRID_TOO_LARGE", "grid %dx%d exceeds %dx%d", rows, cols, MaxGridSide, MaxGridSide)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]*Cell, rows*cols),
		seats: make(map[string]*Cell, len(seats)),
	}

	// Sorted for deterministic error reporting
	byPos := make(map[Pos]string, len(seats))
	for _, label := range seats.Labels() {
		pos := seats[label]
		if label == "" {
			return nil, invalid("EMPTY_LABEL", "seat at %s has an empty label", pos)
		}
		if !g.InBounds(pos) {
			return nil, invalid("SEAT_OUT_OF_BOUNDS", "seat %s at %s is outside %dx%d grid",
				label, pos, rows, cols)
		}
		if other, ok := byPos[pos]; ok {
			return nil, invalid("DUPLICATE_SEAT", "seats %s and %s share position %s",
				other, label, pos)
		}
		byPos[pos] = label
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			typ := NonSeat
			label, isSeat := byPos[P(row, col)]
			if isSeat {
				typ = Seat
			}
			cell, err := NewCell(row, col, typ, label)
			if err != nil {
				return nil, err
			}
			g.cells[g.index(row, col)] = cell
			if isSeat {
				g.seats[label] = cell
			}
		}
	}

	return g, nil
}

// index converts a position to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if the position is within the grid boundaries.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns the cell at (row, col), or nil when out of bounds.
// Every bounds check in the package goes through here.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return g.cells[g.index(row, col)]
}

// At is Cell for a Pos.
func (g *Grid) At(p Pos) *Cell {
	return g.Cell(p.Row, p.Col)
}

// Contains reports whether c is one of this grid's cells.
func (g *Grid) Contains(c *Cell) bool {
	if c == nil {
		return false
	}
	return g.Cell(c.row, c.col) == c
}

// SetBlocker places a permanent obstacle. Out-of-bounds positions are ignored.
func (g *Grid) SetBlocker(row, col int) {
	if cell := g.Cell(row, col); cell != nil {
		cell.blocker = true
	}
}

// Seats returns all seat cells in row-major order.
func (g *Grid) Seats() []*Cell {
	seats := make([]*Cell, 0, len(g.seats))
	for _, cell := range g.cells {
		if cell.typ == Seat {
			seats = append(seats, cell)
		}
	}
	return seats
}

// SeatByLabel returns the seat with the given label, or nil.
func (g *Grid) SeatByLabel(label string) *Cell {
	return g.seats[label]
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	cells := make([]*Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Clone returns a deep copy of the grid, occupancy included.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]*Cell, len(g.cells)),
		seats: make(map[string]*Cell, len(g.seats)),
	}
	for i, cell := range g.cells {
		cp := *cell
		clone.cells[i] = &cp
		if cp.typ == Seat {
			clone.seats[cp.label] = &cp
		}
	}
	return clone
}
