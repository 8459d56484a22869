package core

import "fmt"

// Cell is one grid square. Its type and seat label are fixed at construction;
// only occupancy changes afterwards.
type Cell struct {
	row      int
	col      int
	typ      CellType
	label    string
	occupant OccupantID
	blocker  bool // static obstacle, survives occupant changes
}

// NewCell creates a cell. Seats must carry a label and aisle cells must not.
func NewCell(row, col int, typ CellType, label string) (*Cell, error) {
	if row < 0 || col < 0 {
		return nil, invalid("NEGATIVE_POSITION", "cell (%d,%d) has a negative coordinate", row, col)
	}
	switch typ {
	case Seat:
		if label == "" {
			return nil, invalid("MISSING_LABEL", "seat at (%d,%d) has no label", row, col)
		}
	case NonSeat:
		if label != "" {
			return nil, invalid("UNEXPECTED_LABEL", "aisle cell at (%d,%d) has label %q", row, col, label)
		}
	default:
		return nil, invalid("BAD_CELL_TYPE", "cell (%d,%d) has unknown type %d", row, col, typ)
	}
	return &Cell{row: row, col: col, typ: typ, label: label}, nil
}

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column.
func (c *Cell) Col() int { return c.col }

// Type returns whether the cell is a seat.
func (c *Cell) Type() CellType { return c.typ }

// IsSeat is shorthand for Type() == Seat.
func (c *Cell) IsSeat() bool { return c.typ == Seat }

// SeatLabel returns the seat label, empty for aisle cells.
func (c *Cell) SeatLabel() string { return c.label }

// Key returns the cell's position, unique within a grid.
func (c *Cell) Key() Pos {
	return Pos{Row: c.row, Col: c.col}
}

// Occupant returns the piece standing on the cell, if any.
func (c *Cell) Occupant() (OccupantID, bool) {
	return c.occupant, c.occupant != NoOccupant
}

// SetOccupant places a piece on the cell. NoOccupant empties it.
func (c *Cell) SetOccupant(id OccupantID) {
	c.occupant = id
}

// ClearOccupant empties the cell. A static blocker stays in place.
func (c *Cell) ClearOccupant() {
	c.occupant = NoOccupant
}

// HasBlocker reports whether a static obstacle was placed on the cell.
func (c *Cell) HasBlocker() bool {
	return c.blocker
}

// Blocked reports whether pathfinding must treat the cell as impassable.
func (c *Cell) Blocked() bool {
	return c.blocker || c.occupant != NoOccupant
}

// Neighbors returns the cells reachable in one legal step, in the canonical
// order Right, Left, Down, Up. Out-of-bounds and blocked candidates are
// skipped, as are steps rejected by CanStep.
func (c *Cell) Neighbors(g *Grid) []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		dRow, dCol := d.Delta()
		n := g.Cell(c.row+dRow, c.col+dCol)
		if n == nil || n.Blocked() {
			continue
		}
		if !CanStep(c.typ, n.typ, d.Vertical()) {
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// String returns a short description for logs and test failures.
func (c *Cell) String() string {
	if c.typ == Seat {
		return fmt.Sprintf("seat %s (%d,%d)", c.label, c.row, c.col)
	}
	return fmt.Sprintf("aisle (%d,%d)", c.row, c.col)
}
