// Package core implements the Seat Jam board: a rectangular grid of seat and
// aisle cells, the movement rules between them, and breadth-first pathfinding.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// CellType distinguishes seats from the aisle cells around them.
type CellType uint8

const (
	NonSeat CellType = iota
	Seat
)

// String returns the string representation of a cell type.
func (t CellType) String() string {
	switch t {
	case NonSeat:
		return "nonSeat"
	case Seat:
		return "seat"
	default:
		return "unknown"
	}
}

// Pos is a (row, col) position on the grid. Row grows downward.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns the "row,col" form used for keys and the CLI.
func (p Pos) String() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// Add returns a new Pos offset by (dRow, dCol).
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the neighbouring Pos in the given direction.
func (p Pos) Step(d Dir) Pos {
	dRow, dCol := d.Delta()
	return p.Add(dRow, dCol)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// ParsePos parses a "row,col" string.
func ParsePos(s string) (Pos, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Pos{}, fmt.Errorf("position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: bad col: %w", s, err)
	}
	return P(row, col), nil
}

// Dir is one of the four orthogonal step directions.
type Dir uint8

const (
	DirRight Dir = iota
	DirLeft
	DirDown
	DirUp
)

// neighborOrder is the canonical enumeration order for neighbours.
// It decides which path is returned when several shortest paths exist.
var neighborOrder = [...]Dir{DirRight, DirLeft, DirDown, DirUp}

// Directions returns the canonical neighbour enumeration order.
func Directions() []Dir {
	return neighborOrder[:]
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case DirRight:
		return 0, 1
	case DirLeft:
		return 0, -1
	case DirDown:
		return 1, 0
	case DirUp:
		return -1, 0
	default:
		return 0, 0
	}
}

// Vertical reports whether the direction changes the row.
func (d Dir) Vertical() bool {
	return d == DirUp || d == DirDown
}

// OccupantID identifies the piece standing on a cell. The zero value means empty.
type OccupantID string

// NoOccupant marks an empty cell.
const NoOccupant OccupantID = ""
