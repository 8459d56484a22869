package core

// CanStep reports whether a piece may move one cell from a cell of type from
// to an adjacent cell of type to. Seats are entered and left from the side
// only: a vertical step is legal only between two aisle cells.
//
// The relation is symmetric, so any legal move can be walked back.
func CanStep(from, to CellType, vertical bool) bool {
	if !vertical {
		return true
	}
	return from != Seat && to != Seat
}
