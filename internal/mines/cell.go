package mines

import "strconv"

// CellValue is what a cell hides: -1 for a mine, 0 to 8 for the number of
// mined neighbors.
type CellValue int8

const Mine CellValue = -1

func Number(n int) CellValue {
	return CellValue(n)
}

func (v CellValue) IsMine() bool {
	return v == Mine
}

// Count returns the adjacency count, or false for a mine.
func (v CellValue) Count() (int, bool) {
	if v.IsMine() {
		return 0, false
	}
	return int(v), true
}

func (v CellValue) String() string {
	if v.IsMine() {
		return "X"
	}
	return strconv.Itoa(int(v))
}

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "!"
	}
}

type Cell struct {
	Value CellValue
	State CellState
}

func NumberCell(n int) Cell {
	return Cell{Value: Number(n), State: Hidden}
}

func MineCell() Cell {
	return Cell{Value: Mine, State: Hidden}
}

// Glyph is the character a player sees for the cell: "?" while hidden,
// "F" when flagged, otherwise the value ("X" or a digit).
func (c Cell) Glyph() string {
	switch c.State {
	case Hidden:
		return "?"
	case Flagged:
		return "F"
	default:
		return c.Value.String()
	}
}
