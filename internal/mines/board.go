package mines

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Board owns a size×size grid of cells and the coordinates of its mines.
// Cells are stored row by row, so cells[y][x] is the cell at (x,y).
type Board struct {
	cells [][]Cell
	size  int
	mines []Coordinate
	set   mapset.Set[Coordinate]
}

// NewBoard returns an empty board: every cell is Number(0) and hidden.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	cells := make([][]Cell, size)
	for y := range size {
		cells[y] = make([]Cell, size)
		for x := range size {
			cells[y][x] = NumberCell(0)
		}
	}
	return &Board{
		cells: cells,
		size:  size,
		set:   mapset.New[Coordinate](),
	}, nil
}

// NewBoardWithMines builds a board with mines at exactly the given
// coordinates and derives the adjacency counts.
func NewBoardWithMines(size int, mines ...Coordinate) (*Board, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	if len(mines) > size*size {
		return nil, fmt.Errorf(
			"%w: %d mines do not fit on %dx%d board",
			ErrInvalidMineCount, len(mines), size, size,
		)
	}
	for _, c := range mines {
		if b.at(c) == nil {
			return nil, fmt.Errorf("%w: mine at %s", ErrOutOfBounds, c)
		}
		if b.set.Has(c) {
			return nil, fmt.Errorf(
				"%w: duplicate mine at %s", ErrInvalidMineCount, c,
			)
		}
		b.placeMine(c)
	}
	b.countAdjacentMines()
	return b, nil
}

// Reshuffle generates a brand new board with the same shape. Nothing is
// carried over from any previous board.
func Reshuffle(size, mineCount int, r Rand) (*Board, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	if err := b.Populate(mineCount, r); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) MineCount() int {
	return len(b.mines)
}

// MineCoords returns a copy of the mine coordinates in placement order.
func (b *Board) MineCoords() []Coordinate {
	return append([]Coordinate(nil), b.mines...)
}

func (b *Board) IsMine(c Coordinate) bool {
	return b.set.Has(c)
}

func (b *Board) Cell(c Coordinate) (Cell, bool) {
	p := b.at(c)
	if p == nil {
		return Cell{}, false
	}
	return *p, true
}

func (b *Board) at(c Coordinate) *Cell {
	if c.X < 0 || c.Y < 0 || c.X >= b.size || c.Y >= b.size {
		return nil
	}
	return &b.cells[c.Y][c.X]
}

// ResetVisibility hides every cell again. Mine positions and counts stay.
func (b *Board) ResetVisibility() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x].State = Hidden
		}
	}
}

// Board implements [fmt.Stringer]. It prints cell values regardless of
// their state, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.Value.String())
		}
	}
	return sb.String()
}
