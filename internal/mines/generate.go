package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Populate places mineCount mines uniformly at random and derives the
// adjacency counts. A board can only be populated once.
func (b *Board) Populate(mineCount int, r Rand) error {
	if len(b.mines) > 0 {
		return ErrBoardPopulated
	}
	if mineCount < 0 || mineCount > b.size*b.size {
		return fmt.Errorf(
			"%w: %d mines do not fit on %dx%d board",
			ErrInvalidMineCount, mineCount, b.size, b.size,
		)
	}

	samples := b.placeMines(mineCount, r)
	b.countAdjacentMines()

	Log.WithFields(logrus.Fields{
		"size":    b.size,
		"mines":   mineCount,
		"samples": samples,
	}).Debug("board populated")

	return nil
}

// placeMines draws coordinates until mineCount distinct ones have been
// collected. Duplicates are thrown away and drawn again. Returns the number
// of draws.
func (b *Board) placeMines(mineCount int, r Rand) (samples int) {
	for len(b.mines) < mineCount {
		c := Coordinate{X: r.IntN(b.size), Y: r.IntN(b.size)}
		samples++
		if b.set.Has(c) {
			continue
		}
		b.placeMine(c)
	}
	return samples
}

func (b *Board) placeMine(c Coordinate) {
	b.cells[c.Y][c.X] = MineCell()
	b.mines = append(b.mines, c)
	b.set.Put(c)
}

// countAdjacentMines bumps the count of every non-mine neighbor once per
// adjacent mine.
func (b *Board) countAdjacentMines() {
	for _, m := range b.mines {
		for _, n := range m.Neighbors(b.size) {
			cell := &b.cells[n.Y][n.X]
			if !cell.Value.IsMine() {
				cell.Value++
			}
		}
	}
}
