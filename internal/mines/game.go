package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Engine is the game controller. It exclusively owns its board and keeps a
// cursor that always stays on the board.
type Engine struct {
	board  *Board
	cursor Coordinate
	status Status
	rnd    Rand
}

// NewEngine takes ownership of a populated board. r is used to generate
// boards on [Engine.Reset]; a nil r gets a freshly seeded generator.
func NewEngine(board *Board, r Rand) (*Engine, error) {
	if board == nil || board.size <= 0 {
		return nil, fmt.Errorf("%w: no board", ErrInvalidSize)
	}
	if r == nil {
		r = NewRand(0)
	}
	return &Engine{board: board, rnd: r}, nil
}

func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) Cursor() Coordinate {
	return e.cursor
}

func (e *Engine) Size() int {
	return e.board.size
}

func (e *Engine) MineCount() int {
	return e.board.MineCount()
}

func (e *Engine) Cell(c Coordinate) (Cell, bool) {
	return e.board.Cell(c)
}

func (e *Engine) FlagCount() int {
	n := 0
	for _, row := range e.board.cells {
		for _, cell := range row {
			if cell.State == Flagged {
				n++
			}
		}
	}
	return n
}

// MoveCursor moves the cursor by d. Moving against an edge does nothing.
func (e *Engine) MoveCursor(d Delta) {
	if c, ok := e.cursor.OffsetAndClamp(d, e.board.size); ok {
		e.cursor = c
	}
}

func (e *Engine) ToggleFlag() {
	if e.status != Playing {
		return
	}
	cell := e.board.at(e.cursor)
	switch cell.State {
	case Hidden:
		cell.State = Flagged
	case Flagged:
		cell.State = Hidden
	}
}

func (e *Engine) RevealAtCursor() {
	e.Reveal(e.cursor)
}

// Reveal opens the cell at c. Flagged cells are left alone. Opening a mine
// loses the game; opening a zero opens its whole zero region together with
// the numbered cells around it.
func (e *Engine) Reveal(c Coordinate) {
	if e.status != Playing || e.board.at(c) == nil {
		return
	}
	e.reveal(c)
	if e.status == Playing && e.WinCheck() {
		e.status = Won
		Log.WithField("mines", e.board.MineCount()).Debug("game won")
	}
}

func (e *Engine) reveal(c Coordinate) {
	cell := e.board.at(c)
	if cell.State == Flagged {
		return
	}
	cell.State = Revealed
	if cell.Value.IsMine() {
		e.status = Lost
		Log.WithField("at", c.String()).Debug("mine revealed, game lost")
		return
	}

	opened := 1
	stack := []Coordinate{c}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.board.at(top).Value != Number(0) {
			continue
		}
		for _, n := range top.Neighbors(e.board.size) {
			neighbor := e.board.at(n)
			if neighbor.State != Hidden || neighbor.Value.IsMine() {
				continue
			}
			neighbor.State = Revealed
			opened++
			stack = append(stack, n)
		}
	}

	Log.WithFields(logrus.Fields{
		"at":     c.String(),
		"opened": opened,
	}).Debug("revealed")
}

// ChordAtCursor opens every hidden neighbor of the cursor cell, provided the
// cell is a revealed number with exactly that many flagged neighbors.
func (e *Engine) ChordAtCursor() {
	if e.status != Playing {
		return
	}
	cell := e.board.at(e.cursor)
	n, ok := cell.Value.Count()
	if cell.State != Revealed || !ok {
		return
	}

	neighbors := e.cursor.Neighbors(e.board.size)
	hidden := make([]Coordinate, 0, len(neighbors))
	flags := 0
	for _, c := range neighbors {
		switch e.board.at(c).State {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, c)
		}
	}
	if flags != n {
		return
	}
	for _, c := range hidden {
		e.Reveal(c)
		if e.status != Playing {
			return
		}
	}
}

// WinCheck reports whether every safe cell has been revealed. Mines do not
// need to be flagged. Always false after a loss.
func (e *Engine) WinCheck() bool {
	if e.status == Lost {
		return false
	}
	for _, row := range e.board.cells {
		for _, cell := range row {
			if !cell.Value.IsMine() && cell.State != Revealed {
				return false
			}
		}
	}
	return true
}

// Reset replaces the board with a freshly generated one of the same size
// and mine count.
func (e *Engine) Reset() error {
	board, err := Reshuffle(e.board.size, e.board.MineCount(), e.rnd)
	if err != nil {
		return fmt.Errorf("unable to reshuffle board: %w", err)
	}
	e.board = board
	e.cursor = Coordinate{}
	e.status = Playing
	Log.WithFields(logrus.Fields{
		"size":  board.size,
		"mines": board.MineCount(),
	}).Debug("board reshuffled")
	return nil
}

// Restart replays the current layout from scratch.
func (e *Engine) Restart() {
	e.board.ResetVisibility()
	e.cursor = Coordinate{}
	e.status = Playing
}
