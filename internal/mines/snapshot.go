package mines

// CellView is one entry of a [Snapshot].
type CellView struct {
	Pos   Coordinate
	Glyph string
}

// Snapshot is a read-only copy of everything a renderer needs. Cells are
// listed row by row.
type Snapshot struct {
	Size      int
	Cursor    Coordinate
	Status    Status
	MineCount int
	FlagCount int
	Cells     []CellView
}

func (e *Engine) Snapshot() Snapshot {
	size := e.board.size
	s := Snapshot{
		Size:      size,
		Cursor:    e.cursor,
		Status:    e.status,
		MineCount: e.board.MineCount(),
		Cells:     make([]CellView, 0, size*size),
	}
	for y, row := range e.board.cells {
		for x, cell := range row {
			if cell.State == Flagged {
				s.FlagCount++
			}
			s.Cells = append(s.Cells, CellView{
				Pos:   Coordinate{x, y},
				Glyph: cell.Glyph(),
			})
		}
	}
	return s
}

// At returns the glyph at c, or "" when c is off the board.
func (s Snapshot) At(c Coordinate) string {
	if c.X < 0 || c.Y < 0 || c.X >= s.Size || c.Y >= s.Size {
		return ""
	}
	return s.Cells[c.Y*s.Size+c.X].Glyph
}

func (s Snapshot) MinesLeft() int {
	return s.MineCount - s.FlagCount
}
