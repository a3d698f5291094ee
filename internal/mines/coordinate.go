package mines

import "fmt"

// Coordinate is a position on a square board. X is the column and Y the
// row, both counted from the top left corner.
type Coordinate struct {
	X, Y int
}

// Delta is a signed displacement applied to a [Coordinate].
type Delta struct {
	DX, DY int
}

var (
	Up    = Delta{0, -1}
	Down  = Delta{0, 1}
	Left  = Delta{-1, 0}
	Right = Delta{1, 0}
)

// Coordinate implements [fmt.Stringer]
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offset shifts c by d. It fails when either component would become
// negative; there is no upper bound check.
func (c Coordinate) Offset(d Delta) (Coordinate, bool) {
	x, y := c.X+d.DX, c.Y+d.DY
	if x < 0 || y < 0 {
		return Coordinate{}, false
	}
	return Coordinate{x, y}, true
}

// ClampToBounds returns c if both components are below the exclusive limit.
func (c Coordinate) ClampToBounds(limit int) (Coordinate, bool) {
	if c.X >= limit || c.Y >= limit {
		return Coordinate{}, false
	}
	return c, true
}

func (c Coordinate) OffsetAndClamp(d Delta, limit int) (Coordinate, bool) {
	o, ok := c.Offset(d)
	if !ok {
		return Coordinate{}, false
	}
	return o.ClampToBounds(limit)
}

// Neighbors lists the up to 8 surrounding coordinates inside a limit×limit
// board. The order is fixed: dx from -1 to 1, and for each dx, dy from -1
// to 1.
func (c Coordinate) Neighbors(limit int) []Coordinate {
	neighbors := make([]Coordinate, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n, ok := c.OffsetAndClamp(Delta{dx, dy}, limit); ok {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}
