package mines

import "errors"

var (
	ErrInvalidSize      = errors.New("board size must be positive")
	ErrInvalidMineCount = errors.New("invalid mine count")
	ErrBoardPopulated   = errors.New("board already has mines")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
)
