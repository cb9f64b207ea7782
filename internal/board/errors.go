package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is built with a non-positive width or height.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")

	// ErrEmptySeed is returned when a group search starts on an empty cell.
	ErrEmptySeed = errors.New("board: seed cell is empty")

	// ErrInvalidGroupSize is returned when removing a group of fewer than two tokens.
	ErrInvalidGroupSize = errors.New("board: group must contain at least two tokens")

	// ErrStaleGroup is returned when a group no longer matches the board.
	ErrStaleGroup = errors.New("board: group is stale")

	ErrCellOccupied   = errors.New("board: cell already occupied")
	ErrInvalidColor   = errors.New("board: invalid color")
	ErrGridSealed     = errors.New("board: grid no longer accepts new tokens")
	ErrInvalidPalette = errors.New("board: invalid palette")
)
