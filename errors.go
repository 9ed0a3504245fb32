package gocuboid

import "errors"

// Sentinel errors for the gocuboid package.
var (
	// Construction errors
	ErrInvalidColor     = errors.New("gocuboid: invalid color")
	ErrInvalidDimension = errors.New("gocuboid: invalid dimension")

	// Move errors
	ErrParseMove   = errors.New("gocuboid: invalid move notation")
	ErrIllegalMove = errors.New("gocuboid: move not permitted")
)
