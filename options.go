package gocuboid

import "fmt"

// Option configures cube construction.
type Option func(*config)

type config struct {
	colors   [numFaces]Color
	moves    MoveSet
	movesSet bool
}

func defaultConfig() *config {
	return &config{
		colors: [numFaces]Color{
			FaceU: White,
			FaceD: Yellow,
			FaceF: Green,
			FaceB: Blue,
			FaceR: Red,
			FaceL: Orange,
		},
	}
}

// WithPermittedMoves restricts the cube to the given moves.
// Without this option every geometric move is permitted.
func WithPermittedMoves(moves ...Move) Option {
	return WithMoveSet(NewMoveSet(moves...))
}

// WithMoveSet restricts the cube to the moves in s. An empty set permits
// nothing.
func WithMoveSet(s MoveSet) Option {
	return func(c *config) {
		c.moves = s
		c.movesSet = true
	}
}

// WithColors overrides the solved color of some faces.
// Faces missing from scheme keep the default color.
func WithColors(scheme map[FaceID]Color) Option {
	return func(c *config) {
		for id, color := range scheme {
			if id >= 0 && id < numFaces {
				c.colors[id] = color
			}
		}
	}
}

// permittedMoves resolves the configured move set against the dimensions.
func (c *config) permittedMoves(d Dims) (MoveSet, error) {
	if !c.movesSet {
		return DefaultMoves(d), nil
	}
	for m := range c.moves.All() {
		if !d.Geometric(m) {
			return 0, fmt.Errorf("%w: %s is a quarter turn of a non-square face on %s", ErrIllegalMove, m, d)
		}
	}
	return c.moves, nil
}
