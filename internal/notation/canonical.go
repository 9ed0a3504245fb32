// Package notation provides move sequence utilities on top of the gocuboid
// move grammar.
package notation

import (
	"github.com/SeamusWaldron/gocuboid"
)

// NormalizeTurn reduces a signed count of clockwise quarter turns to a Turn.
// -3 -> CW, -2 -> Double, -1 -> CCW, 1 -> CW, 2 -> Double, 3 -> CCW.
// It returns false for multiples of four, which leave the face unchanged.
func NormalizeTurn(quarters int) (gocuboid.Turn, bool) {
	return gocuboid.TurnFromQuarter(quarters)
}

// Simplify merges adjacent turns of the same face and drops turns that
// cancel out, repeating until nothing changes. "R R" becomes "R2" and
// "U R R' U'" becomes nothing.
func Simplify(moves []gocuboid.Move) []gocuboid.Move {
	out := make([]gocuboid.Move, 0, len(moves))
	for _, m := range moves {
		if len(out) == 0 || out[len(out)-1].Face != m.Face {
			out = append(out, m)
			continue
		}
		// A cancellation exposes the previous move to the next merge.
		merged := out[len(out)-1].Merge(m)
		out = out[:len(out)-1]
		if merged != nil {
			out = append(out, *merged)
		}
	}
	return out
}

// Invert returns the sequence that undoes moves.
func Invert(moves []gocuboid.Move) []gocuboid.Move {
	out := make([]gocuboid.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
