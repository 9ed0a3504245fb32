package notation

import (
	"strings"

	"github.com/SeamusWaldron/gocuboid"
)

// Describe returns a plain-language description of m, with the turn
// direction seen from outside the face.
//
//	U  -> "Up face, quarter turn clockwise"
//	R' -> "Right face, quarter turn counter-clockwise"
//	F2 -> "Front face, half turn"
func Describe(m gocuboid.Move) string {
	if !m.Valid() {
		return m.Notation()
	}

	var turn string
	switch m.Turn {
	case gocuboid.CW:
		turn = "quarter turn clockwise"
	case gocuboid.CCW:
		turn = "quarter turn counter-clockwise"
	default:
		turn = "half turn"
	}

	name := m.Face.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " face, " + turn
}

// DescribeSequence describes each move of a sequence.
func DescribeSequence(moves []gocuboid.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = Describe(m)
	}
	return result
}

// FormatDescriptions joins the descriptions of moves with "; ".
func FormatDescriptions(moves []gocuboid.Move) string {
	return strings.Join(DescribeSequence(moves), "; ")
}
