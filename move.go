package gocuboid

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Quarter returns the turn as a number of clockwise quarter turns in 1..3.
// Invalid turns return 0.
func (t Turn) Quarter() int {
	switch t {
	case CW:
		return 1
	case Double:
		return 2
	case CCW:
		return 3
	default:
		return 0
	}
}

// TurnFromQuarter converts a clockwise quarter-turn count to a Turn.
// It returns false when the count is a multiple of four (no turn at all).
func TurnFromQuarter(n int) (Turn, bool) {
	switch ((n % 4) + 4) % 4 {
	case 1:
		return CW, true
	case 2:
		return Double, true
	case 3:
		return CCW, true
	default:
		return 0, false
	}
}

// Move is a single face turn. Moves are comparable values and may be used
// as map keys.
type Move struct {
	Face FaceID // Which face to turn
	Turn Turn   // Direction and amount
}

// Valid reports whether m names a real face and turn.
func (m Move) Valid() bool {
	return m.Face >= 0 && m.Face < numFaces && m.Turn.Quarter() != 0
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move undoes this move.
func (m Move) IsCancellation(other Move) bool {
	return m.Face == other.Face && (m.Turn.Quarter()+other.Turn.Quarter())%4 == 0
}

// Merge combines two same-face moves into one. It returns nil if the faces
// differ or the moves cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}
	turn, ok := TurnFromQuarter(m.Turn.Quarter() + other.Turn.Quarter())
	if !ok {
		return nil
	}
	return &Move{Face: m.Face, Turn: turn}
}

// Token encodes the move as a small integer in [0, 18).
// Encoding: face*3 + turn_code where turn_code is CCW=0, CW=1, 180=2.
func (m Move) Token() uint8 {
	var turnCode uint8
	switch m.Turn {
	case CCW:
		turnCode = 0
	case CW:
		turnCode = 1
	case Double:
		turnCode = 2
	}
	return uint8(m.Face)*3 + turnCode
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	var turn Turn
	switch token % 3 {
	case 0:
		turn = CCW
	case 1:
		turn = CW
	case 2:
		turn = Double
	}
	return Move{Face: FaceID(token / 3), Turn: turn}
}

// ParseMove parses a standard notation string into a Move.
// The grammar is a face letter from U, D, L, R, F, B optionally followed by
// ' (counter-clockwise) or 2 (half turn).
func ParseMove(s string) (Move, error) {
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrParseMove, s)
	}

	var face FaceID
	switch s[0] {
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'L':
		face = FaceL
	case 'R':
		face = FaceR
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q: unknown face %q", ErrParseMove, s, s[0])
	}

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q: unknown modifier %q", ErrParseMove, s, s[1])
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// MoveSet is a set of moves stored as a bitmask over move tokens.
// The zero value is the empty set.
type MoveSet uint32

// NewMoveSet returns the set holding the given moves.
func NewMoveSet(moves ...Move) MoveSet {
	var s MoveSet
	for _, m := range moves {
		s.Add(m)
	}
	return s
}

// ParseMoveSet parses a whitespace-separated list of moves into a set.
func ParseMoveSet(s string) (MoveSet, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return 0, err
	}
	return NewMoveSet(moves...), nil
}

// Add inserts m. Invalid moves are ignored.
func (s *MoveSet) Add(m Move) {
	if m.Valid() {
		*s |= 1 << m.Token()
	}
}

// Has reports whether m is in the set.
func (s MoveSet) Has(m Move) bool {
	return m.Valid() && s&(1<<m.Token()) != 0
}

// Len returns the number of moves in the set.
func (s MoveSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Union returns the moves in either set.
func (s MoveSet) Union(o MoveSet) MoveSet {
	return s | o
}

// All iterates over the moves in token order.
func (s MoveSet) All() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for rest := uint32(s); rest != 0; rest &= rest - 1 {
			if !yield(MoveFromToken(uint8(bits.TrailingZeros32(rest)))) {
				return
			}
		}
	}
}

// Moves returns the moves in token order.
func (s MoveSet) Moves() []Move {
	moves := make([]Move, 0, s.Len())
	for m := range s.All() {
		moves = append(moves, m)
	}
	return moves
}

// String formats the set as space-separated notation in token order.
func (s MoveSet) String() string {
	return "{" + FormatMoves(s.Moves()) + "}"
}
