package gocuboid

// Tracker wraps a Cube and keeps the history of applied moves.
type Tracker struct {
	start          *Cube
	cube           *Cube
	history        []Move
	solvedCallback func(moves int)
}

// NewTracker creates a tracker starting from a copy of c.
func NewTracker(c *Cube) *Tracker {
	return &Tracker{
		start: c.Clone(),
		cube:  c.Clone(),
	}
}

// SetSolvedCallback sets a callback that fires when a move leaves the cube
// solved. It receives the number of moves in the history.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solvedCallback = cb
}

// Reset returns the tracker to its starting cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = t.start.Clone()
	t.history = t.history[:0]
}

// Apply applies a move and records it.
func (t *Tracker) Apply(m Move) error {
	if err := t.cube.MakeMove(m); err != nil {
		return err
	}
	t.history = append(t.history, m)
	t.checkSolved()
	return nil
}

// ApplyNotation parses and applies a move sequence. Nothing is applied if
// any move is invalid or not permitted.
func (t *Tracker) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	if err := t.cube.Apply(moves...); err != nil {
		return err
	}
	t.history = append(t.history, moves...)
	t.checkSolved()
	return nil
}

// Undo reverts the last move. Reverting is not a move of its own, so the
// inverse does not need to be permitted. It returns false when there is
// nothing to undo.
func (t *Tracker) Undo() (Move, bool) {
	if len(t.history) == 0 {
		return Move{}, false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	inv := last.Inverse()
	t.cube.faces[inv.Face].rotate(&t.cube.faces, inv.Turn.Quarter())
	return last, true
}

func (t *Tracker) checkSolved() {
	if t.solvedCallback != nil && t.cube.IsSolved() {
		t.solvedCallback(len(t.history))
	}
}

// History returns a copy of the applied moves, oldest first.
func (t *Tracker) History() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Progress returns the current solving progress.
func (t *Tracker) Progress() Progress {
	return t.cube.Progress()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
