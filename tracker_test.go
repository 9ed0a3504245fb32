package gocuboid

import (
	"errors"
	"testing"
)

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker(mustNew(t, cube3))
	if _, ok := tr.Undo(); ok {
		t.Error("Undo on empty history should report false")
	}

	if err := tr.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(tr.History()); got != "R U" {
		t.Errorf("History = %q, want \"R U\"", got)
	}

	m, ok := tr.Undo()
	if !ok || m != U {
		t.Errorf("Undo = %s, %v; want U, true", m, ok)
	}
	if got := FormatMoves(tr.History()); got != "R" {
		t.Errorf("History after undo = %q, want \"R\"", got)
	}
	tr.Undo()
	if !tr.IsSolved() {
		t.Error("undoing every move should return to solved")
		t.Log(tr.CubeString())
	}
}

func TestTrackerUndoIgnoresPermittedSet(t *testing.T) {
	// R' is not permitted, but undoing R still works.
	tr := NewTracker(mustNew(t, cube3, WithPermittedMoves(R)))
	if err := tr.Apply(R); err != nil {
		t.Fatal(err)
	}
	if err := tr.Apply(RPrime); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Apply(R') error = %v, want ErrIllegalMove", err)
	}
	if _, ok := tr.Undo(); !ok || !tr.IsSolved() {
		t.Error("Undo should revert R")
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker(mustNew(t, cube3))
	solvedAt := -1
	tr.SetSolvedCallback(func(moves int) { solvedAt = moves })

	tr.Apply(R)
	if solvedAt != -1 {
		t.Error("callback should not fire while unsolved")
	}
	tr.Apply(RPrime)
	if solvedAt != 2 {
		t.Errorf("callback moves = %d, want 2", solvedAt)
	}
}

func TestTrackerRejectsBadSequence(t *testing.T) {
	tr := NewTracker(mustNew(t, cube3, WithPermittedMoves(U2, R2)))
	if err := tr.ApplyNotation("U2 F2"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("error = %v, want ErrIllegalMove", err)
	}
	if len(tr.History()) != 0 || !tr.IsSolved() {
		t.Error("a rejected sequence should not be recorded or applied")
	}
}

func TestTrackerReset(t *testing.T) {
	start := mustNew(t, cube3)
	start.MakeMove(F)
	tr := NewTracker(start)
	tr.ApplyNotation("U R")
	tr.Reset()
	if len(tr.History()) != 0 || !tr.Cube().Equal(start) {
		t.Error("Reset should restore the starting cube")
	}
	if p := tr.Progress(); p.Complete() {
		t.Error("starting cube was not solved")
	}

	start.MakeMove(U)
	tr.Reset()
	if tr.Cube().Equal(start) {
		t.Error("tracker should hold its own copy of the starting cube")
	}
}
