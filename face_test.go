package gocuboid

import "testing"

func TestWiringIsSymmetric(t *testing.T) {
	for _, f := range Faces() {
		for s := Up; s <= Left; s++ {
			l := wiring[f][s]
			back := wiring[l.face][l.side]
			if back.face != f || back.side != s {
				t.Errorf("%s.%s -> %s.%s, but %s.%s -> %s.%s",
					f, s, l.face, l.side, l.face, l.side, back.face, back.side)
			}
			if l.face == f {
				t.Errorf("%s.%s links to itself", f, s)
			}
		}
	}
}

func TestWiringEdgeLengthsMatch(t *testing.T) {
	for _, d := range testDims {
		c := mustNew(t, d)
		for _, id := range Faces() {
			f := c.Face(id)
			for s := Up; s <= Left; s++ {
				nid, side := f.Neighbor(s)
				n := c.Face(nid)
				if got, want := f.edge(s).Length, n.edge(side).Length; got != want {
					t.Errorf("%s: %s.%s has %d facelets, %s.%s has %d",
						d, id, s, got, nid, side, want)
				}
			}
		}
	}
}

func TestEdgeRule(t *testing.T) {
	tests := []struct {
		side Direction
		want Edge
	}{
		{Up, Edge{Side: Up, Index: 0, Length: 4}},
		{Down, Edge{Side: Down, Index: 2, Length: 4}},
		{Left, Edge{Side: Left, Index: 0, Length: 3}},
		{Right, Edge{Side: Right, Index: 3, Length: 3}},
	}
	for _, tt := range tests {
		got := tt.side.Edge(3, 4)
		if got != tt.want {
			t.Errorf("%s.Edge(3, 4) = %+v, want %+v", tt.side, got, tt.want)
		}
	}

	e := Right.Edge(3, 4)
	if r, c := e.Cell(2); r != 2 || c != 3 {
		t.Errorf("Right edge cell 2 = (%d, %d), want (2, 3)", r, c)
	}
	e = Down.Edge(3, 4)
	if r, c := e.Cell(1); r != 2 || c != 1 {
		t.Errorf("Down edge cell 1 = (%d, %d), want (2, 1)", r, c)
	}
}

func TestDirection(t *testing.T) {
	if Up.Next(1) != Right || Left.Next(1) != Up || Up.Next(-1) != Left || Down.Next(6) != Up {
		t.Error("Next should rotate clockwise modulo four")
	}
	for d := Up; d <= Left; d++ {
		if d.Opposite().Opposite() != d || d.Opposite() == d {
			t.Errorf("%s.Opposite() = %s", d, d.Opposite())
		}
	}
	if !Up.Clockwise() || !Right.Clockwise() || Down.Clockwise() || Left.Clockwise() {
		t.Error("only up and right edges read clockwise")
	}
}

func TestStripRoundTrip(t *testing.T) {
	for _, d := range testDims {
		c := mustNew(t, d)
		c.Apply(c.Permitted().Moves()...)
		want := c.Clone()
		for _, id := range Faces() {
			f := c.Face(id)
			for s := Up; s <= Left; s++ {
				f.setPiece(&c.faces, s, f.piece(&c.faces, s))
			}
		}
		if !c.Equal(want) {
			t.Errorf("%s: reading and writing back every strip changed the cube", d)
		}
	}
}

func TestTurnGrid(t *testing.T) {
	f := Face{rows: 2, cols: 3, cells: []Color{
		White, Yellow, Green,
		Blue, Red, Orange,
	}}
	f.turnGrid(1)
	// Counter-clockwise: the right column becomes the top row.
	want := [][]Color{
		{Green, Orange},
		{Yellow, Red},
		{White, Blue},
	}
	if f.Rows() != 3 || f.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", f.Rows(), f.Cols())
	}
	for r, row := range want {
		for c, color := range row {
			if got := f.At(r, c); got != color {
				t.Errorf("[%d][%d] = %v, want %v", r, c, got, color)
			}
		}
	}

	f.turnGrid(3)
	if f.Rows() != 2 || f.At(0, 0) != White || f.At(1, 2) != Orange {
		t.Errorf("four counter-clockwise turns should restore the grid:\n%s", f.String())
	}
}

func TestFaceAccessors(t *testing.T) {
	c := mustNew(t, Dims{Height: 2, Width: 3, Length: 1})
	f := c.Face(FaceF)
	if f.ID() != FaceF {
		t.Errorf("ID = %s, want F", f.ID())
	}
	row := f.Row(0)
	row[0] = Red
	if f.At(0, 0) != Green {
		t.Error("Row should return a copy")
	}
	if got := f.String(); got != "G G G\nG G G" {
		t.Errorf("String = %q", got)
	}
	if n, side := f.Neighbor(Up); n != FaceU || side != Down {
		t.Errorf("F.Neighbor(Up) = %s.%s, want U.down", n, side)
	}
}
