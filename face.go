package gocuboid

import (
	"slices"
	"strings"
)

// link points at the neighbor touching one side of a face: the neighbor's
// arena slot and the side of the neighbor's own grid along the shared edge.
type link struct {
	face FaceID
	side Direction
}

// stripReversal[s][d] is set when a strip read from a neighbor side d into
// slot s must be reversed to run in this face's own increasing-index order.
// The same reversal is applied again when the strip is written back.
var stripReversal = [4][4]bool{
	Up:    {Up: true, Right: true},
	Right: {Up: true},
	Down:  {Down: true, Left: true},
	Left:  {Down: true},
}

// Face is one rectangular side of the cuboid.
// Cells are stored row-major; the four links are fixed by the owning Cube.
type Face struct {
	id    FaceID
	rows  int
	cols  int
	cells []Color
	links [4]link
}

func newFace(id FaceID, rows, cols int, color Color) Face {
	cells := make([]Color, rows*cols)
	for i := range cells {
		cells[i] = color
	}
	return Face{id: id, rows: rows, cols: cols, cells: cells, links: wiring[id]}
}

// ID returns which side of the cuboid this face is.
func (f *Face) ID() FaceID { return f.id }

// Rows returns the grid height.
func (f *Face) Rows() int { return f.rows }

// Cols returns the grid width.
func (f *Face) Cols() int { return f.cols }

// At returns the facelet at row r, column c.
func (f *Face) At(r, c int) Color {
	return f.cells[r*f.cols+c]
}

// Row returns a copy of row r.
func (f *Face) Row(r int) []Color {
	row := make([]Color, f.cols)
	copy(row, f.cells[r*f.cols:(r+1)*f.cols])
	return row
}

// Grid returns a copy of the facelets as rows.
func (f *Face) Grid() [][]Color {
	grid := make([][]Color, f.rows)
	for r := range grid {
		grid[r] = f.Row(r)
	}
	return grid
}

// Neighbor returns the face touching side d and the side of that face's
// grid lying along the shared edge.
func (f *Face) Neighbor(d Direction) (FaceID, Direction) {
	l := f.links[d]
	return l.face, l.side
}

// Uniform returns the face color when every facelet has the same color.
func (f *Face) Uniform() (Color, bool) {
	first := f.cells[0]
	for _, c := range f.cells[1:] {
		if c != first {
			return first, false
		}
	}
	return first, true
}

// Equal reports whether two faces have the same shape and facelets.
func (f *Face) Equal(o *Face) bool {
	if f.rows != o.rows || f.cols != o.cols {
		return false
	}
	for i, c := range f.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String returns the grid as space separated symbols, one row per line.
func (f *Face) String() string {
	var b strings.Builder
	for r := 0; r < f.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.rowString(r))
	}
	return b.String()
}

func (f *Face) rowString(r int) string {
	parts := make([]string, f.cols)
	for c := range parts {
		parts[c] = f.At(r, c).String()
	}
	return strings.Join(parts, " ")
}

func (f *Face) clone() Face {
	cells := make([]Color, len(f.cells))
	copy(cells, f.cells)
	return Face{id: f.id, rows: f.rows, cols: f.cols, cells: cells, links: f.links}
}

// edge returns the boundary rule of side d on this face's grid.
func (f *Face) edge(d Direction) Edge {
	return d.Edge(f.rows, f.cols)
}

func (f *Face) readStrip(e Edge) []Color {
	strip := make([]Color, e.Length)
	for i := range strip {
		r, c := e.Cell(i)
		strip[i] = f.cells[r*f.cols+c]
	}
	return strip
}

func (f *Face) writeStrip(e Edge, strip []Color) {
	for i, color := range strip {
		r, c := e.Cell(i)
		f.cells[r*f.cols+c] = color
	}
}

// piece reads the neighbor strip along slot s in this face's index order.
func (f *Face) piece(arena *[numFaces]Face, s Direction) []Color {
	l := f.links[s]
	n := &arena[l.face]
	strip := n.readStrip(n.edge(l.side))
	if stripReversal[s][l.side] {
		slices.Reverse(strip)
	}
	return strip
}

// setPiece writes strip, given in this face's index order, into the
// neighbor along slot s. The strip is consumed.
func (f *Face) setPiece(arena *[numFaces]Face, s Direction, strip []Color) {
	l := f.links[s]
	n := &arena[l.face]
	if stripReversal[s][l.side] {
		slices.Reverse(strip)
	}
	n.writeStrip(n.edge(l.side), strip)
}

// rotate turns the face clockwise by turns quarter turns, moving the four
// neighbor strips along with it. All strips are read before any is written.
func (f *Face) rotate(arena *[numFaces]Face, turns int) {
	turns = ((turns % 4) + 4) % 4
	if turns == 0 {
		return
	}

	var pieces [4][]Color
	for s := Up; s <= Left; s++ {
		pieces[s] = f.piece(arena, s)
	}

	// A strip moving between a clockwise-read side and a counter-clockwise
	// one flips relative to the face's index order.
	var moved [4][]Color
	for s := Up; s <= Left; s++ {
		dst := s.Next(turns)
		if s.Clockwise() != dst.Clockwise() {
			slices.Reverse(pieces[s])
		}
		moved[dst] = pieces[s]
	}

	for s := Up; s <= Left; s++ {
		f.setPiece(arena, s, moved[s])
	}

	f.turnGrid((4 - turns) % 4)
}

// turnGrid rotates the facelets counter-clockwise k quarter turns.
func (f *Face) turnGrid(k int) {
	for ; k > 0; k-- {
		rows, cols := f.cols, f.rows
		cells := make([]Color, len(f.cells))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cells[r*cols+c] = f.cells[c*f.cols+(f.cols-1-r)]
			}
		}
		f.rows, f.cols, f.cells = rows, cols, cells
	}
}
