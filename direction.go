package gocuboid

// Direction names one side of a face relative to the face's own grid.
// The values run clockwise, so (d + k) mod 4 is d rotated k quarter turns.
type Direction int

const (
	Up    Direction = 0
	Right Direction = 1
	Down  Direction = 2
	Left  Direction = 3
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "?"
	}
}

// Next returns the direction reached after turns clockwise quarter turns.
func (d Direction) Next(turns int) Direction {
	return Direction(((int(d)+turns)%4 + 4) % 4)
}

// Opposite returns the direction across the face.
func (d Direction) Opposite() Direction {
	return d.Next(2)
}

// Clockwise reports whether reading the edge in increasing index order walks
// around the face clockwise. Top rows read left to right and right columns
// read top to bottom, so only Up and Right do.
func (d Direction) Clockwise() bool {
	return d == Up || d == Right
}

// Edge is the boundary-extraction rule for one side of a rows x cols grid.
//
// Every edge is traversed in increasing index order of its varying
// coordinate: left to right along a row, top to bottom along a column.
type Edge struct {
	Side   Direction
	Index  int // fixed row (Up, Down) or fixed column (Left, Right)
	Length int // number of facelets along the edge
}

// Edge returns the boundary rule of side d on a rows x cols grid.
func (d Direction) Edge(rows, cols int) Edge {
	switch d {
	case Up:
		return Edge{Side: d, Index: 0, Length: cols}
	case Down:
		return Edge{Side: d, Index: rows - 1, Length: cols}
	case Left:
		return Edge{Side: d, Index: 0, Length: rows}
	default:
		return Edge{Side: Right, Index: cols - 1, Length: rows}
	}
}

// Cell returns the grid coordinates of the i-th facelet along the edge.
func (e Edge) Cell(i int) (row, col int) {
	if e.Side == Up || e.Side == Down {
		return e.Index, i
	}
	return i, e.Index
}
