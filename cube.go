package gocuboid

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Dims is the size of a cuboid: Height x Width x Length.
// Front/Back faces are Height x Width, Left/Right are Height x Length and
// Up/Down are Length x Width.
type Dims struct {
	Height int
	Width  int
	Length int
}

// Validate checks that every dimension is at least one facelet.
func (d Dims) Validate() error {
	if d.Height < 1 || d.Width < 1 || d.Length < 1 {
		return fmt.Errorf("%w: %s", ErrInvalidDimension, d)
	}
	return nil
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Height, d.Width, d.Length)
}

// ParseDims parses "HxWxL", e.g. "3x2x1".
func ParseDims(s string) (Dims, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return Dims{}, fmt.Errorf("%w: %q (want HxWxL)", ErrInvalidDimension, s)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Dims{}, fmt.Errorf("%w: %q (want HxWxL)", ErrInvalidDimension, s)
		}
		vals[i] = n
	}
	d := Dims{Height: vals[0], Width: vals[1], Length: vals[2]}
	return d, d.Validate()
}

// Square reports whether face f is square, i.e. whether quarter turns of it
// are geometrically possible.
func (d Dims) Square(f FaceID) bool {
	rows, cols := shape(f, d)
	return rows == cols
}

// Geometric reports whether m can physically be applied to a cuboid of
// these dimensions. Half turns always can; quarter turns need a square face.
func (d Dims) Geometric(m Move) bool {
	if !m.Valid() {
		return false
	}
	return m.Turn == Double || d.Square(m.Face)
}

// DefaultMoves returns every geometric move for the dimensions.
func DefaultMoves(d Dims) MoveSet {
	var s MoveSet
	for _, m := range AllMoves() {
		if d.Geometric(m) {
			s.Add(m)
		}
	}
	return s
}

// Cube is a cuboid puzzle. It owns its six faces in a fixed arena; faces
// refer to their neighbors by arena slot.
type Cube struct {
	dims      Dims
	faces     [numFaces]Face
	permitted MoveSet
}

// New creates a solved cuboid of the given dimensions.
func New(dims Dims, opts ...Option) (*Cube, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	permitted, err := cfg.permittedMoves(dims)
	if err != nil {
		return nil, err
	}

	c := &Cube{dims: dims, permitted: permitted}
	for _, id := range Faces() {
		color := cfg.colors[id]
		if !color.Valid() {
			return nil, fmt.Errorf("%w: %d on face %s", ErrInvalidColor, color, id)
		}
		rows, cols := shape(id, dims)
		c.faces[id] = newFace(id, rows, cols, color)
	}
	return c, nil
}

// NewFromFaces creates a cube from explicit grids. Every face must be
// present with the shape implied by dims.
func NewFromFaces(dims Dims, grids map[FaceID][][]Color, opts ...Option) (*Cube, error) {
	c, err := New(dims, opts...)
	if err != nil {
		return nil, err
	}
	for _, id := range Faces() {
		grid, ok := grids[id]
		if !ok {
			return nil, fmt.Errorf("%w: face %s missing", ErrInvalidDimension, id)
		}
		f := &c.faces[id]
		if len(grid) != f.rows {
			return nil, fmt.Errorf("%w: face %s has %d rows, want %d", ErrInvalidDimension, id, len(grid), f.rows)
		}
		for r, row := range grid {
			if len(row) != f.cols {
				return nil, fmt.Errorf("%w: face %s row %d has %d columns, want %d", ErrInvalidDimension, id, r, len(row), f.cols)
			}
			for col, color := range row {
				if !color.Valid() {
					return nil, fmt.Errorf("%w: %d at %s[%d][%d]", ErrInvalidColor, color, id, r, col)
				}
				f.cells[r*f.cols+col] = color
			}
		}
	}
	return c, nil
}

// Dims returns the cuboid dimensions.
func (c *Cube) Dims() Dims { return c.dims }

// Permitted returns the set of moves this cube accepts.
func (c *Cube) Permitted() MoveSet { return c.permitted }

// Face returns a read-only view of face id. Callers must not keep it across
// moves if they need a stable snapshot; use Clone for that.
func (c *Cube) Face(id FaceID) *Face {
	return &c.faces[id]
}

// Clone creates an independent deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{dims: c.dims, permitted: c.permitted}
	for i := range c.faces {
		clone.faces[i] = c.faces[i].clone()
	}
	return clone
}

// MakeMove applies a permitted move in place. A rejected move leaves the
// cube untouched.
func (c *Cube) MakeMove(m Move) error {
	if !c.permitted.Has(m) {
		return fmt.Errorf("%w: %s (permitted: %s)", ErrIllegalMove, m, c.permitted)
	}
	c.faces[m.Face].rotate(&c.faces, m.Turn.Quarter())
	return nil
}

// Apply applies a sequence of moves left to right. Every move is checked
// before the first one is applied.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if !c.permitted.Has(m) {
			return fmt.Errorf("%w: %s (permitted: %s)", ErrIllegalMove, m, c.permitted)
		}
	}
	for _, m := range moves {
		c.faces[m.Face].rotate(&c.faces, m.Turn.Quarter())
	}
	return nil
}

// ApplyNotation parses a space-separated move sequence and applies it.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// Rotate turns face id clockwise by turns quarter turns without consulting
// the permitted set. Odd turns of a non-square face are refused.
func (c *Cube) Rotate(id FaceID, turns int) error {
	if id < 0 || id >= numFaces {
		return fmt.Errorf("%w: face %d", ErrIllegalMove, id)
	}
	if turns%2 != 0 && !c.dims.Square(id) {
		return fmt.Errorf("%w: quarter turn of non-square face %s on %s", ErrIllegalMove, id, c.dims)
	}
	c.faces[id].rotate(&c.faces, turns)
	return nil
}

// Equal reports whether two cubes have the same dimensions and facelets.
// The permitted move set is not part of the configuration.
func (c *Cube) Equal(o *Cube) bool {
	if c == o {
		return true
	}
	if o == nil || c.dims != o.dims {
		return false
	}
	for i := range c.faces {
		if !c.faces[i].Equal(&o.faces[i]) {
			return false
		}
	}
	return true
}

// Key returns an exact encoding of the configuration. Two cubes have the
// same key if and only if they are Equal.
func (c *Cube) Key() string {
	return string(c.appendKey(nil))
}

// Hash returns a 64-bit hash of the configuration. Equal cubes hash equal.
func (c *Cube) Hash() uint64 {
	return xxhash.Sum64(c.appendKey(nil))
}

func (c *Cube) appendKey(buf []byte) []byte {
	buf = binary.AppendUvarint(buf, uint64(c.dims.Height))
	buf = binary.AppendUvarint(buf, uint64(c.dims.Width))
	buf = binary.AppendUvarint(buf, uint64(c.dims.Length))
	for i := range c.faces {
		for _, color := range c.faces[i].cells {
			buf = append(buf, byte(color))
		}
	}
	return buf
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for i := range c.faces {
		if _, ok := c.faces[i].Uniform(); !ok {
			return false
		}
	}
	return true
}

// ColorCounts returns how many facelets of each color the cube shows.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, numColors)
	for i := range c.faces {
		for _, color := range c.faces[i].cells {
			counts[color]++
		}
	}
	return counts
}

// String returns the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.dims.Length)

	up := &c.faces[FaceU]
	for r := 0; r < up.rows; r++ {
		b.WriteString(indent + " " + up.rowString(r) + "\n")
	}
	b.WriteByte('\n')

	for r := 0; r < c.dims.Height; r++ {
		parts := make([]string, 0, 4)
		for _, id := range []FaceID{FaceL, FaceF, FaceR, FaceB} {
			parts = append(parts, c.faces[id].rowString(r))
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}
	b.WriteByte('\n')

	down := &c.faces[FaceD]
	for r := 0; r < down.rows; r++ {
		b.WriteString(indent + " " + down.rowString(r) + "\n")
	}
	return b.String()
}
