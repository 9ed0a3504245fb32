package gocuboid

// FaceID identifies one of the six faces. The declaration order is the
// canonical order used for comparison, hashing and printing.
type FaceID int

const (
	FaceU FaceID = 0 // Up
	FaceL FaceID = 1 // Left
	FaceF FaceID = 2 // Front
	FaceR FaceID = 3 // Right
	FaceB FaceID = 4 // Back
	FaceD FaceID = 5 // Down

	numFaces = 6
)

func (f FaceID) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceL:
		return "L"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Name returns the lowercase face name used in configuration files.
func (f FaceID) Name() string {
	switch f {
	case FaceU:
		return "up"
	case FaceL:
		return "left"
	case FaceF:
		return "front"
	case FaceR:
		return "right"
	case FaceB:
		return "back"
	case FaceD:
		return "down"
	default:
		return "unknown"
	}
}

// Faces returns the six face IDs in canonical order.
func Faces() []FaceID {
	return []FaceID{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}
}

// ParseFaceID accepts a face letter (U, L, F, R, B, D) or a face name.
func ParseFaceID(s string) (FaceID, bool) {
	for _, f := range Faces() {
		if s == f.String() || s == f.Name() {
			return f, true
		}
	}
	return 0, false
}

// wiring is the net of a rectangular box. Unfolded around the front face:
//
//	      U
//	   L  F  R  B
//	      D
//
// with every grid read as seen from outside the box, rows top to bottom.
// wiring[f][s] names the face touching side s of f and the side of that
// face's grid along the shared edge.
var wiring = [numFaces][4]link{
	FaceF: {Up: {FaceU, Down}, Right: {FaceR, Left}, Down: {FaceD, Up}, Left: {FaceL, Right}},
	FaceB: {Up: {FaceU, Up}, Right: {FaceL, Left}, Down: {FaceD, Down}, Left: {FaceR, Right}},
	FaceL: {Up: {FaceU, Left}, Right: {FaceF, Left}, Down: {FaceD, Left}, Left: {FaceB, Right}},
	FaceR: {Up: {FaceU, Right}, Right: {FaceB, Left}, Down: {FaceD, Right}, Left: {FaceF, Right}},
	FaceU: {Up: {FaceB, Up}, Right: {FaceR, Up}, Down: {FaceF, Up}, Left: {FaceL, Up}},
	FaceD: {Up: {FaceF, Down}, Right: {FaceR, Down}, Down: {FaceB, Down}, Left: {FaceL, Down}},
}

// shape returns the grid size of face f on a cuboid of the given dims.
func shape(f FaceID, d Dims) (rows, cols int) {
	switch f {
	case FaceF, FaceB:
		return d.Height, d.Width
	case FaceL, FaceR:
		return d.Height, d.Length
	default:
		return d.Length, d.Width
	}
}
