package gocuboid

// Progress reports how close a cube is to solved.
// A face counts as solved when all of its facelets share one color.
type Progress struct {
	Solved      [numFaces]bool // indexed by FaceID
	SolvedFaces int
	Misplaced   int // facelets differing from their face's majority color
	Facelets    int
}

// Complete returns true if every face is solved.
func (p Progress) Complete() bool {
	return p.SolvedFaces == numFaces
}

// Fraction returns the share of facelets already on their majority color,
// in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Facelets == 0 {
		return 1
	}
	return float64(p.Facelets-p.Misplaced) / float64(p.Facelets)
}

// Progress inspects every face of the cube.
func (c *Cube) Progress() Progress {
	var p Progress
	for i := range c.faces {
		f := &c.faces[i]
		var counts [numColors]int
		best := 0
		for _, color := range f.cells {
			counts[color]++
			if counts[color] > best {
				best = counts[color]
			}
		}
		p.Facelets += len(f.cells)
		p.Misplaced += len(f.cells) - best
		if best == len(f.cells) {
			p.Solved[i] = true
			p.SolvedFaces++
		}
	}
	return p
}
