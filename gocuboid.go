// Package gocuboid models generalized twisty cuboid puzzles: six faces of
// arbitrary Height x Width x Length whose face turns carry facelets across to
// the four adjacent faces.
//
// # Features
//
//   - Any size from 1x1x1 up, including non-cubic "pancake" cuboids
//   - Quarter and half turns with a configurable permitted-move set
//   - Structural equality, exact keys and 64-bit hashes of configurations
//   - Move notation parsing (U, D, L, R, F, B with ' and 2 modifiers)
//   - Move history tracking with undo
//
// # Quick Start
//
//	cube, err := gocuboid.New(gocuboid.Dims{Height: 3, Width: 3, Length: 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(gocuboid.R, gocuboid.U, gocuboid.RPrime, gocuboid.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Restricted Move Sets
//
// A cube only accepts the moves it was built with. Quarter turns of a
// non-square face are never geometric and are rejected at construction:
//
//	cube, err := gocuboid.New(
//	    gocuboid.Dims{Height: 3, Width: 2, Length: 1},
//	    gocuboid.WithPermittedMoves(gocuboid.R2, gocuboid.D2, gocuboid.U2),
//	)
//
//	err = cube.MakeMove(gocuboid.F2) // wraps ErrIllegalMove
//
// # Copying
//
// Moves are applied in place. Use Clone to keep an earlier configuration:
//
//	next := cube.Clone()
//	next.MakeMove(gocuboid.U2)
//
// The reachable-state graph of a cube is built by package stategraph.
package gocuboid
