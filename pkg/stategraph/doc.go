// Package stategraph explores the configurations of a cuboid puzzle that are
// reachable from a starting cube under a fixed move set.
//
// Explore returns an undirected Graph: one node per distinct configuration
// and one edge per pair of configurations joined by at least one move, with
// every joining move recorded on the edge. Node ids are dense (0..N-1) and
// assigned from the configuration hash, so they do not depend on the order
// in which configurations were discovered.
//
// # Basic usage
//
//	cube, _ := gocuboid.New(gocuboid.Dims{Height: 2, Width: 2, Length: 1},
//	    gocuboid.WithPermittedMoves(gocuboid.U2, gocuboid.R2))
//
//	g, err := stategraph.Explore(ctx, cube)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.Len(), g.EdgeCount()) // 6 6
//
//	err = stategraph.WriteEdgeListFile("out.txt", g)
//
// # Edge list format
//
// The first line holds the node and edge counts "N M". Each of the following
// M lines holds one edge "u v" with u < v, sorted ascending by (u, v). Loop
// edges are kept in the Graph but never written.
//
// # Tuning
//
// WithFrontier chooses the expansion order, WithWorkers expands each level
// of the search on several goroutines, and WithLimit bounds the number of
// configurations. None of them changes the resulting graph.
package stategraph
