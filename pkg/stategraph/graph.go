package stategraph

import (
	"cmp"
	"slices"

	"github.com/SeamusWaldron/gocuboid"
)

// Edge joins two configurations. Moves holds every move that takes one end
// to the other; U <= V.
type Edge struct {
	U, V  int
	Moves gocuboid.MoveSet
}

// Loop reports whether the edge is a self-transition.
func (e Edge) Loop() bool { return e.U == e.V }

// Graph is the explored state graph. It is immutable once returned by
// Explore and safe for concurrent reads.
type Graph struct {
	nodes []*gocuboid.Cube
	index map[string]int
	edges []Edge
	adj   [][]int
	moves gocuboid.MoveSet
	start int
}

// Len returns the number of configurations.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the configurations in id order. The cubes are shared with
// the graph and must not be modified; Clone one before moving it.
func (g *Graph) Nodes() []*gocuboid.Cube {
	return slices.Clone(g.nodes)
}

// Node returns the configuration with the given id, or nil if there is none.
// The cube is shared with the graph and must not be modified.
func (g *Graph) Node(id int) *gocuboid.Cube {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Lookup returns the id of the configuration equal to c.
func (g *Graph) Lookup(c *gocuboid.Cube) (int, bool) {
	id, ok := g.index[c.Key()]
	return id, ok
}

// Edges returns every edge, loops included, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// EdgeCount returns the number of edges, loops included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge joining u and v in either order.
func (g *Graph) Edge(u, v int) (Edge, bool) {
	if u > v {
		u, v = v, u
	}
	i, ok := slices.BinarySearchFunc(g.edges, [2]int{u, v}, func(e Edge, t [2]int) int {
		if c := cmp.Compare(e.U, t[0]); c != 0 {
			return c
		}
		return cmp.Compare(e.V, t[1])
	})
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Moves returns the move set the graph was explored with.
func (g *Graph) Moves() gocuboid.MoveSet { return g.moves }

// Start returns the id of the starting configuration.
func (g *Graph) Start() int { return g.start }

// Neighbors returns the ids adjacent to id in ascending order. A node with a
// loop edge is its own neighbor.
func (g *Graph) Neighbors(id int) []int {
	if id < 0 || id >= len(g.adj) {
		return nil
	}
	return slices.Clone(g.adj[id])
}

// Adjacency returns the simple undirected graph underneath: every node id
// mapped to its sorted neighbors, loops excluded.
func (g *Graph) Adjacency() map[int][]int {
	return adjacency(len(g.nodes), g.edges)
}

// adjacency builds the simple-graph view of n nodes and the given edges.
func adjacency(n int, edges []Edge) map[int][]int {
	adj := make(map[int][]int, n)
	for id := 0; id < n; id++ {
		adj[id] = []int{}
	}
	for _, e := range edges {
		if e.Loop() {
			continue
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for id := range adj {
		slices.Sort(adj[id])
	}
	return adj
}
