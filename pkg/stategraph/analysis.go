package stategraph

import "fmt"

// Bipartition two-colors the graph breadth first from each uncolored node in
// id order. It fails with ErrNotBipartite when a loop edge or an odd cycle
// makes that impossible. Both halves are returned in ascending id order.
func (g *Graph) Bipartition() (left, right []int, err error) {
	side := make([]int, len(g.nodes))
	for i := range side {
		side[i] = -1
	}

	queue := make([]int, 0, len(g.nodes))
	for root := range g.nodes {
		if side[root] >= 0 {
			continue
		}
		side[root] = 0
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.adj[u] {
				switch {
				case side[v] < 0:
					side[v] = 1 - side[u]
					queue = append(queue, v)
				case side[v] == side[u]:
					return nil, nil, fmt.Errorf("%w: nodes %d and %d on the same side", ErrNotBipartite, u, v)
				}
			}
		}
	}

	for id, s := range side {
		if s == 0 {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}
	return left, right, nil
}

// Distances returns the fewest moves from node from to every node, or -1
// where no path exists.
func (g *Graph) Distances(from int) ([]int, error) {
	if from < 0 || from >= len(g.nodes) {
		return nil, fmt.Errorf("%w: %d (graph has %d nodes)", ErrNodeNotFound, from, len(g.nodes))
	}

	dist := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist, nil
}

// Diameter returns the largest distance from the start node, i.e. the
// number of moves needed to reach the farthest configuration.
func (g *Graph) Diameter() int {
	dist, err := g.Distances(g.start)
	if err != nil {
		return 0
	}
	longest := 0
	for _, d := range dist {
		longest = max(longest, d)
	}
	return longest
}
