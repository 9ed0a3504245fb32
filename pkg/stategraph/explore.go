package stategraph

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/gocuboid"
)

// progressEvery is how many new configurations pass between debug logs.
const progressEvery = 10000

// Explore builds the graph of every configuration reachable from start.
//
// Each configuration is expanded once: every move is applied to a fresh
// copy, unseen results become new nodes, and the pair is joined by an edge
// labelled with the move. start itself is not modified.
func Explore(ctx context.Context, start *gocuboid.Cube, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	moves := start.Permitted()
	if o.movesSet {
		for m := range o.moves.All() {
			if !moves.Has(m) {
				return nil, fmt.Errorf("%w: %s (permitted: %s)", gocuboid.ErrIllegalMove, m, moves)
			}
		}
		moves = o.moves
	}

	began := time.Now()
	e := &explorer{
		moves: moves.Moves(),
		opts:  o,
		index: make(map[string]int),
		edges: make(map[[2]int]gocuboid.MoveSet),
	}
	e.nodes = append(e.nodes, start.Clone())
	e.index[start.Key()] = 0

	o.logger.Debug("exploring", "dims", start.Dims(), "moves", moves,
		"frontier", o.frontier, "workers", o.workers)

	var err error
	if o.workers > 1 {
		err = e.runLevels(ctx)
	} else {
		err = e.run(ctx)
	}
	if err != nil {
		return nil, err
	}

	g := e.graph(moves)
	o.logger.Info("exploration complete",
		"nodes", g.Len(),
		"edges", g.EdgeCount(),
		"elapsed", time.Since(began).Round(time.Millisecond))
	return g, nil
}

// explorer holds the search state. Configurations are numbered in
// discovery order until graph renumbers them.
type explorer struct {
	moves []gocuboid.Move
	opts  options

	mu    sync.Mutex
	nodes []*gocuboid.Cube
	index map[string]int
	edges map[[2]int]gocuboid.MoveSet
}

// run expands one configuration at a time from a single frontier.
func (e *explorer) run(ctx context.Context) error {
	frontier := []int{0}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		var id int
		if e.opts.frontier == FIFO {
			id, frontier = frontier[0], frontier[1:]
		} else {
			id, frontier = frontier[len(frontier)-1], frontier[:len(frontier)-1]
		}

		fresh, err := e.expand(id)
		if err != nil {
			return err
		}
		frontier = append(frontier, fresh...)
	}
	return nil
}

// runLevels expands every configuration of one search level concurrently
// before moving to the next.
func (e *explorer) runLevels(ctx context.Context) error {
	level := []int{0}
	for len(level) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.opts.workers)

		found := make([][]int, len(level))
		for i, id := range level {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fresh, err := e.expand(id)
				found[i] = fresh
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		var next []int
		for _, fresh := range found {
			next = append(next, fresh...)
		}
		level = next
	}
	return nil
}

// expand applies every move to configuration id and returns the ids of the
// configurations seen for the first time.
func (e *explorer) expand(id int) ([]int, error) {
	e.mu.Lock()
	src := e.nodes[id]
	e.mu.Unlock()

	var fresh []int
	for _, m := range e.moves {
		next := src.Clone()
		if err := next.MakeMove(m); err != nil {
			return nil, err
		}
		key := next.Key()

		e.mu.Lock()
		to, seen := e.index[key]
		if !seen {
			if e.opts.limit > 0 && len(e.nodes) >= e.opts.limit {
				e.mu.Unlock()
				return nil, fmt.Errorf("%w: more than %d configurations", ErrLimitExceeded, e.opts.limit)
			}
			to = len(e.nodes)
			e.nodes = append(e.nodes, next)
			e.index[key] = to
			fresh = append(fresh, to)
			if len(e.nodes)%progressEvery == 0 {
				e.opts.logger.Debug("exploring", "nodes", len(e.nodes), "edges", len(e.edges))
			}
		}
		e.link(id, to, m)
		e.mu.Unlock()
	}
	return fresh, nil
}

// link records m on the edge between u and v. Callers hold e.mu.
func (e *explorer) link(u, v int, m gocuboid.Move) {
	if u > v {
		u, v = v, u
	}
	k := [2]int{u, v}
	s := e.edges[k]
	s.Add(m)
	e.edges[k] = s
}

// graph renumbers the configurations by hash and freezes the result.
func (e *explorer) graph(moves gocuboid.MoveSet) *Graph {
	n := len(e.nodes)
	hashes := make([]uint64, n)
	keys := make([]string, n)
	for i, c := range e.nodes {
		hashes[i] = c.Hash()
		keys[i] = c.Key()
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(hashes[a], hashes[b]); c != 0 {
			return c
		}
		return strings.Compare(keys[a], keys[b])
	})

	remap := make([]int, n)
	g := &Graph{
		nodes: make([]*gocuboid.Cube, n),
		index: make(map[string]int, n),
		moves: moves,
	}
	for id, old := range order {
		remap[old] = id
		g.nodes[id] = e.nodes[old]
		g.index[keys[old]] = id
	}
	g.start = remap[0]

	g.edges = make([]Edge, 0, len(e.edges))
	for k, s := range e.edges {
		u, v := remap[k[0]], remap[k[1]]
		if u > v {
			u, v = v, u
		}
		g.edges = append(g.edges, Edge{U: u, V: v, Moves: s})
	}
	slices.SortFunc(g.edges, func(a, b Edge) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})

	g.adj = make([][]int, n)
	for _, edge := range g.edges {
		g.adj[edge.U] = append(g.adj[edge.U], edge.V)
		if !edge.Loop() {
			g.adj[edge.V] = append(g.adj[edge.V], edge.U)
		}
	}
	for id := range g.adj {
		slices.Sort(g.adj[id])
	}
	return g
}
