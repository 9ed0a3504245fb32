package stategraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteEdgeList writes g in edge-list form: a "N M" header followed by one
// "u v" line per edge with u < v, ascending by (u, v). Loop edges are
// skipped and M counts only the lines written.
func WriteEdgeList(w io.Writer, g *Graph) error {
	written := 0
	for _, e := range g.edges {
		if !e.Loop() {
			written++
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(g.nodes), written)
	for _, e := range g.edges {
		if e.Loop() {
			continue
		}
		bw.WriteString(strconv.Itoa(e.U))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(e.V))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteEdgeListFile writes g to path, creating or truncating the file.
func WriteEdgeListFile(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create edge list: %w", err)
	}
	if err := WriteEdgeList(f, g); err != nil {
		f.Close()
		return fmt.Errorf("write edge list %s: %w", path, err)
	}
	return f.Close()
}

// EdgeList is a parsed edge-list file.
type EdgeList struct {
	Nodes int
	Edges [][2]int // u < v, ascending
}

// Adjacency returns every node id mapped to its sorted neighbors. For a
// list written from a Graph it equals that graph's Adjacency.
func (l *EdgeList) Adjacency() map[int][]int {
	edges := make([]Edge, len(l.Edges))
	for i, e := range l.Edges {
		edges[i] = Edge{U: e[0], V: e[1]}
	}
	return adjacency(l.Nodes, edges)
}

// Degrees returns the number of neighbors of each node.
func (l *EdgeList) Degrees() []int {
	deg := make([]int, l.Nodes)
	for _, e := range l.Edges {
		deg[e[0]]++
		deg[e[1]]++
	}
	return deg
}

// ReadEdgeList parses the output of WriteEdgeList. The header counts, the
// id range and the edge order are all checked.
func ReadEdgeList(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (int, int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, 0, err
			}
			return 0, 0, fmt.Errorf("%w: unexpected end of input after line %d", ErrMalformedEdgeList, line)
		}
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("%w: line %d: want two integers, got %q", ErrMalformedEdgeList, line, sc.Text())
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if err := errors.Join(errA, errB); err != nil {
			return 0, 0, fmt.Errorf("%w: line %d: %v", ErrMalformedEdgeList, line, err)
		}
		return a, b, nil
	}

	n, m, err := next()
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: negative counts %d %d", ErrMalformedEdgeList, n, m)
	}

	l := &EdgeList{Nodes: n, Edges: make([][2]int, 0, min(m, 1<<16))}
	for i := 0; i < m; i++ {
		u, v, err := next()
		if err != nil {
			return nil, err
		}
		if u < 0 || v >= n || u >= v {
			return nil, fmt.Errorf("%w: line %d: edge %d %d outside 0 <= u < v < %d", ErrMalformedEdgeList, line, u, v, n)
		}
		if i > 0 {
			prev := l.Edges[i-1]
			if u < prev[0] || (u == prev[0] && v <= prev[1]) {
				return nil, fmt.Errorf("%w: line %d: edge %d %d out of order", ErrMalformedEdgeList, line, u, v)
			}
		}
		l.Edges = append(l.Edges, [2]int{u, v})
	}

	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, fmt.Errorf("%w: line %d: more edges than the header's %d", ErrMalformedEdgeList, line, m)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadEdgeListFile parses the edge list stored at path.
func ReadEdgeListFile(path string) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()
	return ReadEdgeList(f)
}
