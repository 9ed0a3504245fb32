package stategraph

import "errors"

// Sentinel errors for the stategraph package.
var (
	// ErrInvalidOption is returned when an Option carries a bad value.
	ErrInvalidOption = errors.New("stategraph: invalid option")

	// ErrLimitExceeded is returned when exploration finds more
	// configurations than WithLimit allows.
	ErrLimitExceeded = errors.New("stategraph: node limit exceeded")

	// ErrNotBipartite is returned by Bipartition for a graph with an odd
	// cycle or a loop edge.
	ErrNotBipartite = errors.New("stategraph: graph is not bipartite")

	// ErrNodeNotFound is returned for a node id outside 0..N-1.
	ErrNodeNotFound = errors.New("stategraph: node not found")

	// ErrMalformedEdgeList is returned when an edge list cannot be parsed.
	ErrMalformedEdgeList = errors.New("stategraph: malformed edge list")
)
