package stategraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/gocuboid"
)

// Frontier selects the order in which discovered configurations are
// expanded.
type Frontier int

const (
	// LIFO expands the most recently discovered configuration first.
	LIFO Frontier = iota
	// FIFO expands configurations in discovery order (breadth first).
	FIFO
)

func (f Frontier) String() string {
	switch f {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseFrontier accepts "lifo" or "fifo" in any case.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lifo":
		return LIFO, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("%w: unknown frontier %q", ErrInvalidOption, s)
	}
}

// Option configures Explore.
type Option func(*options)

type options struct {
	moves    gocuboid.MoveSet
	movesSet bool
	frontier Frontier
	workers  int
	limit    int
	logger   *log.Logger

	// first invalid option, surfaced by Explore
	err error
}

func defaultOptions() options {
	return options{
		frontier: LIFO,
		workers:  1,
		logger:   log.New(io.Discard),
	}
}

// WithMoves explores with the given moves instead of every move the start
// cube permits. Each move must still be permitted by the cube.
func WithMoves(s gocuboid.MoveSet) Option {
	return func(o *options) {
		o.moves = s
		o.movesSet = true
	}
}

// WithFrontier sets the expansion order. The default is LIFO.
func WithFrontier(f Frontier) Option {
	return func(o *options) {
		if f != LIFO && f != FIFO {
			o.setErr(fmt.Errorf("%w: frontier %d", ErrInvalidOption, f))
			return
		}
		o.frontier = f
	}
}

// WithWorkers expands each level of the search on n goroutines.
// n == 1 runs the sequential explorer.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidOption, n))
			return
		}
		o.workers = n
	}
}

// WithLimit fails exploration with ErrLimitExceeded once more than n
// configurations are found. Zero means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.setErr(fmt.Errorf("%w: limit cannot be negative (%d)", ErrInvalidOption, n))
			return
		}
		o.limit = n
	}
}

// WithLogger reports progress to l. Exploration is silent by default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
