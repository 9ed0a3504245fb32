// Package config loads puzzle and exploration settings from TOML files.
//
// A complete file looks like:
//
//	[puzzle]
//	height = 3
//	width  = 2
//	length = 1
//	moves  = "R2 D2 U2"
//
//	[puzzle.colors]
//	up   = "white"
//	down = "yellow"
//
//	[explore]
//	frontier = "lifo"
//	workers  = 1
//	limit    = 0
//	output   = "graph.txt"
//
// Missing keys keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/SeamusWaldron/gocuboid"
	"github.com/SeamusWaldron/gocuboid/pkg/stategraph"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AllMoves as the moves value permits every geometric move.
const AllMoves = "all"

// DefaultOutput is the edge list path used when none is configured.
const DefaultOutput = "graph.txt"

// Config is the full set of settings for one puzzle.
type Config struct {
	Puzzle  Puzzle  `toml:"puzzle"`
	Explore Explore `toml:"explore"`
}

// Puzzle describes the cube to build.
type Puzzle struct {
	Height int    `toml:"height"`
	Width  int    `toml:"width"`
	Length int    `toml:"length"`
	Moves  string `toml:"moves"` // empty or AllMoves permits every geometric move

	// Face name ("up", "front", ...) or letter to color name or symbol.
	Colors map[string]string `toml:"colors"`
}

// Explore holds state graph exploration settings.
type Explore struct {
	Frontier string `toml:"frontier"`
	Workers  int    `toml:"workers"`
	Limit    int    `toml:"limit"`
	Output   string `toml:"output"`
}

// Default returns the 3x2x1 puzzle under R2 D2 U2.
func Default() *Config {
	return &Config{
		Puzzle: Puzzle{
			Height: 3,
			Width:  2,
			Length: 1,
			Moves:  "R2 D2 U2",
		},
		Explore: Explore{
			Frontier: stategraph.LIFO.String(),
			Workers:  1,
			Output:   DefaultOutput,
		},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Dims returns the configured cuboid dimensions.
func (c *Config) Dims() gocuboid.Dims {
	return gocuboid.Dims{Height: c.Puzzle.Height, Width: c.Puzzle.Width, Length: c.Puzzle.Length}
}

// Validate checks every field, including that the moves are geometric for
// the dimensions.
func (c *Config) Validate() error {
	if _, err := c.NewCube(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.ExploreOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// CubeOptions converts the puzzle section to cube construction options.
func (c *Config) CubeOptions() ([]gocuboid.Option, error) {
	var opts []gocuboid.Option
	if m := strings.TrimSpace(c.Puzzle.Moves); m != "" && !strings.EqualFold(m, AllMoves) {
		moves, err := gocuboid.ParseMoveSet(c.Puzzle.Moves)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gocuboid.WithMoveSet(moves))
	}

	if len(c.Puzzle.Colors) > 0 {
		scheme := make(map[gocuboid.FaceID]gocuboid.Color, len(c.Puzzle.Colors))
		for face, name := range c.Puzzle.Colors {
			id, ok := gocuboid.ParseFaceID(face)
			if !ok {
				return nil, fmt.Errorf("unknown face %q in colors", face)
			}
			color, err := gocuboid.ParseColor(name)
			if err != nil {
				return nil, err
			}
			scheme[id] = color
		}
		opts = append(opts, gocuboid.WithColors(scheme))
	}
	return opts, nil
}

// NewCube builds the configured puzzle.
func (c *Config) NewCube() (*gocuboid.Cube, error) {
	opts, err := c.CubeOptions()
	if err != nil {
		return nil, err
	}
	return gocuboid.New(c.Dims(), opts...)
}

// ExploreOptions converts the explore section to stategraph options.
// Progress logging is left to the caller.
func (c *Config) ExploreOptions() ([]stategraph.Option, error) {
	frontier, err := stategraph.ParseFrontier(c.Explore.Frontier)
	if err != nil {
		return nil, err
	}
	if c.Explore.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive (%d)", c.Explore.Workers)
	}
	if c.Explore.Limit < 0 {
		return nil, fmt.Errorf("limit cannot be negative (%d)", c.Explore.Limit)
	}
	return []stategraph.Option{
		stategraph.WithFrontier(frontier),
		stategraph.WithWorkers(c.Explore.Workers),
		stategraph.WithLimit(c.Explore.Limit),
	}, nil
}
