package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocuboid"
	"github.com/SeamusWaldron/gocuboid/pkg/stategraph"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, gocuboid.Dims{Height: 3, Width: 2, Length: 1}, cfg.Dims())

	c, err := cfg.NewCube()
	require.NoError(t, err)
	assert.Equal(t, gocuboid.NewMoveSet(gocuboid.R2, gocuboid.D2, gocuboid.U2), c.Permitted())
	assert.Equal(t, DefaultOutput, cfg.Explore.Output)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
[puzzle]
height = 2
width = 2
length = 2
moves = "U R"

[puzzle.colors]
up = "yellow"
D = "W"

[explore]
frontier = "fifo"
workers = 4
limit = 50000
output = "pocket.txt"
`))
	require.NoError(t, err)
	assert.Equal(t, gocuboid.Dims{Height: 2, Width: 2, Length: 2}, cfg.Dims())
	assert.Equal(t, "pocket.txt", cfg.Explore.Output)

	c, err := cfg.NewCube()
	require.NoError(t, err)
	assert.Equal(t, gocuboid.NewMoveSet(gocuboid.U, gocuboid.R), c.Permitted())
	up, _ := c.Face(gocuboid.FaceU).Uniform()
	down, _ := c.Face(gocuboid.FaceD).Uniform()
	assert.Equal(t, gocuboid.Yellow, up)
	assert.Equal(t, gocuboid.White, down)

	opts, err := cfg.ExploreOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[explore]\nworkers = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Puzzle.Moves, cfg.Puzzle.Moves)
	assert.Equal(t, 2, cfg.Explore.Workers)
	assert.Equal(t, "lifo", cfg.Explore.Frontier)
}

func TestAllMoves(t *testing.T) {
	cfg, err := Parse([]byte("[puzzle]\nheight = 2\nwidth = 2\nlength = 1\nmoves = \"all\"\n"))
	require.NoError(t, err)

	c, err := cfg.NewCube()
	require.NoError(t, err)
	assert.Equal(t, gocuboid.DefaultMoves(cfg.Dims()), c.Permitted())
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":             "[puzzle\n",
		"unknown key":        "[puzzle]\ncolour = 1\n",
		"zero dimension":     "[puzzle]\nheight = 0\n",
		"bad move":           "[puzzle]\nmoves = \"R2 X\"\n",
		"non-square quarter": "[puzzle]\nmoves = \"R\"\n",
		"bad face":           "[puzzle.colors]\ntop = \"red\"\n",
		"bad color":          "[puzzle.colors]\nup = \"purple\"\n",
		"bad frontier":       "[explore]\nfrontier = \"dfs\"\n",
		"zero workers":       "[explore]\nworkers = 0\n",
		"negative limit":     "[explore]\nlimit = -1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseErrorKinds(t *testing.T) {
	_, err := Parse([]byte("[puzzle]\nmoves = \"R\"\n"))
	assert.ErrorIs(t, err, gocuboid.ErrIllegalMove)

	_, err = Parse([]byte("[explore]\nfrontier = \"dfs\"\n"))
	assert.ErrorIs(t, err, stategraph.ErrInvalidOption)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.toml")
	require.NoError(t, os.WriteFile(path, []byte("[puzzle]\nheight = 1\nwidth = 1\nlength = 1\nmoves = \"U2 D2\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, gocuboid.Dims{Height: 1, Width: 1, Length: 1}, cfg.Dims())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
