package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocuboid"
	"github.com/SeamusWaldron/gocuboid/internal/config"
)

func newTestCmd(p *puzzleFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	p.register(cmd)
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	var p puzzleFlags
	cfg, err := loadConfig(newTestCmd(&p), &p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dims() != config.Default().Dims() || cfg.Puzzle.Moves != config.Default().Puzzle.Moves {
		t.Errorf("got %+v, want defaults", cfg.Puzzle)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	var p puzzleFlags
	cmd := newTestCmd(&p)
	cmd.Flags().Set("dims", "2x2x2")

	cfg, err := loadConfig(cmd, &p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dims() != (gocuboid.Dims{Height: 2, Width: 2, Length: 2}) {
		t.Errorf("dims = %s", cfg.Dims())
	}
	// Changing the size without --moves permits every geometric move.
	if cfg.Puzzle.Moves != config.AllMoves {
		t.Errorf("moves = %q, want %q", cfg.Puzzle.Moves, config.AllMoves)
	}

	cmd.Flags().Set("moves", "U R")
	cfg, err = loadConfig(cmd, &p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Puzzle.Moves != "U R" {
		t.Errorf("moves = %q, want \"U R\"", cfg.Puzzle.Moves)
	}

	bad := newTestCmd(&p)
	bad.Flags().Set("dims", "2x2")
	if _, err := loadConfig(bad, &p); err == nil {
		t.Error("bad --dims should fail")
	}
}

func TestRenderNetPlain(t *testing.T) {
	for _, d := range []gocuboid.Dims{{Height: 3, Width: 3, Length: 3}, {Height: 3, Width: 2, Length: 1}} {
		c, err := gocuboid.New(d)
		if err != nil {
			t.Fatal(err)
		}
		c.ApplyNotation("U2 R2 F2")
		if got, want := renderNet(c, true), c.String(); got != want {
			t.Errorf("%s plain net:\n%s\nwant:\n%s", d, got, want)
		}
	}
}

func TestKeyMove(t *testing.T) {
	tests := []struct {
		key  string
		half bool
		want gocuboid.Move
		ok   bool
	}{
		{"r", false, gocuboid.R, true},
		{"R", false, gocuboid.RPrime, true},
		{"u", true, gocuboid.U2, true},
		{"U", true, gocuboid.U2, true},
		{"b", false, gocuboid.B, true},
		{"x", false, gocuboid.Move{}, false},
		{"up", false, gocuboid.Move{}, false},
	}
	for _, tt := range tests {
		got, ok := keyMove(tt.key, tt.half)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("keyMove(%q, %v) = %s, %v; want %s, %v", tt.key, tt.half, got, ok, tt.want, tt.ok)
		}
	}
}

func press(m *playModel, key string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestPlayModel(t *testing.T) {
	c, err := gocuboid.New(gocuboid.Dims{Height: 3, Width: 3, Length: 3})
	if err != nil {
		t.Fatal(err)
	}
	m := newPlayModel(c, 10)

	press(m, "r")
	press(m, "u")
	if got := gocuboid.FormatMoves(m.tracker.History()); got != "R U" {
		t.Errorf("history = %q, want \"R U\"", got)
	}

	press(m, "z")
	press(m, "R")
	if !m.tracker.IsSolved() {
		t.Error("R then R' should be solved")
		t.Log(m.tracker.CubeString())
	}
	if m.solvedAt != 2 {
		t.Errorf("solvedAt = %d, want 2", m.solvedAt)
	}

	press(m, "s")
	if len(m.tracker.History()) != 12 {
		t.Errorf("history after scramble = %d moves, want 12", len(m.tracker.History()))
	}
	press(m, "x")
	if !m.tracker.IsSolved() || len(m.tracker.History()) != 0 {
		t.Error("reset should restore the solved cube")
	}

	if view := m.View(); !strings.Contains(view, "SOLVED") {
		t.Errorf("view should report a solved cube:\n%s", view)
	}
}

func TestPlayModelRejectsMoves(t *testing.T) {
	c, err := gocuboid.New(gocuboid.Dims{Height: 3, Width: 2, Length: 1})
	if err != nil {
		t.Fatal(err)
	}
	m := newPlayModel(c, 5)

	press(m, "r")
	if m.err == "" || len(m.tracker.History()) != 0 {
		t.Error("a quarter turn of a non-square face should be rejected")
	}

	press(m, "2")
	press(m, "r")
	if m.err != "" || len(m.tracker.History()) != 1 {
		t.Errorf("half-turn mode should turn R2, err = %q", m.err)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Error("ctrl+c should quit")
	}
}
