// Package cli implements the command-line interface for gocuboid.
//
// Commands:
//   - explore: build the reachable-state graph of a puzzle and write it as
//     an edge list
//   - apply: apply a move sequence and print the unfolded cube
//   - play: turn the faces interactively
//   - stats: summarize a previously written edge list
//
// Puzzle settings come from an optional TOML file (--config) and are
// overridden by flags. All commands support --verbose (-v) for debug-level
// logging; the logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocuboid"
	"github.com/SeamusWaldron/gocuboid/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cuboid",
	Short: "Generalized cuboid puzzle explorer",
	Long: `cuboid models twisty cuboid puzzles of any Height x Width x Length.

Turn faces from the command line or interactively, and explore every
configuration reachable under a restricted move set as an undirected graph
written in a plain edge-list format.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Puzzle configuration file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// puzzleFlags are the flags shared by every command that builds a cube.
type puzzleFlags struct {
	dims  string
	moves string
}

func (p *puzzleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.dims, "dims", "d", "", "Cuboid size as HxWxL (e.g. 3x2x1)")
	cmd.Flags().StringVarP(&p.moves, "moves", "m", "", `Permitted moves, e.g. "R2 D2 U2", or "all"`)
}

// loadConfig reads --config (or the defaults) and applies the puzzle flags
// the user set on cmd.
func loadConfig(cmd *cobra.Command, p *puzzleFlags) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dims") {
		d, err := gocuboid.ParseDims(p.dims)
		if err != nil {
			return nil, err
		}
		cfg.Puzzle.Height, cfg.Puzzle.Width, cfg.Puzzle.Length = d.Height, d.Width, d.Length
		// New dimensions invalidate file moves unless given again.
		if !cmd.Flags().Changed("moves") {
			cfg.Puzzle.Moves = config.AllMoves
		}
	}
	if cmd.Flags().Changed("moves") {
		cfg.Puzzle.Moves = p.moves
	}
	return cfg, nil
}
