package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocuboid"
	"github.com/SeamusWaldron/gocuboid/internal/config"
	"github.com/SeamusWaldron/gocuboid/internal/notation"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence and print the cube",
	Long: `Apply a move sequence to a solved cube and print the unfolded net.

Examples:
  cuboid apply "R U R' U'"
  cuboid apply -d 3x2x1 R2 D2 U2 --plain
  cuboid apply --simplify --describe "R R U U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var (
	applyPuzzle   puzzleFlags
	applyPlain    bool
	applySimplify bool
	applyDescribe bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyPuzzle.register(applyCmd)
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print facelet symbols without color")
	applyCmd.Flags().BoolVar(&applySimplify, "simplify", false, "Merge and cancel adjacent turns of the same face first")
	applyCmd.Flags().BoolVar(&applyDescribe, "describe", false, "Describe each move in words")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, &applyPuzzle)
	if err != nil {
		return err
	}
	// apply defaults to every geometric move unless restricted explicitly.
	if configPath == "" && !cmd.Flags().Changed("moves") {
		cfg.Puzzle.Moves = config.AllMoves
	}
	cube, err := cfg.NewCube()
	if err != nil {
		return err
	}

	moves, err := gocuboid.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if applySimplify {
		moves = notation.Simplify(moves)
	}
	loggerFromContext(cmd.Context()).Debug("Applying", "dims", cube.Dims(), "moves", gocuboid.FormatMoves(moves))

	if err := cube.Apply(moves...); err != nil {
		return err
	}

	fmt.Printf("Moves: %s\n", gocuboid.FormatMoves(moves))
	if applyDescribe {
		for i, d := range notation.DescribeSequence(moves) {
			fmt.Printf("  %2d. %s\n", i+1, d)
		}
	}
	fmt.Println()
	fmt.Print(renderNet(cube, applyPlain))
	fmt.Println()

	p := cube.Progress()
	if p.Complete() {
		fmt.Println("Solved")
	} else {
		fmt.Printf("Solved faces: %d/6, facelets in place: %.0f%%\n", p.SolvedFaces, p.Fraction()*100)
	}
	return nil
}
