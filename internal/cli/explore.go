package cli

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocuboid/internal/config"
	"github.com/SeamusWaldron/gocuboid/pkg/stategraph"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Build the reachable-state graph and write it as an edge list",
	Long: `Explore every configuration reachable from the solved cube using only the
permitted moves, then write the undirected state graph as an edge list:
a "N M" header followed by M lines "u v" with u < v.

Examples:
  cuboid explore                                # 3x2x1 under R2 D2 U2
  cuboid explore -d 2x2x2 -m "U R" -w 4 -o pocket.txt
  cuboid explore -c puzzle.toml --distances`,
	RunE: runExplore,
}

var (
	explorePuzzle    puzzleFlags
	exploreFrontier  string
	exploreWorkers   int
	exploreLimit     int
	exploreOutput    string
	exploreBipartite bool
	exploreDistances bool
)

func init() {
	rootCmd.AddCommand(exploreCmd)
	explorePuzzle.register(exploreCmd)
	exploreCmd.Flags().StringVar(&exploreFrontier, "frontier", "lifo", "Expansion order (lifo, fifo)")
	exploreCmd.Flags().IntVarP(&exploreWorkers, "workers", "w", 1, "Goroutines expanding each search level")
	exploreCmd.Flags().IntVar(&exploreLimit, "limit", 0, "Fail after this many configurations (0 = no limit)")
	exploreCmd.Flags().StringVarP(&exploreOutput, "output", "o", "", "Edge list file (default: graph.txt)")
	exploreCmd.Flags().BoolVar(&exploreBipartite, "bipartite", false, "Report the two halves of a bipartite graph")
	exploreCmd.Flags().BoolVar(&exploreDistances, "distances", false, "Report how many configurations lie at each move distance")
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, &explorePuzzle)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("frontier") {
		cfg.Explore.Frontier = exploreFrontier
	}
	if flags.Changed("workers") {
		cfg.Explore.Workers = exploreWorkers
	}
	if flags.Changed("limit") {
		cfg.Explore.Limit = exploreLimit
	}
	if flags.Changed("output") {
		cfg.Explore.Output = exploreOutput
	}
	if cfg.Explore.Output == "" {
		cfg.Explore.Output = config.DefaultOutput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cube, err := cfg.NewCube()
	if err != nil {
		return err
	}
	opts, err := cfg.ExploreOptions()
	if err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context()).With("run", uuid.NewString())
	opts = append(opts, stategraph.WithLogger(logger))

	logger.Info("Exploring", "dims", cube.Dims(), "moves", cube.Permitted())
	prog := newProgress(logger)
	g, err := stategraph.Explore(cmd.Context(), cube, opts...)
	if err != nil {
		return fmt.Errorf("explore %s: %w", cube.Dims(), err)
	}

	if err := stategraph.WriteEdgeListFile(cfg.Explore.Output, g); err != nil {
		return err
	}
	prog.done("Wrote edge list", "path", cfg.Explore.Output, "nodes", g.Len(), "edges", g.EdgeCount())

	fmt.Printf("Configurations: %d\n", g.Len())
	fmt.Printf("Edges:          %d\n", g.EdgeCount())
	fmt.Printf("Moves:          %s\n", g.Moves())

	if exploreBipartite {
		left, right, err := g.Bipartition()
		if err != nil {
			fmt.Printf("Bipartite:      no (%v)\n", err)
		} else {
			fmt.Printf("Bipartite:      yes (%d + %d)\n", len(left), len(right))
		}
	}

	if exploreDistances {
		dist, err := g.Distances(g.Start())
		if err != nil {
			return err
		}
		printDistances(dist)
	}
	return nil
}

// printDistances prints how many configurations lie at each distance from
// the start.
func printDistances(dist []int) {
	counts := make(map[int]int)
	for _, d := range dist {
		counts[d]++
	}
	keys := make([]int, 0, len(counts))
	for d := range counts {
		keys = append(keys, d)
	}
	slices.Sort(keys)

	fmt.Println()
	fmt.Println("Distance  Configurations")
	for _, d := range keys {
		label := fmt.Sprint(d)
		if d < 0 {
			label = "unreachable"
		}
		fmt.Printf("%-9s %d\n", label, counts[d])
	}
}
