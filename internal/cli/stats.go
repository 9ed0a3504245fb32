package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocuboid/pkg/stategraph"
)

var statsCmd = &cobra.Command{
	Use:   "stats <edge-list>",
	Short: "Summarize an edge list written by explore",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	l, err := stategraph.ReadEdgeListFile(args[0])
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("Read edge list", "path", args[0], "nodes", l.Nodes, "edges", len(l.Edges))

	fmt.Printf("File:   %s\n", args[0])
	fmt.Printf("Nodes:  %d\n", l.Nodes)
	fmt.Printf("Edges:  %d\n", len(l.Edges))
	if l.Nodes == 0 {
		return nil
	}

	deg := l.Degrees()
	hist := make(map[int]int)
	total := 0
	for _, d := range deg {
		hist[d]++
		total += d
	}
	fmt.Printf("Degree: min %d, max %d, mean %.2f\n", slices.Min(deg), slices.Max(deg), float64(total)/float64(l.Nodes))

	keys := make([]int, 0, len(hist))
	for d := range hist {
		keys = append(keys, d)
	}
	slices.Sort(keys)
	fmt.Println()
	fmt.Println("Degree  Nodes")
	for _, d := range keys {
		fmt.Printf("%-7d %d\n", d, hist[d])
	}
	return nil
}
