// cuboid explores generalized twisty cuboid puzzles from the command line.
package main

import (
	"github.com/SeamusWaldron/gocuboid/internal/cli"
)

func main() {
	cli.Execute()
}
