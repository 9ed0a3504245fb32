package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocuboid"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletStyles colors each facelet symbol.
var faceletStyles = map[gocuboid.Color]lipgloss.Style{
	gocuboid.White:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	gocuboid.Yellow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
	gocuboid.Green:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
	gocuboid.Blue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	gocuboid.Red:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	gocuboid.Orange: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
}

// renderNet draws the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
//
// With plain set the output matches Cube.String.
func renderNet(c *gocuboid.Cube, plain bool) string {
	cell := func(color gocuboid.Color) string {
		if plain {
			return color.String()
		}
		return faceletStyles[color].Render(color.String())
	}
	row := func(f *gocuboid.Face, r int) string {
		parts := make([]string, f.Cols())
		for col := range parts {
			parts[col] = cell(f.At(r, col))
		}
		return strings.Join(parts, " ")
	}

	var b strings.Builder
	indent := strings.Repeat("  ", c.Dims().Length) + " "

	up := c.Face(gocuboid.FaceU)
	for r := 0; r < up.Rows(); r++ {
		b.WriteString(indent + row(up, r) + "\n")
	}
	b.WriteByte('\n')

	for r := 0; r < c.Dims().Height; r++ {
		parts := make([]string, 0, 4)
		for _, id := range []gocuboid.FaceID{gocuboid.FaceL, gocuboid.FaceF, gocuboid.FaceR, gocuboid.FaceB} {
			parts = append(parts, row(c.Face(id), r))
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}
	b.WriteByte('\n')

	down := c.Face(gocuboid.FaceD)
	for r := 0; r < down.Rows(); r++ {
		b.WriteString(indent + row(down, r) + "\n")
	}
	return b.String()
}
