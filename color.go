package gocuboid

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	numColors = 6
)

// String returns the one-character display symbol.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the canonical lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the enumerated colors.
func (c Color) Valid() bool {
	return c < numColors
}

// Colors returns every enumerated color in value order.
func Colors() []Color {
	return []Color{White, Yellow, Green, Blue, Red, Orange}
}

// ParseColor normalizes a color name or display symbol into a Color.
// Matching is case-insensitive: "red", "Red" and "R" all yield Red.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colors() {
		if name == c.Name() || name == strings.ToLower(c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
