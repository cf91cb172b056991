package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid is the toroidal playfield. It holds only its bounds; cells are never
// materialized except when enumerating free cells for food.
type Grid struct {
	Width  int
	Height int
}

// Wrap maps any point onto the grid, so leaving one edge re-enters at the opposite one.
func (g Grid) Wrap(p core.Point) core.Point {
	if g.Contains(p) {
		return p
	}
	return core.Point{X: core.Mod(p.X, g.Width), Y: core.Mod(p.Y, g.Height)}
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return g.Width * g.Height
}
