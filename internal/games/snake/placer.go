package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodPlacer moves food to a random cell the snake does not cover.
type FoodPlacer struct {
	grid Grid
	rng  *rand.Rand
}

// NewFoodPlacer creates a placer drawing from rng.
func NewFoodPlacer(grid Grid, rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{grid: grid, rng: rng}
}

// FreeCells lists every cell not covered by the snake, in row-major order.
func (fp *FoodPlacer) FreeCells(s *Snake) []core.Point {
	occupied := s.OccupiedCells()

	free := make([]core.Point, 0, max(0, fp.grid.Size()-len(occupied)))
	for y := 0; y < fp.grid.Height; y++ {
		for x := 0; x < fp.grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if _, hit := occupied[p]; !hit {
				free = append(free, p)
			}
		}
	}
	return free
}

// Relocate moves food to a uniformly chosen free cell.
// Returns false and leaves the food where it is when the board is full.
func (fp *FoodPlacer) Relocate(s *Snake, f *Food) bool {
	free := fp.FreeCells(s)
	if len(free) == 0 {
		return false
	}
	f.moveTo(free[fp.rng.Intn(len(free))])
	return true
}
