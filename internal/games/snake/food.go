package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Food is the single pickup on the board. It is moved, never recreated.
type Food struct {
	position core.Point
	eaten    int
}

// NewFood places food at p.
func NewFood(p core.Point) *Food {
	return &Food{position: p}
}

// Position returns the food cell.
func (f *Food) Position() core.Point { return f.position }

// EatenCount returns how many times the food was consumed. It doubles as the score.
func (f *Food) EatenCount() int { return f.eaten }

// Consume records one eating. Repositioning is FoodPlacer's job.
func (f *Food) Consume() { f.eaten++ }

func (f *Food) moveTo(p core.Point) { f.position = p }
