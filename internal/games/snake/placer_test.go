package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRelocateAvoidsSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	placer := NewFoodPlacer(testGrid, rng)

	s := newTestSnake(0, 0)
	// A body covering the top ten rows
	s.segments = s.segments[:0]
	for y := 0; y < 10; y++ {
		for x := 0; x < testGrid.Width; x++ {
			s.segments = append(s.segments, core.Point{X: x, Y: y})
		}
	}
	food := NewFood(core.Point{X: 0, Y: 0})
	occupied := s.OccupiedCells()

	for i := 0; i < 500; i++ {
		if !placer.Relocate(s, food) {
			t.Fatal("Relocate() = false with free cells available")
		}
		if _, hit := occupied[food.Position()]; hit {
			t.Fatalf("food placed on the snake at %+v", food.Position())
		}
		if !testGrid.Contains(food.Position()) {
			t.Fatalf("food placed outside the grid at %+v", food.Position())
		}
	}
}

func TestRelocateFullBoard(t *testing.T) {
	grid := Grid{Width: 3, Height: 2}
	placer := NewFoodPlacer(grid, rand.New(rand.NewSource(1)))

	s := NewSnake(grid, core.Point{X: 0, Y: 0}, 100, DefaultSpeedRamp)
	s.segments = []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	food := NewFood(core.Point{X: 1, Y: 1})

	if placer.Relocate(s, food) {
		t.Error("Relocate() = true on a full board")
	}
	if food.Position() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("food moved to %+v, expected it to stay", food.Position())
	}
	if len(placer.FreeCells(s)) != 0 {
		t.Error("FreeCells() should be empty on a full board")
	}
}

func TestFreeCellsRowMajor(t *testing.T) {
	grid := Grid{Width: 3, Height: 2}
	placer := NewFoodPlacer(grid, rand.New(rand.NewSource(1)))
	s := NewSnake(grid, core.Point{X: 1, Y: 0}, 100, DefaultSpeedRamp)

	expected := []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	got := placer.FreeCells(s)
	if len(got) != len(expected) {
		t.Fatalf("FreeCells() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("FreeCells()[%d] = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestRelocateReachesEveryFreeCell(t *testing.T) {
	grid := Grid{Width: 4, Height: 1}
	placer := NewFoodPlacer(grid, rand.New(rand.NewSource(42)))
	s := NewSnake(grid, core.Point{X: 0, Y: 0}, 100, DefaultSpeedRamp)
	food := NewFood(core.Point{X: 1, Y: 0})

	counts := make(map[core.Point]int)
	const draws = 3000
	for i := 0; i < draws; i++ {
		placer.Relocate(s, food)
		counts[food.Position()]++
	}

	if counts[core.Point{X: 0, Y: 0}] != 0 {
		t.Error("food landed on the snake")
	}
	for x := 1; x < 4; x++ {
		n := counts[core.Point{X: x, Y: 0}]
		// Expect about 1000 each; a loose band keeps this stable for any seed.
		if n < 800 || n > 1200 {
			t.Errorf("cell %d drawn %d times out of %d, expected a roughly uniform share", x, n, draws)
		}
	}
}

func TestFoodConsume(t *testing.T) {
	f := NewFood(core.Point{X: 3, Y: 4})
	if f.EatenCount() != 0 {
		t.Errorf("new food eaten = %d, expected 0", f.EatenCount())
	}

	f.Consume()
	f.Consume()
	if f.EatenCount() != 2 {
		t.Errorf("eaten = %d, expected 2", f.EatenCount())
	}
	if f.Position() != (core.Point{X: 3, Y: 4}) {
		t.Error("Consume must not move the food")
	}
}
