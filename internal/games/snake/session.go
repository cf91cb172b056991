package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Input holds the four directional signals polled for one frame.
type Input struct {
	Left, Right, Up, Down bool
}

// FrameResult reports what happened during one Session.Update.
type FrameResult struct {
	Tick      TickResult
	Ate       bool // The head reached the food this frame
	Relocated bool // The food found a new free cell after being eaten
}

// Session is the state of one game: the snake, the food, and the placer
// that keeps them apart. It is owned by the game loop and holds no globals.
type Session struct {
	Grid   Grid
	Snake  *Snake
	Food   *Food
	Placer *FoodPlacer
}

// NewSession builds a session from config. rng drives food placement.
func NewSession(cfg config.SnakeConfig, rng *rand.Rand) *Session {
	grid := Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	ramp := SpeedRamp{Floor: cfg.Speed.Floor, Step: cfg.Speed.Step, Every: cfg.Speed.Every}

	return &Session{
		Grid:   grid,
		Snake:  NewSnake(grid, core.Point{X: cfg.Spawn.SnakeX, Y: cfg.Spawn.SnakeY}, cfg.Speed.Initial, ramp),
		Food:   NewFood(grid.Wrap(core.Point{X: cfg.Spawn.FoodX, Y: cfg.Spawn.FoodY})),
		Placer: NewFoodPlacer(grid, rng),
	}
}

// Update runs one frame: input, then the move, then eating and relocation.
// Once the snake is dead the session is frozen and Update only reports it.
func (s *Session) Update(now int64, in Input) FrameResult {
	if !s.Snake.Alive() {
		return FrameResult{Tick: TickDied}
	}

	// First pressed wins, in this order
	switch {
	case in.Left:
		s.Snake.FaceLeft()
	case in.Right:
		s.Snake.FaceRight()
	case in.Up:
		s.Snake.FaceUp()
	case in.Down:
		s.Snake.FaceDown()
	}

	result := FrameResult{Tick: s.Snake.Tick(now)}
	if result.Tick != TickMoved {
		return result
	}

	if s.Snake.CollidedWithFood(s.Food) {
		result.Ate = true
		result.Relocated = s.Placer.Relocate(s.Snake, s.Food)
	}
	return result
}

// Score returns the number of foods eaten.
func (s *Session) Score() int { return s.Food.EatenCount() }

// Over reports whether the snake is dead.
func (s *Session) Over() bool { return !s.Snake.Alive() }

// View is a plain-data copy of everything a renderer needs.
type View struct {
	Grid     Grid
	Segments []core.Point // Head first
	Food     core.Point
	Score    int
	Speed    int
	Alive    bool
}

// View captures the current state for rendering.
func (s *Session) View() View {
	return View{
		Grid:     s.Grid,
		Segments: s.Snake.Segments(),
		Food:     s.Food.Position(),
		Score:    s.Score(),
		Speed:    s.Snake.Speed(),
		Alive:    s.Snake.Alive(),
	}
}
