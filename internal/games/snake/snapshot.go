package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	ClockMS      int64
	Score        int
	SnakeLen     int
	Head         core.Point
	Dir          Direction
	Heading      Direction
	Food         core.Point
	Speed        int
	NextMoveTime int64
	LastTick     TickResult
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.session.Over():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	s := g.session.Snake
	return Snapshot{
		Tick:         g.tick,
		ClockMS:      g.now(),
		Score:        g.session.Score(),
		SnakeLen:     s.Len(),
		Head:         s.Head(),
		Dir:          s.Direction(),
		Heading:      s.Heading(),
		Food:         g.session.Food.Position(),
		Speed:        s.Speed(),
		NextMoveTime: s.NextMoveTime(),
		LastTick:     g.lastTick,
		State:        state,
	}
}
