package core

// Game is the interface the platform drives.
// Implementations contain pure logic with no terminal dependencies;
// the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used for logging and the run log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the run.
type Resizer interface {
	Resize(width, height int)
}

// RunReporter is implemented by games that describe a run beyond its score.
type RunReporter interface {
	RunStats() RunStats
}
