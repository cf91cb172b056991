// Package snake implements a wrap-around snake game on a fixed grid.
// The snake grows on every food, speeds up every few foods, and dies when
// its head enters its own body. There are no walls: every edge wraps.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the playfield border.
const hudHeight = 2

// Game adapts a Session to the platform's fixed-rate tick loop.
// Every step advances a millisecond clock by 1000/TickRate while the game is
// running; pausing freezes that clock.
type Game struct {
	cfg      config.SnakeConfig
	session  *Session
	rng      *rand.Rand
	tick     uint64 // Steps since reset
	clock    uint64 // Steps spent playing
	tickRate int
	lastTick TickResult

	// Screen layout
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int

	paused   bool
	tooSmall bool
}

// New creates a game using cfg. Call Reset before stepping it.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.cfg, g.rng)
	g.tick = 0
	g.clock = 0
	g.lastTick = TickBlocked
	g.paused = false

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// MinScreenSize returns the smallest screen, in cells, that fits the
// bordered board and the HUD.
func MinScreenSize(cfg config.SnakeConfig) (width, height int) {
	return cfg.Grid.Width + 2, cfg.Grid.Height + hudHeight + 2
}

// Resize adapts the layout to a new screen size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	grid := g.session.Grid
	requiredW, requiredH := MinScreenSize(g.cfg)
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH

	g.mapOffsetX = (g.screenW - grid.Width) / 2
	g.mapOffsetY = hudHeight + 1
}

// now returns the simulation clock in milliseconds. The first step sees 0.
func (g *Game) now() int64 {
	return int64(g.clock) * 1000 / int64(g.tickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.session.Over() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}

	if g.session.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	now := g.now()
	g.clock++

	result := g.session.Update(now, Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	})
	g.lastTick = result.Tick

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Render draws the game to the screen, one character per tile.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	view := g.session.View()
	g.renderHUD(dst, view)

	if g.tooSmall {
		w, h := MinScreenSize(g.cfg)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	dst.DrawBoxColored(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, view.Grid.Width+2, view.Grid.Height+2), core.ColorBorder)

	tile := g.cfg.Grid.TileSize
	frame := Draw(view, tile)
	for _, cmd := range frame.Tiles {
		x := g.mapOffsetX + cmd.X/tile
		y := g.mapOffsetY + cmd.Y/tile
		switch cmd.Kind {
		case TileFood:
			dst.SetColored(x, y, '*', core.ColorFood)
		case TileBody:
			dst.SetColored(x, y, 'o', core.ColorBody)
		case TileHead:
			dst.SetColored(x, y, 'O', core.ColorHead)
		}
	}

	switch {
	case frame.Message != "":
		g.renderOverlay(dst, frame.Message, "R: restart  Tab: scores  Q: quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, v View) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %dms", v.Score, len(v.Segments), v.Speed)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorNotice)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// RunStats describes the current run for the run log.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Length: g.session.Snake.Len(),
		Speed:  g.session.Snake.Speed(),
		Ticks:  g.tick,
	}
}
