package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart (after game over)
  Tab               - Scores of this session (after game over)
  Q/Ctrl+C          - Quit

Difficulty options (initial move interval; the ramp is the same):
  easy   - 150ms
  normal - 100ms
  hard   - 60ms

The default 50x40 board needs a terminal of at least 52x45 cells
(board, border, status line and key help). In a smaller terminal the
game waits until the window is resized.

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalFits reports whether a terminal of width x height cells fits the
// board, and the size it needs.
func terminalFits(cfg config.SnakeConfig, width, height int) (needW, needH int, ok bool) {
	needW, needH = snake.MinScreenSize(cfg)
	needH += tui.HelpHeight
	return needW, needH, width >= needW && height >= needH
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	} else {
		logger.Debug("could not read terminal size", "error", termErr)
	}

	if needW, needH, ok := terminalFits(cfg, width, height); !ok {
		logger.Warn("terminal is smaller than the board, resize to play",
			"have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needW, needH),
		)
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		store = nil
	}

	logger.Debug("starting game",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"speed", cfg.Speed.Initial,
		"fps", rc.TickRate,
	)

	runErr := tui.Run(snake.New(cfg), store, rc, tui.WithLogger(logger))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		os.Exit(1)
	}
}
