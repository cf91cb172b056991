package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// HelpHeight is the number of terminal rows reserved below the game for the key help.
const HelpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs one game.
// Finished runs are recorded once in the store; tab opens the scoreboard
// after a game over.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	scoreboard *ScoreboardModel
	bestScore  int  // Best score in the run log
	runSaved   bool // Whether the current game over has been recorded
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithPlayer tags recorded runs with a player name.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// WithLogger sets the logger used for run log failures.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// NewModel creates a model for game. store may be nil.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-HelpHeight)),
		store:      store,
		logger:     log.Default(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW

	// Reset here so the first tick finds a running game.
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.bestScore = m.loadBestScore()
	return m
}

// gameConfig returns the runtime config with the help row taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-HelpHeight)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScores:
		if m.gameState.GameOver {
			sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard = &sb
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// updateScoreboard forwards a key to the open scoreboard.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.Quit():
		m.quitting = true
		return m, tea.Quit
	case sb.Done():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize follows the terminal size. Games that implement core.Resizer
// keep their run; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(core.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick steps the game once and records a finished run.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard == nil {
		// Games may keep the frame; the queue is reused for the next tick.
		result := m.game.Step(m.inputFrame.Clone())
		m.gameState = result.State
		m.inputFrame.Clear()
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.bestScore = m.saveRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run and returns the session best score.
// Failures are logged and otherwise ignored.
func (m Model) saveRun() int {
	if m.store == nil {
		return max(m.bestScore, m.gameState.Score)
	}

	run := storage.Run{Player: m.player, Score: m.gameState.Score}
	if r, ok := m.game.(core.RunReporter); ok {
		stats := r.RunStats()
		run.Length = stats.Length
		run.Speed = stats.Speed
		run.Ticks = stats.Ticks
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not record run", "game", m.game.ID(), "error", err)
	}
	return m.loadBestScore()
}

// loadBestScore reads the best score in the run log, which may include
// runs of other SSH sessions.
func (m Model) loadBestScore() int {
	if m.store == nil {
		return m.bestScore
	}
	best, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
		return m.bestScore
	}
	return max(best, m.bestScore)
}

// GameState returns the state seen on the latest tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the game or the scoreboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	footer := m.help.View(m.keys)
	if m.bestScore > 0 {
		footer += fmt.Sprintf("  •  Session best: %d", m.bestScore)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts a local Bubble Tea program for game.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
