package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/surimi-survivors/internal/core"
	"github.com/vovakirdan/surimi-survivors/internal/registry"
	"github.com/vovakirdan/surimi-survivors/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game mode.
// It maps keys to held input, steps the game once per tick, and saves the
// run when it ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	metrics    *Metrics
	config     core.RuntimeConfig
	input      HeldInput
	keyMapper  *KeyMapper
	fps        *fpsCounter
	gameState  core.GameState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool
	lastRunID  string
}

// NewGameModel creates a game model. store and metrics may be nil.
func NewGameModel(game registry.Game, store *storage.Store, metrics *Metrics, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		metrics:   metrics,
		config:    cfg,
		input:     NewHeldInput(DefaultHoldTicks),
		keyMapper: NewKeyMapper(),
		fps:       &fpsCounter{},
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// The camera follows the player, so a resize only changes the view.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Back pauses a live run; from pause or game over it leaves.
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.input.Press(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.input.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	m.fps.Tick(t)

	frame := m.input.Frame()

	// Check for restart
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.input.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.input.Advance()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run and records metrics.
func (m *GameModel) saveRun() {
	playTime := PlayTime(m.gameState.Ticks, m.config.TickRate)
	m.metrics.RunFinished(m.game.ID(), m.gameState, playTime)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	runID, err := m.store.SaveRun(storage.RunResult{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Kills:    m.gameState.Kills,
		PlayTime: playTime,
	})
	if err == nil {
		m.lastRunID = runID
	}
}

// PlayTime converts a tick count to wall time at the given tick rate.
func PlayTime(ticks, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Duration(ticks) * time.Second / time.Duration(tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".surimi", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if fps := m.fps.FPS(); fps > 0 {
		label := fmt.Sprintf(" %d FPS ", fps)
		m.screen.DrawTextColor(m.screen.Width()-len(label)-1, 0, label, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// BackToMenu returns true if the user asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m GameModel) LastRunID() string {
	return m.lastRunID
}

// Run plays a game in the local terminal until the user quits or goes back.
// quit reports whether the user asked to leave entirely rather than go back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewGameModel(game, store, nil, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return true, nil
	}
	return m.IsQuitting(), nil
}
