package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/surimi-survivors/internal/core"
	"github.com/vovakirdan/surimi-survivors/internal/registry"
	"github.com/vovakirdan/surimi-survivors/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	id      string
	endAt   int
	state   core.GameState
	resets  int
	preset  string
	history []core.InputFrame
}

func (g *scriptedGame) ID() string    { return g.id }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.history = nil
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.history = append(g.history, in.Clone())
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if !g.state.Paused {
		g.state.Ticks++
		g.state.Score += 5
		g.state.Kills++
		g.state.GameOver = g.state.Ticks >= g.endAt
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) SetDifficulty(preset string) { g.preset = preset }

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{id: "scripted", endAt: 3} })
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// tick delivers n tick messages to the model.
func tick(m GameModel, n int) GameModel {
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(GameModel)
	}
	return m
}

func press(m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store := openTestStore(t)
	metrics := NewMetrics()
	game := &scriptedGame{id: "scripted", endAt: 3}

	m := NewGameModel(game, store, metrics, testConfig())
	m.Init()
	m = tick(m, 5)

	if !m.State().GameOver {
		t.Fatal("game should be over after 3 steps")
	}
	if m.LastRunID() == "" {
		t.Fatal("finished run should have been saved")
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Score != 15 || runs[0].Kills != 3 {
		t.Errorf("saved run = %+v, expected score 15 and 3 kills", runs[0])
	}
	if runs[0].PlayTime != 50*time.Millisecond {
		t.Errorf("PlayTime = %v, expected 50ms", runs[0].PlayTime)
	}
}

func TestGameModelHeldMovement(t *testing.T) {
	game := &scriptedGame{id: "scripted", endAt: 100}
	m := NewGameModel(game, nil, nil, testConfig())
	m.Init()

	m, _ = press(m, runeKey('d'))
	m = tick(m, DefaultHoldTicks+2)

	held := 0
	for _, f := range game.history {
		if f.Has(core.ActionRight) {
			held++
		}
	}
	if held != DefaultHoldTicks {
		t.Errorf("Right held for %d ticks, expected %d", held, DefaultHoldTicks)
	}
}

func TestGameModelBackPausesThenLeaves(t *testing.T) {
	game := &scriptedGame{id: "scripted", endAt: 100}
	m := NewGameModel(game, nil, nil, testConfig())
	m.Init()
	m = tick(m, 1)

	esc := tea.KeyMsg{Type: tea.KeyEscape}
	m, _ = press(m, esc)
	m = tick(m, 1)
	if !m.State().Paused {
		t.Fatal("esc during a live run should pause")
	}
	if m.BackToMenu() {
		t.Fatal("first esc should not leave the game")
	}

	m, _ = press(m, esc)
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestGameModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &scriptedGame{id: "scripted", endAt: 2}
	m := NewGameModel(game, nil, nil, testConfig())
	m.Init()

	m, _ = press(m, runeKey('r'))
	m = tick(m, 1)
	if game.resets != 1 {
		t.Fatalf("restart during a live run reset the game (%d resets)", game.resets)
	}

	m = tick(m, 2)
	m, _ = press(m, runeKey('r'))
	m = tick(m, 1)
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2 after restart", game.resets)
	}
	if m.State().GameOver {
		t.Error("state should be live after restart")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{id: "scripted", endAt: 10}, nil, nil, testConfig())
	m, cmd := press(m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty when quitting")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&scriptedGame{id: "scripted", endAt: 10}, nil, nil, testConfig())
	m.Init()
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View() should contain the game's render")
	}
}

func TestPlayTime(t *testing.T) {
	tests := []struct {
		ticks, rate int
		expected    time.Duration
	}{
		{60, 60, time.Second},
		{90, 60, 1500 * time.Millisecond},
		{0, 60, 0},
		{120, 0, 2 * time.Second}, // falls back to 60 Hz
	}

	for _, tc := range tests {
		if got := PlayTime(tc.ticks, tc.rate); got != tc.expected {
			t.Errorf("PlayTime(%d, %d) = %v, expected %v", tc.ticks, tc.rate, got, tc.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{75 * time.Second, "1:15"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.d); got != tc.expected {
			t.Errorf("FormatDuration(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q, expected both runs", lines[0])
	}
}
