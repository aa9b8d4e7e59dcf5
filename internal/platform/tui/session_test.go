package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func startScripted(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	down := tea.KeyMsg{Type: tea.KeyDown}
	for i := scriptedIndex(t, m.menu); i > 0; i-- {
		m = updateSession(m, down)
	}
	return updateSession(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSessionStartsGameWithDifficulty(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())
	m = updateSession(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	m = startScripted(t, m)

	if m.view != viewGame || m.gameModel == nil {
		t.Fatal("selecting a mode should start the game")
	}
	game, ok := m.gameModel.game.(*scriptedGame)
	if !ok {
		t.Fatalf("game = %T, expected *scriptedGame", m.gameModel.game)
	}
	if game.preset != "hard" {
		t.Errorf("preset = %q, expected hard", game.preset)
	}
}

func TestSessionBackToMenuKeepsDifficulty(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())
	m = updateSession(m, tea.KeyMsg{Type: tea.KeyRight})
	m = startScripted(t, m)

	esc := tea.KeyMsg{Type: tea.KeyEscape}
	m = updateSession(m, TickMsg{}, esc, TickMsg{}, esc)

	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu after leaving the game", m.view)
	}
	if m.menu.Difficulty() != "easy" {
		t.Errorf("difficulty = %q, expected easy to survive the round trip", m.menu.Difficulty())
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(openTestStore(t), nil, testConfig())
	m = updateSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.view != viewMenu {
		t.Error("esc should return from the scoreboard to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())
	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
