package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/surimi-survivors/internal/storage"
)

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.RunResult{
		{GameID: "scripted", Score: 120, Kills: 9, PlayTime: 95 * time.Second},
		{GameID: "scripted", Score: 40, Kills: 2, PlayTime: 20 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 30)
	for m.modes[m.mode].ID != "scripted" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(ScoreboardModel)
	}

	if len(m.runs) != 2 || m.runs[0].Score != 120 {
		t.Fatalf("runs = %+v, expected best run first", m.runs)
	}
	if m.stats == nil || m.stats.RunsCount != 2 || m.stats.TotalKills != 11 {
		t.Errorf("stats = %+v, expected 2 runs and 11 kills", m.stats)
	}

	view := m.View()
	for _, want := range []string{"BEST RUNS - Scripted", "120", "1:35", "Runs     2"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.runs) != 0 || m.stats != nil {
		t.Error("a nil store should show no runs")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("View() should show the empty hint")
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
