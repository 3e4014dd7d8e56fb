package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ztype/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "ztype", "ZType", 80, 24)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - ZType") {
		t.Errorf("missing title:\n%s", view)
	}
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("missing empty message:\n%s", view)
	}
	if !strings.Contains(view, "No games played") {
		t.Errorf("missing stats line:\n%s", view)
	}
}

func TestScoreboardLoadsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{GameID: "ztype", Score: 3, Ticks: 200, Seed: 11},
		{GameID: "ztype", Score: 9, Ticks: 800, Seed: 22},
		{GameID: "other", Score: 50},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "ztype", "ZType", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "9" || rows[0][3] != "22" {
		t.Errorf("best run should be first, got %v", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "Games: 2") || !strings.Contains(view, "Best: 9") {
		t.Errorf("stats line missing:\n%s", view)
	}
}

func TestScoreboardNarrowDropsSeed(t *testing.T) {
	m := NewScoreboardModel(nil, "ztype", "ZType", 50, 20)
	if got := len(m.table.Columns()); got != 4 {
		t.Errorf("narrow table should have 4 columns, got %d", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(ScoreboardModel)
	if got := len(m.table.Columns()); got != 5 {
		t.Errorf("wide table should have 5 columns, got %d", got)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "ztype", "ZType", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty once quitting")
	}
}
