package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return Options{
		Config: config.DefaultShooterConfig(),
		Store:  store,
		Logger: log.New(io.Discard),
		Player: "tester",
		Seed:   42,
	}
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestGameModelTicks(t *testing.T) {
	m := NewGameModel(testOptions(t), 80, 24)
	if m.Err() != nil {
		t.Fatalf("NewGameModel() error = %v", m.Err())
	}

	// Start the run and let the first wave spawn.
	model := send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, TickMsg{})
	gm := model.(GameModel)

	if gm.session.Phase() != shooter.PhasePlaying {
		t.Errorf("Phase() = %v, expected %v", gm.session.Phase(), shooter.PhasePlaying)
	}
	if gm.View() == "" {
		t.Error("View() is empty while playing")
	}
}

func TestGameModelBackFromTitle(t *testing.T) {
	m := NewGameModel(testOptions(t), 80, 24)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	gm := model.(GameModel)

	if !gm.BackToMenu() {
		t.Error("BackToMenu() = false after esc on the title screen")
	}
	if cmd == nil {
		t.Error("back should end the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(testOptions(t), 80, 24)
	model := send(m, runeKey('q'), TickMsg{})
	gm := model.(GameModel)

	if !gm.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(testOptions(t), 80, 24)
	if m.Screen() != "menu" {
		t.Fatalf("Screen() = %q, expected menu", m.Screen())
	}

	// Play is the first entry.
	model := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	sm := model.(SessionModel)
	if sm.Screen() != "game" {
		t.Fatalf("Screen() after select = %q, expected game", sm.Screen())
	}

	// Back from the title screen returns to the menu.
	model = send(sm, tea.KeyMsg{Type: tea.KeyEsc})
	sm = model.(SessionModel)
	if sm.Screen() != "menu" {
		t.Fatalf("Screen() after back = %q, expected menu", sm.Screen())
	}

	// Down to High Scores, then back.
	model = send(sm, runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})
	sm = model.(SessionModel)
	if sm.Screen() != "scores" {
		t.Fatalf("Screen() = %q, expected scores", sm.Screen())
	}
	model = send(sm, runeKey('b'))
	sm = model.(SessionModel)
	if sm.Screen() != "menu" {
		t.Errorf("Screen() after leaving scores = %q, expected menu", sm.Screen())
	}
}

func TestSessionModelQuit(t *testing.T) {
	m := NewSessionModel(testOptions(t), 80, 24)
	model, cmd := m.Update(runeKey('q'))

	if cmd == nil {
		t.Error("quit from the menu should return a command")
	}
	if model.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestScoreboardRows(t *testing.T) {
	opts := testOptions(t)
	runs := []storage.RunRecord{
		{Player: "ann", Level: 3, Kills: 12, Ticks: 120, Reason: "lives"},
		{Player: "tester", Level: 7, Kills: 1500, Ticks: 600, Reason: "health"},
	}
	for _, r := range runs {
		if _, err := opts.Store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(opts.Store, "tester", 60, 100, 30)
	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("Rows() has %d rows, expected 2", len(rows))
	}

	top := rows[0]
	if top[1] != "tester" {
		t.Errorf("top player = %q, expected tester", top[1])
	}
	if top[3] != "1,500" {
		t.Errorf("kills = %q, expected 1,500", top[3])
	}
	if top[4] != "10s" {
		t.Errorf("time = %q, expected 10s", top[4])
	}

	// Tab narrows the table to the player's own runs.
	model := send(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := len(model.(ScoreboardModel).Rows()); got != 1 {
		t.Errorf("Rows() after tab has %d rows, expected 1", got)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 80, 24)
	if len(m.Rows()) != 0 {
		t.Errorf("Rows() = %v, expected none", m.Rows())
	}
	if m.View() == "" {
		t.Error("View() should show the empty message")
	}
}

func TestMenuModelSelect(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)
	model := send(m, runeKey('j'), runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})

	if got := model.(MenuModel).Selected(); got != ChoiceQuit {
		t.Errorf("Selected() = %v, expected %v", got, ChoiceQuit)
	}
}
