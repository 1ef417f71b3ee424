package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"signal-deck/internal/domain"
)

func TestAppTabNavigation(t *testing.T) {
	m := NewAppModel(testServices())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	app := updated.(AppModel)
	if app.activeTab != TabHistory {
		t.Fatalf("tab should advance to history, got %d", app.activeTab)
	}

	updated, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, _ = updated.(AppModel).Update(tea.KeyMsg{Type: tea.KeyTab})
	app = updated.(AppModel)
	if app.activeTab != TabDashboard {
		t.Fatalf("tab should wrap around to dashboard, got %d", app.activeTab)
	}

	updated, _ = app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	app = updated.(AppModel)
	if app.activeTab != TabLogs {
		t.Fatalf("shift+tab should wrap back to logs, got %d", app.activeTab)
	}

	updated, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	app = updated.(AppModel)
	if app.activeTab != TabHistory {
		t.Fatalf("2 should jump to history, got %d", app.activeTab)
	}
}

func TestAppQuit(t *testing.T) {
	m := NewAppModel(testServices())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if updated.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestAppBroadcastsDataToAllScreens(t *testing.T) {
	m := NewAppModel(testServices())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app := updated.(AppModel)

	signals := []domain.Signal{{ID: 1, Asset: "EUR/USD", Action: domain.ActionCall, Strategy: "MA Cross"}}
	updated, _ = app.Update(signalsMsg(signals))
	app = updated.(AppModel)

	if len(app.dashboard.Signals()) != 1 {
		t.Fatal("dashboard should receive broadcast signals")
	}

	// History listens for its own message type.
	updated, _ = app.Update(historyMsg(signals))
	app = updated.(AppModel)
	if len(app.history.signals) != 1 {
		t.Fatal("history should receive broadcast signals")
	}
}

func TestAppViewShowsTabBar(t *testing.T) {
	m := NewAppModel(testServices())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := updated.View()
	for _, name := range tabNames {
		if !strings.Contains(view, name) {
			t.Errorf("expected tab %q in view", name)
		}
	}
}
