package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"signal-deck/internal/domain"
)

func historyFixture() []domain.Signal {
	return []domain.Signal{
		{ID: 4, Asset: "GBP/USD", Action: domain.ActionCall, Strategy: "RSI Reversal", Confidence: 88},
		{ID: 3, Asset: "EUR/USD", Action: domain.ActionPut, Strategy: "MA Cross", Confidence: 75, Result: domain.ResultWin},
		{ID: 2, Asset: "EUR/USD", Action: domain.ActionCall, Strategy: "MA Cross", Confidence: 70, Result: domain.ResultLoss},
		{ID: 1, Asset: "USD/JPY", Action: domain.ActionWait, Strategy: "Support Bounce", Confidence: 60, Result: domain.ResultWin},
	}
}

func TestHistoryFilterCycling(t *testing.T) {
	m := NewHistoryModel(testServices())
	m.SetSize(120, 40)
	m, _ = m.Update(historyMsg(historyFixture()))

	if got := len(m.filtered()); got != 4 {
		t.Fatalf("ALL filter: expected 4 rows, got %d", got)
	}

	// f advances ALL -> PENDING; the empty result counts as pending.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	rows := m.filtered()
	if len(rows) != 1 || rows[0].ID != 4 {
		t.Fatalf("PENDING filter: expected only signal 4, got %v", rows)
	}

	// PENDING -> ANALYZING -> WIN.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	rows = m.filtered()
	if len(rows) != 2 {
		t.Fatalf("WIN filter: expected 2 rows, got %d", len(rows))
	}

	// WIN -> LOSS -> wraps back to ALL.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if got := len(m.filtered()); got != 4 {
		t.Fatalf("filter should wrap to ALL, got %d rows", got)
	}
}

func TestHistoryFilterChangeResetsScroll(t *testing.T) {
	m := NewHistoryModel(testServices())
	m.SetSize(120, 10)
	m, _ = m.Update(historyMsg(historyFixture()))
	m.scrollOffset = 2

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if m.scrollOffset != 0 {
		t.Fatalf("expected scroll reset on filter change, got %d", m.scrollOffset)
	}
}

func TestHistoryScrollBounds(t *testing.T) {
	m := NewHistoryModel(testServices())
	m.SetSize(120, 40)
	m, _ = m.Update(historyMsg(historyFixture()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.scrollOffset != 0 {
		t.Fatalf("scroll up at top should stay 0, got %d", m.scrollOffset)
	}

	// Everything fits on screen, so scrolling down is a no-op too.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.scrollOffset != 0 {
		t.Fatalf("scroll down with all rows visible should stay 0, got %d", m.scrollOffset)
	}
}

func TestHistoryErrorView(t *testing.T) {
	m := NewHistoryModel(testServices())
	m.SetSize(120, 40)
	m, _ = m.Update(historyErrMsg{err: errors.New("api unreachable")})

	view := m.View()
	if !strings.Contains(view, "Error:") {
		t.Errorf("expected error line in view: %s", view)
	}
}

func TestHistoryViewEmptyFilter(t *testing.T) {
	m := NewHistoryModel(testServices())
	m.SetSize(120, 40)
	m, _ = m.Update(historyMsg([]domain.Signal{
		{ID: 1, Asset: "EUR/USD", Action: domain.ActionCall, Strategy: "MA Cross", Result: domain.ResultWin},
	}))

	// Move to PENDING, which nothing matches.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if !strings.Contains(m.View(), "No signals match") {
		t.Error("expected empty filter message")
	}
}
