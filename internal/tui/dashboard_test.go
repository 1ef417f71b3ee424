package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"signal-deck/internal/domain"
)

type stubSignalQuerier struct {
	listResp   []domain.Signal
	listErr    error
	listCalls  int
	clearErr   error
	clearCalls int
}

func (s *stubSignalQuerier) ListSignals(ctx context.Context) ([]domain.Signal, error) {
	s.listCalls++
	return s.listResp, s.listErr
}

func (s *stubSignalQuerier) ClearSignals(ctx context.Context) error {
	s.clearCalls++
	return s.clearErr
}

type stubLogQuerier struct {
	resp []domain.BotLog
	err  error
}

func (s *stubLogQuerier) ListLogs(ctx context.Context, limit int) ([]domain.BotLog, error) {
	return s.resp, s.err
}

func testServices() Services {
	return Services{
		Signals:      &stubSignalQuerier{},
		Logs:         &stubLogQuerier{},
		PollInterval: time.Second,
	}
}

func TestDashboardUpdateSignalsMsg(t *testing.T) {
	m := NewDashboardModel(testServices())
	m.SetSize(120, 40)

	signals := []domain.Signal{
		{ID: 2, Asset: "EUR/USD", Action: domain.ActionPut, Strategy: "MA Cross", Confidence: 70},
		{ID: 1, Asset: "EUR/USD", Action: domain.ActionCall, Strategy: "RSI Reversal", Confidence: 90, Result: domain.ResultWin},
	}

	updated, _ := m.Update(signalsMsg(signals))
	if len(updated.Signals()) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(updated.Signals()))
	}
	if updated.Signals()[0].ID != 2 {
		t.Fatalf("expected newest signal first, got %d", updated.Signals()[0].ID)
	}
}

func TestDashboardFetchErrorKeepsStaleList(t *testing.T) {
	m := NewDashboardModel(testServices())
	m.SetSize(120, 40)

	updated, _ := m.Update(signalsMsg([]domain.Signal{{ID: 1}}))
	updated, _ = updated.Update(signalsErrMsg{err: errors.New("connection refused")})

	if len(updated.Signals()) != 1 {
		t.Fatal("fetch failure must not drop the cached list")
	}
	view := updated.View()
	if !strings.Contains(view, "Last fetch failed") {
		t.Error("expected fetch failure surfaced in view")
	}
}

func TestDashboardClearDoneRefetchesImmediately(t *testing.T) {
	store := &stubSignalQuerier{}
	svc := testServices()
	svc.Signals = store
	m := NewDashboardModel(svc)

	updated, cmd := m.Update(clearDoneMsg{})
	if cmd == nil {
		t.Fatal("expected an immediate refetch command after clear")
	}
	cmd()
	if store.listCalls != 1 {
		t.Fatalf("expected one list call from refetch, got %d", store.listCalls)
	}
	if !strings.Contains(updated.View(), "History cleared") {
		t.Error("expected clear confirmation in view")
	}
}

func TestDashboardTickRefetches(t *testing.T) {
	m := NewDashboardModel(testServices())

	_, cmd := m.Update(dashTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected tick to schedule fetch and next tick")
	}
}

func TestDashboardViewRendersStats(t *testing.T) {
	m := NewDashboardModel(testServices())
	m.SetSize(120, 40)
	m.loading = false
	m.signals = []domain.Signal{
		{ID: 3, Result: domain.ResultPending},
		{ID: 2, Result: domain.ResultLoss},
		{ID: 1, Result: domain.ResultWin},
	}

	view := m.View()
	if !strings.Contains(view, "50%") {
		t.Errorf("expected win rate 50%% in view: %s", view)
	}
	if !strings.Contains(view, "Win Rate") || !strings.Contains(view, "Total") {
		t.Error("expected stat cards in view")
	}
}

func TestDashboardViewEmpty(t *testing.T) {
	m := NewDashboardModel(testServices())
	m.SetSize(120, 40)
	m.loading = false

	view := m.View()
	if !strings.Contains(view, "No signals yet") {
		t.Errorf("expected empty state, got: %s", view)
	}
}
