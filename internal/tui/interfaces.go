package tui

import (
	"context"
	"time"

	"signal-deck/internal/domain"
)

// SignalQuerier provides signal data and the clear-all mutation to the TUI.
type SignalQuerier interface {
	ListSignals(ctx context.Context) ([]domain.Signal, error)
	ClearSignals(ctx context.Context) error
}

// LogQuerier provides the bot log tail to the TUI.
type LogQuerier interface {
	ListLogs(ctx context.Context, limit int) ([]domain.BotLog, error)
}

// Services bundles the dependencies injected into the TUI.
type Services struct {
	Signals      SignalQuerier
	Logs         LogQuerier
	PollInterval time.Duration
}

func (s Services) pollInterval() time.Duration {
	if s.PollInterval <= 0 {
		return 5 * time.Second
	}
	return s.PollInterval
}
