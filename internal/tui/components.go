package tui

import (
	"fmt"
	"strings"

	"signal-deck/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// FormatSignal renders one signal table row.
func FormatSignal(s domain.Signal) string {
	action := string(s.Action)
	switch s.Action {
	case domain.ActionCall:
		action = ActionCallStyle.Render(fmt.Sprintf("%-4s", action))
	case domain.ActionPut:
		action = ActionPutStyle.Render(fmt.Sprintf("%-4s", action))
	default:
		action = ActionWaitStyle.Render(fmt.Sprintf("%-4s", action))
	}

	price := s.Price
	if price == "" {
		price = "-"
	}

	return fmt.Sprintf("%-5d %s %-10s %-16s %3d%%  %-9s %-8s %s",
		s.ID,
		action,
		truncate(s.Asset, 10),
		truncate(s.Strategy, 16),
		s.Confidence,
		truncate(price, 9),
		FormatResult(s.Result),
		s.Timestamp.Local().Format("15:04:05"),
	)
}

// FormatResult renders the outcome column; an empty result reads as PENDING.
func FormatResult(r domain.Result) string {
	switch r {
	case domain.ResultWin:
		return ResultWinStyle.Render(fmt.Sprintf("%-8s", r))
	case domain.ResultLoss:
		return ResultLossStyle.Render(fmt.Sprintf("%-8s", r))
	case "":
		return ResultPendingStyle.Render(fmt.Sprintf("%-8s", domain.ResultPending))
	default:
		return ResultPendingStyle.Render(fmt.Sprintf("%-8s", truncate(string(r), 8)))
	}
}

// StatCard renders one labeled value box for the dashboard header.
func StatCard(title, value string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		CardTitleStyle.Render(title),
		CardValueStyle.Render(value),
	)
	return BorderStyle.Width(width).Render(content)
}

func signalTableHeader() string {
	return SubtextStyle.Render(fmt.Sprintf("%-5s %-4s %-10s %-16s %4s  %-9s %-8s %s",
		"ID", "Dir", "Asset", "Strategy", "Conf", "Price", "Result", "Time"))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func helpLine(bindings ...string) string {
	return SubtextStyle.Render(strings.Join(bindings, "  ·  "))
}
