package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"signal-deck/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// SignalQuerier is the slice of the signal service the bot commands use.
type SignalQuerier interface {
	List(ctx context.Context) ([]domain.Signal, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// LogQuerier provides the bot log tail.
type LogQuerier interface {
	List(ctx context.Context, limit int) ([]domain.BotLog, error)
}

// StartTelegramBot wires the command handlers and starts long polling.
// Returns the alert dispatcher for the signal watcher, or nil when no
// token is configured.
func StartTelegramBot(signalService SignalQuerier, logService LogQuerier) *AlertDispatcher {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}
	alerts := NewAlertDispatcher(b)

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/signals", func(c tele.Context) error {
		if signalService == nil {
			return c.Send("Signal service unavailable")
		}
		count := 5
		if args := c.Args(); len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil && n > 0 && n <= 20 {
				count = n
			}
		}
		signals, err := signalService.List(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching signals: %v", err))
		}
		if len(signals) == 0 {
			return c.Send("No signals recorded yet")
		}
		if len(signals) > count {
			signals = signals[:count]
		}
		lines := make([]string, 0, len(signals))
		for _, s := range signals {
			lines = append(lines, formatSignal(s))
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	b.Handle("/stats", func(c tele.Context) error {
		if signalService == nil {
			return c.Send("Signal service unavailable")
		}
		stats, err := signalService.Stats(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error computing stats: %v", err))
		}
		return c.Send(fmt.Sprintf(
			"Win rate: %d%%\nWins: %d  Losses: %d\nActive: %d\nTotal: %d",
			stats.WinRate, stats.Wins, stats.Losses, stats.Active, stats.Total,
		))
	})

	b.Handle("/logs", func(c tele.Context) error {
		if logService == nil {
			return c.Send("Log service unavailable")
		}
		count := 10
		if args := c.Args(); len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil && n > 0 && n <= 50 {
				count = n
			}
		}
		logs, err := logService.List(context.Background(), count)
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching logs: %v", err))
		}
		if len(logs) == 0 {
			return c.Send("No bot logs yet")
		}
		lines := make([]string, 0, len(logs))
		for _, l := range logs {
			lines = append(lines, fmt.Sprintf("%s  %s", l.Timestamp.Format("15:04:05"), l.Message))
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	b.Handle("/alerts", func(c tele.Context) error {
		mode, err := parseAlertMode(c.Args())
		if err != nil {
			return c.Send("Usage: /alerts on|off|status")
		}
		chatID := c.Chat().ID
		switch mode {
		case "on":
			if alerts.Subscribe(chatID) {
				return c.Send("Alerts enabled for this chat")
			}
			return c.Send("Alerts already enabled")
		case "off":
			if alerts.Unsubscribe(chatID) {
				return c.Send("Alerts disabled for this chat")
			}
			return c.Send("Alerts already disabled")
		default:
			if alerts.IsSubscribed(chatID) {
				return c.Send("Alerts are ON")
			}
			return c.Send("Alerts are OFF")
		}
	})

	go b.Start()
	log.Println("Telegram bot started")
	return alerts
}
