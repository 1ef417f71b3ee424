package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"signal-deck/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dashboard message types.
type signalsMsg []domain.Signal
type signalsErrMsg struct{ err error }
type clearDoneMsg struct{}
type clearErrMsg struct{ err error }
type dashTickMsg time.Time

// DashboardModel is the Bubble Tea model for the live dashboard screen.
// The signal list is its only state; the stat cards are recomputed from
// it on every render.
type DashboardModel struct {
	services Services
	signals  []domain.Signal
	loading  bool
	err      error
	status   string
	width    int
	height   int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(svc Services) DashboardModel {
	return DashboardModel{
		services: svc,
		loading:  true,
	}
}

// Init fires the initial fetch and starts the poll timer.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.fetchSignalsCmd(),
		m.tickCmd(),
	)
}

// SetSize updates the layout dimensions.
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Signals exposes the cached list for tests.
func (m DashboardModel) Signals() []domain.Signal {
	return m.signals
}

// Update handles incoming messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signalsMsg:
		m.signals = []domain.Signal(msg)
		m.loading = false
		m.err = nil
		return m, nil

	case signalsErrMsg:
		// Keep the stale list; the next poll retries.
		m.err = msg.err
		m.loading = false
		return m, nil

	case clearDoneMsg:
		m.status = "History cleared"
		// Invalidate: refetch immediately instead of waiting for the timer.
		return m, m.fetchSignalsCmd()

	case clearErrMsg:
		m.status = fmt.Sprintf("Clear failed: %v", msg.err)
		return m, nil

	case dashTickMsg:
		return m, tea.Batch(
			m.fetchSignalsCmd(),
			m.tickCmd(),
		)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Refresh):
			m.status = ""
			return m, m.fetchSignalsCmd()

		case key.Matches(msg, DefaultKeyMap.Clear):
			m.status = "Clearing..."
			return m, m.clearSignalsCmd()
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.loading && len(m.signals) == 0 {
		return SubtextStyle.Render("Loading signals...")
	}

	stats := domain.ComputeStats(m.signals)

	var sections []string

	cardWidth := m.width/4 - 3
	if cardWidth < 12 {
		cardWidth = 12
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		StatCard("Win Rate", fmt.Sprintf("%d%%", stats.WinRate), cardWidth),
		StatCard("Wins / Losses", fmt.Sprintf("%d / %d", stats.Wins, stats.Losses), cardWidth),
		StatCard("Active", fmt.Sprintf("%d", stats.Active), cardWidth),
		StatCard("Total", fmt.Sprintf("%d", stats.Total), cardWidth),
	)
	sections = append(sections, cards)

	sections = append(sections, m.renderRecentSignals())

	if m.err != nil {
		sections = append(sections, ErrorStyle.Render(fmt.Sprintf("Last fetch failed: %v", m.err)))
	}
	if m.status != "" {
		sections = append(sections, StatusStyle.Render(m.status))
	}
	sections = append(sections, helpLine("R refresh", "C clear history", "tab switch view", "q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderRecentSignals() string {
	var lines []string
	lines = append(lines, HeaderStyle.Render("Recent Signals"))
	lines = append(lines, signalTableHeader())

	if len(m.signals) == 0 {
		lines = append(lines, SubtextStyle.Render("No signals yet; waiting for the bot..."))
	} else {
		max := m.visibleRows()
		for i, s := range m.signals {
			if i >= max {
				break
			}
			lines = append(lines, FormatSignal(s))
		}
	}

	width := m.width - 2
	if width < 60 {
		width = 60
	}
	return BorderStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) visibleRows() int {
	rows := m.height - 12
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m DashboardModel) fetchSignalsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()

		signals, err := m.services.Signals.ListSignals(ctx)
		if err != nil {
			return signalsErrMsg{err: err}
		}
		return signalsMsg(signals)
	}
}

func (m DashboardModel) clearSignalsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()

		if err := m.services.Signals.ClearSignals(ctx); err != nil {
			return clearErrMsg{err: err}
		}
		return clearDoneMsg{}
	}
}

func (m DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.services.pollInterval(), func(t time.Time) tea.Msg {
		return dashTickMsg(t)
	})
}
