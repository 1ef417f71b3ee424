package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"signal-deck/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// History message types.
type historyMsg []domain.Signal
type historyErrMsg struct{ err error }

var resultFilterOptions = []string{"ALL", "PENDING", "ANALYZING", "WIN", "LOSS"}

// HistoryModel is the Bubble Tea model for the full signal history screen.
type HistoryModel struct {
	services     Services
	signals      []domain.Signal
	filterIdx    int
	scrollOffset int
	loading      bool
	err          error
	width        int
	height       int
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(svc Services) HistoryModel {
	return HistoryModel{
		services: svc,
		loading:  true,
	}
}

// Init fires the initial fetch.
func (m HistoryModel) Init() tea.Cmd {
	return m.fetchSignalsCmd()
}

// SetSize updates the layout dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles incoming messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.signals = []domain.Signal(msg)
		m.loading = false
		m.scrollOffset = 0
		m.err = nil
		return m, nil

	case historyErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.FilterResult):
			m.filterIdx = (m.filterIdx + 1) % len(resultFilterOptions)
			m.scrollOffset = 0
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Refresh):
			m.loading = true
			return m, m.fetchSignalsCmd()

		case msg.String() == "j" || msg.String() == "down":
			if m.scrollOffset < len(m.filtered())-m.visibleRows() {
				m.scrollOffset++
			}
			return m, nil

		case msg.String() == "k" || msg.String() == "up":
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var sections []string

	sections = append(sections, HeaderStyle.Render("Signal History"))
	sections = append(sections, SubtextStyle.Render(
		fmt.Sprintf("result: %s (f to cycle)", resultFilterOptions[m.filterIdx])))

	if m.loading {
		sections = append(sections, SubtextStyle.Render("Loading..."))
		return strings.Join(sections, "\n")
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		return strings.Join(sections, "\n")
	}

	rows := m.filtered()
	if len(rows) == 0 {
		sections = append(sections, SubtextStyle.Render("No signals match the current filter"))
		return strings.Join(sections, "\n")
	}

	sections = append(sections, signalTableHeader())

	maxVisible := m.visibleRows()
	end := m.scrollOffset + maxVisible
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.scrollOffset; i < end; i++ {
		sections = append(sections, FormatSignal(rows[i]))
	}

	if len(rows) > maxVisible {
		sections = append(sections, SubtextStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d (j/k to scroll)", m.scrollOffset+1, end, len(rows))))
	}
	sections = append(sections, helpLine("f filter", "R refresh", "j/k scroll"))

	return strings.Join(sections, "\n")
}

func (m HistoryModel) filtered() []domain.Signal {
	want := resultFilterOptions[m.filterIdx]
	if want == "ALL" {
		return m.signals
	}
	out := make([]domain.Signal, 0, len(m.signals))
	for _, s := range m.signals {
		result := s.Result
		if result == "" {
			result = domain.ResultPending
		}
		if string(result) == want {
			out = append(out, s)
		}
	}
	return out
}

func (m HistoryModel) visibleRows() int {
	rows := m.height - 8
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m HistoryModel) fetchSignalsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()

		signals, err := m.services.Signals.ListSignals(ctx)
		if err != nil {
			return historyErrMsg{err: err}
		}
		return historyMsg(signals)
	}
}
