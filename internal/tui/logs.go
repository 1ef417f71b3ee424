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

// Log message types.
type logsMsg []domain.BotLog
type logsErrMsg struct{ err error }
type logsTickMsg time.Time

// LogsModel is the Bubble Tea model for the bot console screen.
type LogsModel struct {
	services Services
	logs     []domain.BotLog
	loading  bool
	err      error
	width    int
	height   int
}

// NewLogsModel creates a new logs model.
func NewLogsModel(svc Services) LogsModel {
	return LogsModel{
		services: svc,
		loading:  true,
	}
}

// Init fires the initial fetch and starts the poll timer.
func (m LogsModel) Init() tea.Cmd {
	return tea.Batch(
		m.fetchLogsCmd(),
		m.tickCmd(),
	)
}

// SetSize updates the layout dimensions.
func (m *LogsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles incoming messages.
func (m LogsModel) Update(msg tea.Msg) (LogsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case logsMsg:
		m.logs = []domain.BotLog(msg)
		m.loading = false
		m.err = nil
		return m, nil

	case logsErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case logsTickMsg:
		return m, tea.Batch(
			m.fetchLogsCmd(),
			m.tickCmd(),
		)

	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Refresh) {
			return m, m.fetchLogsCmd()
		}
	}

	return m, nil
}

// View renders the bot console tail.
func (m LogsModel) View() string {
	var sections []string

	sections = append(sections, HeaderStyle.Render("Bot Console"))

	if m.loading {
		sections = append(sections, SubtextStyle.Render("Loading..."))
		return strings.Join(sections, "\n")
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		return strings.Join(sections, "\n")
	}
	if len(m.logs) == 0 {
		sections = append(sections, SubtextStyle.Render("No bot output yet"))
		return strings.Join(sections, "\n")
	}

	max := m.visibleRows()
	for i, l := range m.logs {
		if i >= max {
			break
		}
		sections = append(sections, fmt.Sprintf("%s  %s",
			SubtextStyle.Render(l.Timestamp.Local().Format("15:04:05")),
			l.Message,
		))
	}
	sections = append(sections, helpLine("R refresh"))

	return strings.Join(sections, "\n")
}

func (m LogsModel) visibleRows() int {
	rows := m.height - 6
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m LogsModel) fetchLogsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()

		logs, err := m.services.Logs.ListLogs(ctx, 50)
		if err != nil {
			return logsErrMsg{err: err}
		}
		return logsMsg(logs)
	}
}

func (m LogsModel) tickCmd() tea.Cmd {
	return tea.Tick(m.services.pollInterval(), func(t time.Time) tea.Msg {
		return logsTickMsg(t)
	})
}
