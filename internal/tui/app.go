package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab represents a screen tab in the TUI.
type Tab int

const (
	TabDashboard Tab = iota
	TabHistory
	TabLogs
)

var tabNames = []string{"1:Dashboard", "2:History", "3:Console"}

// AppModel is the root Bubble Tea model that manages tab navigation and
// child screens.
type AppModel struct {
	services  Services
	activeTab Tab
	dashboard DashboardModel
	history   HistoryModel
	logs      LogsModel
	width     int
	height    int
	quitting  bool
}

// NewAppModel creates the root application model with all child screens.
func NewAppModel(svc Services) AppModel {
	return AppModel{
		services:  svc,
		activeTab: TabDashboard,
		dashboard: NewDashboardModel(svc),
		history:   NewHistoryModel(svc),
		logs:      NewLogsModel(svc),
	}
}

// Init initializes all child models.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.dashboard.Init(),
		m.history.Init(),
		m.logs.Init(),
	)
}

// Update handles incoming messages, routing to the active tab.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.SetSize(msg.Width, msg.Height-2)
		m.history.SetSize(msg.Width, msg.Height-2)
		m.logs.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Tab):
			m.activeTab = (m.activeTab + 1) % Tab(len(tabNames))
			return m, nil

		case key.Matches(msg, DefaultKeyMap.ShiftTab):
			m.activeTab = (m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil

		case msg.String() == "1":
			m.activeTab = TabDashboard
			return m, nil
		case msg.String() == "2":
			m.activeTab = TabHistory
			return m, nil
		case msg.String() == "3":
			m.activeTab = TabLogs
			return m, nil
		}

		// Other keys go to the active screen only.
		return m.routeToActive(msg)
	}

	// Data and tick messages go to every screen so background tabs
	// stay warm.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.dashboard, cmd = m.dashboard.Update(msg)
	cmds = append(cmds, cmd)
	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)
	m.logs, cmd = m.logs.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m AppModel) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case TabHistory:
		m.history, cmd = m.history.Update(msg)
	case TabLogs:
		m.logs, cmd = m.logs.Update(msg)
	}
	return m, cmd
}

// View renders the tab bar and the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(name))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.activeTab {
	case TabDashboard:
		body = m.dashboard.View()
	case TabHistory:
		body = m.history.View()
	case TabLogs:
		body = m.logs.View()
	}

	return strings.Join([]string{tabBar, body}, "\n")
}
