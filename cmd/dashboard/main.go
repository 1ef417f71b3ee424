package main

import (
	"log"
	"time"

	"signal-deck/internal/client"
	"signal-deck/internal/config"
	"signal-deck/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	runProgramFunc = func(p *tea.Program) error {
		_, err := p.Run()
		return err
	}
)

func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	api := client.New(cfg.APIBaseURL)
	svc := tui.Services{
		Signals:      api,
		Logs:         api,
		PollInterval: time.Duration(cfg.DashboardPollSecs) * time.Second,
	}

	p := tea.NewProgram(tui.NewAppModel(svc), tea.WithAltScreen())
	if err := runProgramFunc(p); err != nil {
		log.Fatalf("dashboard exited with error: %v", err)
	}
}
