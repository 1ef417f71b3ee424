package main

import (
	"testing"
	"time"

	"signal-deck/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMainBootstrap(t *testing.T) {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origRun := runProgramFunc
	defer func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		runProgramFunc = origRun
	}()

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{APIBaseURL: "http://localhost:8080", DashboardPollSecs: 5}
	}

	var ran bool
	runProgramFunc = func(p *tea.Program) error {
		ran = true
		return nil
	}

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
	if !ran {
		t.Fatal("expected the program to be started")
	}
}
