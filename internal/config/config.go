package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL      string
	RedisURL         string
	TelegramBotToken string

	APIBaseURL        string
	DashboardPollSecs int
	AlertPollSecs     int
	LogListLimit      int
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, Telegram alerts disabled")
	}

	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("API_BASE_URL")), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080"
	}

	cfg.DashboardPollSecs = 5
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_POLL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DashboardPollSecs = n
		}
	}

	cfg.AlertPollSecs = 30
	if v := strings.TrimSpace(os.Getenv("ALERT_POLL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AlertPollSecs = n
		}
	}

	cfg.LogListLimit = 50
	if v := strings.TrimSpace(os.Getenv("LOG_LIST_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LogListLimit = n
		}
	}

	return cfg
}
