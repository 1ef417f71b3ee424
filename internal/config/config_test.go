package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("DASHBOARD_POLL_SECS", "")
	t.Setenv("ALERT_POLL_SECS", "")
	t.Setenv("LOG_LIST_LIMIT", "")

	cfg := Load()

	if cfg.RedisURL != "localhost:6379" {
		t.Errorf("expected redis default, got %s", cfg.RedisURL)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("expected API base default, got %s", cfg.APIBaseURL)
	}
	if cfg.DashboardPollSecs != 5 {
		t.Errorf("expected 5s dashboard poll default, got %d", cfg.DashboardPollSecs)
	}
	if cfg.AlertPollSecs != 30 {
		t.Errorf("expected 30s alert poll default, got %d", cfg.AlertPollSecs)
	}
	if cfg.LogListLimit != 50 {
		t.Errorf("expected log limit 50, got %d", cfg.LogListLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app@db/signals")
	t.Setenv("REDIS_URL", "redis-host:6380")
	t.Setenv("API_BASE_URL", "http://api:9000/")
	t.Setenv("DASHBOARD_POLL_SECS", "10")
	t.Setenv("ALERT_POLL_SECS", "60")
	t.Setenv("LOG_LIST_LIMIT", "25")

	cfg := Load()

	if cfg.DatabaseURL != "postgres://app@db/signals" {
		t.Errorf("unexpected database url: %s", cfg.DatabaseURL)
	}
	if cfg.RedisURL != "redis-host:6380" {
		t.Errorf("unexpected redis url: %s", cfg.RedisURL)
	}
	if cfg.APIBaseURL != "http://api:9000" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.DashboardPollSecs != 10 || cfg.AlertPollSecs != 60 || cfg.LogListLimit != 25 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("DASHBOARD_POLL_SECS", "zero")
	t.Setenv("ALERT_POLL_SECS", "-5")
	t.Setenv("LOG_LIST_LIMIT", "0")

	cfg := Load()

	if cfg.DashboardPollSecs != 5 || cfg.AlertPollSecs != 30 || cfg.LogListLimit != 50 {
		t.Errorf("invalid values should fall back to defaults: %+v", cfg)
	}
}
