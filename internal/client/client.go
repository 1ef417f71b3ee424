// Package client is the HTTP client the terminal dashboard uses to
// talk to the signal API. Failures surface as plain errors; callers
// keep their last good snapshot and retry on the next poll.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"signal-deck/internal/domain"
)

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) ListSignals(ctx context.Context) ([]domain.Signal, error) {
	var signals []domain.Signal
	if err := c.getJSON(ctx, "/api/signals", &signals); err != nil {
		return nil, err
	}
	return signals, nil
}

func (c *APIClient) ListLogs(ctx context.Context, limit int) ([]domain.BotLog, error) {
	path := "/api/logs"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var logs []domain.BotLog
	if err := c.getJSON(ctx, path, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *APIClient) ClearSignals(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/signals", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("clear signals: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("clear signals: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *APIClient) Health(ctx context.Context) error {
	var status map[string]string
	return c.getJSON(ctx, "/health", &status)
}

func (c *APIClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}
