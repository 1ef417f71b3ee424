package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListSignalsParsesArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/signals" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":2,"asset":"EUR/USD","action":"PUT","strategy":"MA Cross","confidence":70,"timestamp":"2024-05-01T12:01:00Z","assetType":"Normal","volatility":"Média"},
			{"id":1,"asset":"EUR/USD","action":"CALL","strategy":"RSI Reversal","confidence":90,"timestamp":"2024-05-01T12:00:00Z","result":"WIN","assetType":"Normal","volatility":"Média"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	signals, err := c.ListSignals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(signals) != 2 || signals[0].ID != 2 || signals[1].Result != "WIN" {
		t.Fatalf("unexpected payload: %+v", signals)
	}
}

func TestListSignalsNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"store unavailable"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.ListSignals(context.Background()); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestListLogsSendsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "25" {
			t.Errorf("expected limit=25, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"message":"Bot iniciado","timestamp":"2024-05-01T12:00:00Z"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	logs, err := c.ListLogs(context.Background(), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 || logs[0].Message != "Bot iniciado" {
		t.Fatalf("unexpected payload: %+v", logs)
	}
}

func TestClearSignalsExpects204(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.ClearSignals(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != http.MethodDelete || path != "/api/signals" {
		t.Errorf("unexpected request: %s %s", method, path)
	}
}

func TestClearSignalsNon204IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.ClearSignals(context.Background()); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestUnreachableServerIsError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	if _, err := c.ListSignals(context.Background()); err == nil {
		t.Fatal("expected connection error")
	}
}
