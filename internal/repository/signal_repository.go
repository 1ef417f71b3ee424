package repository

import (
	"context"
	"time"

	"signal-deck/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SignalRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewSignalRepository(pool PgxPool, tracer trace.Tracer) *SignalRepository {
	return &SignalRepository{pool: pool, tracer: tracer}
}

func (r *SignalRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "signal-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS signals (
			id BIGSERIAL PRIMARY KEY,
			asset TEXT NOT NULL,
			action TEXT NOT NULL,
			strategy TEXT NOT NULL,
			confidence INTEGER NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			result TEXT,
			price TEXT,
			asset_type TEXT NOT NULL DEFAULT 'Normal',
			volatility TEXT NOT NULL DEFAULT 'Média',
			probability INTEGER,
			reasoning TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_signals_timestamp ON signals (timestamp DESC, id DESC);
	`)
	return err
}

// CreateSignal inserts one row. The store assigns id and timestamp and
// never changes them afterwards; the fully persisted row comes back.
func (r *SignalRepository) CreateSignal(ctx context.Context, ns domain.NewSignal) (domain.Signal, error) {
	_, span := r.tracer.Start(ctx, "signal-repo.create-signal")
	defer span.End()

	s := domain.Signal{
		Asset:       ns.Asset,
		Action:      ns.Action,
		Strategy:    ns.Strategy,
		Confidence:  ns.Confidence,
		Result:      ns.Result,
		Price:       ns.Price,
		AssetType:   ns.AssetType,
		Volatility:  ns.Volatility,
		Probability: ns.Probability,
		Reasoning:   ns.Reasoning,
	}

	var ts time.Time
	err := r.pool.QueryRow(ctx,
		`INSERT INTO signals (asset, action, strategy, confidence, result, price, asset_type, volatility, probability, reasoning)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, timestamp`,
		ns.Asset,
		string(ns.Action),
		ns.Strategy,
		ns.Confidence,
		nullIfEmpty(string(ns.Result)),
		nullIfEmpty(ns.Price),
		ns.AssetType,
		ns.Volatility,
		ns.Probability,
		nullIfEmpty(ns.Reasoning),
	).Scan(&s.ID, &ts)
	if err != nil {
		return domain.Signal{}, err
	}
	s.Timestamp = ts.UTC()
	return s, nil
}

// ListSignals returns every row, newest first. Rows created in the same
// timestamp tick still come back in insertion order thanks to the id
// tiebreak.
func (r *SignalRepository) ListSignals(ctx context.Context) ([]domain.Signal, error) {
	_, span := r.tracer.Start(ctx, "signal-repo.list-signals")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT id, asset, action, strategy, confidence, timestamp, result, price, asset_type, volatility, probability, reasoning
		 FROM signals
		 ORDER BY timestamp DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	signals := make([]domain.Signal, 0, 16)
	for rows.Next() {
		s, err := scanSignal(rows)
		if err != nil {
			return nil, err
		}
		signals = append(signals, s)
	}
	return signals, rows.Err()
}

// ClearSignals wipes the table. Clearing an already-empty table is a
// successful no-op.
func (r *SignalRepository) ClearSignals(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "signal-repo.clear-signals")
	defer span.End()

	_, err := r.pool.Exec(ctx, `DELETE FROM signals`)
	return err
}

func scanSignal(rows pgx.Rows) (domain.Signal, error) {
	var (
		s           domain.Signal
		action      string
		ts          time.Time
		result      *string
		price       *string
		probability *int
		reasoning   *string
	)
	if err := rows.Scan(
		&s.ID,
		&s.Asset,
		&action,
		&s.Strategy,
		&s.Confidence,
		&ts,
		&result,
		&price,
		&s.AssetType,
		&s.Volatility,
		&probability,
		&reasoning,
	); err != nil {
		return domain.Signal{}, err
	}
	s.Action = domain.Action(action)
	s.Timestamp = ts.UTC()
	if result != nil {
		s.Result = domain.Result(*result)
	}
	if price != nil {
		s.Price = *price
	}
	s.Probability = probability
	if reasoning != nil {
		s.Reasoning = *reasoning
	}
	return s, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
