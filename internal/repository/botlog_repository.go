package repository

import (
	"context"
	"time"

	"signal-deck/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// The log feed is a tail, not an archive; readers never get more than
// this many rows back.
const maxLogRows = 50

type BotLogRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewBotLogRepository(pool PgxPool, tracer trace.Tracer) *BotLogRepository {
	return &BotLogRepository{pool: pool, tracer: tracer}
}

func (r *BotLogRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "botlog-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bot_logs (
			id BIGSERIAL PRIMARY KEY,
			message TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_bot_logs_timestamp ON bot_logs (timestamp DESC, id DESC);
	`)
	return err
}

func (r *BotLogRepository) CreateLog(ctx context.Context, message string) (domain.BotLog, error) {
	_, span := r.tracer.Start(ctx, "botlog-repo.create-log")
	defer span.End()

	l := domain.BotLog{Message: message}
	var ts time.Time
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bot_logs (message) VALUES ($1) RETURNING id, timestamp`,
		message,
	).Scan(&l.ID, &ts)
	if err != nil {
		return domain.BotLog{}, err
	}
	l.Timestamp = ts.UTC()
	return l, nil
}

func (r *BotLogRepository) ListLogs(ctx context.Context, limit int) ([]domain.BotLog, error) {
	_, span := r.tracer.Start(ctx, "botlog-repo.list-logs")
	defer span.End()

	if limit <= 0 || limit > maxLogRows {
		limit = maxLogRows
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, message, timestamp
		 FROM bot_logs
		 ORDER BY timestamp DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.BotLog, 0, limit)
	for rows.Next() {
		var l domain.BotLog
		var ts time.Time
		if err := rows.Scan(&l.ID, &l.Message, &ts); err != nil {
			return nil, err
		}
		l.Timestamp = ts.UTC()
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
