package service

import (
	"context"
	"fmt"
	"strings"

	"signal-deck/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type BotLogStore interface {
	CreateLog(ctx context.Context, message string) (domain.BotLog, error)
	ListLogs(ctx context.Context, limit int) ([]domain.BotLog, error)
}

type LogService struct {
	tracer trace.Tracer
	repo   BotLogStore
}

func NewLogService(tracer trace.Tracer, repo BotLogStore) *LogService {
	return &LogService{tracer: tracer, repo: repo}
}

func (s *LogService) Create(ctx context.Context, input domain.BotLogInput) (domain.BotLog, error) {
	_, span := s.tracer.Start(ctx, "log-service.create")
	defer span.End()

	if s.repo == nil {
		return domain.BotLog{}, fmt.Errorf("log service is not fully initialized")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return domain.BotLog{}, &domain.ValidationError{Field: "message", Message: "Required"}
	}
	return s.repo.CreateLog(ctx, message)
}

func (s *LogService) List(ctx context.Context, limit int) ([]domain.BotLog, error) {
	_, span := s.tracer.Start(ctx, "log-service.list")
	defer span.End()

	if s.repo == nil {
		return nil, fmt.Errorf("log service is not fully initialized")
	}
	return s.repo.ListLogs(ctx, limit)
}
