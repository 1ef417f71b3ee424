package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"signal-deck/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type SignalStore interface {
	CreateSignal(ctx context.Context, ns domain.NewSignal) (domain.Signal, error)
	ListSignals(ctx context.Context) ([]domain.Signal, error)
	ClearSignals(ctx context.Context) error
}

type SignalService struct {
	tracer trace.Tracer
	repo   SignalStore
}

func NewSignalService(tracer trace.Tracer, repo SignalStore) *SignalService {
	return &SignalService{tracer: tracer, repo: repo}
}

// Create validates and coerces the raw input, then inserts one row.
// Validation failures come back as *domain.ValidationError carrying the
// first offending field.
func (s *SignalService) Create(ctx context.Context, input domain.SignalInput) (domain.Signal, error) {
	_, span := s.tracer.Start(ctx, "signal-service.create")
	defer span.End()

	if s.repo == nil {
		return domain.Signal{}, fmt.Errorf("signal service is not fully initialized")
	}

	ns, verr := validateSignalInput(input)
	if verr != nil {
		return domain.Signal{}, verr
	}
	return s.repo.CreateSignal(ctx, ns)
}

func (s *SignalService) List(ctx context.Context) ([]domain.Signal, error) {
	_, span := s.tracer.Start(ctx, "signal-service.list")
	defer span.End()

	if s.repo == nil {
		return nil, fmt.Errorf("signal service is not fully initialized")
	}
	return s.repo.ListSignals(ctx)
}

func (s *SignalService) Clear(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "signal-service.clear")
	defer span.End()

	if s.repo == nil {
		return fmt.Errorf("signal service is not fully initialized")
	}
	return s.repo.ClearSignals(ctx)
}

// Stats derives the dashboard aggregates from the current list. The
// Telegram /stats command uses this; the TUI computes the same thing
// client-side from its cached list.
func (s *SignalService) Stats(ctx context.Context) (domain.Stats, error) {
	_, span := s.tracer.Start(ctx, "signal-service.stats")
	defer span.End()

	signals, err := s.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(signals), nil
}

func validateSignalInput(input domain.SignalInput) (domain.NewSignal, *domain.ValidationError) {
	ns := domain.NewSignal{
		Asset:    strings.TrimSpace(input.Asset),
		Strategy: strings.TrimSpace(input.Strategy),
	}

	if ns.Asset == "" {
		return domain.NewSignal{}, &domain.ValidationError{Field: "asset", Message: "Required"}
	}
	action := strings.TrimSpace(input.Action)
	if action == "" {
		return domain.NewSignal{}, &domain.ValidationError{Field: "action", Message: "Required"}
	}
	ns.Action = domain.Action(action)
	if ns.Strategy == "" {
		return domain.NewSignal{}, &domain.ValidationError{Field: "strategy", Message: "Required"}
	}

	confidence, ok := coerceInt(input.Confidence)
	if !ok {
		return domain.NewSignal{}, &domain.ValidationError{Field: "confidence", Message: "Expected number"}
	}
	ns.Confidence = confidence

	if input.Probability != nil {
		probability, ok := coerceInt(input.Probability)
		if !ok {
			return domain.NewSignal{}, &domain.ValidationError{Field: "probability", Message: "Expected number"}
		}
		ns.Probability = &probability
	}

	// result stays an open string; the bot may send values we have no
	// constant for.
	ns.Result = domain.Result(strings.TrimSpace(input.Result))
	ns.Price = strings.TrimSpace(input.Price)
	ns.Reasoning = strings.TrimSpace(input.Reasoning)

	ns.AssetType = strings.TrimSpace(input.AssetType)
	if ns.AssetType == "" {
		ns.AssetType = domain.AssetTypeNormal
	}
	ns.Volatility = strings.TrimSpace(input.Volatility)
	if ns.Volatility == "" {
		ns.Volatility = domain.VolatilityMedium
	}

	return ns, nil
}

// coerceInt accepts the shapes a JSON decode can hand us for a numeric
// field: a number, a numeric string, or json.Number.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(math.Round(n)), true
	case int:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(math.Round(f)), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(f)), true
	default:
		return 0, false
	}
}
