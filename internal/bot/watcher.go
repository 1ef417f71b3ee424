package bot

import (
	"context"
	"log"
	"strconv"
	"time"

	"signal-deck/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const alertCursorKey = "alerts:last-signal-id"

// SignalLister provides signal data to the watcher and the bot commands.
type SignalLister interface {
	List(ctx context.Context) ([]domain.Signal, error)
}

// SignalNotifier receives the batches of new signals the watcher finds.
type SignalNotifier interface {
	NotifySignals(ctx context.Context, signals []domain.Signal) error
}

// SignalWatcher polls the store for signals past the last announced ID
// and hands them to the dispatcher. The cursor lives in Redis so a
// restart does not replay old alerts; without Redis it is held in
// memory only.
type SignalWatcher struct {
	tracer   trace.Tracer
	signals  SignalLister
	notifier SignalNotifier
	redis    *redis.Client
	interval time.Duration
	cursor   int64
}

func NewSignalWatcher(
	tracer trace.Tracer,
	signals SignalLister,
	notifier SignalNotifier,
	redisClient *redis.Client,
	interval time.Duration,
) *SignalWatcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &SignalWatcher{
		tracer:   tracer,
		signals:  signals,
		notifier: notifier,
		redis:    redisClient,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled.
func (w *SignalWatcher) Start(ctx context.Context) {
	if w.signals == nil || w.notifier == nil {
		log.Println("Signal watcher disabled: missing service or dispatcher")
		<-ctx.Done()
		return
	}

	w.loadCursor(ctx)
	log.Println("Signal watcher starting...")

	// Prime the cursor on first run so a fresh deployment does not
	// announce the entire backlog.
	w.checkOnce(ctx, w.cursor == 0)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Signal watcher stopped")
			return
		case <-ticker.C:
			w.checkOnce(ctx, false)
		}
	}
}

func (w *SignalWatcher) checkOnce(ctx context.Context, primeOnly bool) {
	_, span := w.tracer.Start(ctx, "signal-watcher.check")
	defer span.End()

	signals, err := w.signals.List(ctx)
	if err != nil {
		log.Printf("signal watcher list error: %v", err)
		return
	}

	var fresh []domain.Signal
	maxID := w.cursor
	for _, s := range signals {
		if s.ID > w.cursor {
			fresh = append(fresh, s)
		}
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	if maxID == w.cursor {
		return
	}

	if !primeOnly && len(fresh) > 0 {
		// The list comes back newest-first; announce in insertion order.
		for i, j := 0, len(fresh)-1; i < j; i, j = i+1, j-1 {
			fresh[i], fresh[j] = fresh[j], fresh[i]
		}
		if err := w.notifier.NotifySignals(ctx, fresh); err != nil {
			log.Printf("signal watcher notify error: %v", err)
		}
	}

	w.cursor = maxID
	w.storeCursor(ctx)
}

func (w *SignalWatcher) loadCursor(ctx context.Context) {
	if w.redis == nil {
		return
	}
	raw, err := w.redis.Get(ctx, alertCursorKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("signal watcher cursor load error: %v", err)
		}
		return
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		w.cursor = id
	}
}

func (w *SignalWatcher) storeCursor(ctx context.Context) {
	if w.redis == nil {
		return
	}
	if err := w.redis.Set(ctx, alertCursorKey, strconv.FormatInt(w.cursor, 10), 0).Err(); err != nil {
		log.Printf("signal watcher cursor store error: %v", err)
	}
}
