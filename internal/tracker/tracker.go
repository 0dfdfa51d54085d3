// Package tracker records clicks off the request path on a bounded pool of
// workers.
package tracker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"linkly/internal/config"
	"linkly/internal/domain"
)

type ClickRecorder interface {
	Record(ctx context.Context, click domain.Click) (domain.RecordOutcome, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

type Tracker struct {
	recorder ClickRecorder
	metrics  BusinessRecorder
	logger   *slog.Logger
	cfg      *config.TrackerConfig
	queue    chan domain.Click

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Int64
}

func New(recorder ClickRecorder, metrics BusinessRecorder, cfg *config.TrackerConfig, logger *slog.Logger) *Tracker {
	return &Tracker{
		recorder: recorder,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		queue:    make(chan domain.Click, max(1, cfg.BufferSize)),
	}
}

// Start launches the workers. Tasks inherit ctx values but not its
// cancellation; Close is what stops them.
func (t *Tracker) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	workers := max(1, t.cfg.Workers)

	t.wg.Add(workers)
	for range workers {
		go t.work(base)
	}

	t.logger.Info("click tracker started",
		slog.Int("workers", workers),
		slog.Int("buffer_size", cap(t.queue)))
}

// Submit enqueues click without blocking. It returns false when the click was
// dropped because the buffer is full or the tracker is closed.
func (t *Tracker) Submit(click domain.Click) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return false
	}

	select {
	case t.queue <- click:
		return true
	default:
		t.dropped.Add(1)
		t.metrics.RecordBusiness("tracker_dropped", 1, nil)
		t.logger.Warn("click buffer full, dropping click", slog.String("short_code", click.ShortCode))
		return false
	}
}

// Close stops intake and waits up to the drain timeout for queued clicks.
func (t *Tracker) Close() {
	t.once.Do(func() {
		t.mu.Lock()
		t.closed = true
		close(t.queue)
		t.mu.Unlock()

		done := make(chan struct{})
		go func() {
			t.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(t.cfg.DrainTimeout):
			t.logger.Warn("click tracker drain timed out", slog.Int("pending", len(t.queue)))
		}
	})
}

func (t *Tracker) QueueLen() int {
	return len(t.queue)
}

func (t *Tracker) Dropped() int64 {
	return t.dropped.Load()
}

func (t *Tracker) work(base context.Context) {
	defer t.wg.Done()
	for click := range t.queue {
		t.record(base, click)
	}
}

func (t *Tracker) record(base context.Context, click domain.Click) {
	ctx, cancel := context.WithTimeout(base, t.cfg.TaskTimeout)
	defer cancel()

	outcome, err := t.recorder.Record(ctx, click)
	if err != nil {
		t.logger.Error("failed to record click",
			slog.String("short_code", click.ShortCode),
			slog.String("error", err.Error()))
		return
	}

	attrs := []any{
		slog.String("short_code", click.ShortCode),
		slog.String("outcome", outcome.String()),
	}
	if !click.ReceivedAt.IsZero() {
		attrs = append(attrs, slog.Duration("lag", time.Since(click.ReceivedAt)))
	}
	t.logger.Debug("click recorded", attrs...)
}
