package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"linkly/internal/config"
)

const drainTimeout = 5 * time.Second

// Copier is the slice of *pgxpool.Pool the recorder writes through.
type Copier interface {
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

// Recorder buffers metrics in memory and batch-copies them into Postgres.
// Record calls never block: when a buffer is full the sample is dropped.
type Recorder struct {
	cfg    *config.MetricsConfig
	logger *slog.Logger

	http     *sink[HTTPMetric]
	business *sink[BusinessMetric]
	infra    *sink[InfraMetric]

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(db Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		cfg:        cfg,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}

	r.http = newSink(r, db, "http_metrics",
		[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "request_id", "error"},
		func(m HTTPMetric) []any {
			return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.RequestID, m.Error}
		})

	r.business = newSink(r, db, "business_metrics",
		[]string{"time", "metric_name", "value", "labels"},
		func(m BusinessMetric) []any {
			labels, _ := json.Marshal(m.Labels)
			return []any{m.Time, m.MetricName, m.Value, labels}
		})

	r.infra = newSink(r, db, "infra_metrics",
		[]string{
			"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
			"cache_hits", "cache_misses", "cache_hit_ratio",
			"tracker_queued", "tracker_dropped", "expiry_pending",
			"goroutines", "heap_alloc_mb",
		},
		func(m InfraMetric) []any {
			return []any{
				m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
				m.CacheHits, m.CacheMisses, m.CacheHitRatio,
				m.TrackerQueued, m.TrackerDropped, m.ExpiryPending,
				m.Goroutines, m.HeapAllocMB,
			}
		})

	return r
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	r.http.push(m)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	r.business.push(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	r.infra.push(m)
}

// Start launches the writers. They outlive cancellation of ctx so metrics
// recorded while the server drains still land; only Close stops them.
func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}
	ctx = context.WithoutCancel(ctx)

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go r.http.run(ctx, interval)
	go r.business.run(ctx, interval)
	go r.infra.run(ctx, interval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close flushes whatever is buffered and waits for the writers to exit.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type sink[T any] struct {
	r       *Recorder
	db      Copier
	table   string
	columns []string
	row     func(T) []any
	ch      chan T
}

func newSink[T any](r *Recorder, db Copier, table string, columns []string, row func(T) []any) *sink[T] {
	return &sink[T]{
		r:       r,
		db:      db,
		table:   table,
		columns: columns,
		row:     row,
		ch:      make(chan T, r.cfg.BufferSize),
	}
}

func (s *sink[T]) push(m T) {
	if !s.r.cfg.Enabled {
		return
	}
	select {
	case s.ch <- m:
	default:
		s.r.logger.Warn("metrics buffer full, dropping metric", slog.String("table", s.table))
	}
}

func (s *sink[T]) run(ctx context.Context, interval time.Duration) {
	defer s.r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, s.r.cfg.FlushThreshold)

	for {
		select {
		case <-s.r.shutdownCh:
			s.drain(batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= s.r.cfg.FlushThreshold {
				s.write(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			s.write(ctx, batch)
			batch = batch[:0]
		}
	}
}

func (s *sink[T]) drain(batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			s.write(ctx, batch)
			cancel()
			return
		}
	}
}

func (s *sink[T]) write(ctx context.Context, batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = s.row(m)
	}

	if _, err := s.db.CopyFrom(ctx, pgx.Identifier{s.table}, s.columns, pgx.CopyFromRows(rows)); err != nil {
		s.r.logger.Error("failed to write metrics batch",
			slog.String("table", s.table),
			slog.Int("rows", len(rows)),
			slog.String("error", err.Error()))
	}
}
