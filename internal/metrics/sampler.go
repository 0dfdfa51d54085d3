package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InfraRecorder interface {
	RecordInfra(m InfraMetric)
}

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

type QueueStats interface {
	QueueLen() int
	Dropped() int64
}

type PendingStats interface {
	Pending() int
}

// Sources are the optional components a Sampler reads. Nil entries are skipped.
type Sources struct {
	Pool    *pgxpool.Pool
	Cache   CacheStats
	Tracker QueueStats
	Expiry  PendingStats
}

type Sampler struct {
	recorder InfraRecorder
	src      Sources
	interval time.Duration
}

func NewSampler(recorder InfraRecorder, src Sources, interval time.Duration) *Sampler {
	return &Sampler{recorder: recorder, src: src, interval: interval}
}

// Run records a sample every interval until ctx is cancelled.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.recorder.RecordInfra(s.Sample())
		}
	}
}

func (s *Sampler) Sample() InfraMetric {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m := InfraMetric{
		Time:        time.Now(),
		Goroutines:  runtime.NumGoroutine(),
		HeapAllocMB: float64(mem.HeapAlloc) / 1024 / 1024,
	}

	if s.src.Pool != nil {
		stat := s.src.Pool.Stat()
		m.PoolAcquired = int(stat.AcquiredConns())
		m.PoolIdle = int(stat.IdleConns())
		m.PoolTotal = int(stat.TotalConns())
		m.PoolMax = int(stat.MaxConns())
	}
	if s.src.Cache != nil {
		hits, misses, ratio := s.src.Cache.Stats()
		m.CacheHits = int64(hits)
		m.CacheMisses = int64(misses)
		m.CacheHitRatio = ratio
	}
	if s.src.Tracker != nil {
		m.TrackerQueued = s.src.Tracker.QueueLen()
		m.TrackerDropped = s.src.Tracker.Dropped()
	}
	if s.src.Expiry != nil {
		m.ExpiryPending = s.src.Expiry.Pending()
	}

	return m
}
