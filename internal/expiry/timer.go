package expiry

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TimerScheduler expires links with in-process timers. Pending expiries are
// lost on restart, so it only backs runs without Redis.
type TimerScheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	cascade Cascade
	logger  *slog.Logger
}

func NewTimerScheduler(logger *slog.Logger) *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[string]*time.Timer),
		logger: logger,
	}
}

// Bind sets the cascade run when a timer fires. Timers that fire before Bind
// are logged and skipped.
func (s *TimerScheduler) Bind(cascade Cascade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cascade = cascade
}

func (s *TimerScheduler) Schedule(_ context.Context, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[code]; ok {
		old.Stop()
	}
	s.timers[code] = time.AfterFunc(ttl, func() { s.fire(code) })
	return nil
}

func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for code, t := range s.timers {
		t.Stop()
		delete(s.timers, code)
	}
}

func (s *TimerScheduler) fire(code string) {
	s.mu.Lock()
	delete(s.timers, code)
	cascade := s.cascade
	s.mu.Unlock()

	if cascade == nil {
		s.logger.Warn("expiry fired with no cascade bound", slog.String("short_code", code))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cascadeTimeout)
	defer cancel()

	if err := cascade.Expire(ctx, code); err != nil {
		s.logger.Error("failed to expire link",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return
	}
	s.logger.Info("link expired", slog.String("short_code", code))
}
