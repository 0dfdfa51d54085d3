package service

import (
	"context"
	"errors"
	"log/slog"
)

// Eraser removes a link together with everything derived from it.
type Eraser struct {
	links     LinkDeleter
	analytics AnalyticsPurger
	cache     CacheInvalidator
	logger    *slog.Logger
}

func NewEraser(links LinkDeleter, analytics AnalyticsPurger, cache CacheInvalidator, logger *slog.Logger) *Eraser {
	return &Eraser{
		links:     links,
		analytics: analytics,
		cache:     cache,
		logger:    logger,
	}
}

// Erase handles an explicit delete. Link errors are returned as is; once the
// link is gone, cleanup failures are only logged.
func (e *Eraser) Erase(ctx context.Context, code string) error {
	if err := e.links.Delete(ctx, code); err != nil {
		return err
	}

	if err := e.cascade(ctx, code); err != nil {
		e.logger.Warn("link deleted but analytics cleanup failed",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
	}
	return nil
}

// Expire handles an expiry notification. It is idempotent: a link that is
// already gone still has its analytics and cache entries removed.
func (e *Eraser) Expire(ctx context.Context, code string) error {
	if err := e.links.Delete(ctx, code); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return e.cascade(ctx, code)
}

func (e *Eraser) cascade(ctx context.Context, code string) error {
	e.cache.Invalidate(ctx, code)
	return e.analytics.Purge(ctx, code)
}
