package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"linkly/internal/domain"
)

// CachedResolver puts a read-through cache in front of link resolution and
// analytics reads. Failures are never cached.
type CachedResolver struct {
	links     LinkResolver
	analytics AnalyticsReader
	cache     Cache
	ttl       time.Duration
	recorder  BusinessRecorder
	logger    *slog.Logger
}

func NewCachedResolver(
	links LinkResolver,
	analytics AnalyticsReader,
	cache Cache,
	ttl time.Duration,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *CachedResolver {
	return &CachedResolver{
		links:     links,
		analytics: analytics,
		cache:     cache,
		ttl:       ttl,
		recorder:  recorder,
		logger:    logger,
	}
}

func (r *CachedResolver) Resolve(ctx context.Context, code string) (string, error) {
	key := ResolveKey(code)
	if val, ok := r.cache.Get(ctx, key); ok {
		r.recorder.RecordBusiness("cache_hit", 1, map[string]string{"op": "resolve"})
		return string(val), nil
	}
	r.recorder.RecordBusiness("cache_miss", 1, map[string]string{"op": "resolve"})

	dest, err := r.links.Resolve(ctx, code)
	if err != nil {
		return "", err
	}

	r.cache.Set(ctx, key, []byte(dest), r.ttl)
	return dest, nil
}

func (r *CachedResolver) Analytics(ctx context.Context, code string, filters domain.Filters) (*domain.Aggregate, error) {
	key := AnalyticsKey(code, filters)
	if val, ok := r.cache.Get(ctx, key); ok {
		var agg domain.Aggregate
		if err := json.Unmarshal(val, &agg); err == nil {
			r.recorder.RecordBusiness("cache_hit", 1, map[string]string{"op": "analytics"})
			return &agg, nil
		}
		r.logger.Warn("dropping unreadable analytics cache entry", slog.String("key", key))
		r.cache.Delete(ctx, key)
	}
	r.recorder.RecordBusiness("cache_miss", 1, map[string]string{"op": "analytics"})

	agg, err := r.analytics.Get(ctx, code, filters)
	if err != nil {
		return nil, err
	}

	if val, err := json.Marshal(agg); err == nil {
		r.cache.Set(ctx, key, val, r.ttl)
	}
	return agg, nil
}

// Invalidate drops the redirect entry and the unfiltered analytics view.
// Filtered views age out with the TTL.
func (r *CachedResolver) Invalidate(ctx context.Context, code string) {
	r.cache.Delete(ctx, ResolveKey(code))
	r.cache.Delete(ctx, AnalyticsKey(code, domain.Filters{}))
}
