package cache

import (
	"context"
	"time"
)

type Tier interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Tiered reads through its tiers in order and backfills the faster ones on a
// hit further down. A Tiered with no tiers caches nothing.
type Tiered struct {
	tiers []Tier
	ttl   time.Duration
}

// NewTiered skips nil tiers so callers can pass disabled ones directly.
// Backfilled entries live for ttl.
func NewTiered(ttl time.Duration, tiers ...Tier) *Tiered {
	t := &Tiered{ttl: ttl}
	for _, tier := range tiers {
		if tier != nil && !isNilTier(tier) {
			t.tiers = append(t.tiers, tier)
		}
	}
	return t
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, tier := range t.tiers {
		val, ok := tier.Get(ctx, key)
		if !ok {
			continue
		}
		for _, upper := range t.tiers[:i] {
			upper.Set(ctx, key, val, t.ttl)
		}
		return val, true
	}
	return nil, false
}

func (t *Tiered) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	for _, tier := range t.tiers {
		tier.Set(ctx, key, val, ttl)
	}
}

func (t *Tiered) Delete(ctx context.Context, key string) {
	for _, tier := range t.tiers {
		tier.Delete(ctx, key)
	}
}

func (t *Tiered) Len() int {
	return len(t.tiers)
}

func isNilTier(tier Tier) bool {
	switch v := tier.(type) {
	case *Local:
		return v == nil
	case *Redis:
		return v == nil
	}
	return false
}
