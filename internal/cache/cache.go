package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Local is the per-process tier backed by ristretto.
type Local struct {
	cache *ristretto.Cache
}

func NewLocal(maxSizePow2 int) (*Local, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &Local{cache: cache}, nil
}

func (c *Local) Get(_ context.Context, key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return val.([]byte), true
}

// Set is asynchronous; the value may not be visible to an immediate Get.
func (c *Local) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	cost := int64(len(key) + len(val))
	c.cache.SetWithTTL(key, val, cost, ttl)
}

func (c *Local) Delete(_ context.Context, key string) {
	c.cache.Del(key)
}

// Wait blocks until buffered writes are applied.
func (c *Local) Wait() {
	c.cache.Wait()
}

func (c *Local) Close() {
	c.cache.Close()
}

func (c *Local) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
