package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	RequestID  string
	Error      string
}

type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

// InfraMetric is a point-in-time process sample. Pool fields describe the
// metrics database pool; cache fields describe the in-process cache tier.
type InfraMetric struct {
	Time           time.Time
	PoolAcquired   int
	PoolIdle       int
	PoolTotal      int
	PoolMax        int
	CacheHits      int64
	CacheMisses    int64
	CacheHitRatio  float64
	TrackerQueued  int
	TrackerDropped int64
	ExpiryPending  int
	Goroutines     int
	HeapAllocMB    float64
}
