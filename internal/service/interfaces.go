package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"linkly/internal/domain"
)

type LinkRepository interface {
	Insert(ctx context.Context, link *domain.Link) error
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
}

type AnalyticsRepository interface {
	Find(ctx context.Context, code string) (*domain.Aggregate, error)
	Insert(ctx context.Context, agg *domain.Aggregate) error
	AppendClick(ctx context.Context, code, fp string, ev domain.ClickEvent) (bool, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
}

type CodeGenerator interface {
	Generate() string
}

type ExpiryScheduler interface {
	Schedule(ctx context.Context, code string, ttl time.Duration) error
}

type Locator interface {
	Lookup(ctx context.Context, ip string) *string
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type LinkResolver interface {
	Resolve(ctx context.Context, code string) (string, error)
}

type AnalyticsReader interface {
	Get(ctx context.Context, code string, filters domain.Filters) (*domain.Aggregate, error)
}

type LinkDeleter interface {
	Delete(ctx context.Context, code string) error
}

type AnalyticsPurger interface {
	Purge(ctx context.Context, code string) error
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, code string)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
