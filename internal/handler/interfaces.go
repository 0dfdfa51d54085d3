package handler

//go:generate go tool mockery

import (
	"context"
	"time"

	"linkly/internal/domain"
)

type LinkService interface {
	Create(ctx context.Context, originalURL, owner string, expiry time.Duration) (*domain.Link, error)
	Get(ctx context.Context, code string) (*domain.Link, error)
}

type Resolver interface {
	Resolve(ctx context.Context, code string) (string, error)
	Analytics(ctx context.Context, code string, filters domain.Filters) (*domain.Aggregate, error)
}

type Eraser interface {
	Erase(ctx context.Context, code string) error
}

type ClickTracker interface {
	Submit(click domain.Click) bool
}

type URLValidator interface {
	ValidateURL(rawURL string) error
	ValidateExpiry(seconds *int64) (time.Duration, error)
}

type QRFetcher interface {
	Fetch(ctx context.Context, text string) ([]byte, string, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
