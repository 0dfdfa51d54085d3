// Package memory keeps links and analytics in process memory. It honours the
// same contracts as the mongo package and backs tests and local runs.
package memory

import (
	"context"
	"slices"
	"sync"

	"linkly/internal/domain"
	"linkly/internal/repository"
)

type LinkRepository struct {
	mu    sync.RWMutex
	links map[string]domain.Link
}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{links: make(map[string]domain.Link)}
}

func (r *LinkRepository) Insert(_ context.Context, link *domain.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[link.ShortCode]; ok {
		return repository.ErrDuplicate
	}
	r.links[link.ShortCode] = *link
	return nil
}

func (r *LinkRepository) FindByCode(_ context.Context, code string) (*domain.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &link, nil
}

func (r *LinkRepository) DeleteByCode(_ context.Context, code string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[code]; !ok {
		return 0, nil
	}
	delete(r.links, code)
	return 1, nil
}

func (r *LinkRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.links)
}

type AnalyticsRepository struct {
	mu         sync.RWMutex
	aggregates map[string]*domain.Aggregate
}

func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{aggregates: make(map[string]*domain.Aggregate)}
}

func (r *AnalyticsRepository) Find(_ context.Context, code string) (*domain.Aggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agg, ok := r.aggregates[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(agg), nil
}

func (r *AnalyticsRepository) Insert(_ context.Context, agg *domain.Aggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.aggregates[agg.ShortCode]; ok {
		return repository.ErrDuplicate
	}
	r.aggregates[agg.ShortCode] = clone(agg)
	return nil
}

func (r *AnalyticsRepository) AppendClick(_ context.Context, code, fp string, ev domain.ClickEvent) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agg, ok := r.aggregates[code]
	if !ok || slices.Contains(agg.Fingerprints, fp) {
		return false, nil
	}
	agg.Clicks++
	agg.Fingerprints = append(agg.Fingerprints, fp)
	agg.ClickDetails = append(agg.ClickDetails, ev)
	return true, nil
}

func (r *AnalyticsRepository) DeleteByCode(_ context.Context, code string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.aggregates[code]; !ok {
		return 0, nil
	}
	delete(r.aggregates, code)
	return 1, nil
}

func clone(agg *domain.Aggregate) *domain.Aggregate {
	return &domain.Aggregate{
		ShortCode:    agg.ShortCode,
		Clicks:       agg.Clicks,
		Fingerprints: slices.Clone(agg.Fingerprints),
		ClickDetails: slices.Clone(agg.ClickDetails),
	}
}
