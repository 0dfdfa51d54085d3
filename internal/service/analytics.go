package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"linkly/internal/domain"
	"linkly/internal/fingerprint"
	"linkly/internal/repository"
)

type AnalyticsService struct {
	repo     AnalyticsRepository
	locator  Locator
	recorder BusinessRecorder
	now      func() time.Time
}

type AnalyticsOption func(*AnalyticsService)

func WithClock(now func() time.Time) AnalyticsOption {
	return func(s *AnalyticsService) {
		s.now = now
	}
}

func NewAnalyticsService(repo AnalyticsRepository, locator Locator, recorder BusinessRecorder, opts ...AnalyticsOption) *AnalyticsService {
	s := &AnalyticsService{
		repo:     repo,
		locator:  locator,
		recorder: recorder,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record counts a click once per visitor fingerprint. The aggregate is created
// on the first click; later clicks go through a single filtered update that
// skips fingerprints already in the set.
func (s *AnalyticsService) Record(ctx context.Context, click domain.Click) (domain.RecordOutcome, error) {
	ip := fingerprint.NormalizeIP(click.ClientIP)
	ua := fingerprint.UserAgent(click.UserAgent)
	fp := fingerprint.Compute(ip, ua)

	at := click.ReceivedAt
	if at.IsZero() {
		at = s.now()
	}

	ev := domain.ClickEvent{
		UserAgent:   ua,
		IP:          ip,
		Timestamp:   at.UTC(),
		Attribution: click.Attribution,
	}
	if s.locator != nil {
		ev.Location = s.locator.Lookup(ctx, ip)
	}

	outcome, err := s.store(ctx, click.ShortCode, fp, ev)
	if err != nil {
		return outcome, err
	}

	s.recorder.RecordBusiness("click_recorded", 1, map[string]string{"outcome": outcome.String()})
	return outcome, nil
}

func (s *AnalyticsService) store(ctx context.Context, code, fp string, ev domain.ClickEvent) (domain.RecordOutcome, error) {
	existing, err := s.repo.Find(ctx, code)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		err = s.repo.Insert(ctx, &domain.Aggregate{
			ShortCode:    code,
			Clicks:       1,
			Fingerprints: []string{fp},
			ClickDetails: []domain.ClickEvent{ev},
		})
		if err == nil {
			return domain.OutcomeCreated, nil
		}
		// Another click created the aggregate first; count against it instead.
		if !errors.Is(err, repository.ErrDuplicate) {
			return domain.OutcomeDuplicate, fmt.Errorf("%w: failed to create analytics: %w", ErrPersistence, err)
		}
	case err != nil:
		return domain.OutcomeDuplicate, fmt.Errorf("%w: failed to load analytics: %w", ErrPersistence, err)
	case slices.Contains(existing.Fingerprints, fp):
		return domain.OutcomeDuplicate, nil
	}

	counted, err := s.repo.AppendClick(ctx, code, fp, ev)
	if err != nil {
		return domain.OutcomeDuplicate, fmt.Errorf("%w: failed to append click: %w", ErrPersistence, err)
	}
	if !counted {
		return domain.OutcomeDuplicate, nil
	}
	return domain.OutcomeCounted, nil
}

// Get returns the aggregate for code with click details narrowed to those
// matching every set filter. Clicks is recomputed from the narrowed list.
func (s *AnalyticsService) Get(ctx context.Context, code string, filters domain.Filters) (*domain.Aggregate, error) {
	agg, err := s.repo.Find(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to load analytics: %w", ErrPersistence, err)
	}

	details := make([]domain.ClickEvent, 0, len(agg.ClickDetails))
	for _, ev := range agg.ClickDetails {
		if filters.Match(ev) {
			details = append(details, ev)
		}
	}
	agg.ClickDetails = details
	agg.Clicks = int64(len(details))
	if agg.Fingerprints == nil {
		agg.Fingerprints = []string{}
	}
	return agg, nil
}

func (s *AnalyticsService) Purge(ctx context.Context, code string) error {
	if _, err := s.repo.DeleteByCode(ctx, code); err != nil {
		return fmt.Errorf("%w: failed to purge analytics: %w", ErrPersistence, err)
	}
	return nil
}
