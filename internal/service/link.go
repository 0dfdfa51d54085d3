package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"linkly/internal/domain"
	"linkly/internal/repository"
)

type LinkService struct {
	repo        LinkRepository
	gen         CodeGenerator
	scheduler   ExpiryScheduler
	cache       Cache
	baseURL     string
	maxAttempts int
	recorder    BusinessRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// NewLinkService wires the link lifecycle. scheduler may be nil, in which case
// links are stored with their expiry but nothing removes them.
func NewLinkService(
	repo LinkRepository,
	gen CodeGenerator,
	scheduler ExpiryScheduler,
	cache Cache,
	baseURL string,
	maxAttempts int,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *LinkService {
	return &LinkService{
		repo:        repo,
		gen:         gen,
		scheduler:   scheduler,
		cache:       cache,
		baseURL:     baseURL,
		maxAttempts: max(1, maxAttempts),
		recorder:    recorder,
		logger:      logger,
		now:         time.Now,
	}
}

// Create stores a new link under a fresh code. Codes that collide with an
// existing link are regenerated up to maxAttempts times.
func (s *LinkService) Create(ctx context.Context, originalURL, owner string, expiry time.Duration) (*domain.Link, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code := s.gen.Generate()
		link := &domain.Link{
			ShortCode:   code,
			OriginalURL: originalURL,
			ShortURL:    s.baseURL + "/" + code,
			UserID:      owner,
			CreatedAt:   s.now().Unix(),
			Expiry:      int64(expiry / time.Second),
		}

		err := s.repo.Insert(ctx, link)
		if errors.Is(err, repository.ErrDuplicate) {
			s.recorder.RecordBusiness("code_collision", 1, map[string]string{"attempt": strconv.Itoa(attempt)})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create link: %w", ErrPersistence, err)
		}

		if err := s.scheduleExpiry(ctx, link); err != nil {
			return nil, err
		}

		s.recorder.RecordBusiness("link_created", 1, nil)
		return link, nil
	}

	return nil, fmt.Errorf("%w: no free short code after %d attempts", ErrPersistence, s.maxAttempts)
}

// scheduleExpiry rolls the insert back when the expiry cannot be registered,
// so a link never outlives the lifetime it was created with.
func (s *LinkService) scheduleExpiry(ctx context.Context, link *domain.Link) error {
	if link.Expiry <= 0 {
		return nil
	}
	if s.scheduler == nil {
		s.logger.Warn("link expiry requested but no scheduler is configured",
			slog.String("short_code", link.ShortCode))
		return nil
	}

	err := s.scheduler.Schedule(ctx, link.ShortCode, link.ExpiresIn())
	if err == nil {
		return nil
	}

	if _, delErr := s.repo.DeleteByCode(ctx, link.ShortCode); delErr != nil {
		s.logger.Error("failed to roll back link after expiry scheduling failure",
			slog.String("short_code", link.ShortCode),
			slog.String("error", delErr.Error()))
	}
	return fmt.Errorf("%w: failed to schedule expiry: %w", ErrPersistence, err)
}

// Resolve returns the destination for code. Expiry is not checked here; expired
// links are removed out of band.
func (s *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	link, err := s.Get(ctx, code)
	if err != nil {
		return "", err
	}
	return link.OriginalURL, nil
}

func (s *LinkService) Get(ctx context.Context, code string) (*domain.Link, error) {
	link, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find link: %w", ErrPersistence, err)
	}
	return link, nil
}

// Delete removes the link. A link that disappears between the existence check
// and the delete is reported as a persistence failure.
func (s *LinkService) Delete(ctx context.Context, code string) error {
	if _, err := s.Get(ctx, code); err != nil {
		return err
	}

	n, err := s.repo.DeleteByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: failed to delete link: %w", ErrPersistence, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: link %q vanished before delete", ErrPersistence, code)
	}

	s.cache.Delete(ctx, ResolveKey(code))
	s.recorder.RecordBusiness("link_deleted", 1, nil)
	return nil
}
