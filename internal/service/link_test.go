package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkly/internal/domain"
	"linkly/internal/repository"
	"linkly/internal/repository/memory"
	"linkly/internal/service"
	"linkly/internal/service/mocks"
	"linkly/internal/shortener"
)

func newLinkService(t *testing.T, repo service.LinkRepository, gen service.CodeGenerator, scheduler service.ExpiryScheduler) (*service.LinkService, *mocks.MockCache) {
	cache := mocks.NewMockCache(t)
	svc := service.NewLinkService(repo, gen, scheduler, cache, "http://sho.rt", 3, anyRecorder(t), discardLogger())
	return svc, cache
}

func TestCreate_ThenResolve(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLinkService(t, memory.NewLinkRepository(), shortener.New(0), nil)

	link, err := svc.Create(ctx, "https://example.com", "", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, link.ShortCode)
	assert.Equal(t, "http://sho.rt/"+link.ShortCode, link.ShortURL)
	assert.Equal(t, "https://example.com", link.OriginalURL)
	assert.NotZero(t, link.CreatedAt)
	assert.Zero(t, link.Expiry)

	dest, err := svc.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", dest)
}

func TestCreate_StoresOwner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLinkService(t, memory.NewLinkRepository(), shortener.New(0), nil)

	link, err := svc.Create(ctx, "https://example.com", "user-42", 0)
	require.NoError(t, err)

	got, err := svc.Get(ctx, link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "user-42", got.UserID)
}

func TestCreate_RetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLinkRepository()
	require.NoError(t, repo.Insert(ctx, &domain.Link{ShortCode: "taken", OriginalURL: "https://old.example"}))

	gen := mocks.NewMockCodeGenerator(t)
	gen.EXPECT().Generate().Return("taken").Times(2)
	gen.EXPECT().Generate().Return("fresh").Once()

	rec := mocks.NewMockBusinessRecorder(t)
	rec.EXPECT().RecordBusiness("code_collision", float64(1), mock.Anything).Return().Times(2)
	rec.EXPECT().RecordBusiness("link_created", float64(1), mock.Anything).Return().Once()

	svc := service.NewLinkService(repo, gen, nil, mocks.NewMockCache(t), "http://sho.rt", 3, rec, discardLogger())

	link, err := svc.Create(ctx, "https://example.com", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "fresh", link.ShortCode)

	dest, err := svc.Resolve(ctx, "taken")
	require.NoError(t, err)
	assert.Equal(t, "https://old.example", dest, "existing link must be untouched")
}

func TestCreate_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLinkRepository()
	require.NoError(t, repo.Insert(ctx, &domain.Link{ShortCode: "taken"}))

	gen := mocks.NewMockCodeGenerator(t)
	gen.EXPECT().Generate().Return("taken").Times(3)

	svc, _ := newLinkService(t, repo, gen, nil)

	_, err := svc.Create(ctx, "https://example.com", "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.Equal(t, 1, repo.Len())
}

func TestCreate_StorageFailure(t *testing.T) {
	storageErr := errors.New("connection reset")

	repo := mocks.NewMockLinkRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(storageErr)

	gen := mocks.NewMockCodeGenerator(t)
	gen.EXPECT().Generate().Return("abc")

	svc, _ := newLinkService(t, repo, gen, nil)

	_, err := svc.Create(context.Background(), "https://example.com", "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.ErrorIs(t, err, storageErr)
}

func TestCreate_SchedulesExpiry(t *testing.T) {
	ctx := context.Background()
	gen := mocks.NewMockCodeGenerator(t)
	gen.EXPECT().Generate().Return("exp01")

	scheduler := mocks.NewMockExpiryScheduler(t)
	scheduler.EXPECT().Schedule(mock.Anything, "exp01", 90*time.Second).Return(nil).Once()

	svc, _ := newLinkService(t, memory.NewLinkRepository(), gen, scheduler)

	link, err := svc.Create(ctx, "https://example.com", "", 90*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(90), link.Expiry)
}

func TestCreate_NoExpiryNothingScheduled(t *testing.T) {
	scheduler := mocks.NewMockExpiryScheduler(t)
	svc, _ := newLinkService(t, memory.NewLinkRepository(), shortener.New(0), scheduler)

	_, err := svc.Create(context.Background(), "https://example.com", "", 0)
	require.NoError(t, err)
	scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ScheduleFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLinkRepository()

	gen := mocks.NewMockCodeGenerator(t)
	gen.EXPECT().Generate().Return("exp01")

	scheduler := mocks.NewMockExpiryScheduler(t)
	scheduler.EXPECT().Schedule(mock.Anything, "exp01", time.Minute).Return(errors.New("redis down"))

	svc, _ := newLinkService(t, repo, gen, scheduler)

	_, err := svc.Create(ctx, "https://example.com", "", time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.Zero(t, repo.Len())
}

func TestResolve_UnknownCode(t *testing.T) {
	svc, _ := newLinkService(t, memory.NewLinkRepository(), shortener.New(0), nil)

	_, err := svc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGet_StorageFailure(t *testing.T) {
	repo := mocks.NewMockLinkRepository(t)
	repo.EXPECT().FindByCode(mock.Anything, "abc").Return(nil, errors.New("timeout"))

	svc, _ := newLinkService(t, repo, shortener.New(0), nil)

	_, err := svc.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_ThenResolveNotFound(t *testing.T) {
	ctx := context.Background()
	svc, cache := newLinkService(t, memory.NewLinkRepository(), shortener.New(0), nil)

	link, err := svc.Create(ctx, "https://example.com", "", 0)
	require.NoError(t, err)

	cache.EXPECT().Delete(mock.Anything, "resolve:"+link.ShortCode).Return().Once()

	require.NoError(t, svc.Delete(ctx, link.ShortCode))

	_, err = svc.Resolve(ctx, link.ShortCode)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_UnknownCode(t *testing.T) {
	svc, _ := newLinkService(t, memory.NewLinkRepository(), shortener.New(0), nil)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_VanishedBeforeDelete(t *testing.T) {
	repo := mocks.NewMockLinkRepository(t)
	repo.EXPECT().FindByCode(mock.Anything, "abc").Return(&domain.Link{ShortCode: "abc"}, nil)
	repo.EXPECT().DeleteByCode(mock.Anything, "abc").Return(int64(0), nil)

	svc, _ := newLinkService(t, repo, shortener.New(0), nil)

	err := svc.Delete(context.Background(), "abc")
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_StorageFailure(t *testing.T) {
	repo := mocks.NewMockLinkRepository(t)
	repo.EXPECT().FindByCode(mock.Anything, "abc").Return(&domain.Link{ShortCode: "abc"}, nil)
	repo.EXPECT().DeleteByCode(mock.Anything, "abc").Return(int64(0), errors.New("boom"))

	svc, _ := newLinkService(t, repo, shortener.New(0), nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), "abc"), service.ErrPersistence)
}

func TestGet_TranslatesRepositoryNotFound(t *testing.T) {
	repo := mocks.NewMockLinkRepository(t)
	repo.EXPECT().FindByCode(mock.Anything, "abc").Return(nil, repository.ErrNotFound)

	svc, _ := newLinkService(t, repo, shortener.New(0), nil)

	_, err := svc.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
