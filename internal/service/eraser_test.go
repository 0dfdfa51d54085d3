package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"linkly/internal/service"
	"linkly/internal/service/mocks"
)

type eraserDeps struct {
	links     *mocks.MockLinkDeleter
	analytics *mocks.MockAnalyticsPurger
	cache     *mocks.MockCacheInvalidator
}

func newEraser(t *testing.T) (*service.Eraser, eraserDeps) {
	d := eraserDeps{
		links:     mocks.NewMockLinkDeleter(t),
		analytics: mocks.NewMockAnalyticsPurger(t),
		cache:     mocks.NewMockCacheInvalidator(t),
	}
	return service.NewEraser(d.links, d.analytics, d.cache, discardLogger()), d
}

func TestErase_Cascades(t *testing.T) {
	e, d := newEraser(t)
	d.links.EXPECT().Delete(mock.Anything, "abc").Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "abc").Return()
	d.analytics.EXPECT().Purge(mock.Anything, "abc").Return(nil)

	assert.NoError(t, e.Erase(context.Background(), "abc"))
}

func TestErase_LinkErrorsStopCascade(t *testing.T) {
	for _, want := range []error{service.ErrNotFound, service.ErrPersistence} {
		t.Run(want.Error(), func(t *testing.T) {
			e, d := newEraser(t)
			d.links.EXPECT().Delete(mock.Anything, "abc").Return(want)

			assert.ErrorIs(t, e.Erase(context.Background(), "abc"), want)
			d.analytics.AssertNotCalled(t, "Purge", mock.Anything, mock.Anything)
		})
	}
}

func TestErase_PurgeFailureIsLogged(t *testing.T) {
	e, d := newEraser(t)
	d.links.EXPECT().Delete(mock.Anything, "abc").Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "abc").Return()
	d.analytics.EXPECT().Purge(mock.Anything, "abc").Return(service.ErrPersistence)

	assert.NoError(t, e.Erase(context.Background(), "abc"))
}

func TestExpire_IgnoresMissingLink(t *testing.T) {
	e, d := newEraser(t)
	d.links.EXPECT().Delete(mock.Anything, "abc").Return(service.ErrNotFound)
	d.cache.EXPECT().Invalidate(mock.Anything, "abc").Return()
	d.analytics.EXPECT().Purge(mock.Anything, "abc").Return(nil)

	assert.NoError(t, e.Expire(context.Background(), "abc"))
}

func TestExpire_ReportsFailures(t *testing.T) {
	boom := errors.New("boom")

	t.Run("link", func(t *testing.T) {
		e, d := newEraser(t)
		d.links.EXPECT().Delete(mock.Anything, "abc").Return(boom)

		assert.ErrorIs(t, e.Expire(context.Background(), "abc"), boom)
	})

	t.Run("analytics", func(t *testing.T) {
		e, d := newEraser(t)
		d.links.EXPECT().Delete(mock.Anything, "abc").Return(nil)
		d.cache.EXPECT().Invalidate(mock.Anything, "abc").Return()
		d.analytics.EXPECT().Purge(mock.Anything, "abc").Return(boom)

		assert.ErrorIs(t, e.Expire(context.Background(), "abc"), boom)
	})
}
