package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkly/internal/domain"
	"linkly/internal/service"
	"linkly/internal/service/mocks"
)

const cacheTTL = 180 * time.Second

type resolverDeps struct {
	links     *mocks.MockLinkResolver
	analytics *mocks.MockAnalyticsReader
	cache     *mocks.MockCache
}

func newResolver(t *testing.T) (*service.CachedResolver, resolverDeps) {
	d := resolverDeps{
		links:     mocks.NewMockLinkResolver(t),
		analytics: mocks.NewMockAnalyticsReader(t),
		cache:     mocks.NewMockCache(t),
	}
	r := service.NewCachedResolver(d.links, d.analytics, d.cache, cacheTTL, anyRecorder(t), discardLogger())
	return r, d
}

func TestResolve_CacheHit(t *testing.T) {
	r, d := newResolver(t)
	d.cache.EXPECT().Get(mock.Anything, "resolve:abc").Return([]byte("https://cached.example.com"), true)

	dest, err := r.Resolve(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://cached.example.com", dest)
}

func TestResolve_CacheMissPopulates(t *testing.T) {
	r, d := newResolver(t)
	d.cache.EXPECT().Get(mock.Anything, "resolve:abc").Return(nil, false)
	d.links.EXPECT().Resolve(mock.Anything, "abc").Return("https://example.com", nil)
	d.cache.EXPECT().Set(mock.Anything, "resolve:abc", []byte("https://example.com"), cacheTTL).Return().Once()

	dest, err := r.Resolve(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", dest)
}

func TestResolve_FailuresNotCached(t *testing.T) {
	for _, want := range []error{service.ErrNotFound, service.ErrPersistence} {
		t.Run(want.Error(), func(t *testing.T) {
			r, d := newResolver(t)
			d.cache.EXPECT().Get(mock.Anything, "resolve:abc").Return(nil, false)
			d.links.EXPECT().Resolve(mock.Anything, "abc").Return("", want)

			_, err := r.Resolve(context.Background(), "abc")
			assert.ErrorIs(t, err, want)
			d.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAnalytics_CacheMissPopulates(t *testing.T) {
	r, d := newResolver(t)
	filters := domain.Filters{Source: ptr("google")}
	agg := &domain.Aggregate{ShortCode: "abc", Clicks: 1, Fingerprints: []string{"fp"}, ClickDetails: []domain.ClickEvent{{IP: "1.1.1.1"}}}

	d.cache.EXPECT().Get(mock.Anything, "analytics:abc:google::").Return(nil, false)
	d.analytics.EXPECT().Get(mock.Anything, "abc", filters).Return(agg, nil)

	var stored []byte
	d.cache.EXPECT().Set(mock.Anything, "analytics:abc:google::", mock.Anything, cacheTTL).
		Run(func(_ context.Context, _ string, val []byte, _ time.Duration) { stored = val }).
		Return()

	got, err := r.Analytics(context.Background(), "abc", filters)
	require.NoError(t, err)
	assert.Equal(t, agg, got)

	var decoded domain.Aggregate
	require.NoError(t, json.Unmarshal(stored, &decoded))
	assert.Equal(t, int64(1), decoded.Clicks)
}

func TestAnalytics_CacheHit(t *testing.T) {
	r, d := newResolver(t)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cached, err := json.Marshal(domain.Aggregate{
		ShortCode:    "abc",
		Clicks:       1,
		Fingerprints: []string{"fp"},
		ClickDetails: []domain.ClickEvent{{IP: "1.1.1.1", Timestamp: ts}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(cached), `"timestamp":"2024-03-01T12:00:00Z"`)

	d.cache.EXPECT().Get(mock.Anything, "analytics:abc:::").Return(cached, true)

	got, err := r.Analytics(context.Background(), "abc", domain.Filters{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Clicks)
	assert.True(t, ts.Equal(got.ClickDetails[0].Timestamp))
}

func TestAnalytics_UnreadableEntryRefetched(t *testing.T) {
	r, d := newResolver(t)
	d.cache.EXPECT().Get(mock.Anything, "analytics:abc:::").Return([]byte("{not json"), true)
	d.cache.EXPECT().Delete(mock.Anything, "analytics:abc:::").Return().Once()
	d.analytics.EXPECT().Get(mock.Anything, "abc", domain.Filters{}).Return(&domain.Aggregate{ShortCode: "abc"}, nil)
	d.cache.EXPECT().Set(mock.Anything, "analytics:abc:::", mock.Anything, cacheTTL).Return()

	got, err := r.Analytics(context.Background(), "abc", domain.Filters{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ShortCode)
}

func TestAnalytics_NotFoundNotCached(t *testing.T) {
	r, d := newResolver(t)
	d.cache.EXPECT().Get(mock.Anything, "analytics:abc:::").Return(nil, false)
	d.analytics.EXPECT().Get(mock.Anything, "abc", domain.Filters{}).Return(nil, service.ErrNotFound)

	_, err := r.Analytics(context.Background(), "abc", domain.Filters{})
	assert.ErrorIs(t, err, service.ErrNotFound)
	d.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvalidate(t *testing.T) {
	r, d := newResolver(t)
	d.cache.EXPECT().Delete(mock.Anything, "resolve:abc").Return().Once()
	d.cache.EXPECT().Delete(mock.Anything, "analytics:abc:::").Return().Once()

	r.Invalidate(context.Background(), "abc")
}

func TestAnalyticsKey(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		filters domain.Filters
		want    string
	}{
		{"no filters", "abc", domain.Filters{}, "analytics:abc:::"},
		{"all filters", "abc", domain.Filters{Source: ptr("g"), Medium: ptr("cpc"), Campaign: ptr("x")}, "analytics:abc:g:cpc:x"},
		{"separator escaped", "abc", domain.Filters{Source: ptr("a:b")}, "analytics:abc:a%3Ab::"},
		{"empty encodes like absent", "abc", domain.Filters{Medium: ptr("")}, "analytics:abc:::"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.AnalyticsKey(tt.code, tt.filters))
		})
	}
	assert.Equal(t, "resolve:abc", service.ResolveKey("abc"))
}

func TestResolve_ErrorsPropagateUnchanged(t *testing.T) {
	r, d := newResolver(t)
	boom := errors.New("boom")
	d.cache.EXPECT().Get(mock.Anything, "resolve:abc").Return(nil, false)
	d.links.EXPECT().Resolve(mock.Anything, "abc").Return("", boom)

	_, err := r.Resolve(context.Background(), "abc")
	assert.Same(t, boom, err)
}
