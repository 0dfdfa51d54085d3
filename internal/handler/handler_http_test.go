package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkly/internal/config"
	"linkly/internal/domain"
	"linkly/internal/handler"
	"linkly/internal/handler/mocks"
	"linkly/internal/middleware"
	"linkly/internal/service"
	"linkly/internal/validation"
)

type deps struct {
	links     *mocks.MockLinkService
	resolver  *mocks.MockResolver
	eraser    *mocks.MockEraser
	tracker   *mocks.MockClickTracker
	validator *mocks.MockURLValidator
	qr        *mocks.MockQRFetcher
	recorder  *mocks.MockBusinessRecorder
}

func newServer(t *testing.T, mws ...echo.MiddlewareFunc) (*echo.Echo, deps) {
	d := deps{
		links:     mocks.NewMockLinkService(t),
		resolver:  mocks.NewMockResolver(t),
		eraser:    mocks.NewMockEraser(t),
		tracker:   mocks.NewMockClickTracker(t),
		validator: mocks.NewMockURLValidator(t),
		qr:        mocks.NewMockQRFetcher(t),
		recorder:  mocks.NewMockBusinessRecorder(t),
	}
	d.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.New(d.links, d.resolver, d.eraser, d.tracker, d.validator, d.qr, d.recorder, logger)

	e := echo.New()
	e.Use(mws...)
	h.Register(e)
	return e, d
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func ptr[T any](v T) *T { return &v }

// trustPeer treats the httptest peer (192.0.2.1) as a proxy.
func trustPeer(t *testing.T, e *echo.Echo) {
	t.Helper()
	extract, err := middleware.IPExtractor([]string{"192.0.2.0/24"})
	require.NoError(t, err)
	e.IPExtractor = extract
}

// Shorten

func TestShorten_Created(t *testing.T) {
	e, d := newServer(t)

	d.validator.EXPECT().ValidateURL("https://example.com/a").Return(nil)
	d.validator.EXPECT().ValidateExpiry((*int64)(nil)).Return(time.Duration(0), nil)
	d.links.EXPECT().Create(mock.Anything, "https://example.com/a", "", time.Duration(0)).
		Return(&domain.Link{
			ShortCode:   "Ab3",
			OriginalURL: "https://example.com/a",
			ShortURL:    "http://localhost:8080/Ab3",
		}, nil)

	rec := do(e, jsonRequest(http.MethodPost, "/shorten", `{"original_url":"https://example.com/a"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"short_url":"http://localhost:8080/Ab3","original_url":"https://example.com/a"}`, rec.Body.String())
}

func TestShorten_WithExpiry(t *testing.T) {
	e, d := newServer(t)

	d.validator.EXPECT().ValidateURL("https://example.com/b").Return(nil)
	d.validator.EXPECT().ValidateExpiry(ptr(int64(3600))).Return(time.Hour, nil)
	d.links.EXPECT().Create(mock.Anything, "https://example.com/b", "", time.Hour).
		Return(&domain.Link{OriginalURL: "https://example.com/b", ShortURL: "http://s/x", Expiry: 3600}, nil)

	rec := do(e, jsonRequest(http.MethodPost, "/shorten", `{"original_url":"https://example.com/b","expiry":3600}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"short_url":"http://s/x","original_url":"https://example.com/b","expiry":3600}`, rec.Body.String())
}

func TestShorten_OwnerFromToken(t *testing.T) {
	auth := &config.AuthConfig{JWTSecret: "k", Algorithm: "HS256"}
	e, d := newServer(t, middleware.Owner(auth))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-42"}).
		SignedString([]byte("k"))
	require.NoError(t, err)

	d.validator.EXPECT().ValidateURL(mock.Anything).Return(nil)
	d.validator.EXPECT().ValidateExpiry(mock.Anything).Return(time.Duration(0), nil)
	d.links.EXPECT().Create(mock.Anything, "https://example.com", "user-42", time.Duration(0)).
		Return(&domain.Link{OriginalURL: "https://example.com", ShortURL: "http://s/y"}, nil)

	req := jsonRequest(http.MethodPost, "/shorten", `{"original_url":"https://example.com"}`)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	assert.Equal(t, http.StatusCreated, do(e, req).Code)
}

func TestShorten_ValidationErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantBody string
	}{
		{validation.ErrEmptyURL, "original_url is required"},
		{validation.ErrInvalidURLFormat, "invalid url format"},
		{validation.ErrUnsafeProtocol, "url protocol not allowed"},
		{validation.ErrURLTooLong, "url exceeds maximum length"},
		{validation.ErrPrivateIPNotAllowed, "private ip addresses not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			e, d := newServer(t)
			d.validator.EXPECT().ValidateURL(mock.Anything).Return(tt.err)

			rec := do(e, jsonRequest(http.MethodPost, "/shorten", `{"original_url":"whatever"}`))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantBody), rec.Body.String())
		})
	}
}

func TestShorten_InvalidExpiry(t *testing.T) {
	e, d := newServer(t)
	d.validator.EXPECT().ValidateURL(mock.Anything).Return(nil)
	d.validator.EXPECT().ValidateExpiry(ptr(int64(-5))).Return(time.Duration(0), validation.ErrInvalidExpiry)

	rec := do(e, jsonRequest(http.MethodPost, "/shorten", `{"original_url":"https://example.com","expiry":-5}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expiry")
}

func TestShorten_BadJSON(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, jsonRequest(http.MethodPost, "/shorten", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShorten_PersistenceFailure(t *testing.T) {
	e, d := newServer(t)
	d.validator.EXPECT().ValidateURL(mock.Anything).Return(nil)
	d.validator.EXPECT().ValidateExpiry(mock.Anything).Return(time.Duration(0), nil)
	d.links.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: failed to insert link: connection refused 10.0.0.5:27017", service.ErrPersistence))

	rec := do(e, jsonRequest(http.MethodPost, "/shorten", `{"original_url":"https://example.com"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to create short url"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

// Redirect

func TestRedirect_SubmitsClick(t *testing.T) {
	e, d := newServer(t)
	trustPeer(t, e)

	d.resolver.EXPECT().Resolve(mock.Anything, "Ab3").Return("https://example.com/landing", nil)
	d.tracker.EXPECT().Submit(mock.MatchedBy(func(c domain.Click) bool {
		return c.ShortCode == "Ab3" &&
			c.ClientIP == "203.0.113.9" &&
			c.UserAgent == "Mozilla/5.0" &&
			c.Attribution.Source != nil && *c.Attribution.Source == "twitter" &&
			c.Attribution.Medium == nil &&
			c.Attribution.Campaign != nil && *c.Attribution.Campaign == "launch" &&
			!c.ReceivedAt.IsZero()
	})).Return(true).Once()

	req := httptest.NewRequest(http.MethodGet, "/Ab3?utm_source=twitter&utm_campaign=launch", nil)
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.9")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	rec := do(e, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/landing", rec.Header().Get(echo.HeaderLocation))
}

func TestRedirect_IgnoresForwardedHeaderFromUntrustedPeer(t *testing.T) {
	e, d := newServer(t)
	extract, err := middleware.IPExtractor(nil)
	require.NoError(t, err)
	e.IPExtractor = extract

	d.resolver.EXPECT().Resolve(mock.Anything, "Ab3").Return("https://example.com", nil)

	var ips []string
	d.tracker.EXPECT().Submit(mock.Anything).Run(func(c domain.Click) {
		ips = append(ips, c.ClientIP)
	}).Return(true).Times(5)

	for i := range 5 {
		req := httptest.NewRequest(http.MethodGet, "/Ab3", nil)
		req.RemoteAddr = "9.9.9.9:5000"
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("%d.%d.%d.%d", i+1, i+1, i+1, i+1))
		req.Header.Set(echo.HeaderXRealIP, "8.8.4.4")
		req.Header.Set("User-Agent", "pytest-agent")
		require.Equal(t, http.StatusFound, do(e, req).Code)
	}

	assert.Equal(t, []string{"9.9.9.9", "9.9.9.9", "9.9.9.9", "9.9.9.9", "9.9.9.9"}, ips)
}

func TestRedirect_DroppedClickStillRedirects(t *testing.T) {
	e, d := newServer(t)
	d.resolver.EXPECT().Resolve(mock.Anything, "Ab3").Return("https://example.com", nil)
	d.tracker.EXPECT().Submit(mock.Anything).Return(false)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/Ab3", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRedirect_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown code", err: service.ErrNotFound, want: http.StatusNotFound},
		{name: "store down", err: fmt.Errorf("failed to find link: %w", service.ErrPersistence), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, d := newServer(t)
			d.resolver.EXPECT().Resolve(mock.Anything, "zzz").Return("", tt.err)

			rec := do(e, httptest.NewRequest(http.MethodGet, "/zzz", nil))

			assert.Equal(t, tt.want, rec.Code)
			d.tracker.AssertNotCalled(t, "Submit", mock.Anything)
		})
	}
}

// Analytics

func TestAnalytics_PassesFilters(t *testing.T) {
	e, d := newServer(t)

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d.resolver.EXPECT().Analytics(mock.Anything, "Ab3", domain.Filters{
		Source:   ptr("newsletter"),
		Medium:   ptr("email"),
		Campaign: nil,
	}).Return(&domain.Aggregate{
		ShortCode:    "Ab3",
		Clicks:       1,
		Fingerprints: []string{"fp"},
		ClickDetails: []domain.ClickEvent{{
			UserAgent: "ua",
			IP:        "8.8.8.8",
			Timestamp: ts,
			Location:  ptr("Lagos, Nigeria"),
			Attribution: domain.Attribution{
				Source: ptr("newsletter"),
				Medium: ptr("email"),
			},
		}},
	}, nil)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/analytics/Ab3?utm_source=newsletter&utm_medium=email&utm_campaign=", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["clicks"])
	details := body["click_details"].([]any)
	require.Len(t, details, 1)
	ev := details[0].(map[string]any)
	assert.Equal(t, "2026-03-01T12:00:00Z", ev["timestamp"])
	assert.Equal(t, "newsletter", ev["utm_source"])
	assert.Nil(t, ev["utm_campaign"])
}

func TestAnalytics_NotFound(t *testing.T) {
	e, d := newServer(t)
	d.resolver.EXPECT().Analytics(mock.Anything, "nope", domain.Filters{}).Return(nil, service.ErrNotFound)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/analytics/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "analytics data not found")
}

func TestAnalytics_Failure(t *testing.T) {
	e, d := newServer(t)
	d.resolver.EXPECT().Analytics(mock.Anything, "Ab3", domain.Filters{}).Return(nil, errors.New("boom"))

	rec := do(e, httptest.NewRequest(http.MethodGet, "/analytics/Ab3", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Delete

func TestDelete_BothRoutes(t *testing.T) {
	for _, method := range []struct{ verb, target string }{
		{http.MethodGet, "/delete/Ab3"},
		{http.MethodDelete, "/Ab3"},
	} {
		t.Run(method.verb, func(t *testing.T) {
			e, d := newServer(t)
			d.eraser.EXPECT().Erase(mock.Anything, "Ab3").Return(nil).Once()

			rec := do(e, httptest.NewRequest(method.verb, method.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"message":"Url data successfully erased"}`, rec.Body.String())
		})
	}
}

func TestDelete_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "never existed", err: service.ErrNotFound, want: http.StatusNotFound},
		{name: "delete failed", err: fmt.Errorf("failed to delete link: %w", service.ErrPersistence), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, d := newServer(t)
			d.eraser.EXPECT().Erase(mock.Anything, "Ab3").Return(tt.err)

			rec := do(e, httptest.NewRequest(http.MethodGet, "/delete/Ab3", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

// QR

func TestQRCode(t *testing.T) {
	e, d := newServer(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	d.links.EXPECT().Get(mock.Anything, "Ab3").Return(&domain.Link{ShortCode: "Ab3", ShortURL: "http://s/Ab3"}, nil)
	d.qr.EXPECT().Fetch(mock.Anything, "http://s/Ab3").Return(png, "image/png", nil)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/create-qr-code/Ab3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestQRCode_UnknownCode(t *testing.T) {
	e, d := newServer(t)
	d.links.EXPECT().Get(mock.Anything, "zzz").Return(nil, service.ErrNotFound)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/create-qr-code/zzz", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	d.qr.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestQRCode_UpstreamFailure(t *testing.T) {
	e, d := newServer(t)
	d.links.EXPECT().Get(mock.Anything, "Ab3").Return(&domain.Link{ShortURL: "http://s/Ab3"}, nil)
	d.qr.EXPECT().Fetch(mock.Anything, "http://s/Ab3").Return(nil, "", errors.New("status 503"))

	rec := do(e, httptest.NewRequest(http.MethodGet, "/create-qr-code/Ab3", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealth(t *testing.T) {
	e, _ := newServer(t)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
