package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"linkly/internal/middleware"
)

func newPprofServer(secret string) *echo.Echo {
	e := echo.New()
	g := e.Group("/debug/pprof", middleware.PprofAuth(secret))
	middleware.RegisterPprof(g)
	return e
}

func TestPprofAuth(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{name: "open when no secret", want: http.StatusOK},
		{name: "matching secret", secret: "pp", header: "pp", want: http.StatusOK},
		{name: "wrong secret", secret: "pp", header: "qq", want: http.StatusUnauthorized},
		{name: "prefix of secret", secret: "secret123", header: "secret12", want: http.StatusUnauthorized},
		{name: "missing header", secret: "pp", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newPprofServer(tt.secret)

			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/heap", nil)
			if tt.header != "" {
				req.Header.Set("X-Pprof-Secret", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRegisterPprof(t *testing.T) {
	e := newPprofServer("")

	for _, ep := range []string{
		"/debug/pprof/",
		"/debug/pprof/cmdline",
		"/debug/pprof/allocs",
		"/debug/pprof/block",
		"/debug/pprof/goroutine",
		"/debug/pprof/heap",
		"/debug/pprof/mutex",
		"/debug/pprof/threadcreate",
	} {
		t.Run(ep, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ep, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
