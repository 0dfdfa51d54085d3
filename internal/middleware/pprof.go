package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

const pprofSecretHeader = "X-Pprof-Secret"

var (
	errPprofUnauthorized = map[string]string{"error": "unauthorized"}

	pprofProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}
)

// PprofAuth guards the profiling group with a shared secret header.
// An empty secret leaves the group open.
func PprofAuth(secret string) echo.MiddlewareFunc {
	want := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(want) > 0 {
				got := []byte(c.Request().Header.Get(pprofSecretHeader))
				if subtle.ConstantTimeCompare(got, want) != 1 {
					return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
				}
			}
			return next(c)
		}
	}
}

func RegisterPprof(g *echo.Group) {
	wrap := func(f http.HandlerFunc) echo.HandlerFunc { return echo.WrapHandler(f) }

	g.GET("/", wrap(pprof.Index))
	g.GET("/cmdline", wrap(pprof.Cmdline))
	g.GET("/profile", wrap(pprof.Profile))
	g.GET("/trace", wrap(pprof.Trace))
	g.Match([]string{http.MethodGet, http.MethodPost}, "/symbol", wrap(pprof.Symbol))
	for _, name := range pprofProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
