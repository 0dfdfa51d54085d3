package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"linkly/internal/config"
)

const (
	bypassHeader    = "X-Rate-Limit-Bypass"
	retryAfterDelay = 1
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

var (
	errRateLimited = rateLimitResponse{Error: "rate limit exceeded", RetryAfter: retryAfterDelay}
	errLimiter     = map[string]string{"error": "internal server error"}
)

// RateLimit applies a per-client token bucket. Paths listed in exempt and
// requests carrying the bypass secret are never limited.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger, exempt ...string) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RPS),
		Burst:     cfg.Burst,
		ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
	})

	skip := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		skip[p] = struct{}{}
	}
	secret := []byte(cfg.BypassSecret)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if _, ok := skip[c.Path()]; ok {
				return true
			}
			if len(secret) == 0 {
				return false
			}
			provided := []byte(c.Request().Header.Get(bypassHeader))
			return subtle.ConstantTimeCompare(provided, secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterDelay))
			return c.JSON(http.StatusTooManyRequests, errRateLimited)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errLimiter)
		},
	})
}
