package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"linkly/internal/config"
)

const ownerKey = "owner"

var errInvalidToken = map[string]string{"error": "invalid token"}

// Owner parses an optional bearer token and stores its subject on the
// context. Requests without a token pass through anonymously.
func Owner(cfg *config.AuthConfig) echo.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{cfg.Algorithm}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(secret) == 0 {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return next(c)
			}

			claims := &jwt.RegisteredClaims{}
			token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errInvalidToken)
			}

			c.Set(ownerKey, claims.Subject)
			return next(c)
		}
	}
}

// OwnerFrom returns the authenticated subject, or "" for anonymous requests.
func OwnerFrom(c echo.Context) string {
	owner, _ := c.Get(ownerKey).(string)
	return owner
}
