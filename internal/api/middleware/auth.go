package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/api/metrics"
	"github.com/challenge/todo-list-api/internal/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxIdentityID = "identity_id"
	CtxRole       = "role"
)

// Auth validates the bearer token and injects the authenticated identity
// into the request context. Verification is purely cryptographic and
// time-based: the user store is never consulted, so a token remains accepted
// until its expiry even if the account was suspended or deleted after
// issuance.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			// Scheme is matched exactly; "bearer" or "BEARER" is rejected.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(CtxIdentityID, claims.IdentityID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
