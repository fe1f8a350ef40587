package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// RequireRole enforces role-based access control on an already-authenticated
// request. A request with no authenticated identity is rejected with 401; an
// identity holding none of the allowed roles gets 403. No store lookups;
// the role was verified when the token was.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
