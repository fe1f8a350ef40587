package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/api/middleware"
	"github.com/challenge/todo-list-api/internal/core/domain"
)

// ctxIdentity extracts the authenticated identity injected by the Auth
// middleware. Presence of both values proves the middleware ran; anything
// less is rejected with 401 before touching a service.
func ctxIdentity(c echo.Context) (identityID string, role domain.Role, err error) {
	identityID, _ = c.Get(middleware.CtxIdentityID).(string)
	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	if identityID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identityID, role, nil
}
