package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials (username is an email, password min 12 chars)"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{ID: user.ID, Username: user.Username})
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	signed, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: signed})
}
