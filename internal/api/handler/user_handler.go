package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

// UserHandler handles the profile endpoint and the admin-only user CRUD.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /v1/users/me for any authenticated identity.
//
// @Summary      Get the current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identityID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), identityID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /v1/users (admin only).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserList(users))
}

// Create handles POST /v1/users (admin only).
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Credentials"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{ID: user.ID, Username: user.Username})
}

// Get handles GET /v1/users/:id (admin only).
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  userResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PATCH /v1/users/:id (admin only). Role and status are the
// only mutable fields; a password in the payload is rejected outright.
//
// @Summary      Update a user's role or status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password != nil {
		return domain.ErrPasswordUpdateForbidden
	}

	input := ports.UpdateUserInput{}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		input.Status = &status
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /v1/users/:id (admin only).
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404 {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
