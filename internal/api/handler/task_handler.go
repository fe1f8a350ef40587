package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /v1/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	identityID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		DueDate:     req.DueDate,
	}, identityID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /v1/tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200 {object}  taskResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	identityID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), c.Param("id"), identityID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// List handles GET /v1/tasks with optional status and due-date filters.
// Non-admin callers only ever receive their own tasks.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Filter by status"  Enums(pending, in progress, completed)
// @Param        due_from  query     string  false  "Due date lower bound (RFC 3339)"
// @Param        due_to    query     string  false  "Due date upper bound (RFC 3339)"
// @Success      200       {array}   taskResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	identityID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input := ports.ListTasksInput{
		IdentityID: identityID,
		Role:       role,
	}

	if status := c.QueryParam("status"); status != "" {
		if !domain.TaskStatus(status).Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: pending, in progress, completed")
		}
		input.Status = status
	}
	if input.DueFrom, err = parseTimeParam(c.QueryParam("due_from")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "due_from must be an RFC 3339 timestamp")
	}
	if input.DueTo, err = parseTimeParam(c.QueryParam("due_to")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "due_to must be an RFC 3339 timestamp")
	}

	tasks, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskList(tasks))
}

// Update handles PATCH /v1/tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	identityID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), input, identityID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /v1/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	identityID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identityID, role); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
