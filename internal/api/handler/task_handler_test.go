package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/challenge/todo-list-api/internal/api/middleware"
	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, input ports.CreateTaskInput, ownerID string) (*domain.Task, error)
	getFn    func(ctx context.Context, id, identityID string, role domain.Role) (*domain.Task, error)
	listFn   func(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateTaskInput, identityID string, role domain.Role) (*domain.Task, error)
	deleteFn func(ctx context.Context, id, identityID string, role domain.Role) error
}

func (s *stubTaskService) Create(ctx context.Context, input ports.CreateTaskInput, ownerID string) (*domain.Task, error) {
	return s.createFn(ctx, input, ownerID)
}

func (s *stubTaskService) Get(ctx context.Context, id, identityID string, role domain.Role) (*domain.Task, error) {
	return s.getFn(ctx, id, identityID, role)
}

func (s *stubTaskService) List(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
	return s.listFn(ctx, input)
}

func (s *stubTaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput, identityID string, role domain.Role) (*domain.Task, error) {
	return s.updateFn(ctx, id, input, identityID, role)
}

func (s *stubTaskService) Delete(ctx context.Context, id, identityID string, role domain.Role) error {
	return s.deleteFn(ctx, id, identityID, role)
}

func newAuthedContext(t *testing.T, method, path, body string, identityID string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	c.Set(middleware.CtxIdentityID, identityID)
	c.Set(middleware.CtxRole, role)
	return c, rec
}

func TestTaskHandler_Create(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput, ownerID string) (*domain.Task, error) {
			if ownerID != "user-1" {
				t.Fatalf("owner should be the caller, got %s", ownerID)
			}
			if input.Title != "buy milk" {
				t.Fatalf("unexpected title: %s", input.Title)
			}
			return &domain.Task{ID: "t1", Title: input.Title, Status: domain.TaskPending, OwnerID: ownerID}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/tasks", `{"title":"buy milk"}`, "user-1", domain.RoleUser)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "t1" || resp["status"] != "pending" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTaskHandler_Create_RequiresTitle(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput, ownerID string) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/v1/tasks", `{"description":"no title"}`, "user-1", domain.RoleUser)
	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTaskHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/tasks", `{"title":"x"}`)
	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestTaskHandler_Get_ForwardsOwnershipFailure(t *testing.T) {
	stub := &stubTaskService{
		getFn: func(ctx context.Context, id, identityID string, role domain.Role) (*domain.Task, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewTaskHandler(stub)

	c, _ := newAuthedContext(t, http.MethodGet, "/v1/tasks/t1", "", "user-2", domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := handler.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskHandler_List_ParsesFilters(t *testing.T) {
	var got ports.ListTasksInput
	stub := &stubTaskService{
		listFn: func(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
			got = input
			return []*domain.Task{}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet,
		"/v1/tasks?status=completed&due_from=2026-09-01T00:00:00Z&due_to=2026-09-30T00:00:00Z",
		"", "user-1", domain.RoleUser)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.IdentityID != "user-1" || got.Role != domain.RoleUser {
		t.Fatalf("caller identity not forwarded: %+v", got)
	}
	if got.Status != "completed" {
		t.Fatalf("status filter not parsed: %+v", got)
	}
	if got.DueFrom.IsZero() || got.DueTo.IsZero() {
		t.Fatalf("due range not parsed: %+v", got)
	}
	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Fatalf("expected a JSON array, got %s", rec.Body.String())
	}
}

func TestTaskHandler_List_RejectsBadFilters(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{
		listFn: func(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	for _, path := range []string{
		"/v1/tasks?status=done",
		"/v1/tasks?due_from=yesterday",
	} {
		c, _ := newAuthedContext(t, http.MethodGet, path, "", "user-1", domain.RoleUser)
		err := handler.List(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 HTTPError, got %v", path, err)
		}
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, id, identityID string, role domain.Role) error {
			if id != "t1" || identityID != "user-1" {
				t.Fatalf("unexpected args: %s %s", id, identityID)
			}
			return nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/v1/tasks/t1", "", "user-1", domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
