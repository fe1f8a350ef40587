package ports

import (
	"context"
	"time"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus // defaults to pending when empty
	DueDate     *time.Time
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	DueDate     *time.Time
}

// ListTasksInput carries the caller identity plus the optional filters.
// Role and IdentityID drive the implicit ownership filter: a non-admin
// caller only ever sees its own tasks.
type ListTasksInput struct {
	IdentityID string
	Role       domain.Role
	Status     string
	DueFrom    time.Time
	DueTo      time.Time
}

// TaskService defines use-case operations for tasks. Every resource-scoped
// operation enforces the ownership rule: owner or admin, else
// domain.ErrForbidden.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput, ownerID string) (*domain.Task, error)
	Get(ctx context.Context, id, identityID string, role domain.Role) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput, identityID string, role domain.Role) (*domain.Task, error)
	Delete(ctx context.Context, id, identityID string, role domain.Role) error
}
