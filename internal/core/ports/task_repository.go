package ports

import (
	"context"
	"time"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
// OwnerID is always set by the service layer for non-admin callers.
type ListTasksFilter struct {
	OwnerID string    // empty = no filter (admin); non-empty = scoped to owner
	Status  string    // optional: filter by task status
	DueFrom time.Time // optional: due_date >= DueFrom
	DueTo   time.Time // optional: due_date <= DueTo
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Save(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
}
