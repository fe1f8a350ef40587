package ports

import (
	"context"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// UpdateUserInput is the administrative partial update. Role and status are
// the only mutable fields; password changes are rejected by the service.
type UpdateUserInput struct {
	Role   *domain.Role
	Status *domain.Status
}

// UserService defines the user-management use cases: the self profile
// lookup plus the admin-only CRUD surface.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, username, password string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
