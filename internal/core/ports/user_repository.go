package ports

import (
	"context"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username uniqueness is enforced by the store (unique index).
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
}
