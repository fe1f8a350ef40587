package ports

import (
	"context"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new active user with the "user" role. A taken
	// username yields domain.ErrUserExists.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token. Every credential failure
	// (unknown user, wrong password, non-active account) is reported as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
