package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

// ProfileCache abstracts the short-TTL user profile cache (Redis). A cache
// miss is (nil, nil); failures are treated as misses by the service.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}

// UserService implements the profile lookup and the administrative user
// CRUD surface.
type UserService struct {
	repo  ports.UserRepository
	auth  ports.AuthService
	cache ProfileCache
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, auth ports.AuthService, cache ProfileCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, auth: auth, cache: cache, log: log}
}

// Get returns a user by id, read-through cached.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache write failed")
		}
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create registers a user on behalf of an administrator. It shares the
// registration path so credentials follow the exact same hashing rules.
func (s *UserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	return s.auth.Register(ctx, username, password)
}

// Update applies an administrative role/status change. Password material is
// immutable through this surface.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("update user: unknown role %q", *input.Role)
		}
		user.Role = *input.Role
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("update user: unknown status %q", *input.Status)
		}
		user.Status = *input.Status
	}

	updated, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
	}
}
