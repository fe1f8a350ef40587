package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/challenge/todo-list-api/internal/api/metrics"
	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

// PasswordHasher abstracts one-way salted password hashing.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// TokenIssuer mints signed bearer tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(identityID string, role domain.Role) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher PasswordHasher, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a new active user with the "user" role. The plaintext
// password exists only for the duration of this call and is never stored or
// logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup username: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and returns a signed bearer token carrying the
// user's id and role. Unknown username, wrong password, and non-active
// status all collapse to domain.ErrInvalidCredentials so a caller cannot
// probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: lookup username: %w", err)
	}

	if user.Status != domain.StatusActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return signed, nil
}
