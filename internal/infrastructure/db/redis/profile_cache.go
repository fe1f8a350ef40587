package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

const profileTTL = 5 * time.Minute

// ProfileCache is a short-TTL read-through cache for user records, keyed by
// id. It only ever caches data the API is allowed to serve; the bcrypt hash
// is stored alongside the rest of the record but never crosses the transport
// boundary (the handlers sanitize). Key format: user:profile:<id>
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a miss.
func (p *ProfileCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := p.client.Get(ctx, p.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var u cachedUser
	if err := json.Unmarshal(raw, &u); err != nil {
		// Corrupt entry: treat as a miss rather than failing the request.
		return nil, nil
	}
	return u.toDomain(), nil
}

// Set stores the user for profileTTL.
func (p *ProfileCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(fromDomain(user))
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return p.client.Set(ctx, p.key(user.ID), raw, profileTTL).Err()
}

// Invalidate drops the cached entry after an update or delete.
func (p *ProfileCache) Invalidate(ctx context.Context, id string) error {
	return p.client.Del(ctx, p.key(id)).Err()
}

func (p *ProfileCache) key(id string) string {
	return "user:profile:" + id
}

// cachedUser is the cache-private encoding. The domain type hides the
// password hash from JSON, so a dedicated struct is needed to round-trip the
// full record.
type cachedUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func fromDomain(u *domain.User) cachedUser {
	return cachedUser{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (u cachedUser) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         domain.Role(u.Role),
		Status:       domain.Status(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
