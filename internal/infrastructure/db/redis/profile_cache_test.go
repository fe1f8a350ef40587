package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

func newTestCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewProfileCache(client), mr
}

func testUser() *domain.User {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           "user-1",
		Username:     "ana@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestProfileCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	want := testUser()

	if err := cache.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := cache.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a hit")
	}
	if *got != *want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestProfileCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}
}

func TestProfileCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	user := testUser()

	if err := cache.Set(ctx, user); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Invalidate(ctx, user.ID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	got, err := cache.Get(ctx, user.ID)
	if err != nil || got != nil {
		t.Fatalf("expected a miss after invalidation, got %+v err=%v", got, err)
	}
}

func TestProfileCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	user := testUser()

	if err := cache.Set(ctx, user); err != nil {
		t.Fatalf("set: %v", err)
	}

	mr.FastForward(profileTTL + time.Second)

	got, err := cache.Get(ctx, user.ID)
	if err != nil || got != nil {
		t.Fatalf("expected entry to expire, got %+v err=%v", got, err)
	}
}

func TestProfileCache_CorruptEntryIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)

	if err := mr.Set("user:profile:user-1", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := cache.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("corrupt entry should not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected a miss, got %+v", got)
	}
}
