package handler

import (
	"time"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,password"`
}

// updateUserRequest covers the administratively mutable fields. A password
// field is bound on purpose so its presence can be rejected explicitly
// rather than silently dropped.
type updateUserRequest struct {
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
	Status   *string `json:"status"   validate:"omitempty,oneof=active inactive suspended"`
	Password *string `json:"password"`
}

// userResponse is the sanitized profile view: no password material.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toUserList(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
