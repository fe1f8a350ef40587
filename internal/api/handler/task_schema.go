package handler

import (
	"time"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// --- Request / Response types ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending 'in progress' completed"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending 'in progress' completed"`
	DueDate     *time.Time `json:"due_date"`
}

// taskResponse is the transport view of a task, deliberately separate from
// the domain type so the JSON contract is not coupled to internal changes.
type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toTaskList(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
