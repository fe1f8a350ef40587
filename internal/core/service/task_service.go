package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/challenge/todo-list-api/internal/api/metrics"
	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

// TaskService implements the task use cases with ownership enforcement.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// Create stores a new task owned by ownerID. An empty status defaults to
// pending.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput, ownerID string) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTaskStatus, status)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Status)).Inc()
	s.log.Info().Str("task_id", task.ID).Str("owner_id", ownerID).Msg("task created")
	return task, nil
}

// Get returns the task when the caller is its owner or an admin. A missing
// task yields domain.ErrTaskNotFound; a foreign task yields
// domain.ErrForbidden, distinct failures so the transport layer can decide
// how much to reveal.
func (s *TaskService) Get(ctx context.Context, id, identityID string, role domain.Role) (*domain.Task, error) {
	return s.findAuthorized(ctx, id, identityID, role)
}

// List returns tasks matching the filters. Non-admin callers are implicitly
// restricted to their own tasks; admins see everything.
func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
	filter := ports.ListTasksFilter{
		Status:  input.Status,
		DueFrom: input.DueFrom,
		DueTo:   input.DueTo,
	}
	if input.Role != domain.RoleAdmin {
		filter.OwnerID = input.IdentityID
	}

	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update after the ownership check. Ownership
// itself is immutable.
func (s *TaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput, identityID string, role domain.Role) (*domain.Task, error) {
	task, err := s.findAuthorized(ctx, id, identityID, role)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTaskStatus, *input.Status)
		}
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the task after the ownership check.
func (s *TaskService) Delete(ctx context.Context, id, identityID string, role domain.Role) error {
	if _, err := s.findAuthorized(ctx, id, identityID, role); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}

	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func (s *TaskService) findAuthorized(ctx context.Context, id, identityID string, role domain.Role) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !task.AccessibleBy(identityID, role) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}
