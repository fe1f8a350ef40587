package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in progress"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	return s == TaskPending || s == TaskInProgress || s == TaskCompleted
}

var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// ErrInvalidTaskStatus marks a status outside the closed TaskStatus set. It
// is a validation failure, not an internal one.
var ErrInvalidTaskStatus = errors.New("invalid task status")

// Task is a to-do item. OwnerID is set at creation and never changes; there
// is no transfer-of-ownership operation.
type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus `json:"status" bson:"status"`
	DueDate     *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	OwnerID     string     `json:"owner_id" bson:"owner_id"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}

// AccessibleBy is the ownership predicate: only the owner or an admin may
// read, update, or delete a task. It deliberately has no storage dependency
// so the rule is testable on its own.
func (t *Task) AccessibleBy(identityID string, role Role) bool {
	if role == RoleAdmin {
		return true
	}
	return t.OwnerID == identityID
}
