package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

// Task workflow states. The database mirrors these with a CHECK constraint.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known workflow states.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}

	return false
}

// Task is a single item inside a TodoList. Ownership is transitive: a task
// belongs to whoever owns its parent list. ListID is immutable after creation.
type Task struct {
	ID        uuid.UUID  // The unique identifier for this task.
	ListID    uuid.UUID  // The parent list. Immutable after creation.
	Title     string     // The display title of the task.
	Status    TaskStatus // Current workflow state. New tasks start as "todo".
	CreatedAt time.Time
	UpdatedAt time.Time
}
