package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist under the given list.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines persistence for tasks scoped to their parent list.
//
// Tasks carry no owner column themselves. Callers must have already verified
// that the parent list belongs to the acting user, inside the same
// transaction, before touching tasks through this interface.
type TaskRepository interface {
	// Create persists a new task under task.ListID.
	Create(ctx context.Context, task *entity.Task) error

	// FindAllByList returns every task under listID, oldest first.
	FindAllByList(ctx context.Context, listID uuid.UUID) ([]*entity.Task, error)

	// FindByIDAndList returns the task only if it belongs to listID.
	FindByIDAndList(ctx context.Context, taskID, listID uuid.UUID) (*entity.Task, error)

	// Update persists the task's title and status.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task only if it belongs to listID.
	Delete(ctx context.Context, taskID, listID uuid.UUID) error
}
