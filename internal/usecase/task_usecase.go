package usecase

import (
	"context"
	"time"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

// UpdateTaskInput defines the data required to update a task.
type UpdateTaskInput struct {
	Title  string `json:"title" validate:"required,max=255"`
	Status string `json:"status" validate:"required,oneof=todo in_progress done"`
}

// TaskOutput is the delivery representation of a task.
type TaskOutput struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"list_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTaskOutput maps a domain entity to its delivery representation.
func NewTaskOutput(task *entity.Task) *TaskOutput {
	return &TaskOutput{
		ID:        task.ID,
		ListID:    task.ListID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// TaskUsecase defines the interface for task operations. Tasks are always
// addressed through their parent list; when the list does not belong to the
// acting user the operation reports domainerrors.ErrListNotFound, never a
// permission error.
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID, listID uuid.UUID, input CreateTaskInput) (*TaskOutput, error)
	GetTasks(ctx context.Context, userID, listID uuid.UUID) ([]*TaskOutput, error)
	GetTask(ctx context.Context, userID, listID, taskID uuid.UUID) (*TaskOutput, error)
	UpdateTask(ctx context.Context, userID, listID, taskID uuid.UUID, input UpdateTaskInput) (*TaskOutput, error)
	DeleteTask(ctx context.Context, userID, listID, taskID uuid.UUID) error
}
