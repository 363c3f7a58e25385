package usecase

import (
	"context"
	"time"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListInput defines the data required to create a todo list.
type CreateListInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

// UpdateListInput defines the data required to rename a todo list.
type UpdateListInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

// ListOutput is the delivery representation of a todo list.
type ListOutput struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewListOutput maps a domain entity to its delivery representation.
// The owner ID is deliberately not exposed.
func NewListOutput(list *entity.TodoList) *ListOutput {
	return &ListOutput{
		ID:        list.ID,
		Title:     list.Title,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

// ListUsecase defines the interface for todo list operations. Every method
// takes the acting user's ID; operations on lists the user does not own
// report domainerrors.ErrListNotFound.
type ListUsecase interface {
	CreateList(ctx context.Context, userID uuid.UUID, input CreateListInput) (*ListOutput, error)
	GetLists(ctx context.Context, userID uuid.UUID) ([]*ListOutput, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*ListOutput, error)
	UpdateList(ctx context.Context, userID, listID uuid.UUID, input UpdateListInput) (*ListOutput, error)
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
}
