package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListNotFound is returned when a list does not exist or does not belong
// to the given owner. The two cases are deliberately indistinguishable.
var ErrListNotFound = errors.New("todo list not found")

// ListRepository defines owner-scoped persistence for todo lists.
//
// Every read and mutation takes both the list ID and the owner's user ID and
// folds the ownership predicate into the query itself. There is no unscoped
// variant: a caller can never observe, update or delete another owner's list,
// and there is no check-then-act window between the ownership test and the
// operation.
type ListRepository interface {
	// Create persists a new list for list.UserID.
	Create(ctx context.Context, list *entity.TodoList) error

	// FindAllByUser returns every list owned by userID, newest first.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TodoList, error)

	// FindByIDAndUser returns the list only if it is owned by userID.
	FindByIDAndUser(ctx context.Context, listID, userID uuid.UUID) (*entity.TodoList, error)

	// UpdateTitle renames the list only if it is owned by userID and
	// returns the updated row.
	UpdateTitle(ctx context.Context, listID, userID uuid.UUID, title string) (*entity.TodoList, error)

	// Delete removes the list only if it is owned by userID.
	Delete(ctx context.Context, listID, userID uuid.UUID) error
}
