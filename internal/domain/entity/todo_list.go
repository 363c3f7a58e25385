package entity

import (
	"time"

	"github.com/google/uuid"
)

// TodoList is a named collection of tasks owned by exactly one user.
// UserID is the ownership reference; it is set at creation and never changes.
type TodoList struct {
	ID        uuid.UUID // The unique identifier for this list.
	UserID    uuid.UUID // The owning account. Immutable after creation.
	Title     string    // The display title of the list.
	CreatedAt time.Time
	UpdatedAt time.Time
}
