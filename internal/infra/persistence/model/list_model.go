package model

import (
	"time"

	"github.com/google/uuid"
)

// TodoListModel is the GORM-specific struct for the 'todo_lists' table.
// UserID carries the ownership relation; the column is never updated after insert.
type TodoListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoListModel) TableName() string {
	return "todo_lists"
}
