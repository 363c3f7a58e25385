package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel is the GORM-specific struct for the 'tasks' table.
// Tasks have no owner column; ownership flows through the parent list.
type TaskModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'todo'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
