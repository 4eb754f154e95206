package models

import (
	"time"
)

type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	AuthorID    uint64    `gorm:"not null" json:"author_id"`
	ExecutorID  *uint64   `json:"executor_id"`
	StatusID    uint64    `gorm:"not null" json:"status_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Author   User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Executor *User   `gorm:"foreignKey:ExecutorID" json:"executor,omitempty"`
	Status   Status  `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Labels   []Label `gorm:"many2many:task_labels" json:"labels,omitempty"`
}
