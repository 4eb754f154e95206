package dto

import (
	"time"

	"github.com/skazhukov/task-manager/internal/models"
)

// StatusRequest is the payload for creating or renaming a status.
type StatusRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// StatusDTO represents a status in API responses.
type StatusDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToStatusDTO converts a Status model to StatusDTO
func ToStatusDTO(status models.Status) StatusDTO {
	return StatusDTO{
		ID:        status.ID,
		Name:      status.Name,
		CreatedAt: status.CreatedAt,
	}
}
