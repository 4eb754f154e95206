package dto

import (
	"time"

	"github.com/skazhukov/task-manager/internal/models"
)

// LabelRequest is the payload for creating or renaming a label.
type LabelRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// LabelDTO represents a label in API responses.
type LabelDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToLabelDTO converts a Label model to LabelDTO
func ToLabelDTO(label models.Label) LabelDTO {
	return LabelDTO{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
	}
}
