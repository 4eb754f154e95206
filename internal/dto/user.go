package dto

import (
	"time"

	"github.com/skazhukov/task-manager/internal/models"
)

// CreateUserRequest is the public signup payload.
type CreateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1"`
	LastName  string `json:"lastName" binding:"required,min=1"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=3"`
}

// UpdateUserRequest carries tri-state fields: each one is omitted, explicitly
// null, or valued, with distinct update semantics.
type UpdateUserRequest struct {
	FirstName Nullable[string] `json:"firstName"`
	LastName  Nullable[string] `json:"lastName"`
	Email     Nullable[string] `json:"email"`
	Password  Nullable[string] `json:"password"`
}

// UserDTO represents a user in API responses. The password hash is never
// serialized outward.
type UserDTO struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
