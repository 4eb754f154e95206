package dto

import (
	"time"

	"github.com/skazhukov/task-manager/internal/models"
)

// CreateTaskRequest is the task creation payload. The author is never
// client-supplied; it is always the current principal.
type CreateTaskRequest struct {
	Name         string   `json:"name" binding:"required,min=1"`
	Description  string   `json:"description"`
	ExecutorID   *uint64  `json:"executorId"`
	TaskStatusID *uint64  `json:"taskStatusId" binding:"required"`
	LabelIDs     []uint64 `json:"labelIds"`
}

// UpdateTaskRequest carries tri-state fields. An explicit null clears
// executor or labels; it is rejected for the required name and status fields.
type UpdateTaskRequest struct {
	Name         Nullable[string]   `json:"name"`
	Description  Nullable[string]   `json:"description"`
	ExecutorID   Nullable[uint64]   `json:"executorId"`
	TaskStatusID Nullable[uint64]   `json:"taskStatusId"`
	LabelIDs     Nullable[[]uint64] `json:"labelIds"`
}

// TaskDTO represents a task in API responses with resolved references.
type TaskDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Author      UserDTO    `json:"author"`
	Executor    *UserDTO   `json:"executor"`
	TaskStatus  StatusDTO  `json:"taskStatus"`
	Labels      []LabelDTO `json:"labels"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskFilterQuery holds the optional task list filter criteria as bound from
// query parameters.
type TaskFilterQuery struct {
	StatusID   *uint64 `form:"statusId"`
	ExecutorID *uint64 `form:"executorId"`
	LabelID    *uint64 `form:"labelsId"`
	AuthorID   *uint64 `form:"authorId"`
}

// ToTaskDTO converts a Task model with preloaded relations to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	out := TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Author:      ToUserDTO(task.Author),
		TaskStatus:  ToStatusDTO(task.Status),
		Labels:      make([]LabelDTO, 0, len(task.Labels)),
		CreatedAt:   task.CreatedAt,
	}

	if task.Executor != nil {
		executor := ToUserDTO(*task.Executor)
		out.Executor = &executor
	}

	for _, label := range task.Labels {
		out.Labels = append(out.Labels, ToLabelDTO(label))
	}

	return out
}
