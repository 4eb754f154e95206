package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/middleware"
	"github.com/skazhukov/task-manager/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks matching the optional filter criteria from the
// query string (status, executorId, labelsId, authorId).
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.TaskFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.UnprocessableEntity(c, "filter parameters have to be positive numbers")
		return
	}

	tasks, err := h.taskService.FindAll(query)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	out := make([]dto.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, dto.ToTaskDTO(task))
	}

	c.JSON(http.StatusOK, out)
}

// GetTask returns a task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.FindByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a task authored by the current principal
func (h *TaskHandler) CreateTask(c *gin.Context) {
	authorID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	task, err := h.taskService.Create(req, authorID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a sparse update to a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	task, err := h.taskService.Update(id, req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task; only its author may do so
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := h.taskService.Delete(id, actorID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
