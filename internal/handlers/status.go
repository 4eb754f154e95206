package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/services"
)

// StatusHandler coordinates task status HTTP handlers.
type StatusHandler struct {
	statusService *services.StatusService
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// CreateStatus creates a new status
func (h *StatusHandler) CreateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	status, err := h.statusService.Create(req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStatusDTO(*status))
}

// ListStatuses returns all statuses
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statusService.FindAll()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	out := make([]dto.StatusDTO, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, dto.ToStatusDTO(status))
	}

	c.JSON(http.StatusOK, out)
}

// GetStatus returns a status by ID
func (h *StatusHandler) GetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	status, err := h.statusService.FindByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusDTO(*status))
}

// UpdateStatus renames a status
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	status, err := h.statusService.Update(id, req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusDTO(*status))
}

// DeleteStatus removes a status unless tasks reference it
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.statusService.Delete(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
