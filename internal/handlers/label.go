package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/services"
)

// LabelHandler coordinates label HTTP handlers.
type LabelHandler struct {
	labelService *services.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelService *services.LabelService) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
	}
}

// CreateLabel creates a new label
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	label, err := h.labelService.Create(req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLabelDTO(*label))
}

// ListLabels returns all labels
func (h *LabelHandler) ListLabels(c *gin.Context) {
	labels, err := h.labelService.FindAll()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	out := make([]dto.LabelDTO, 0, len(labels))
	for _, label := range labels {
		out = append(out, dto.ToLabelDTO(label))
	}

	c.JSON(http.StatusOK, out)
}

// GetLabel returns a label by ID
func (h *LabelHandler) GetLabel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	label, err := h.labelService.FindByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTO(*label))
}

// UpdateLabel renames a label
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	label, err := h.labelService.Update(id, req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTO(*label))
}

// DeleteLabel removes a label unless tasks reference it
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.labelService.Delete(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
