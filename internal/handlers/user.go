package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/middleware"
	"github.com/skazhukov/task-manager/internal/services"
)

// UserHandler coordinates user HTTP handlers. Signup and reads are public;
// update and delete require the principal to be the user themselves.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new user (public signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	user, err := h.userService.Create(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// ListUsers returns all users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.FindAll()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, dto.ToUserDTO(user))
	}

	c.JSON(http.StatusOK, out)
}

// GetUser returns a user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.FindByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser applies a sparse update to the principal's own user record
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.UnprocessableEntity(c, bindingErrorMessage(err))
		return
	}

	user, err := h.userService.Update(id, actorID, req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes the principal's own user record
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := h.userService.Delete(id, actorID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
