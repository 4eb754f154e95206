package apperrors

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// RespondWithError sends an error response with the given status code.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Respond maps a service error to its HTTP status and writes the response.
func Respond(c *gin.Context, err error) {
	var (
		authErr       *AuthenticationError
		permErr       *PermissionDeniedError
		notFound      *NotFoundError
		exists        *AlreadyExistsError
		deleteErr     *DeleteConflictError
		validationErr *ValidationError
	)

	switch {
	case errors.As(err, &authErr):
		RespondWithError(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &permErr):
		RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.As(err, &notFound):
		RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &exists), errors.As(err, &deleteErr):
		RespondWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &validationErr):
		RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// UnprocessableEntity sends a 422 response
func UnprocessableEntity(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request data"
	}
	RespondWithError(c, http.StatusUnprocessableEntity, message)
}
