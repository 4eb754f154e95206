package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/skazhukov/task-manager/internal/apperrors"
)

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.UnprocessableEntity(c, "id - has to be a positive number")
		return 0, false
	}
	return id, true
}

// bindingErrorMessage turns a gin binding failure into the aggregated
// "field - message" form used for all validation errors.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Invalid request body"
	}

	parts := make([]string, len(validationErrs))
	for i, fieldErr := range validationErrs {
		parts[i] = lowerFirst(fieldErr.Field()) + " - " + violationMessage(fieldErr)
	}
	return strings.Join(parts, "; ")
}

func violationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "cannot be empty"
	case "email":
		return "has to be a valid email address"
	case "min":
		return fmt.Sprintf("has to contain at least %s symbols", fieldErr.Param())
	default:
		return "is not valid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
