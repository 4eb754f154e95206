package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/services"
	"github.com/skazhukov/task-manager/internal/token"
)

const contextKeyUserID = "user_id"

// RequireAuth verifies the bearer token from the Authorization header and
// resolves its subject to a stored user. The principal id is stored in the
// request context for handlers.
func RequireAuth(tokens *token.Manager, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			apperrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			apperrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := authService.ResolvePrincipal(email)
		if err != nil {
			apperrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the current principal's user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(contextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
