package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborwatch-be/session"
)

// RequireRole guards a route group behind a role. Runs after
// AuthMiddleware, so a missing session means an unauthenticated request.
func RequireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)
		current := sess.CurrentRole()

		if current == session.RoleNone {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		if current != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
