package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// RequireRole rejects callers whose authenticated role does not match.
// Authenticate must run first.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetRoleFromContext(c) != string(role) {
			utils.SendForbiddenError(c, "insufficient role for this operation")
			c.Abort()
			return
		}
		c.Next()
	}
}
