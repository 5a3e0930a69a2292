package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/utils"
	pkgutils "github.com/consenthub/consenthub-api/pkg/utils"
)

// Authenticate validates the bearer token and stores the caller's identity
// on the request context for downstream handlers.
func Authenticate(tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.SendUnauthorizedError(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.SendUnauthorizedError(c, "authorization header must be a bearer token")
			c.Abort()
			return
		}

		claims, err := pkgutils.ResolveToken(tokenSecret, parts[1])
		if err != nil {
			utils.SendUnauthorizedError(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
