package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/auth-profile-service/pkg/response"
)

// RequireAdmin runs after Authenticate and rejects non-admin roles.
// Authenticated-but-wrong-role is the only case that returns 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFromCtx(c)
		if u == nil {
			unauthorized(c)
			return
		}
		if !u.Role.IsAdmin() {
			response.Error[any](c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
