package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
	repo "github.com/oksasatya/auth-profile-service/internal/domain/repository"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
	"github.com/oksasatya/auth-profile-service/pkg/response"
)

const (
	CtxUserKey   = "authUser"
	CtxUserIDKey = "userID"
)

// Authenticate extracts the bearer token from the Authorization header,
// verifies it, and loads the acting user into the Gin context. Missing
// header, malformed/expired/badly-signed token, and unknown user all
// collapse to the same generic 401 so nothing about the failure leaks.
//
// The token travels in the Authorization header here while login sets it as
// a cookie for the browser; the two channels are intentionally separate.
func Authenticate(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			unauthorized(c)
			return
		}
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || u == nil {
			unauthorized(c)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// UserFromCtx returns the user attached by Authenticate, or nil.
func UserFromCtx(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return ""
	}
	// Accept both a bare token and the conventional Bearer prefix.
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}

func unauthorized(c *gin.Context) {
	response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
	c.Abort()
}
