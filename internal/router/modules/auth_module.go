package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/auth-profile-service/internal/interface/http"
	"github.com/oksasatya/auth-profile-service/internal/interface/middleware"
)

// AuthModule wires the public authentication routes.
// Register and login carry per-IP rate limits; the OAuth redirect and
// callback are driven by the provider and stay unthrottled.
type AuthModule struct {
	Handler *handlers.AuthHandler
	RDB     *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, RDB: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.GET("/auth/login/google", m.Handler.LoginWithGoogle)
	rg.GET("/auth/login/google/callback", m.Handler.GoogleCallback)
	rg.GET("/auth/logout", m.Handler.Logout)
}
