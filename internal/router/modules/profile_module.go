package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/oksasatya/auth-profile-service/internal/domain/repository"
	handlers "github.com/oksasatya/auth-profile-service/internal/interface/http"
	"github.com/oksasatya/auth-profile-service/internal/interface/middleware"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
)

// ProfileModule wires the role-gated profile routes. Every route composes
// Authenticate; user-admin additionally composes RequireAdmin.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, users repo.UserRepository, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, Users: users, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	profile.Use(middleware.Authenticate(m.Users, m.JWT))
	{
		profile.GET("/user-self", m.Handler.GetSelf)
		profile.GET("/user-admin", middleware.RequireAdmin(), m.Handler.GetSelfAdmin)
		profile.PUT("/user-self-update", m.Handler.UpdateSelf)
		profile.GET("/users", m.Handler.List)
	}
}
