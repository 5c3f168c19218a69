package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-profile-service/config"
	"github.com/oksasatya/auth-profile-service/internal/application"
	pginfra "github.com/oksasatya/auth-profile-service/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/auth-profile-service/internal/interface/http"
	"github.com/oksasatya/auth-profile-service/internal/router/modules"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
)

// Deps carries the constructed infrastructure into module wiring. Everything
// is passed explicitly; no package-level singletons.
type Deps struct {
	Cfg      *config.Config
	Logger   *logrus.Logger
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	JWT      *helpers.JWTManager
	Provider application.IdentityProvider
}

// InitModules builds the repositories, services and handlers and registers
// all feature modules with the router registry.
func InitModules(r *Registry, d Deps) {
	userRepo := pginfra.NewUserRepository(d.Pool)
	svc := application.NewService(userRepo, d.JWT, d.Logger)
	cookies := helpers.NewCookie(d.Cfg.CookieDomain, d.Cfg.CookieSecure)

	authHandler := handlers.NewAuthHandler(svc, d.Provider, d.Logger, cookies)
	profileHandler := handlers.NewProfileHandler(svc, d.Logger)

	r.Add(modules.NewAuthModule(authHandler, d.Redis))
	r.Add(modules.NewProfileModule(profileHandler, userRepo, d.JWT))
}
