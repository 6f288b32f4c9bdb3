package auth

import (
	"planit-api/core/cache"
	"planit-api/core/config"
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/auth/controller"
	"planit-api/modules/auth/repository"
	"planit-api/modules/auth/router"
	"planit-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and registers its routes. It returns the
// service so the inbox module can reuse the Google token source.
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, mw *middleware.Middleware) service.AuthServiceInterface {
	cfg := config.Get()

	var store service.AvatarStore
	if cfg.AWS.Bucket != "" {
		store = service.NewS3AvatarStore(cfg.AWS)
	}

	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, c, store, cfg.JWT.Secret)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
