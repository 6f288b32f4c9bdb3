package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(c *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: c}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/auth")
	publicRoutes.POST("/register", r.AuthController.Register)
	publicRoutes.POST("/login", r.AuthController.Login)

	privateRoutes := v1.Group("/private/auth", mw.AuthMiddleware())
	privateRoutes.POST("/logout", r.AuthController.Logout)
	privateRoutes.GET("/profile", r.AuthController.Profile)
	privateRoutes.PUT("/profile", r.AuthController.UpdateProfile)
	privateRoutes.PUT("/password", r.AuthController.ChangePassword)
	privateRoutes.POST("/avatar", r.AuthController.UploadAvatar)
	privateRoutes.POST("/google/connect", r.AuthController.ConnectGoogle)
}
