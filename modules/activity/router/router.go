package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/activity/controller"

	"github.com/labstack/echo/v4"
)

type ActivityRouter struct {
	ActivityController *controller.ActivityController
}

func NewActivityRouter(c *controller.ActivityController) *ActivityRouter {
	return &ActivityRouter{ActivityController: c}
}

func (r *ActivityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	activityRoutes := privateRoutes.Group("/activities", mw.AuthMiddleware())
	activityRoutes.POST("", r.ActivityController.Create)
	activityRoutes.GET("", r.ActivityController.List)
	activityRoutes.GET("/:id", r.ActivityController.Get)
	activityRoutes.PUT("/:id", r.ActivityController.Update)
	activityRoutes.DELETE("/:id", r.ActivityController.Delete)
}
