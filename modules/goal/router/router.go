package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/goal/controller"

	"github.com/labstack/echo/v4"
)

type GoalRouter struct {
	GoalController *controller.GoalController
}

func NewGoalRouter(c *controller.GoalController) *GoalRouter {
	return &GoalRouter{GoalController: c}
}

func (r *GoalRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	goalRoutes := privateRoutes.Group("/goals", mw.AuthMiddleware())
	goalRoutes.POST("", r.GoalController.Create)
	goalRoutes.GET("", r.GoalController.List)
	goalRoutes.GET("/:id", r.GoalController.Get)
	goalRoutes.PUT("/:id", r.GoalController.Update)
	goalRoutes.DELETE("/:id", r.GoalController.Delete)
	goalRoutes.POST("/:id/timelines", r.GoalController.AddTimeline)
	goalRoutes.DELETE("/:id/timelines/:timelineId", r.GoalController.DeleteTimeline)
}
