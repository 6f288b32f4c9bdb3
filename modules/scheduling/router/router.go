package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

// SchedulingRouter registers scheduling routes.
type SchedulingRouter struct {
	SchedulingController *controller.SchedulingController
}

func NewSchedulingRouter(c *controller.SchedulingController) *SchedulingRouter {
	return &SchedulingRouter{SchedulingController: c}
}

func (r *SchedulingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	schedulingRoutes := privateRoutes.Group("/scheduling", mw.AuthMiddleware())
	schedulingRoutes.POST("/suggestions", r.SchedulingController.SuggestMeetingTimes)
}
