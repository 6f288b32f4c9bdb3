package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/inbox/controller"

	"github.com/labstack/echo/v4"
)

type InboxRouter struct {
	InboxController *controller.InboxController
}

func NewInboxRouter(c *controller.InboxController) *InboxRouter {
	return &InboxRouter{InboxController: c}
}

func (r *InboxRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	inboxRoutes := privateRoutes.Group("/inbox", mw.AuthMiddleware())
	inboxRoutes.GET("/messages", r.InboxController.ListMessages)
	inboxRoutes.GET("/messages/:id", r.InboxController.GetMessage)
	inboxRoutes.PUT("/messages/:id/read", r.InboxController.MarkAsRead)
	inboxRoutes.POST("/messages/:id/extract", r.InboxController.ExtractEvents)
}
