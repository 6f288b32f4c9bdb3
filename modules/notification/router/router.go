package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(c *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{NotificationController: c}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	notificationRoutes := privateRoutes.Group("/notifications", mw.AuthMiddleware())
	notificationRoutes.GET("", r.NotificationController.List)
	notificationRoutes.GET("/unread-count", r.NotificationController.UnreadCount)
	notificationRoutes.PUT("/read", r.NotificationController.MarkAsRead)
	notificationRoutes.PUT("/read-all", r.NotificationController.MarkAllAsRead)
	notificationRoutes.DELETE("/:id", r.NotificationController.Delete)
}
