package notification

import (
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/notification/controller"
	"planit-api/modules/notification/repository"
	"planit-api/modules/notification/router"
	"planit-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and registers its routes. It returns
// the service so the worker can register the fan-out task handler.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
