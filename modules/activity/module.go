package activity

import (
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/activity/controller"
	"planit-api/modules/activity/repository"
	"planit-api/modules/activity/router"
	"planit-api/modules/activity/service"

	"github.com/labstack/echo/v4"
)

// Init wires the activity module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewActivityRepository(db)
	svc := service.NewActivityService(repo)
	ctrl := controller.NewActivityController(svc)
	rtr := router.NewActivityRouter(ctrl)

	rtr.Setup(e, mw)
}
