package goal

import (
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/goal/controller"
	"planit-api/modules/goal/repository"
	"planit-api/modules/goal/router"
	"planit-api/modules/goal/service"

	"github.com/labstack/echo/v4"
)

// Init wires the goal module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewGoalRepository(db)
	svc := service.NewGoalService(repo)
	ctrl := controller.NewGoalController(svc)
	rtr := router.NewGoalRouter(ctrl)

	rtr.Setup(e, mw)
}
