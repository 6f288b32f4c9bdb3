package team

import (
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/team/controller"
	"planit-api/modules/team/repository"
	"planit-api/modules/team/router"
	"planit-api/modules/team/service"

	"github.com/labstack/echo/v4"
)

// Init wires the team module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewTeamRepository(db)
	svc := service.NewTeamService(repo)
	ctrl := controller.NewTeamController(svc)
	rtr := router.NewTeamRouter(ctrl)

	rtr.Setup(e, mw)
}
