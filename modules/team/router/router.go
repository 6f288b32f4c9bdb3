package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/team/controller"

	"github.com/labstack/echo/v4"
)

type TeamRouter struct {
	TeamController *controller.TeamController
}

func NewTeamRouter(c *controller.TeamController) *TeamRouter {
	return &TeamRouter{TeamController: c}
}

func (r *TeamRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	teamRoutes := privateRoutes.Group("/teams", mw.AuthMiddleware())
	teamRoutes.POST("", r.TeamController.Create)
	teamRoutes.GET("", r.TeamController.List)
	teamRoutes.POST("/join", r.TeamController.Join)
	teamRoutes.PUT("/invitations/:invitationId", r.TeamController.RespondInvitation)
	teamRoutes.GET("/:id", r.TeamController.Get)
	teamRoutes.PUT("/:id", r.TeamController.Update)
	teamRoutes.DELETE("/:id", r.TeamController.Delete)
	teamRoutes.GET("/:id/members", r.TeamController.ListMembers)
	teamRoutes.POST("/:id/invitations", r.TeamController.InviteMember)
	teamRoutes.POST("/:id/meetings", r.TeamController.CreateMeeting)
	teamRoutes.GET("/:id/meetings", r.TeamController.ListMeetings)
	teamRoutes.DELETE("/:id/meetings/:meetingId", r.TeamController.DeleteMeeting)
}
