package controller

import (
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/team/dto"
	"planit-api/modules/team/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TeamController struct {
	controller.BaseController
	TeamService service.TeamServiceInterface
}

func NewTeamController(svc service.TeamServiceInterface) *TeamController {
	return &TeamController{
		BaseController: controller.NewBaseController(),
		TeamService:    svc,
	}
}

// Create handles POST /teams
// @Summary Create a team
// @Tags Teams
// @Security BearerAuth
// @Param request body dto.CreateTeamRequest true "Team data"
// @Success 200 {object} dto.TeamResponse
// @Router /private/teams [post]
func (c *TeamController) Create(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.CreateTeamRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.TeamService.Create(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Team created")
}

// List handles GET /teams
// @Summary List teams the current user belongs to
// @Tags Teams
// @Security BearerAuth
// @Success 200 {object} dto.TeamListResponse
// @Router /private/teams [get]
func (c *TeamController) List(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	resp, appErr := c.TeamService.List(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Teams fetched")
}

// Get handles GET /teams/:id
// @Summary Get one team
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.TeamResponse
// @Router /private/teams/{id} [get]
func (c *TeamController) Get(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	resp, appErr := c.TeamService.Get(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Team fetched")
}

// Update handles PUT /teams/:id
// @Summary Update a team
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body dto.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} dto.TeamResponse
// @Router /private/teams/{id} [put]
func (c *TeamController) Update(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	var req dto.UpdateTeamRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.TeamService.Update(ctx.Request().Context(), claims.UserID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Team updated")
}

// Delete handles DELETE /teams/:id
// @Summary Delete a team
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Router /private/teams/{id} [delete]
func (c *TeamController) Delete(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	if appErr := c.TeamService.Delete(ctx.Request().Context(), claims.UserID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Team deleted")
}

// Join handles POST /teams/join
// @Summary Join a team by join code
// @Tags Teams
// @Security BearerAuth
// @Param request body dto.JoinTeamRequest true "Join code"
// @Success 200 {object} dto.TeamResponse
// @Router /private/teams/join [post]
func (c *TeamController) Join(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.JoinTeamRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.TeamService.Join(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Team joined")
}

// ListMembers handles GET /teams/:id/members
// @Summary List team members
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.MemberListResponse
// @Router /private/teams/{id}/members [get]
func (c *TeamController) ListMembers(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	resp, appErr := c.TeamService.ListMembers(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Members fetched")
}

// InviteMember handles POST /teams/:id/invitations
// @Summary Invite a user to a team by email
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body dto.InviteMemberRequest true "Invitee email"
// @Success 200 {object} dto.InvitationResponse
// @Router /private/teams/{id}/invitations [post]
func (c *TeamController) InviteMember(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	var req dto.InviteMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.TeamService.InviteMember(ctx.Request().Context(), claims.UserID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Invitation sent")
}

// RespondInvitation handles PUT /teams/invitations/:invitationId
// @Summary Accept or decline a team invitation
// @Tags Teams
// @Security BearerAuth
// @Param invitationId path string true "Invitation ID"
// @Param request body dto.RespondInvitationRequest true "Response"
// @Router /private/teams/invitations/{invitationId} [put]
func (c *TeamController) RespondInvitation(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invitation id")
	}

	var req dto.RespondInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.TeamService.RespondInvitation(ctx.Request().Context(), claims.UserID, id, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Invitation answered")
}

// CreateMeeting handles POST /teams/:id/meetings
// @Summary Schedule a team meeting
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body dto.CreateMeetingRequest true "Meeting data"
// @Success 200 {object} dto.MeetingResponse
// @Router /private/teams/{id}/meetings [post]
func (c *TeamController) CreateMeeting(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	var req dto.CreateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.TeamService.CreateMeeting(ctx.Request().Context(), claims.UserID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Meeting created")
}

// ListMeetings handles GET /teams/:id/meetings
// @Summary List a team's meetings
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.MeetingListResponse
// @Router /private/teams/{id}/meetings [get]
func (c *TeamController) ListMeetings(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	resp, appErr := c.TeamService.ListMeetings(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Meetings fetched")
}

// DeleteMeeting handles DELETE /teams/:id/meetings/:meetingId
// @Summary Delete a team meeting
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param meetingId path string true "Meeting ID"
// @Router /private/teams/{id}/meetings/{meetingId} [delete]
func (c *TeamController) DeleteMeeting(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}
	meetingID, err := uuid.Parse(ctx.Param("meetingId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting id")
	}

	if appErr := c.TeamService.DeleteMeeting(ctx.Request().Context(), claims.UserID, teamID, meetingID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Meeting deleted")
}
