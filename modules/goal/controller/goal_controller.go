package controller

import (
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/goal/dto"
	"planit-api/modules/goal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GoalController struct {
	controller.BaseController
	GoalService service.GoalServiceInterface
}

func NewGoalController(svc service.GoalServiceInterface) *GoalController {
	return &GoalController{
		BaseController: controller.NewBaseController(),
		GoalService:    svc,
	}
}

// Create handles POST /goals
// @Summary Create a goal
// @Tags Goals
// @Security BearerAuth
// @Param request body dto.CreateGoalRequest true "Goal data"
// @Success 200 {object} dto.GoalResponse
// @Router /private/goals [post]
func (c *GoalController) Create(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.CreateGoalRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.GoalService.Create(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Goal created")
}

// List handles GET /goals
// @Summary List the current user's goals with timelines
// @Tags Goals
// @Security BearerAuth
// @Success 200 {object} dto.GoalListResponse
// @Router /private/goals [get]
func (c *GoalController) List(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	resp, appErr := c.GoalService.List(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Goals fetched")
}

// Get handles GET /goals/:id
// @Summary Get one goal with its timelines
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Router /private/goals/{id} [get]
func (c *GoalController) Get(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid goal id")
	}

	resp, appErr := c.GoalService.Get(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Goal fetched")
}

// Update handles PUT /goals/:id
// @Summary Update a goal
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Router /private/goals/{id} [put]
func (c *GoalController) Update(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid goal id")
	}

	var req dto.UpdateGoalRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.GoalService.Update(ctx.Request().Context(), claims.UserID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Goal updated")
}

// Delete handles DELETE /goals/:id
// @Summary Delete a goal and its timelines
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Router /private/goals/{id} [delete]
func (c *GoalController) Delete(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid goal id")
	}

	if appErr := c.GoalService.Delete(ctx.Request().Context(), claims.UserID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Goal deleted")
}

// AddTimeline handles POST /goals/:id/timelines
// @Summary Add a timeline to a goal
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body dto.CreateTimelineRequest true "Timeline data"
// @Success 200 {object} dto.TimelineResponse
// @Router /private/goals/{id}/timelines [post]
func (c *GoalController) AddTimeline(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid goal id")
	}

	var req dto.CreateTimelineRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.GoalService.AddTimeline(ctx.Request().Context(), claims.UserID, goalID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Timeline added")
}

// DeleteTimeline handles DELETE /goals/:id/timelines/:timelineId
// @Summary Remove a timeline from a goal
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param timelineId path string true "Timeline ID"
// @Router /private/goals/{id}/timelines/{timelineId} [delete]
func (c *GoalController) DeleteTimeline(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid goal id")
	}
	timelineID, err := uuid.Parse(ctx.Param("timelineId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid timeline id")
	}

	if appErr := c.GoalService.DeleteTimeline(ctx.Request().Context(), claims.UserID, goalID, timelineID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Timeline deleted")
}
