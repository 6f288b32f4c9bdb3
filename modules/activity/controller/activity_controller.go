package controller

import (
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/activity/dto"
	"planit-api/modules/activity/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ActivityController struct {
	controller.BaseController
	ActivityService service.ActivityServiceInterface
}

func NewActivityController(svc service.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		BaseController:  controller.NewBaseController(),
		ActivityService: svc,
	}
}

// Create handles POST /activities
// @Summary Create an activity
// @Tags Activities
// @Security BearerAuth
// @Param request body dto.CreateActivityRequest true "Activity data"
// @Success 200 {object} dto.ActivityResponse
// @Router /private/activities [post]
func (c *ActivityController) Create(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.CreateActivityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.ActivityService.Create(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Activity created")
}

// List handles GET /activities
// @Summary List the current user's activities
// @Tags Activities
// @Security BearerAuth
// @Success 200 {object} dto.ActivityListResponse
// @Router /private/activities [get]
func (c *ActivityController) List(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	resp, appErr := c.ActivityService.List(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Activities fetched")
}

// Get handles GET /activities/:id
// @Summary Get one activity
// @Tags Activities
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.ActivityResponse
// @Router /private/activities/{id} [get]
func (c *ActivityController) Get(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid activity id")
	}

	resp, appErr := c.ActivityService.Get(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Activity fetched")
}

// Update handles PUT /activities/:id
// @Summary Update an activity
// @Tags Activities
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} dto.ActivityResponse
// @Router /private/activities/{id} [put]
func (c *ActivityController) Update(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid activity id")
	}

	var req dto.UpdateActivityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.ActivityService.Update(ctx.Request().Context(), claims.UserID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Activity updated")
}

// Delete handles DELETE /activities/:id
// @Summary Delete an activity
// @Tags Activities
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Router /private/activities/{id} [delete]
func (c *ActivityController) Delete(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid activity id")
	}

	if appErr := c.ActivityService.Delete(ctx.Request().Context(), claims.UserID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Activity deleted")
}
