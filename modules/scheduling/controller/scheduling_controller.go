package controller

import (
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// SchedulingController handles meeting-time suggestion requests.
type SchedulingController struct {
	controller.BaseController
	SchedulingService service.SchedulingServiceInterface
}

func NewSchedulingController(svc service.SchedulingServiceInterface) *SchedulingController {
	return &SchedulingController{
		BaseController:    controller.NewBaseController(),
		SchedulingService: svc,
	}
}

// SuggestMeetingTimes handles POST /scheduling/suggestions
// @Summary Suggest meeting times
// @Description Rank candidate meeting slots for a set of participants
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SuggestRequest true "Scheduling constraints"
// @Success 200 {object} dto.SuggestResponse
// @Failure 400 {object} errors.AppError
// @Router /private/scheduling/suggestions [post]
func (c *SchedulingController) SuggestMeetingTimes(ctx echo.Context) error {
	var req dto.SuggestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SchedulingService.SuggestMeetingTimes(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Suggestions generated")
}
