package controller

import (
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/inbox/dto"
	"planit-api/modules/inbox/service"

	"github.com/labstack/echo/v4"
)

type InboxController struct {
	controller.BaseController
	InboxService service.InboxServiceInterface
}

func NewInboxController(svc service.InboxServiceInterface) *InboxController {
	return &InboxController{
		BaseController: controller.NewBaseController(),
		InboxService:   svc,
	}
}

// ListMessages handles GET /inbox/messages
// @Summary List Gmail messages for the connected account
// @Tags Inbox
// @Security BearerAuth
// @Param maxResults query int false "Page size (max 50)"
// @Param q query string false "Gmail search query"
// @Param pageToken query string false "Continuation token"
// @Success 200 {object} dto.MessageListResponse
// @Router /private/inbox/messages [get]
func (c *InboxController) ListMessages(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var query dto.ListMessagesQuery
	if err := ctx.Bind(&query); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid query parameters")
	}

	resp, appErr := c.InboxService.ListMessages(ctx.Request().Context(), claims.UserID, &query)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Messages fetched")
}

// GetMessage handles GET /inbox/messages/:id
// @Summary Get one Gmail message with its body
// @Tags Inbox
// @Security BearerAuth
// @Param id path string true "Gmail message ID"
// @Success 200 {object} dto.MessageResponse
// @Router /private/inbox/messages/{id} [get]
func (c *InboxController) GetMessage(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid message id")
	}

	resp, appErr := c.InboxService.GetMessage(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Message fetched")
}

// MarkAsRead handles PUT /inbox/messages/:id/read
// @Summary Mark a Gmail message as read
// @Tags Inbox
// @Security BearerAuth
// @Param id path string true "Gmail message ID"
// @Router /private/inbox/messages/{id}/read [put]
func (c *InboxController) MarkAsRead(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid message id")
	}

	if appErr := c.InboxService.MarkAsRead(ctx.Request().Context(), claims.UserID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Message marked as read")
}

// ExtractEvents handles POST /inbox/messages/:id/extract
// @Summary Extract event candidates from a Gmail message
// @Tags Inbox
// @Security BearerAuth
// @Param id path string true "Gmail message ID"
// @Success 200 {object} dto.ExtractionResult
// @Router /private/inbox/messages/{id}/extract [post]
func (c *InboxController) ExtractEvents(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid message id")
	}

	resp, appErr := c.InboxService.ExtractEvents(ctx.Request().Context(), claims.UserID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Events extracted")
}
