package controller

import (
	"strings"

	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/auth/dto"
	"planit-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 200 {object} dto.AuthResponse
// @Router /public/auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.AuthService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "User registered")
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Login successful")
}

// Logout handles POST /auth/logout
// @Summary Revoke the current access token
// @Tags Auth
// @Security BearerAuth
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	token := bearerToken(ctx)
	if token == "" {
		return c.Unauthorized(errors.ErrMissingAuthorizationHeader, "Authorization header is required")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Logged out")
}

// Profile handles GET /auth/profile
// @Summary Get the current user's profile
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Router /private/auth/profile [get]
func (c *AuthController) Profile(ctx echo.Context) error {
	claims, ok := tokenClaims(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	resp, appErr := c.AuthService.Profile(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Profile fetched")
}

// UpdateProfile handles PUT /auth/profile
// @Summary Update the current user's profile
// @Tags Auth
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Router /private/auth/profile [put]
func (c *AuthController) UpdateProfile(ctx echo.Context) error {
	claims, ok := tokenClaims(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	resp, appErr := c.AuthService.UpdateProfile(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Profile updated")
}

// ChangePassword handles PUT /auth/password
// @Summary Change the current user's password
// @Tags Auth
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Password change data"
// @Router /private/auth/password [put]
func (c *AuthController) ChangePassword(ctx echo.Context) error {
	claims, ok := tokenClaims(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.ChangePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AuthService.ChangePassword(ctx.Request().Context(), claims.UserID, bearerToken(ctx), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Password changed")
}

// UploadAvatar handles POST /auth/avatar
// @Summary Upload a profile avatar
// @Tags Auth
// @Security BearerAuth
// @Accept multipart/form-data
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.AvatarResponse
// @Router /private/auth/avatar [post]
func (c *AuthController) UploadAvatar(ctx echo.Context) error {
	claims, ok := tokenClaims(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "avatar file is required")
	}
	src, err := file.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "failed to read avatar file")
	}
	defer src.Close()

	resp, appErr := c.AuthService.UploadAvatar(ctx.Request().Context(), claims.UserID,
		file.Filename, file.Header.Get("Content-Type"), src)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Avatar uploaded")
}

// ConnectGoogle handles POST /auth/google/connect
// @Summary Exchange a Google authorization code and store the tokens
// @Tags Auth
// @Security BearerAuth
// @Param request body dto.GoogleExchangeRequest true "Authorization code"
// @Router /private/auth/google/connect [post]
func (c *AuthController) ConnectGoogle(ctx echo.Context) error {
	claims, ok := tokenClaims(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid token data")
	}

	var req dto.GoogleExchangeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AuthService.ExchangeGoogleCode(ctx.Request().Context(), claims.UserID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Google account connected")
}

func tokenClaims(ctx echo.Context) (*utils.TokenClaims, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	return claims, ok
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
