package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"planit-api/core/config"
	"planit-api/core/constants"
	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/core/utils"
	"planit-api/modules/auth/dto"
	"planit-api/modules/auth/entity"
	"planit-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Profile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, *errors.AppError)
	ChangePassword(ctx context.Context, userID uuid.UUID, token string, req *dto.ChangePasswordRequest) *errors.AppError
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError)
	ExchangeGoogleCode(ctx context.Context, userID uuid.UUID, req *dto.GoogleExchangeRequest) *errors.AppError
	GoogleTokenSource(ctx context.Context, userID uuid.UUID) (oauth2.TokenSource, *errors.AppError)
}

type tokenBlacklist interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IncrementLoginAttempt(ctx context.Context, email string) (int64, error)
	IsLoginBlocked(ctx context.Context, email string) bool
	ResetLoginAttempts(ctx context.Context, email string)
}

type AuthService struct {
	repo      repository.UserRepositoryInterface
	cache     tokenBlacklist
	store     AvatarStore
	jwtSecret string
}

func NewAuthService(repo repository.UserRepositoryInterface, cache tokenBlacklist, store AvatarStore, jwtSecret string) AuthServiceInterface {
	return &AuthService{repo: repo, cache: cache, store: store, jwtSecret: jwtSecret}
}

func (service *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "username, email and a password of at least 8 characters are required", nil)
	}

	existing, err := service.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user with email already exists", nil)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
	}
	if err := service.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	accessToken, err := utils.GenerateAccessToken(service.jwtSecret, user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:Register:GenerateAccessToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	return &dto.AuthResponse{AccessToken: accessToken, User: dto.ToUserResponse(user)}, nil
}

// Login authenticates by email and password, throttling repeated failures
// per email in Redis.
func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(req.Email)

	if service.cache.IsLoginBlocked(ctx, email) {
		return nil, errors.NewAppError(errors.ErrTooManyRequests, "too many failed login attempts, try again later", nil)
	}

	user, err := service.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		if _, errIncr := service.cache.IncrementLoginAttempt(ctx, email); errIncr != nil {
			logger.Error("AuthService:Login:IncrementLoginAttempt:Error:", errIncr)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	accessToken, err := utils.GenerateAccessToken(service.jwtSecret, user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:Login:GenerateAccessToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	service.cache.ResetLoginAttempts(ctx, email)

	return &dto.AuthResponse{AccessToken: accessToken, User: dto.ToUserResponse(user)}, nil
}

func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	if err := service.cache.AddToTokenBlacklist(ctx, token, constants.AccessTokenTTL); err != nil {
		logger.Error("AuthService:Logout:AddToBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

func (service *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	user, err := service.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (service *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, *errors.AppError) {
	if req.Username == "" {
		return nil, errors.NewValidationError("username", "username is required")
	}

	if err := service.repo.UpdateProfile(ctx, userID, req.Username); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update profile", err)
	}
	return service.Profile(ctx, userID)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes the presented token so stale sessions cannot continue.
func (service *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, token string, req *dto.ChangePasswordRequest) *errors.AppError {
	if len(req.NewPassword) < 8 {
		return errors.NewValidationError("new_password", "password must be at least 8 characters")
	}

	user, err := service.repo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		return errors.NewAppError(errors.ErrUnauthorized, "current password is incorrect", nil)
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("AuthService:ChangePassword:HashPassword:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	if err := service.repo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to change password", err)
	}

	if err := service.cache.AddToTokenBlacklist(ctx, token, constants.AccessTokenTTL); err != nil {
		logger.Error("AuthService:ChangePassword:AddToBlacklist:Error:", err)
	}
	return nil
}

func (service *AuthService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError) {
	if service.store == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "avatar storage not configured", nil)
	}

	key := fmt.Sprintf("avatars/%s%s", userID, path.Ext(filename))
	url, err := service.store.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to upload avatar", err)
	}

	if err := service.repo.UpdateAvatar(ctx, userID, url); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save avatar", err)
	}
	return &dto.AvatarResponse{AvatarURL: url}, nil
}

// ExchangeGoogleCode trades an authorization code for Google tokens and
// stores them for the inbox module.
func (service *AuthService) ExchangeGoogleCode(ctx context.Context, userID uuid.UUID, req *dto.GoogleExchangeRequest) *errors.AppError {
	if req.Code == "" {
		return errors.NewValidationError("code", "authorization code is required")
	}

	oauthConfig, appErr := googleOAuthConfig()
	if appErr != nil {
		return appErr
	}

	token, err := oauthConfig.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("AuthService:ExchangeGoogleCode:Exchange:Error:", err)
		return errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	expiry := token.Expiry
	record := &entity.GoogleToken{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    &expiry,
	}
	if err := service.repo.SaveGoogleToken(ctx, record); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to save Google tokens", err)
	}

	logger.Info("AuthService:ExchangeGoogleCode:TokensSaved",
		"user_id", userID,
		"has_refresh_token", token.RefreshToken != "",
	)
	return nil
}

// GoogleTokenSource builds a self-refreshing token source from the user's
// stored Google tokens.
func (service *AuthService) GoogleTokenSource(ctx context.Context, userID uuid.UUID) (oauth2.TokenSource, *errors.AppError) {
	stored, err := service.repo.GetGoogleToken(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load Google tokens", err)
	}
	if stored == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Google account not connected", nil)
	}

	oauthConfig, appErr := googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
	}
	if stored.ExpiresAt != nil {
		token.Expiry = *stored.ExpiresAt
	}
	return oauthConfig.TokenSource(ctx, token), nil
}

func googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/gmail.readonly",
		},
		Endpoint: google.Endpoint,
	}, nil
}
