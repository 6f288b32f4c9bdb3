package repository

import (
	"context"
	"database/sql"
	"errors"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
	SaveGoogleToken(ctx context.Context, token *entity.GoogleToken) error
	GetGoogleToken(ctx context.Context, userID uuid.UUID) (*entity.GoogleToken, error)
}

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) UserRepositoryInterface {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, user.Username, user.Email, user.Password).Scan(&user.ID)
	if err != nil {
		logger.Error("UserRepository:Create:Error:", err)
		return err
	}
	return nil
}

// GetByEmail returns nil, nil when no user exists with the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.DB.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetByEmail:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.DB.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetByID:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username string) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE users SET username = $1, updated_at = NOW() WHERE id = $2`, username, id)
	if err != nil {
		logger.Error("UserRepository:UpdateProfile:Error:", err)
	}
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, id)
	if err != nil {
		logger.Error("UserRepository:UpdatePassword:Error:", err)
	}
	return err
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2`, avatarURL, id)
	if err != nil {
		logger.Error("UserRepository:UpdateAvatar:Error:", err)
	}
	return err
}

func (r *UserRepository) SaveGoogleToken(ctx context.Context, token *entity.GoogleToken) error {
	query := `
		INSERT INTO google_tokens (user_id, access_token, refresh_token, expires_at, updated_at)
		VALUES (:user_id, :access_token, :refresh_token, :expires_at, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = CASE WHEN EXCLUDED.refresh_token <> '' THEN EXCLUDED.refresh_token ELSE google_tokens.refresh_token END,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
	`
	if _, err := r.DB.NamedExecContext(ctx, query, token); err != nil {
		logger.Error("UserRepository:SaveGoogleToken:Error:", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetGoogleToken(ctx context.Context, userID uuid.UUID) (*entity.GoogleToken, error) {
	var token entity.GoogleToken
	err := r.DB.GetContext(ctx, &token, `SELECT * FROM google_tokens WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetGoogleToken:Error:", err)
		return nil, err
	}
	return &token, nil
}
