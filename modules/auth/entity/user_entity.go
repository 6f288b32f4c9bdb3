package entity

import (
	"time"

	coreEntity "planit-api/core/entity"

	"github.com/google/uuid"
)

// User is an account holder. Email is the login identifier.
type User struct {
	coreEntity.BaseEntity
	Username  string  `db:"username" json:"username"`
	Email     string  `db:"email" json:"email"`
	Password  string  `db:"password" json:"-"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
}

// GoogleToken stores a user's Google OAuth tokens for API access
// (Gmail listing in the inbox module).
type GoogleToken struct {
	UserID       uuid.UUID  `db:"user_id"`
	AccessToken  string     `db:"access_token"`
	RefreshToken string     `db:"refresh_token"`
	ExpiresAt    *time.Time `db:"expires_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
