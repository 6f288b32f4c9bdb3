package entity

import (
	coreEntity "planit-api/core/entity"

	"github.com/google/uuid"
)

// Notification types.
const (
	TypeMeetingScheduled = "meeting_scheduled"
	TypeTeamInvitation   = "team_invitation"
)

// Notification is one in-app inbox record for a user.
type Notification struct {
	coreEntity.BaseEntity
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Type    string    `db:"type" json:"type"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	IsRead  bool      `db:"is_read" json:"is_read"`
}
