package entity

import (
	"time"

	coreEntity "planit-api/core/entity"

	"github.com/google/uuid"
)

// Member roles.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// Team groups users who schedule meetings together. Working hours bound
// the candidate slots the scheduling engine generates for the team.
type Team struct {
	coreEntity.BaseEntity
	Name             string    `db:"name"`
	Slug             string    `db:"slug"`
	JoinCode         string    `db:"join_code"`
	OwnerID          uuid.UUID `db:"owner_id"`
	StartWorkingHour string    `db:"start_working_hour"` // HH:MM
	EndWorkingHour   string    `db:"end_working_hour"`   // HH:MM
}

type TeamMember struct {
	TeamID   uuid.UUID `db:"team_id"`
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}

type TeamInvitation struct {
	coreEntity.BaseEntity
	TeamID    uuid.UUID `db:"team_id"`
	InviterID uuid.UUID `db:"inviter_id"`
	InviteeID uuid.UUID `db:"invitee_id"`
	Status    string    `db:"status"`
}

// TeamMeeting is a scheduled meeting, usually persisted from a chosen
// engine suggestion.
type TeamMeeting struct {
	coreEntity.BaseEntity
	TeamID      uuid.UUID `db:"team_id"`
	CreatedBy   uuid.UUID `db:"created_by"`
	Title       string    `db:"title"`
	MeetingDate time.Time `db:"meeting_date"`
	StartTime   string    `db:"start_time"` // HH:MM
	EndTime     string    `db:"end_time"`   // HH:MM
}
