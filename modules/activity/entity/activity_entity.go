package entity

import (
	"time"

	coreEntity "planit-api/core/entity"

	"github.com/google/uuid"
)

// Urgency levels an activity may carry.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

// ValidUrgency reports whether the value is one of the accepted levels.
func ValidUrgency(urgency string) bool {
	switch urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Activity is a personal task on a single date. Start and end times are
// optional; an activity without them blocks the whole day for scheduling.
type Activity struct {
	coreEntity.BaseEntity
	UserID       uuid.UUID  `db:"user_id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	Urgency      string     `db:"urgency"`
	ActivityDate time.Time  `db:"activity_date"`
	StartTime    *string    `db:"start_time"`
	EndTime      *string    `db:"end_time"`
	CompletedAt  *time.Time `db:"completed_at"`
}
