package entity

import (
	"time"

	coreEntity "planit-api/core/entity"

	"github.com/google/uuid"
)

// Goal is a personal objective owning zero or more timelines.
type Goal struct {
	coreEntity.BaseEntity
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
}

// GoalTimeline is a dated work period toward a goal. Times are optional;
// a timed timeline blocks its clock range on every covered date, an
// untimed one is a soft all-day commitment.
type GoalTimeline struct {
	coreEntity.BaseEntity
	GoalID    uuid.UUID `db:"goal_id"`
	Title     string    `db:"title"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	StartTime *string   `db:"start_time"`
	EndTime   *string   `db:"end_time"`
}
