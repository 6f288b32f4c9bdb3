package repository

import (
	"context"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/entity"

	"github.com/google/uuid"
)

// ScheduleRepository reads participants' commitments for the scheduling
// engine. Dates and times are selected pre-formatted so rows match the
// wire shapes the collector consumes.
type ScheduleRepository struct {
	DB database.IDatabase
}

func NewScheduleRepository(db database.IDatabase) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

type activityRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Urgency   string `db:"urgency"`
	Date      string `db:"activity_date"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

type timelineRow struct {
	ID        string `db:"id"`
	GoalID    string `db:"goal_id"`
	GoalTitle string `db:"goal_title"`
	Title     string `db:"title"`
	StartDate string `db:"start_date"`
	EndDate   string `db:"end_date"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

type meetingRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Date      string `db:"meeting_date"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

// MemberSchedule fetches one participant's activities, goal timelines and
// team meetings restricted to the inclusive date range.
func (r *ScheduleRepository) MemberSchedule(ctx context.Context, userID uuid.UUID, from, to entity.Date) (dto.MemberSchedule, error) {
	var schedule dto.MemberSchedule

	activitiesQuery := `
		SELECT a.id::text AS id, a.title, a.urgency,
		       to_char(a.activity_date, 'YYYY-MM-DD') AS activity_date,
		       COALESCE(to_char(a.start_time, 'HH24:MI'), '') AS start_time,
		       COALESCE(to_char(a.end_time, 'HH24:MI'), '') AS end_time
		FROM activities a
		WHERE a.user_id = $1 AND a.activity_date BETWEEN $2 AND $3
		ORDER BY a.activity_date, a.start_time
	`
	var activities []activityRow
	if err := r.DB.SelectContext(ctx, &activities, activitiesQuery, userID, from.String(), to.String()); err != nil {
		logger.Error("ScheduleRepository:MemberSchedule:Activities", err)
		return schedule, err
	}
	for _, row := range activities {
		schedule.Activities = append(schedule.Activities, dto.ActivityRecord{
			ActivityID:        row.ID,
			ActivityTitle:     row.Title,
			ActivityUrgency:   row.Urgency,
			ActivityDate:      row.Date,
			ActivityStartTime: row.StartTime,
			ActivityEndTime:   row.EndTime,
		})
	}

	timelinesQuery := `
		SELECT t.id::text AS id, t.goal_id::text AS goal_id, g.title AS goal_title, t.title,
		       to_char(t.start_date, 'YYYY-MM-DD') AS start_date,
		       to_char(t.end_date, 'YYYY-MM-DD') AS end_date,
		       COALESCE(to_char(t.start_time, 'HH24:MI'), '') AS start_time,
		       COALESCE(to_char(t.end_time, 'HH24:MI'), '') AS end_time
		FROM goal_timelines t
		JOIN goals g ON g.id = t.goal_id
		WHERE g.user_id = $1 AND t.start_date <= $3 AND t.end_date >= $2
		ORDER BY t.start_date
	`
	var timelines []timelineRow
	if err := r.DB.SelectContext(ctx, &timelines, timelinesQuery, userID, from.String(), to.String()); err != nil {
		logger.Error("ScheduleRepository:MemberSchedule:Timelines", err)
		return schedule, err
	}
	goalIndex := map[string]int{}
	for _, row := range timelines {
		idx, ok := goalIndex[row.GoalID]
		if !ok {
			schedule.Goals = append(schedule.Goals, dto.GoalRecord{GoalID: row.GoalID, GoalTitle: row.GoalTitle})
			idx = len(schedule.Goals) - 1
			goalIndex[row.GoalID] = idx
		}
		schedule.Goals[idx].Timelines = append(schedule.Goals[idx].Timelines, dto.TimelineRecord{
			TimelineID:        row.ID,
			TimelineTitle:     row.Title,
			TimelineStartDate: row.StartDate,
			TimelineEndDate:   row.EndDate,
			TimelineStartTime: row.StartTime,
			TimelineEndTime:   row.EndTime,
		})
	}

	meetingsQuery := `
		SELECT m.id::text AS id, m.title,
		       to_char(m.meeting_date, 'YYYY-MM-DD') AS meeting_date,
		       COALESCE(to_char(m.start_time, 'HH24:MI'), '') AS start_time,
		       COALESCE(to_char(m.end_time, 'HH24:MI'), '') AS end_time
		FROM team_meetings m
		JOIN team_members tm ON tm.team_id = m.team_id
		WHERE tm.user_id = $1 AND m.meeting_date BETWEEN $2 AND $3
		ORDER BY m.meeting_date, m.start_time
	`
	var meetings []meetingRow
	if err := r.DB.SelectContext(ctx, &meetings, meetingsQuery, userID, from.String(), to.String()); err != nil {
		logger.Error("ScheduleRepository:MemberSchedule:Meetings", err)
		return schedule, err
	}
	for _, row := range meetings {
		schedule.Meetings = append(schedule.Meetings, dto.MeetingRecord{
			MeetingID:        row.ID,
			MeetingTitle:     row.Title,
			MeetingDate:      row.Date,
			MeetingStartTime: row.StartTime,
			MeetingEndTime:   row.EndTime,
		})
	}

	return schedule, nil
}

// DisplayName resolves a participant's username.
func (r *ScheduleRepository) DisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	var name string
	err := r.DB.GetContext(ctx, &name, `SELECT username FROM users WHERE id = $1`, userID)
	if err != nil {
		return "", err
	}
	return name, nil
}
