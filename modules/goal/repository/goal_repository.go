package repository

import (
	"context"
	"database/sql"
	"errors"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/goal/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	CreateTimeline(ctx context.Context, timeline *entity.GoalTimeline) error
	ListTimelines(ctx context.Context, goalIDs []uuid.UUID) ([]entity.GoalTimeline, error)
	DeleteTimeline(ctx context.Context, timelineID, goalID uuid.UUID) error
}

type GoalRepository struct {
	DB database.IDatabase
}

func NewGoalRepository(db database.IDatabase) GoalRepositoryInterface {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	query := `
		INSERT INTO goals (user_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, goal.UserID, goal.Title, goal.Description).Scan(&goal.ID)
	if err != nil {
		logger.Error("GoalRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	var goal entity.Goal
	err := r.DB.GetContext(ctx, &goal, `SELECT * FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("GoalRepository:GetByID:Error:", err)
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Goal, error) {
	var goals []entity.Goal
	err := r.DB.SelectContext(ctx, &goals,
		`SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		logger.Error("GoalRepository:ListByUser:Error:", err)
		return nil, err
	}
	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE goals SET title = $1, description = $2, updated_at = NOW() WHERE id = $3 AND user_id = $4`,
		goal.Title, goal.Description, goal.ID, goal.UserID)
	if err != nil {
		logger.Error("GoalRepository:Update:Error:", err)
	}
	return err
}

// Delete removes a goal and its timelines rely on ON DELETE CASCADE.
func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Error("GoalRepository:Delete:Error:", err)
	}
	return err
}

const timelineColumns = `
	id, goal_id, title, start_date, end_date,
	COALESCE(to_char(start_time, 'HH24:MI'), NULL) AS start_time,
	COALESCE(to_char(end_time, 'HH24:MI'), NULL) AS end_time,
	created_at, updated_at
`

func (r *GoalRepository) CreateTimeline(ctx context.Context, timeline *entity.GoalTimeline) error {
	query := `
		INSERT INTO goal_timelines (goal_id, title, start_date, end_date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		timeline.GoalID, timeline.Title, timeline.StartDate, timeline.EndDate,
		timeline.StartTime, timeline.EndTime,
	).Scan(&timeline.ID)
	if err != nil {
		logger.Error("GoalRepository:CreateTimeline:Error:", err)
		return err
	}
	return nil
}

func (r *GoalRepository) ListTimelines(ctx context.Context, goalIDs []uuid.UUID) ([]entity.GoalTimeline, error) {
	if len(goalIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + timelineColumns + ` FROM goal_timelines WHERE goal_id = ANY($1) ORDER BY start_date`
	var timelines []entity.GoalTimeline
	ids := make([]string, 0, len(goalIDs))
	for _, id := range goalIDs {
		ids = append(ids, id.String())
	}
	if err := r.DB.SelectContext(ctx, &timelines, query, pq.Array(ids)); err != nil {
		logger.Error("GoalRepository:ListTimelines:Error:", err)
		return nil, err
	}
	return timelines, nil
}

func (r *GoalRepository) DeleteTimeline(ctx context.Context, timelineID, goalID uuid.UUID) error {
	err := r.DB.ExecContext(ctx,
		`DELETE FROM goal_timelines WHERE id = $1 AND goal_id = $2`, timelineID, goalID)
	if err != nil {
		logger.Error("GoalRepository:DeleteTimeline:Error:", err)
	}
	return err
}
