package repository

import (
	"context"
	"database/sql"
	"errors"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/activity/entity"

	"github.com/google/uuid"
)

type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type ActivityRepository struct {
	DB database.IDatabase
}

func NewActivityRepository(db database.IDatabase) ActivityRepositoryInterface {
	return &ActivityRepository{DB: db}
}

const activityColumns = `
	id, user_id, title, description, urgency,
	activity_date,
	COALESCE(to_char(start_time, 'HH24:MI'), NULL) AS start_time,
	COALESCE(to_char(end_time, 'HH24:MI'), NULL) AS end_time,
	completed_at, created_at, updated_at
`

func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (user_id, title, description, urgency, activity_date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		activity.UserID, activity.Title, activity.Description, activity.Urgency,
		activity.ActivityDate, activity.StartTime, activity.EndTime,
	).Scan(&activity.ID)
	if err != nil {
		logger.Error("ActivityRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error) {
	var activity entity.Activity
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND user_id = $2`
	err := r.DB.GetContext(ctx, &activity, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("ActivityRepository:GetByID:Error:", err)
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Activity, error) {
	var activities []entity.Activity
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY activity_date, start_time NULLS FIRST`
	if err := r.DB.SelectContext(ctx, &activities, query, userID); err != nil {
		logger.Error("ActivityRepository:ListByUser:Error:", err)
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET title = $1, description = $2, urgency = $3, activity_date = $4,
		    start_time = $5::time, end_time = $6::time, completed_at = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`
	err := r.DB.ExecContext(ctx, query,
		activity.Title, activity.Description, activity.Urgency, activity.ActivityDate,
		activity.StartTime, activity.EndTime, activity.CompletedAt,
		activity.ID, activity.UserID,
	)
	if err != nil {
		logger.Error("ActivityRepository:Update:Error:", err)
	}
	return err
}

func (r *ActivityRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM activities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Error("ActivityRepository:Delete:Error:", err)
	}
	return err
}
