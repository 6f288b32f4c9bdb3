package service

import (
	"context"
	"encoding/json"
	"fmt"

	coreEntity "planit-api/core/entity"
	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/core/params"
	"planit-api/core/tasks"
	"planit-api/modules/notification/entity"
	"planit-api/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*coreEntity.Paginated[entity.Notification], *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError)
	HandleMeetingNotify(ctx context.Context, task *asynq.Task) error
}

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo}
}

func (service *NotificationService) List(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*coreEntity.Paginated[entity.Notification], *errors.AppError) {
	page, err := service.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list notifications", err)
	}
	return page, nil
}

func (service *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return errors.NewValidationError("ids", "each id must be a valid UUID")
		}
	}

	if err := service.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications as read", err)
	}
	return nil
}

func (service *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := service.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications as read", err)
	}
	return nil
}

func (service *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError {
	if err := service.repo.Delete(ctx, userID, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete notification", err)
	}
	return nil
}

func (service *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := service.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to count unread notifications", err)
	}
	return count, nil
}

// HandleMeetingNotify consumes a meeting fan-out task and writes one
// notification per participant. A failing insert fails the task so asynq
// retries it.
func (service *NotificationService) HandleMeetingNotify(ctx context.Context, task *asynq.Task) error {
	var payload tasks.MeetingNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("NotificationService:HandleMeetingNotify:Unmarshal:Error:", err)
		return fmt.Errorf("invalid payload: %w", err)
	}

	message := fmt.Sprintf("%s on %s from %s to %s",
		payload.Title, payload.Date, payload.StartTime, payload.EndTime)

	for _, userID := range payload.ParticipantIDs {
		notification := &entity.Notification{
			UserID:  userID,
			Type:    entity.TypeMeetingScheduled,
			Title:   "New team meeting",
			Message: message,
		}
		if err := service.repo.Create(ctx, notification); err != nil {
			return fmt.Errorf("notify user %s: %w", userID, err)
		}
	}

	logger.Info("NotificationService:HandleMeetingNotify:Done",
		"meeting_id", payload.MeetingID,
		"notified", len(payload.ParticipantIDs),
	)
	return nil
}
