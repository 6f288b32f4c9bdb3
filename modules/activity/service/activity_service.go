package service

import (
	"context"
	"time"

	"planit-api/core/errors"
	"planit-api/modules/activity/dto"
	"planit-api/modules/activity/entity"
	"planit-api/modules/activity/repository"
	schedentity "planit-api/modules/scheduling/entity"

	"github.com/google/uuid"
)

type ActivityServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateActivityRequest) (*dto.ActivityResponse, *errors.AppError)
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.ActivityResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) (*dto.ActivityListResponse, *errors.AppError)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, *errors.AppError)
	Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError
}

type ActivityService struct {
	repo repository.ActivityRepositoryInterface
}

func NewActivityService(repo repository.ActivityRepositoryInterface) ActivityServiceInterface {
	return &ActivityService{repo: repo}
}

func (service *ActivityService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateActivityRequest) (*dto.ActivityResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewValidationError("activitytitle", "title is required")
	}
	if !entity.ValidUrgency(req.Urgency) {
		return nil, errors.NewValidationError("activityurgency", "urgency must be one of low, medium, high, urgent")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewValidationError("activitydate", "must be a valid YYYY-MM-DD date")
	}
	if appErr := validateTimes(req.StartTime, req.EndTime); appErr != nil {
		return nil, appErr
	}

	activity := &entity.Activity{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Urgency:      req.Urgency,
		ActivityDate: date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	if err := service.repo.Create(ctx, activity); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create activity", err)
	}

	resp := dto.ToActivityResponse(activity)
	return &resp, nil
}

func (service *ActivityService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.ActivityResponse, *errors.AppError) {
	activity, err := service.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get activity", err)
	}
	if activity == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "activity not found", nil)
	}

	resp := dto.ToActivityResponse(activity)
	return &resp, nil
}

func (service *ActivityService) List(ctx context.Context, userID uuid.UUID) (*dto.ActivityListResponse, *errors.AppError) {
	activities, err := service.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list activities", err)
	}
	return dto.ToActivityListResponse(activities), nil
}

func (service *ActivityService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, *errors.AppError) {
	activity, err := service.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get activity", err)
	}
	if activity == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "activity not found", nil)
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = req.Description
	}
	if req.Urgency != nil {
		if !entity.ValidUrgency(*req.Urgency) {
			return nil, errors.NewValidationError("activityurgency", "urgency must be one of low, medium, high, urgent")
		}
		activity.Urgency = *req.Urgency
	}
	if req.Date != nil {
		date, parseErr := time.Parse("2006-01-02", *req.Date)
		if parseErr != nil {
			return nil, errors.NewValidationError("activitydate", "must be a valid YYYY-MM-DD date")
		}
		activity.ActivityDate = date
	}
	if req.StartTime != nil {
		activity.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = req.EndTime
	}
	if appErr := validateTimes(activity.StartTime, activity.EndTime); appErr != nil {
		return nil, appErr
	}
	if req.Completed != nil {
		if *req.Completed {
			now := time.Now()
			activity.CompletedAt = &now
		} else {
			activity.CompletedAt = nil
		}
	}

	if err := service.repo.Update(ctx, activity); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update activity", err)
	}

	resp := dto.ToActivityResponse(activity)
	return &resp, nil
}

func (service *ActivityService) Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError {
	activity, err := service.repo.GetByID(ctx, id, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to get activity", err)
	}
	if activity == nil {
		return errors.NewAppError(errors.ErrNotFound, "activity not found", nil)
	}

	if err := service.repo.Delete(ctx, id, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete activity", err)
	}
	return nil
}

// validateTimes requires either both times or neither, with start before end.
func validateTimes(start, end *string) *errors.AppError {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return errors.NewValidationError("activitystarttime", "start and end times must be provided together")
	}
	startMin, err := schedentity.ParseClock(*start)
	if err != nil {
		return errors.NewValidationError("activitystarttime", "must be a valid HH:MM time")
	}
	endMin, err := schedentity.ParseClock(*end)
	if err != nil {
		return errors.NewValidationError("activityendtime", "must be a valid HH:MM time")
	}
	if startMin >= endMin {
		return errors.NewValidationError("activityendtime", "end time must be after start time")
	}
	return nil
}
