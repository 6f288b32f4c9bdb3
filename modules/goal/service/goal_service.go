package service

import (
	"context"
	"time"

	"planit-api/core/errors"
	"planit-api/modules/goal/dto"
	"planit-api/modules/goal/entity"
	"planit-api/modules/goal/repository"
	schedentity "planit-api/modules/scheduling/entity"

	"github.com/google/uuid"
)

type GoalServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, *errors.AppError)
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.GoalResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) (*dto.GoalListResponse, *errors.AppError)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, *errors.AppError)
	Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError
	AddTimeline(ctx context.Context, userID, goalID uuid.UUID, req *dto.CreateTimelineRequest) (*dto.TimelineResponse, *errors.AppError)
	DeleteTimeline(ctx context.Context, userID, goalID, timelineID uuid.UUID) *errors.AppError
}

type GoalService struct {
	repo repository.GoalRepositoryInterface
}

func NewGoalService(repo repository.GoalRepositoryInterface) GoalServiceInterface {
	return &GoalService{repo: repo}
}

func (service *GoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewValidationError("goaltitle", "title is required")
	}

	goal := &entity.Goal{UserID: userID, Title: req.Title, Description: req.Description}
	if err := service.repo.Create(ctx, goal); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create goal", err)
	}

	resp := dto.ToGoalResponse(goal, nil)
	return &resp, nil
}

func (service *GoalService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.GoalResponse, *errors.AppError) {
	goal, err := service.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get goal", err)
	}
	if goal == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "goal not found", nil)
	}

	timelines, err := service.repo.ListTimelines(ctx, []uuid.UUID{goal.ID})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list timelines", err)
	}

	resp := dto.ToGoalResponse(goal, timelines)
	return &resp, nil
}

func (service *GoalService) List(ctx context.Context, userID uuid.UUID) (*dto.GoalListResponse, *errors.AppError) {
	goals, err := service.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list goals", err)
	}

	goalIDs := make([]uuid.UUID, 0, len(goals))
	for i := range goals {
		goalIDs = append(goalIDs, goals[i].ID)
	}
	timelines, err := service.repo.ListTimelines(ctx, goalIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list timelines", err)
	}

	byGoal := make(map[uuid.UUID][]entity.GoalTimeline, len(goals))
	for _, t := range timelines {
		byGoal[t.GoalID] = append(byGoal[t.GoalID], t)
	}

	resp := &dto.GoalListResponse{Goals: make([]dto.GoalResponse, 0, len(goals))}
	for i := range goals {
		resp.Goals = append(resp.Goals, dto.ToGoalResponse(&goals[i], byGoal[goals[i].ID]))
	}
	return resp, nil
}

func (service *GoalService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, *errors.AppError) {
	goal, err := service.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get goal", err)
	}
	if goal == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "goal not found", nil)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.NewValidationError("goaltitle", "title must not be empty")
		}
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = req.Description
	}

	if err := service.repo.Update(ctx, goal); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update goal", err)
	}
	return service.Get(ctx, userID, id)
}

func (service *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError {
	goal, err := service.repo.GetByID(ctx, id, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to get goal", err)
	}
	if goal == nil {
		return errors.NewAppError(errors.ErrNotFound, "goal not found", nil)
	}

	if err := service.repo.Delete(ctx, id, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete goal", err)
	}
	return nil
}

func (service *GoalService) AddTimeline(ctx context.Context, userID, goalID uuid.UUID, req *dto.CreateTimelineRequest) (*dto.TimelineResponse, *errors.AppError) {
	goal, err := service.repo.GetByID(ctx, goalID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get goal", err)
	}
	if goal == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "goal not found", nil)
	}

	if req.Title == "" {
		return nil, errors.NewValidationError("timelinetitle", "title is required")
	}
	startDate, parseErr := time.Parse("2006-01-02", req.StartDate)
	if parseErr != nil {
		return nil, errors.NewValidationError("timelinestartdate", "must be a valid YYYY-MM-DD date")
	}
	endDate, parseErr := time.Parse("2006-01-02", req.EndDate)
	if parseErr != nil {
		return nil, errors.NewValidationError("timelineenddate", "must be a valid YYYY-MM-DD date")
	}
	if startDate.After(endDate) {
		return nil, errors.NewValidationError("timelineenddate", "end date must not be before start date")
	}
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, errors.NewValidationError("timelinestarttime", "start and end times must be provided together")
	}
	if req.StartTime != nil {
		startMin, errClock := schedentity.ParseClock(*req.StartTime)
		if errClock != nil {
			return nil, errors.NewValidationError("timelinestarttime", "must be a valid HH:MM time")
		}
		endMin, errClock := schedentity.ParseClock(*req.EndTime)
		if errClock != nil {
			return nil, errors.NewValidationError("timelineendtime", "must be a valid HH:MM time")
		}
		if startMin >= endMin {
			return nil, errors.NewValidationError("timelineendtime", "end time must be after start time")
		}
	}

	timeline := &entity.GoalTimeline{
		GoalID:    goalID,
		Title:     req.Title,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := service.repo.CreateTimeline(ctx, timeline); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create timeline", err)
	}

	resp := dto.ToTimelineResponse(timeline)
	return &resp, nil
}

func (service *GoalService) DeleteTimeline(ctx context.Context, userID, goalID, timelineID uuid.UUID) *errors.AppError {
	goal, err := service.repo.GetByID(ctx, goalID, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to get goal", err)
	}
	if goal == nil {
		return errors.NewAppError(errors.ErrNotFound, "goal not found", nil)
	}

	if err := service.repo.DeleteTimeline(ctx, timelineID, goalID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete timeline", err)
	}
	return nil
}
