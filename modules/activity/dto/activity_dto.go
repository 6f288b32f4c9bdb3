package dto

import (
	"planit-api/modules/activity/entity"
)

// Field names mirror the original PlanIt client payloads.

type CreateActivityRequest struct {
	Title       string  `json:"activitytitle" validate:"required"`
	Description *string `json:"activitydescription"`
	Urgency     string  `json:"activityurgency" validate:"required"`
	Date        string  `json:"activitydate" validate:"required"` // YYYY-MM-DD
	StartTime   *string `json:"activitystarttime"`                // HH:MM, optional
	EndTime     *string `json:"activityendtime"`
}

type UpdateActivityRequest struct {
	Title       *string `json:"activitytitle"`
	Description *string `json:"activitydescription"`
	Urgency     *string `json:"activityurgency"`
	Date        *string `json:"activitydate"`
	StartTime   *string `json:"activitystarttime"`
	EndTime     *string `json:"activityendtime"`
	Completed   *bool   `json:"activitycompleted"`
}

type ActivityResponse struct {
	ID          string  `json:"activityid"`
	Title       string  `json:"activitytitle"`
	Description *string `json:"activitydescription,omitempty"`
	Urgency     string  `json:"activityurgency"`
	Date        string  `json:"activitydate"`
	StartTime   string  `json:"activitystarttime,omitempty"`
	EndTime     string  `json:"activityendtime,omitempty"`
	Completed   bool    `json:"activitycompleted"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

func ToActivityResponse(a *entity.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Urgency:     a.Urgency,
		Date:        a.ActivityDate.Format("2006-01-02"),
		Completed:   a.CompletedAt != nil,
	}
	if a.StartTime != nil {
		resp.StartTime = *a.StartTime
	}
	if a.EndTime != nil {
		resp.EndTime = *a.EndTime
	}
	return resp
}

func ToActivityListResponse(activities []entity.Activity) *ActivityListResponse {
	resp := &ActivityListResponse{Activities: make([]ActivityResponse, 0, len(activities))}
	for i := range activities {
		resp.Activities = append(resp.Activities, ToActivityResponse(&activities[i]))
	}
	return resp
}
