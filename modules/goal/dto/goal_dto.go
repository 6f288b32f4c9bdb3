package dto

import "planit-api/modules/goal/entity"

// Field names mirror the original PlanIt client payloads.

type CreateGoalRequest struct {
	Title       string  `json:"goaltitle" validate:"required"`
	Description *string `json:"goaldescription"`
}

type UpdateGoalRequest struct {
	Title       *string `json:"goaltitle"`
	Description *string `json:"goaldescription"`
}

type CreateTimelineRequest struct {
	Title     string  `json:"timelinetitle" validate:"required"`
	StartDate string  `json:"timelinestartdate" validate:"required"` // YYYY-MM-DD
	EndDate   string  `json:"timelineenddate" validate:"required"`   // YYYY-MM-DD
	StartTime *string `json:"timelinestarttime"`                     // HH:MM, optional
	EndTime   *string `json:"timelineendtime"`
}

type TimelineResponse struct {
	ID        string `json:"timelineid"`
	Title     string `json:"timelinetitle"`
	StartDate string `json:"timelinestartdate"`
	EndDate   string `json:"timelineenddate"`
	StartTime string `json:"timelinestarttime,omitempty"`
	EndTime   string `json:"timelineendtime,omitempty"`
}

type GoalResponse struct {
	ID          string             `json:"goalid"`
	Title       string             `json:"goaltitle"`
	Description *string            `json:"goaldescription,omitempty"`
	Timelines   []TimelineResponse `json:"timelines"`
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

func ToTimelineResponse(t *entity.GoalTimeline) TimelineResponse {
	resp := TimelineResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		StartDate: t.StartDate.Format("2006-01-02"),
		EndDate:   t.EndDate.Format("2006-01-02"),
	}
	if t.StartTime != nil {
		resp.StartTime = *t.StartTime
	}
	if t.EndTime != nil {
		resp.EndTime = *t.EndTime
	}
	return resp
}

func ToGoalResponse(g *entity.Goal, timelines []entity.GoalTimeline) GoalResponse {
	resp := GoalResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Timelines:   make([]TimelineResponse, 0, len(timelines)),
	}
	for i := range timelines {
		resp.Timelines = append(resp.Timelines, ToTimelineResponse(&timelines[i]))
	}
	return resp
}
