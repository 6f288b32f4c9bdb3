package dto

import "planit-api/modules/scheduling/entity"

// ===================== Raw schedule records =====================
//
// These mirror the backend list-endpoint payloads ({activities: [...]},
// {goals: [{..., timelines: [...]}]}, {teams: [{..., meetings: [...]}]}),
// so the collector can consume them unchanged. Dates are YYYY-MM-DD and
// times HH:MM 24-hour; empty strings mean the field is absent.

type ActivityRecord struct {
	ActivityID        string `json:"activityid"`
	ActivityTitle     string `json:"activitytitle"`
	ActivityUrgency   string `json:"activityurgency"`
	ActivityDate      string `json:"activitydate"`
	ActivityStartTime string `json:"activitystarttime"`
	ActivityEndTime   string `json:"activityendtime"`
}

type TimelineRecord struct {
	TimelineID        string `json:"timelineid"`
	TimelineTitle     string `json:"timelinetitle"`
	TimelineStartDate string `json:"timelinestartdate"`
	TimelineEndDate   string `json:"timelineenddate"`
	TimelineStartTime string `json:"timelinestarttime"`
	TimelineEndTime   string `json:"timelineendtime"`
}

type GoalRecord struct {
	GoalID    string           `json:"goalid"`
	GoalTitle string           `json:"goaltitle"`
	Timelines []TimelineRecord `json:"timelines"`
}

type MeetingRecord struct {
	MeetingID        string `json:"teammeetingid"`
	MeetingTitle     string `json:"meetingtitle"`
	MeetingDate      string `json:"meetingdate"`
	MeetingStartTime string `json:"meetingstarttime"`
	MeetingEndTime   string `json:"meetingendtime"`
}

// MemberSchedule bundles everything fetched for one participant.
type MemberSchedule struct {
	Activities []ActivityRecord `json:"activities"`
	Goals      []GoalRecord     `json:"goals"`
	Meetings   []MeetingRecord  `json:"meetings"`
}

// ===================== Request DTOs =====================

type SuggestRequest struct {
	ParticipantIDs    []string `json:"participant_ids" validate:"required"`
	DateRangeStart    string   `json:"date_range_start"`    // YYYY-MM-DD
	DateRangeEnd      string   `json:"date_range_end"`      // YYYY-MM-DD
	DurationMinutes   int      `json:"duration_minutes"`
	WorkingHoursStart string   `json:"working_hours_start"` // HH:MM
	WorkingHoursEnd   string   `json:"working_hours_end"`   // HH:MM
	Preference        string   `json:"preference"`
	BestEffort        bool     `json:"best_effort"`
}

// ===================== Response DTOs =====================

type ConflictDTO struct {
	Participant string `json:"participant"`
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	TimeRange   string `json:"time_range"`
}

type SuggestionDTO struct {
	Date               string            `json:"date"`       // YYYY-MM-DD
	StartTime          string            `json:"start_time"` // HH:MM
	EndTime            string            `json:"end_time"`   // HH:MM
	Score              int               `json:"score"`
	Conflicts          []ConflictDTO     `json:"conflicts"`
	Advantages         []string          `json:"advantages"`
	MemberAvailability map[string]string `json:"member_availability"`
}

type SuggestResponse struct {
	Suggestions    []SuggestionDTO `json:"suggestions"`
	SkippedRecords int             `json:"skipped_records"`
	Reason         string          `json:"reason,omitempty"`
}

// ===================== Mapper Functions =====================

func ToSuggestionDTO(s *entity.Suggestion) SuggestionDTO {
	out := SuggestionDTO{
		Date:               s.Date.String(),
		StartTime:          entity.FormatClock(s.Start),
		EndTime:            entity.FormatClock(s.End),
		Score:              s.Score,
		Conflicts:          make([]ConflictDTO, 0, len(s.Conflicts)),
		Advantages:         s.Advantages,
		MemberAvailability: make(map[string]string, len(s.Availability)),
	}
	if out.Advantages == nil {
		out.Advantages = []string{}
	}
	for _, c := range s.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictDTO{
			Participant: c.Participant,
			Title:       c.Title,
			Kind:        string(c.Kind),
			TimeRange:   c.TimeRange,
		})
	}
	for name, a := range s.Availability {
		out.MemberAvailability[name] = string(a)
	}
	return out
}

func ToSuggestResponse(result *entity.Result) *SuggestResponse {
	resp := &SuggestResponse{
		Suggestions:    make([]SuggestionDTO, 0, len(result.Suggestions)),
		SkippedRecords: result.SkippedRecords,
		Reason:         result.Reason,
	}
	for i := range result.Suggestions {
		resp.Suggestions = append(resp.Suggestions, ToSuggestionDTO(&result.Suggestions[i]))
	}
	return resp
}
