package service

import (
	"context"

	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/entity"
	"planit-api/pkg/metrics"

	"github.com/google/uuid"
)

// SchedulingService exposes the meeting-time optimization engine.
type SchedulingService struct {
	fetcher *Fetcher
	ranker  *Ranker
}

// SchedulingServiceInterface defines the service contract.
type SchedulingServiceInterface interface {
	SuggestMeetingTimes(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, *errors.AppError)
	Rank(req *entity.Request) (*entity.Result, *errors.AppError)
}

func NewSchedulingService(fetcher *Fetcher, maxSuggestions int) SchedulingServiceInterface {
	return &SchedulingService{
		fetcher: fetcher,
		ranker:  NewRanker(NewBucketMatcher(), maxSuggestions),
	}
}

// SuggestMeetingTimes parses the wire-format request, gathers every
// invitee's commitments and returns the ranked suggestion list.
func (s *SchedulingService) SuggestMeetingTimes(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, *errors.AppError) {
	if len(req.ParticipantIDs) == 0 {
		return nil, errors.NewValidationError("participant_ids", "at least one participant is required")
	}

	rangeStart, err := entity.ParseDate(req.DateRangeStart)
	if err != nil {
		return nil, errors.NewValidationError("date_range_start", "must be a valid YYYY-MM-DD date")
	}
	rangeEnd, err := entity.ParseDate(req.DateRangeEnd)
	if err != nil {
		return nil, errors.NewValidationError("date_range_end", "must be a valid YYYY-MM-DD date")
	}

	workStart, err := entity.ParseClock(req.WorkingHoursStart)
	if err != nil {
		return nil, errors.NewValidationError("working_hours_start", "must be a valid HH:MM time")
	}
	workEnd, err := entity.ParseClock(req.WorkingHoursEnd)
	if err != nil {
		return nil, errors.NewValidationError("working_hours_end", "must be a valid HH:MM time")
	}

	// Invitees with malformed IDs are unresolvable, not fatal: they are
	// kept as unknown participants so results reflect the uncertainty.
	resolvable := make([]uuid.UUID, 0, len(req.ParticipantIDs))
	var unresolved []entity.Participant
	for _, raw := range req.ParticipantIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			unresolved = append(unresolved, entity.NewUnresolvedParticipant(raw, raw))
			continue
		}
		resolvable = append(resolvable, id)
	}

	participants, skipped := s.fetcher.BuildParticipants(ctx, resolvable, rangeStart, rangeEnd)
	participants = append(participants, unresolved...)

	request := &entity.Request{
		Participants:    participants,
		DateRange:       entity.DateRange{Start: rangeStart, End: rangeEnd},
		DurationMinutes: req.DurationMinutes,
		WorkingHours:    entity.WorkingHours{Start: workStart, End: workEnd},
		Preference:      req.Preference,
		BestEffort:      req.BestEffort,
	}

	result, appErr := s.ranker.Rank(request)
	if appErr != nil {
		metrics.RecordSchedulingRequest("invalid", 0, 0, skipped)
		return nil, appErr
	}
	result.SkippedRecords = skipped

	outcome := "ok"
	if result.Reason == entity.ReasonNoFeasibleSlot {
		outcome = "no_feasible_slot"
	}
	candidateCount := candidateCountFor(request)
	metrics.RecordSchedulingRequest(outcome, candidateCount, len(result.Suggestions), skipped)

	logger.Info("SchedulingService:SuggestMeetingTimes",
		"participants", len(participants),
		"candidates", candidateCount,
		"suggestions", len(result.Suggestions),
		"skipped_records", skipped,
	)

	return dto.ToSuggestResponse(result), nil
}

// Rank runs the engine over an already-assembled request. Other modules
// use this to pre-check a chosen slot without re-fetching schedules.
func (s *SchedulingService) Rank(req *entity.Request) (*entity.Result, *errors.AppError) {
	return s.ranker.Rank(req)
}

func candidateCountFor(req *entity.Request) int {
	days := 0
	for d := req.DateRange.Start; !d.After(req.DateRange.End); d = d.AddDays(1) {
		days++
	}
	perDay := (req.WorkingHours.End - req.DurationMinutes - req.WorkingHours.Start) / SlotGranularityMinutes
	if perDay < 0 {
		return 0
	}
	return days * (perDay + 1)
}
