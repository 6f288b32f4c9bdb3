package service

import (
	"context"

	"planit-api/core/logger"
	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/entity"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ScheduleSource supplies the raw commitment records for one participant,
// already filtered to the requested date range.
type ScheduleSource interface {
	MemberSchedule(ctx context.Context, userID uuid.UUID, from, to entity.Date) (dto.MemberSchedule, error)
}

// UserDirectory resolves participant display names.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID uuid.UUID) (string, error)
}

// Fetcher assembles participants for a scheduling request. Per-participant
// fetches are read-only and independent, so they run concurrently, bounded
// to avoid overwhelming the backing store. A failed fetch marks that
// participant unresolved instead of aborting the whole request.
type Fetcher struct {
	source    ScheduleSource
	directory UserDirectory
	collector *Collector
	limit     int
}

func NewFetcher(source ScheduleSource, directory UserDirectory, limit int) *Fetcher {
	if limit <= 0 {
		limit = 5
	}
	return &Fetcher{
		source:    source,
		directory: directory,
		collector: NewCollector(),
		limit:     limit,
	}
}

// BuildParticipants fetches and collects commitments for every invitee,
// returning the participants in input order plus the total count of
// dropped records.
func (f *Fetcher) BuildParticipants(ctx context.Context, userIDs []uuid.UUID, from, to entity.Date) ([]entity.Participant, int) {
	participants := make([]entity.Participant, len(userIDs))
	skipped := make([]int, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)

	for i, userID := range userIDs {
		i, userID := i, userID
		g.Go(func() error {
			participants[i], skipped[i] = f.fetchOne(gctx, userID, from, to)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, n := range skipped {
		total += n
	}
	return participants, total
}

func (f *Fetcher) fetchOne(ctx context.Context, userID uuid.UUID, from, to entity.Date) (entity.Participant, int) {
	name, err := f.directory.DisplayName(ctx, userID)
	if err != nil {
		logger.Warn("Fetcher:BuildParticipants:UnknownUser", "user_id", userID, "error", err)
		return entity.NewUnresolvedParticipant(userID.String(), userID.String()), 0
	}

	schedule, err := f.source.MemberSchedule(ctx, userID, from, to)
	if err != nil {
		logger.Warn("Fetcher:BuildParticipants:FetchFailed", "user_id", userID, "error", err)
		return entity.NewUnresolvedParticipant(userID.String(), name), 0
	}

	commitments, skipped := f.collector.Collect(userID.String(), schedule)
	return entity.NewParticipant(userID.String(), name, commitments), skipped
}
