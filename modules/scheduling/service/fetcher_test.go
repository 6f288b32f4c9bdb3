package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/entity"
	"planit-api/modules/scheduling/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu        sync.Mutex
	schedules map[uuid.UUID]dto.MemberSchedule
	failFor   map[uuid.UUID]bool

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	barrier     chan struct{}
}

func (f *fakeSource) MemberSchedule(ctx context.Context, userID uuid.UUID, from, to entity.Date) (dto.MemberSchedule, error) {
	cur := f.inFlight.Add(1)
	for {
		max := f.maxInFlight.Load()
		if cur <= max || f.maxInFlight.CompareAndSwap(max, cur) {
			break
		}
	}
	if f.barrier != nil {
		<-f.barrier
	}
	defer f.inFlight.Add(-1)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[userID] {
		return dto.MemberSchedule{}, errors.New("store unavailable")
	}
	return f.schedules[userID], nil
}

type fakeDirectory struct {
	names map[uuid.UUID]string
}

func (f *fakeDirectory) DisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	name, ok := f.names[userID]
	if !ok {
		return "", errors.New("no such user")
	}
	return name, nil
}

func TestBuildParticipantsPreservesInputOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	source := &fakeSource{
		schedules: map[uuid.UUID]dto.MemberSchedule{
			ids[1]: {Activities: []dto.ActivityRecord{{
				ActivityTitle:     "Standup",
				ActivityDate:      "2025-03-14",
				ActivityStartTime: "09:00",
				ActivityEndTime:   "09:30",
				ActivityUrgency:   "low",
			}}},
		},
	}
	directory := &fakeDirectory{names: map[uuid.UUID]string{
		ids[0]: "Ada", ids[1]: "Grace", ids[2]: "Edsger",
	}}

	fetcher := service.NewFetcher(source, directory, 2)
	participants, skipped := fetcher.BuildParticipants(context.Background(), ids, testDay, testDay)

	require.Len(t, participants, 3)
	assert.Zero(t, skipped)
	assert.Equal(t, "Ada", participants[0].DisplayName)
	assert.Equal(t, "Grace", participants[1].DisplayName)
	assert.Equal(t, "Edsger", participants[2].DisplayName)
	assert.Len(t, participants[1].Commitments, 1)
	assert.Empty(t, participants[0].Commitments)
}

func TestBuildParticipantsFailedFetchIsUnresolved(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	source := &fakeSource{failFor: map[uuid.UUID]bool{ids[1]: true}}
	directory := &fakeDirectory{names: map[uuid.UUID]string{
		ids[0]: "Ada", ids[1]: "Grace",
	}}

	fetcher := service.NewFetcher(source, directory, 2)
	participants, _ := fetcher.BuildParticipants(context.Background(), ids, testDay, testDay)

	require.Len(t, participants, 2)
	assert.False(t, participants[0].Unresolved)
	assert.True(t, participants[1].Unresolved)
	assert.Equal(t, "Grace", participants[1].DisplayName)
}

func TestBuildParticipantsUnknownUserIsUnresolved(t *testing.T) {
	known, unknown := uuid.New(), uuid.New()
	source := &fakeSource{}
	directory := &fakeDirectory{names: map[uuid.UUID]string{known: "Ada"}}

	fetcher := service.NewFetcher(source, directory, 2)
	participants, _ := fetcher.BuildParticipants(context.Background(), []uuid.UUID{known, unknown}, testDay, testDay)

	require.Len(t, participants, 2)
	assert.True(t, participants[1].Unresolved)
	assert.Equal(t, unknown.String(), participants[1].ID)
}

func TestBuildParticipantsBoundsConcurrency(t *testing.T) {
	const members, limit = 8, 2

	ids := make([]uuid.UUID, members)
	names := make(map[uuid.UUID]string, members)
	for i := range ids {
		ids[i] = uuid.New()
		names[ids[i]] = "user"
	}

	source := &fakeSource{barrier: make(chan struct{})}
	directory := &fakeDirectory{names: names}
	fetcher := service.NewFetcher(source, directory, limit)

	done := make(chan struct{})
	go func() {
		fetcher.BuildParticipants(context.Background(), ids, testDay, testDay)
		close(done)
	}()

	for i := 0; i < members; i++ {
		source.barrier <- struct{}{}
	}
	<-done

	assert.LessOrEqual(t, source.maxInFlight.Load(), int32(limit))
}
