package service_test

import (
	"testing"

	"planit-api/modules/scheduling/entity"
	"planit-api/modules/scheduling/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankRequest(participants ...entity.Participant) *entity.Request {
	return &entity.Request{
		Participants:    participants,
		DateRange:       entity.DateRange{Start: testDay, End: testDay},
		DurationMinutes: 60,
		WorkingHours:    entity.WorkingHours{Start: 540, End: 1020},
	}
}

func suggestionAt(result *entity.Result, start int) (entity.Suggestion, bool) {
	for _, s := range result.Suggestions {
		if s.Start == start {
			return s, true
		}
	}
	return entity.Suggestion{}, false
}

func TestRankFreeDayTopScores(t *testing.T) {
	r := service.NewRanker(nil, 20)
	req := rankRequest(entity.NewParticipant("u1", "Ada", nil))

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)
	require.NotEmpty(t, result.Suggestions)

	// Lunch-adjacent slots take a penalty; everything else is perfect.
	for _, s := range result.Suggestions {
		if s.Start < 780 && s.End > 720 {
			assert.Equal(t, 90, s.Score, "start %d", s.Start)
		} else {
			assert.Equal(t, 100, s.Score, "start %d", s.Start)
			assert.Contains(t, s.Advantages, service.AdvantageAllAvailable)
		}
	}

	// Ties break toward the earliest start.
	assert.Equal(t, 540, result.Suggestions[0].Start)
}

func TestRankExcludesFixedMeetingOverlaps(t *testing.T) {
	r := service.NewRanker(nil, 50)
	req := rankRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightFixed, entity.KindMeeting, 600, 660),
	}))

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)

	for _, blocked := range []int{570, 600, 630} {
		_, found := suggestionAt(result, blocked)
		assert.False(t, found, "start %d overlaps the meeting and must be excluded", blocked)
	}

	s, found := suggestionAt(result, 540)
	require.True(t, found)
	assert.Equal(t, 100, s.Score)
	s, found = suggestionAt(result, 660)
	require.True(t, found)
	assert.Equal(t, 100, s.Score)
}

func TestRankLowActivityRanksBelowClearSlots(t *testing.T) {
	r := service.NewRanker(nil, 50)
	req := rankRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightLow, entity.KindActivity, 840, 870),
	}))

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)

	s, found := suggestionAt(result, 840)
	require.True(t, found)
	assert.Equal(t, 90, s.Score)
	require.Len(t, s.Conflicts, 1)
	assert.Equal(t, "Ada", s.Conflicts[0].Participant)

	clear, found := suggestionAt(result, 540)
	require.True(t, found)
	assert.Equal(t, 100, clear.Score)

	for i := 1; i < len(result.Suggestions); i++ {
		assert.GreaterOrEqual(t, result.Suggestions[i-1].Score, result.Suggestions[i].Score)
	}
}

func TestRankPreferenceOrdering(t *testing.T) {
	r := service.NewRanker(nil, 50)
	req := rankRequest(entity.NewParticipant("u1", "Ada", nil))
	req.Preference = "morning"

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)

	morning, found := suggestionAt(result, 540)
	require.True(t, found)
	assert.Equal(t, 100, morning.Score)
	assert.Contains(t, morning.Advantages, service.AdvantageMatchesPreference)

	afternoon, found := suggestionAt(result, 840)
	require.True(t, found)
	assert.Equal(t, 90, afternoon.Score)
	assert.NotContains(t, afternoon.Advantages, service.AdvantageMatchesPreference)

	// All morning starts outrank all afternoon starts.
	assert.Less(t, result.Suggestions[0].Start, 720)
}

func TestRankNoFeasibleSlot(t *testing.T) {
	r := service.NewRanker(nil, 10)
	allDay := entity.NewAllDayInterval(testDay)

	req := rankRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{{
		ParticipantID: "u1",
		Kind:          entity.KindActivity,
		Interval:      allDay,
		Label:         "Offsite",
		Weight:        entity.WeightUrgent,
	}}))

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, entity.ReasonNoFeasibleSlot, result.Reason)
}

func TestRankBestEffortSurfacesBlockedSlots(t *testing.T) {
	r := service.NewRanker(nil, 50)
	allDay := entity.NewAllDayInterval(testDay)

	req := rankRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{{
		ParticipantID: "u1",
		Kind:          entity.KindMeeting,
		Interval:      allDay,
		Label:         "Offsite",
		Weight:        entity.WeightFixed,
	}}))
	req.BestEffort = true

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)
	require.NotEmpty(t, result.Suggestions)
	assert.Empty(t, result.Reason)

	for _, s := range result.Suggestions {
		assert.LessOrEqual(t, s.Score, 60)
		require.NotEmpty(t, s.Conflicts)
	}
}

func TestRankTruncatesToMaxSuggestions(t *testing.T) {
	r := service.NewRanker(nil, 10)
	req := rankRequest(entity.NewParticipant("u1", "Ada", nil))
	req.DateRange.End = testDay.AddDays(4)

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)
	assert.Len(t, result.Suggestions, 10)
}

func TestRankDeterministic(t *testing.T) {
	r := service.NewRanker(nil, 10)
	req := rankRequest(
		entity.NewParticipant("u1", "Ada", []entity.Commitment{
			commitmentAt(entity.WeightLow, entity.KindActivity, 600, 660),
			commitmentAt(entity.WeightMedium, entity.KindActivity, 900, 960),
		}),
		entity.NewUnresolvedParticipant("ghost", "ghost@example.com"),
	)
	req.Preference = "afternoon"

	first, appErr := r.Rank(req)
	require.Nil(t, appErr)
	second, appErr := r.Rank(req)
	require.Nil(t, appErr)

	assert.Equal(t, first, second)
}

func TestRankExtraConflictNeverRaisesScore(t *testing.T) {
	base := rankRequest(entity.NewParticipant("u1", "Ada", nil))
	withConflict := rankRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightLow, entity.KindActivity, 540, 1020),
	}))

	r := service.NewRanker(nil, 50)
	before, appErr := r.Rank(base)
	require.Nil(t, appErr)
	after, appErr := r.Rank(withConflict)
	require.Nil(t, appErr)

	for _, s := range after.Suggestions {
		orig, found := suggestionAt(before, s.Start)
		require.True(t, found)
		assert.LessOrEqual(t, s.Score, orig.Score)
	}
}

func TestRankSuggestionsStayWithinBounds(t *testing.T) {
	r := service.NewRanker(nil, 100)
	req := rankRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightFixed, entity.KindMeeting, 600, 720),
	}))
	req.DateRange.End = testDay.AddDays(2)

	result, appErr := r.Rank(req)
	require.Nil(t, appErr)

	for _, s := range result.Suggestions {
		assert.False(t, s.Date.Before(req.DateRange.Start))
		assert.False(t, s.Date.After(req.DateRange.End))
		assert.GreaterOrEqual(t, s.Start, req.WorkingHours.Start)
		assert.LessOrEqual(t, s.End, req.WorkingHours.End)
		assert.Equal(t, req.DurationMinutes, s.End-s.Start)
		for _, c := range s.Conflicts {
			assert.NotEqual(t, entity.WeightFixed.String(), c.Weight)
		}
		assert.GreaterOrEqual(t, s.Score, 0)
		assert.LessOrEqual(t, s.Score, 100)
	}
}

func TestRankValidation(t *testing.T) {
	r := service.NewRanker(nil, 10)

	cases := []struct {
		name   string
		mutate func(*entity.Request)
		field  string
	}{
		{"no participants", func(req *entity.Request) { req.Participants = nil }, "participants"},
		{"inverted range", func(req *entity.Request) {
			req.DateRange = entity.DateRange{Start: testDay, End: testDay.AddDays(-1)}
		}, "dateRange"},
		{"zero duration", func(req *entity.Request) { req.DurationMinutes = 0 }, "durationMinutes"},
		{"negative duration", func(req *entity.Request) { req.DurationMinutes = -30 }, "durationMinutes"},
		{"inverted working hours", func(req *entity.Request) {
			req.WorkingHours = entity.WorkingHours{Start: 1020, End: 540}
		}, "workingHours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := rankRequest(entity.NewParticipant("u1", "Ada", nil))
			tc.mutate(req)

			result, appErr := r.Rank(req)
			assert.Nil(t, result)
			require.NotNil(t, appErr)
			assert.Contains(t, appErr.Message, tc.field)
		})
	}
}
