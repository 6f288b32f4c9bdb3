package service_test

import (
	"testing"
	"time"

	"planit-api/modules/scheduling/entity"
	"planit-api/modules/scheduling/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = entity.NewDate(2025, time.March, 14)

func commitmentAt(weight entity.Weight, kind entity.Kind, start, end int) entity.Commitment {
	iv, err := entity.NewInterval(testDay, start, end)
	if err != nil {
		panic(err)
	}
	return entity.Commitment{
		ParticipantID: "u1",
		Kind:          kind,
		Interval:      iv,
		Label:         "Busy",
		Weight:        weight,
	}
}

func evalRequest(participants ...entity.Participant) *entity.Request {
	return &entity.Request{
		Participants:    participants,
		DateRange:       entity.DateRange{Start: testDay, End: testDay},
		DurationMinutes: 60,
		WorkingHours:    entity.WorkingHours{Start: 540, End: 1020},
	}
}

func TestEvaluateNoConflicts(t *testing.T) {
	e := service.NewEvaluator(nil)
	req := evalRequest(entity.NewParticipant("u1", "Ada", nil))

	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 540, End: 600}, req)

	assert.False(t, eval.Disqualified)
	assert.Zero(t, eval.Penalty)
	assert.Empty(t, eval.Conflicts)
	assert.Contains(t, eval.Advantages, service.AdvantageAllAvailable)
	assert.Equal(t, entity.Available, eval.Availability["u1"])
}

func TestEvaluateFixedConflictDisqualifies(t *testing.T) {
	e := service.NewEvaluator(nil)
	req := evalRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightFixed, entity.KindMeeting, 600, 660),
	}))

	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 630, End: 690}, req)
	assert.True(t, eval.Disqualified)

	// Touching boundaries do not disqualify.
	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 540, End: 600}, req)
	assert.False(t, eval.Disqualified)
	assert.Zero(t, eval.Penalty)
}

func TestEvaluateHighAndUrgentDisqualifyLikeFixed(t *testing.T) {
	e := service.NewEvaluator(nil)

	for _, weight := range []entity.Weight{entity.WeightHigh, entity.WeightUrgent} {
		req := evalRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
			commitmentAt(weight, entity.KindActivity, 600, 660),
		}))
		eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 600, End: 660}, req)
		assert.True(t, eval.Disqualified, "weight %s must disqualify", weight)
	}
}

func TestEvaluateActivityPenalties(t *testing.T) {
	e := service.NewEvaluator(nil)

	req := evalRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightLow, entity.KindActivity, 840, 870),
	}))
	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 840, End: 900}, req)
	assert.False(t, eval.Disqualified)
	assert.Equal(t, -10, eval.Penalty)
	require.Len(t, eval.Conflicts, 1)
	assert.Equal(t, "Ada", eval.Conflicts[0].Participant)
	assert.Equal(t, "14:00 - 14:30", eval.Conflicts[0].TimeRange)
	assert.Equal(t, entity.Conflicted, eval.Availability["u1"])
	assert.NotContains(t, eval.Advantages, service.AdvantageAllAvailable)

	req = evalRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightMedium, entity.KindActivity, 840, 870),
	}))
	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 840, End: 900}, req)
	assert.Equal(t, -20, eval.Penalty)
}

func TestEvaluateLunchPenalty(t *testing.T) {
	e := service.NewEvaluator(nil)
	req := evalRequest(entity.NewParticipant("u1", "Ada", nil))

	// Fully inside the lunch window.
	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 720, End: 780}, req)
	assert.Equal(t, -10, eval.Penalty)

	// Partially intersecting counts too.
	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 690, End: 750}, req)
	assert.Equal(t, -10, eval.Penalty)

	// Ending exactly at noon does not.
	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 660, End: 720}, req)
	assert.Zero(t, eval.Penalty)

	// Lunch compounds with a low-urgency conflict: -10 - 10.
	req = evalRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightLow, entity.KindActivity, 720, 750),
	}))
	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 720, End: 780}, req)
	assert.Equal(t, -20, eval.Penalty)
}

func TestEvaluatePreference(t *testing.T) {
	e := service.NewEvaluator(nil)
	req := evalRequest(entity.NewParticipant("u1", "Ada", nil))
	req.Preference = "morning"

	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 540, End: 600}, req)
	assert.Zero(t, eval.Penalty)
	assert.Contains(t, eval.Advantages, service.AdvantageMatchesPreference)

	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 840, End: 900}, req)
	assert.Equal(t, -10, eval.Penalty)
	assert.NotContains(t, eval.Advantages, service.AdvantageMatchesPreference)

	// Empty preference: neither penalty nor advantage.
	req.Preference = ""
	eval = e.Evaluate(entity.Candidate{Date: testDay, Start: 840, End: 900}, req)
	assert.Zero(t, eval.Penalty)
	assert.NotContains(t, eval.Advantages, service.AdvantageMatchesPreference)
}

func TestEvaluateUnknownParticipants(t *testing.T) {
	e := service.NewEvaluator(nil)
	req := evalRequest(
		entity.NewParticipant("u1", "Ada", nil),
		entity.NewUnresolvedParticipant("ghost", "ghost@example.com"),
	)

	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 540, End: 600}, req)

	assert.False(t, eval.Disqualified)
	assert.Zero(t, eval.Penalty)
	assert.Equal(t, entity.Unknown, eval.Availability["ghost"])
	assert.Equal(t, entity.Available, eval.Availability["u1"])
	// An unknown member means all-available cannot be claimed.
	assert.NotContains(t, eval.Advantages, service.AdvantageAllAvailable)
}

func TestEvaluateBestEffortScoresFixedConflicts(t *testing.T) {
	e := service.NewEvaluator(nil)
	req := evalRequest(entity.NewParticipant("u1", "Ada", []entity.Commitment{
		commitmentAt(entity.WeightFixed, entity.KindMeeting, 600, 660),
	}))
	req.BestEffort = true

	eval := e.Evaluate(entity.Candidate{Date: testDay, Start: 600, End: 660}, req)
	assert.False(t, eval.Disqualified)
	assert.Equal(t, -40, eval.Penalty)
	require.Len(t, eval.Conflicts, 1)
	assert.Equal(t, entity.KindMeeting, eval.Conflicts[0].Kind)
}
