package service_test

import (
	"testing"

	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/entity"
	"planit-api/modules/scheduling/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectActivities(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Activities: []dto.ActivityRecord{
			{ActivityTitle: "Dentist", ActivityUrgency: "high", ActivityDate: "2025-03-14", ActivityStartTime: "10:00", ActivityEndTime: "11:00"},
			{ActivityTitle: "Reading", ActivityUrgency: "low", ActivityDate: "2025-03-14"},
		},
	}

	commitments, skipped := collector.Collect("u1", schedule)
	require.Len(t, commitments, 2)
	assert.Zero(t, skipped)

	timed := commitments[1]
	assert.Equal(t, entity.KindActivity, timed.Kind)
	assert.Equal(t, entity.WeightHigh, timed.Weight)
	assert.Equal(t, 600, timed.Interval.Start)
	assert.Equal(t, 660, timed.Interval.End)
	assert.Equal(t, "u1", timed.ParticipantID)

	allDay := commitments[0]
	assert.True(t, allDay.Interval.AllDay)
	assert.Equal(t, entity.WeightLow, allDay.Weight)
}

func TestCollectUrgencyMapping(t *testing.T) {
	collector := service.NewCollector()

	for urgency, want := range map[string]entity.Weight{
		"low":    entity.WeightLow,
		"medium": entity.WeightMedium,
		"high":   entity.WeightHigh,
		"urgent": entity.WeightUrgent,
		"":       entity.WeightMedium,
	} {
		commitments, _ := collector.Collect("u1", dto.MemberSchedule{
			Activities: []dto.ActivityRecord{{ActivityTitle: "x", ActivityUrgency: urgency, ActivityDate: "2025-03-14"}},
		})
		require.Len(t, commitments, 1, "urgency %q", urgency)
		assert.Equal(t, want, commitments[0].Weight, "urgency %q", urgency)
	}
}

func TestCollectExpandsTimelinePerDate(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Goals: []dto.GoalRecord{{
			GoalTitle: "Thesis",
			Timelines: []dto.TimelineRecord{{
				TimelineTitle:     "Draft",
				TimelineStartDate: "2025-03-14",
				TimelineEndDate:   "2025-03-16",
				TimelineStartTime: "09:00",
				TimelineEndTime:   "10:00",
			}},
		}},
	}

	commitments, skipped := collector.Collect("u1", schedule)
	assert.Zero(t, skipped)
	require.Len(t, commitments, 3)
	for i, cm := range commitments {
		assert.Equal(t, entity.KindGoalTimeline, cm.Kind)
		assert.Equal(t, entity.WeightFixed, cm.Weight, "timed timelines are fixed")
		assert.Equal(t, "Thesis - Draft", cm.Label)
		assert.Equal(t, entity.NewDate(2025, 3, 14+i), cm.Interval.Date)
	}
}

func TestCollectUntimedTimelineIsAllDayLowWeight(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Goals: []dto.GoalRecord{{
			GoalTitle: "Fitness",
			Timelines: []dto.TimelineRecord{{
				TimelineStartDate: "2025-03-14",
				TimelineEndDate:   "2025-03-14",
			}},
		}},
	}

	commitments, _ := collector.Collect("u1", schedule)
	require.Len(t, commitments, 1)
	assert.True(t, commitments[0].Interval.AllDay)
	assert.Equal(t, entity.WeightLow, commitments[0].Weight)
	assert.Equal(t, "Fitness", commitments[0].Label)
}

func TestCollectMeetingsAreFixed(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Meetings: []dto.MeetingRecord{
			{MeetingTitle: "Standup", MeetingDate: "2025-03-14", MeetingStartTime: "09:00", MeetingEndTime: "09:15"},
		},
	}

	commitments, _ := collector.Collect("u1", schedule)
	require.Len(t, commitments, 1)
	assert.Equal(t, entity.KindMeeting, commitments[0].Kind)
	assert.Equal(t, entity.WeightFixed, commitments[0].Weight)
}

func TestCollectDropsBrokenRecords(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Activities: []dto.ActivityRecord{
			{ActivityTitle: "no date", ActivityUrgency: "low"},
			{ActivityTitle: "bad date", ActivityUrgency: "low", ActivityDate: "not-a-date"},
			{ActivityTitle: "inverted times", ActivityUrgency: "low", ActivityDate: "2025-03-14", ActivityStartTime: "11:00", ActivityEndTime: "10:00"},
			{ActivityTitle: "ok", ActivityUrgency: "low", ActivityDate: "2025-03-14", ActivityStartTime: "10:00", ActivityEndTime: "11:00"},
		},
		Goals: []dto.GoalRecord{{
			GoalTitle: "g",
			Timelines: []dto.TimelineRecord{
				{TimelineStartDate: "2025-03-16", TimelineEndDate: "2025-03-14"}, // inverted range
				{TimelineStartDate: "2025-03-14"},                               // missing end
			},
		}},
		Meetings: []dto.MeetingRecord{
			{MeetingTitle: "no date", MeetingStartTime: "10:00", MeetingEndTime: "11:00"},
		},
	}

	commitments, skipped := collector.Collect("u1", schedule)
	assert.Len(t, commitments, 1)
	assert.Equal(t, 6, skipped)
}

func TestCollectOrdersByDateThenStart(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Activities: []dto.ActivityRecord{
			{ActivityTitle: "b", ActivityUrgency: "low", ActivityDate: "2025-03-15", ActivityStartTime: "09:00", ActivityEndTime: "10:00"},
			{ActivityTitle: "c", ActivityUrgency: "low", ActivityDate: "2025-03-14", ActivityStartTime: "14:00", ActivityEndTime: "15:00"},
			{ActivityTitle: "a", ActivityUrgency: "low", ActivityDate: "2025-03-14", ActivityStartTime: "09:00", ActivityEndTime: "10:00"},
		},
	}

	commitments, _ := collector.Collect("u1", schedule)
	require.Len(t, commitments, 3)
	assert.Equal(t, "a", commitments[0].Label)
	assert.Equal(t, "c", commitments[1].Label)
	assert.Equal(t, "b", commitments[2].Label)
}

func TestCollectIsIdempotent(t *testing.T) {
	collector := service.NewCollector()

	schedule := dto.MemberSchedule{
		Activities: []dto.ActivityRecord{
			{ActivityTitle: "a", ActivityUrgency: "medium", ActivityDate: "2025-03-14", ActivityStartTime: "09:00", ActivityEndTime: "10:00"},
			{ActivityTitle: "broken", ActivityUrgency: "medium"},
		},
		Goals: []dto.GoalRecord{{
			GoalTitle: "g",
			Timelines: []dto.TimelineRecord{{TimelineStartDate: "2025-03-14", TimelineEndDate: "2025-03-15"}},
		}},
	}

	first, firstSkipped := collector.Collect("u1", schedule)
	second, secondSkipped := collector.Collect("u1", schedule)

	assert.Equal(t, first, second)
	assert.Equal(t, firstSkipped, secondSkipped)
}
