package service_test

import (
	"testing"
	"time"

	"planit-api/modules/scheduling/entity"
	"planit-api/modules/scheduling/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleDayRequest(duration, workStart, workEnd int) *entity.Request {
	day := entity.NewDate(2025, time.March, 14)
	return &entity.Request{
		Participants:    []entity.Participant{entity.NewParticipant("u1", "Ada", nil)},
		DateRange:       entity.DateRange{Start: day, End: day},
		DurationMinutes: duration,
		WorkingHours:    entity.WorkingHours{Start: workStart, End: workEnd},
	}
}

func TestGenerateSingleDay(t *testing.T) {
	gen := service.NewGenerator()

	// 09:00-17:00, 60 minutes: starts 09:00 through 16:00 on the half hour.
	candidates := gen.Generate(singleDayRequest(60, 540, 1020))
	require.Len(t, candidates, 15)

	first := candidates[0]
	assert.Equal(t, 540, first.Start)
	assert.Equal(t, 600, first.End)

	last := candidates[len(candidates)-1]
	assert.Equal(t, 960, last.Start)
	assert.Equal(t, 1020, last.End)

	for _, c := range candidates {
		assert.GreaterOrEqual(t, c.Start, 540)
		assert.LessOrEqual(t, c.End, 1020)
		assert.Zero(t, c.Start%service.SlotGranularityMinutes)
	}
}

func TestGenerateMultipleDays(t *testing.T) {
	gen := service.NewGenerator()

	req := singleDayRequest(30, 540, 600)
	req.DateRange.End = req.DateRange.Start.AddDays(2)

	candidates := gen.Generate(req)
	// Two starts per day (09:00, 09:30) across three days.
	require.Len(t, candidates, 6)
	assert.Equal(t, req.DateRange.Start, candidates[0].Date)
	assert.Equal(t, req.DateRange.End, candidates[5].Date)
}

func TestGenerateDayTooShortYieldsNothing(t *testing.T) {
	gen := service.NewGenerator()

	// 09:00-10:00 window cannot fit 90 minutes.
	candidates := gen.Generate(singleDayRequest(90, 540, 600))
	assert.Empty(t, candidates)
}

func TestGenerateExactFit(t *testing.T) {
	gen := service.NewGenerator()

	// Window exactly equals duration: one candidate.
	candidates := gen.Generate(singleDayRequest(60, 540, 600))
	require.Len(t, candidates, 1)
	assert.Equal(t, 540, candidates[0].Start)
	assert.Equal(t, 600, candidates[0].End)
}
