package entity_test

import (
	"testing"
	"time"

	"planit-api/modules/scheduling/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, date entity.Date, start, end int) entity.Interval {
	t.Helper()
	iv, err := entity.NewInterval(date, start, end)
	require.NoError(t, err)
	return iv
}

func TestParseDate(t *testing.T) {
	d, err := entity.ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", d.String())

	_, err = entity.ParseDate("14/03/2025")
	assert.Error(t, err)

	_, err = entity.ParseDate("")
	assert.Error(t, err)
}

func TestSpanDates(t *testing.T) {
	start := entity.NewDate(2025, time.March, 30)
	end := entity.NewDate(2025, time.April, 2)

	dates, err := entity.SpanDates(start, end)
	require.NoError(t, err)
	require.Len(t, dates, 4)
	assert.Equal(t, "2025-03-30", dates[0].String())
	assert.Equal(t, "2025-04-02", dates[3].String())

	single, err := entity.SpanDates(start, start)
	require.NoError(t, err)
	assert.Len(t, single, 1)

	_, err = entity.SpanDates(end, start)
	assert.ErrorIs(t, err, entity.ErrInvalidRange)
}

func TestNewIntervalValidation(t *testing.T) {
	date := entity.NewDate(2025, time.March, 14)

	_, err := entity.NewInterval(date, 600, 600)
	assert.Error(t, err)

	_, err = entity.NewInterval(date, 660, 600)
	assert.Error(t, err)

	_, err = entity.NewInterval(date, -10, 60)
	assert.Error(t, err)

	_, err = entity.NewInterval(date, 600, entity.MinutesPerDay+1)
	assert.Error(t, err)
}

func TestOverlapsDifferentDatesNever(t *testing.T) {
	a := mustInterval(t, entity.NewDate(2025, time.March, 14), 600, 660)
	b := mustInterval(t, entity.NewDate(2025, time.March, 15), 600, 660)

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))

	allDay := entity.NewAllDayInterval(entity.NewDate(2025, time.March, 15))
	assert.False(t, a.Overlaps(allDay))
}

func TestOverlapsAllDaySameDateAlways(t *testing.T) {
	date := entity.NewDate(2025, time.March, 14)
	allDay := entity.NewAllDayInterval(date)
	timed := mustInterval(t, date, 0, 1)

	assert.True(t, allDay.Overlaps(timed))
	assert.True(t, timed.Overlaps(allDay))
	assert.True(t, allDay.Overlaps(entity.NewAllDayInterval(date)))
}

func TestOverlapsTimed(t *testing.T) {
	date := entity.NewDate(2025, time.March, 14)
	tests := []struct {
		name           string
		aStart, aEnd   int
		bStart, bEnd   int
		expectsOverlap bool
	}{
		{"identical", 600, 660, 600, 660, true},
		{"partial", 600, 660, 630, 690, true},
		{"contained", 600, 720, 630, 660, true},
		{"adjacent before", 540, 600, 600, 660, false},
		{"adjacent after", 660, 720, 600, 660, false},
		{"disjoint", 480, 540, 600, 660, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustInterval(t, date, tt.aStart, tt.aEnd)
			b := mustInterval(t, date, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.expectsOverlap, a.Overlaps(b))
			assert.Equal(t, tt.expectsOverlap, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestClockParsingAndFormatting(t *testing.T) {
	m, err := entity.ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = entity.ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = entity.ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	for _, bad := range []string{"24:00", "12:60", "noon", ""} {
		_, err := entity.ParseClock(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}

	assert.Equal(t, "09:30", entity.FormatClock(570))
	assert.Equal(t, "00:05", entity.FormatClock(5))
}

func TestTimeRange(t *testing.T) {
	date := entity.NewDate(2025, time.March, 14)
	assert.Equal(t, "10:00 - 11:30", mustInterval(t, date, 600, 690).TimeRange())
	assert.Equal(t, "all day", entity.NewAllDayInterval(date).TimeRange())
}
