package entity

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay bounds the clock-minute fields of an Interval.
const MinutesPerDay = 24 * 60

// ErrInvalidRange reports an inverted date range.
var ErrInvalidRange = errors.New("start date is after end date")

// Date is a calendar date with no time-of-day component.
// It is normalized to midnight UTC so values compare with ==.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// SpanDates enumerates every date from start to end inclusive.
func SpanDates(start, end Date) ([]Date, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	var dates []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// Interval is a busy period on a single calendar date. Start and End are
// minutes since midnight; an all-day interval has neither.
// Immutable value type.
type Interval struct {
	Date   Date
	Start  int
	End    int
	AllDay bool
}

// NewInterval builds a timed interval, validating 0 <= start < end <= 1440.
func NewInterval(date Date, startMinute, endMinute int) (Interval, error) {
	if startMinute < 0 || endMinute > MinutesPerDay || startMinute >= endMinute {
		return Interval{}, fmt.Errorf("invalid interval [%d, %d)", startMinute, endMinute)
	}
	return Interval{Date: date, Start: startMinute, End: endMinute}, nil
}

// NewAllDayInterval builds an interval covering the whole date.
func NewAllDayInterval(date Date) Interval {
	return Interval{Date: date, AllDay: true}
}

// Overlaps reports whether two intervals share any time. Intervals on
// different dates never overlap; an all-day interval overlaps anything on
// the same date.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Date != other.Date {
		return false
	}
	if iv.AllDay || other.AllDay {
		return true
	}
	return iv.Start < other.End && other.Start < iv.End
}

// TimeRange renders the interval's clock range, e.g. "10:00 - 11:30",
// or "all day".
func (iv Interval) TimeRange() string {
	if iv.AllDay {
		return "all day"
	}
	return fmt.Sprintf("%s - %s", FormatClock(iv.Start), FormatClock(iv.End))
}

// FormatClock renders minutes-since-midnight as HH:MM.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseClock parses an HH:MM 24-hour string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}
