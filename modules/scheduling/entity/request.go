package entity

import "planit-api/core/errors"

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start Date
	End   Date
}

// WorkingHours is the daily window candidates may fall inside,
// in minutes since midnight.
type WorkingHours struct {
	Start int
	End   int
}

// Request is one scheduling request. It is built fresh per call and
// discarded after ranking; no state survives between requests.
type Request struct {
	Participants    []Participant
	DateRange       DateRange
	DurationMinutes int
	WorkingHours    WorkingHours
	Preference      string

	// BestEffort relaxes disqualifying conflicts into scored penalties so a
	// least-bad slot can still be surfaced. Off by default: the default mode
	// never hides a genuine fixed-commitment collision.
	BestEffort bool
}

// Validate fails fast on malformed top-level parameters, naming the
// offending field. Individual commitment records are never validated here;
// the collector drops broken ones leniently instead.
func (r *Request) Validate() *errors.AppError {
	if len(r.Participants) == 0 {
		return errors.NewValidationError("participants", "at least one participant is required")
	}
	if r.DateRange.Start.IsZero() || r.DateRange.End.IsZero() {
		return errors.NewValidationError("dateRange", "start and end dates are required")
	}
	if r.DateRange.Start.After(r.DateRange.End) {
		return errors.NewValidationError("dateRange", "start date must not be after end date")
	}
	if r.DurationMinutes <= 0 {
		return errors.NewValidationError("durationMinutes", "duration must be positive")
	}
	if r.WorkingHours.Start < 0 || r.WorkingHours.End > MinutesPerDay ||
		r.WorkingHours.Start >= r.WorkingHours.End {
		return errors.NewValidationError("workingHours", "start must be before end within one day")
	}
	return nil
}
