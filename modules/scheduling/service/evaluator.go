package service

import "planit-api/modules/scheduling/entity"

// Penalty points per conflict class.
const (
	penaltyMediumActivity = -20
	penaltyLowActivity    = -10
	penaltyLunchOverlap   = -10
	penaltyPreferenceMiss = -10
	// penaltyDisqualifying applies per fixed or high-urgency overlap in
	// best-effort mode only; default mode excludes the slot entirely.
	penaltyDisqualifying = -40
)

// Lunch window 12:00-13:00.
const (
	lunchStart = 12 * 60
	lunchEnd   = 13 * 60
)

// Advantage annotations.
const (
	AdvantageAllAvailable      = "All members available"
	AdvantageMatchesPreference = "Matches preference"
)

// Evaluation is the outcome of scoring one candidate slot.
type Evaluation struct {
	// Disqualified marks a slot that collides with a fixed or high-urgency
	// commitment of some participant and must never be surfaced.
	Disqualified bool
	Penalty      int
	Conflicts    []entity.ConflictDetail
	Advantages   []string
	Availability map[string]entity.Availability
}

// Evaluator scores candidate slots against participants' commitments.
type Evaluator struct {
	matcher PreferenceMatcher
}

func NewEvaluator(matcher PreferenceMatcher) *Evaluator {
	if matcher == nil {
		matcher = NewBucketMatcher()
	}
	return &Evaluator{matcher: matcher}
}

// Evaluate computes the penalty, conflict and advantage annotations, and
// per-participant availability for one candidate slot.
func (e *Evaluator) Evaluate(candidate entity.Candidate, req *entity.Request) Evaluation {
	slot := entity.Interval{Date: candidate.Date, Start: candidate.Start, End: candidate.End}

	eval := Evaluation{
		Availability: make(map[string]entity.Availability, len(req.Participants)),
	}

	anyConflict := false
	for i := range req.Participants {
		p := &req.Participants[i]
		if p.Unresolved {
			eval.Availability[p.ID] = entity.Unknown
			continue
		}

		available := entity.Available
		for _, cm := range p.Commitments {
			if !cm.Interval.Overlaps(slot) {
				continue
			}
			anyConflict = true
			available = entity.Conflicted

			if cm.Weight.Disqualifying() {
				if !req.BestEffort {
					eval.Disqualified = true
					eval.Availability[p.ID] = entity.Conflicted
					// Strict exclusion: no point scoring further.
					return eval
				}
				eval.Penalty += penaltyDisqualifying
			} else if cm.Weight == entity.WeightMedium {
				eval.Penalty += penaltyMediumActivity
			} else {
				eval.Penalty += penaltyLowActivity
			}

			eval.Conflicts = append(eval.Conflicts, entity.ConflictDetail{
				Participant: p.DisplayName,
				Title:       cm.Label,
				Kind:        cm.Kind,
				Weight:      cm.Weight.String(),
				TimeRange:   cm.Interval.TimeRange(),
			})
		}
		eval.Availability[p.ID] = available
	}

	// Slot-level penalties apply regardless of participants.
	if candidate.Start < lunchEnd && candidate.End > lunchStart {
		eval.Penalty += penaltyLunchOverlap
	}

	if req.Preference != "" {
		if e.matcher.Matches(req.Preference, candidate.Start) {
			eval.Advantages = append(eval.Advantages, AdvantageMatchesPreference)
		} else {
			eval.Penalty += penaltyPreferenceMiss
		}
	}

	// Unknown participants never count toward the all-available claim.
	if !anyConflict && e.allResolved(req.Participants) {
		eval.Advantages = append([]string{AdvantageAllAvailable}, eval.Advantages...)
	}

	return eval
}

func (e *Evaluator) allResolved(participants []entity.Participant) bool {
	for i := range participants {
		if participants[i].Unresolved {
			return false
		}
	}
	return true
}
