package entity

// Candidate is a hypothetical meeting slot under evaluation, not yet scored.
type Candidate struct {
	Date  Date
	Start int
	End   int
}

// Availability classifies one participant's status for a suggested slot.
type Availability string

const (
	Available  Availability = "available"
	Conflicted Availability = "conflicted"
	Unknown    Availability = "unknown"
)

// ConflictDetail describes one non-disqualifying overlap of a suggestion
// with a participant's commitment.
type ConflictDetail struct {
	Participant string `json:"participant"`
	Title       string `json:"title"`
	Kind        Kind   `json:"kind"`
	Weight      string `json:"weight"`
	TimeRange   string `json:"time_range"`
}

// Suggestion is one ranked candidate slot with its score and explanations.
// Output only; the caller persists the chosen one as a meeting.
type Suggestion struct {
	Date         Date
	Start        int
	End          int
	Score        int
	Conflicts    []ConflictDetail
	Advantages   []string
	Availability map[string]Availability
}

// Result reasons.
const (
	// ReasonNoFeasibleSlot marks a result where every candidate was
	// disqualified by a fixed or high-urgency commitment.
	ReasonNoFeasibleSlot = "no_feasible_slot"
)

// Result is the complete outcome of one scheduling request.
type Result struct {
	Suggestions []Suggestion
	// SkippedRecords counts commitment records dropped during collection
	// because of missing or unparsable fields.
	SkippedRecords int
	// Reason is set when Suggestions is empty, e.g. ReasonNoFeasibleSlot.
	Reason string
}
