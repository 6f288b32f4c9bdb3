package entity

// Weight ranks how hard a commitment is to move when scheduling around it.
type Weight int

const (
	WeightLow Weight = iota
	WeightMedium
	WeightHigh
	WeightUrgent
	// WeightFixed marks commitments that can never be scheduled over:
	// meetings and goal timelines with explicit hours.
	WeightFixed
)

func (w Weight) String() string {
	switch w {
	case WeightLow:
		return "low"
	case WeightMedium:
		return "medium"
	case WeightHigh:
		return "high"
	case WeightUrgent:
		return "urgent"
	case WeightFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Disqualifying reports whether an overlap with this weight excludes a
// candidate slot outright. High and urgent activities are treated the same
// as fixed commitments: the participant cannot realistically move them.
func (w Weight) Disqualifying() bool {
	return w >= WeightHigh
}

// WeightFromUrgency maps an activity urgency string to a Weight.
// Unrecognized urgencies default to medium.
func WeightFromUrgency(urgency string) Weight {
	switch urgency {
	case "low":
		return WeightLow
	case "medium":
		return WeightMedium
	case "high":
		return WeightHigh
	case "urgent":
		return WeightUrgent
	default:
		return WeightMedium
	}
}

// Kind identifies the source record type of a commitment.
type Kind string

const (
	KindActivity     Kind = "activity"
	KindGoalTimeline Kind = "goal"
	KindMeeting      Kind = "meeting"
)

// Commitment is one busy period of a participant on a single date.
// Multi-day source records expand to one Commitment per covered date.
type Commitment struct {
	ParticipantID string
	Kind          Kind
	Interval      Interval
	Label         string
	Weight        Weight
}
