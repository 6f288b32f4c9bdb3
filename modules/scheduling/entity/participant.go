package entity

// Participant is one invitee of the meeting being scheduled, including the
// organizer. An unresolved participant is an invitee whose commitments could
// not be fetched: it can never be proven busy, but results flag it so
// "all members available" claims are not overstated.
type Participant struct {
	ID          string
	DisplayName string
	Commitments []Commitment
	Unresolved  bool
}

// NewParticipant builds a resolved participant with its busy commitments.
func NewParticipant(id, displayName string, commitments []Commitment) Participant {
	return Participant{ID: id, DisplayName: displayName, Commitments: commitments}
}

// NewUnresolvedParticipant builds a participant whose schedule is unknown.
func NewUnresolvedParticipant(id, displayName string) Participant {
	return Participant{ID: id, DisplayName: displayName, Unresolved: true}
}
