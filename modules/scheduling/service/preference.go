package service

import "strings"

// Time-of-day bucket boundaries in minutes since midnight.
const (
	afternoonStart = 12 * 60
	eveningStart   = 17 * 60
)

// PreferenceMatcher decides whether a free-text time preference matches a
// candidate start time. Isolated behind an interface so the deterministic
// engine stays testable independent of any language-understanding
// dependency.
type PreferenceMatcher interface {
	Matches(preference string, startMinute int) bool
}

// BucketMatcher matches by case-insensitive substring containment of the
// slot's time-of-day bucket name (morning, afternoon, evening) in the
// preference text.
type BucketMatcher struct{}

func NewBucketMatcher() *BucketMatcher {
	return &BucketMatcher{}
}

func (m *BucketMatcher) Matches(preference string, startMinute int) bool {
	return strings.Contains(strings.ToLower(preference), bucketFor(startMinute))
}

func bucketFor(startMinute int) string {
	switch {
	case startMinute < afternoonStart:
		return "morning"
	case startMinute < eveningStart:
		return "afternoon"
	default:
		return "evening"
	}
}
