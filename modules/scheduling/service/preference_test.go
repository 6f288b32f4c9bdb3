package service_test

import (
	"testing"

	"planit-api/modules/scheduling/service"

	"github.com/stretchr/testify/assert"
)

func TestBucketMatcher(t *testing.T) {
	m := service.NewBucketMatcher()

	tests := []struct {
		preference string
		start      int
		want       bool
	}{
		{"morning", 540, true},
		{"Morning please", 540, true},
		{"early MORNING if possible", 690, true},
		{"morning", 720, false},
		{"afternoon", 720, true},
		{"afternoon", 1019, true},
		{"afternoon", 1020, false},
		{"evening", 1020, true},
		{"evening", 540, false},
		{"sometime next week", 540, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Matches(tt.preference, tt.start),
			"preference %q at start %d", tt.preference, tt.start)
	}
}
