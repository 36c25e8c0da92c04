package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionPhaseString(t *testing.T) {
	tests := []struct {
		phase    SessionPhase
		expected string
	}{
		{PhaseReadingHeaders, "READING_HEADERS"},
		{PhaseReadingBody, "READING_BODY"},
		{PhaseDone, "DONE"},
		{SessionPhase(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}
