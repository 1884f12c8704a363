package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScoreAndFeedback(t *testing.T) {
	tests := []struct {
		name         string
		output       string
		wantScore    float64
		wantFeedback string
		wantErr      bool
	}{
		{
			name:         "well formed",
			output:       "Score: 7.5\nFeedback: Good structure, weak conclusion.",
			wantScore:    7.5,
			wantFeedback: "Good structure, weak conclusion.",
		},
		{
			name:         "score with denominator",
			output:       "Score: 8/10\nFeedback: Solid work.",
			wantScore:    8,
			wantFeedback: "Solid work.",
		},
		{
			name:         "clamped above ten",
			output:       "Score: 12\nFeedback: Excellent.",
			wantScore:    10,
			wantFeedback: "Excellent.",
		},
		{
			name:         "multi-line feedback",
			output:       "Score: 6\nFeedback: First point.\nSecond point.",
			wantScore:    6,
			wantFeedback: "First point.\nSecond point.",
		},
		{
			name:         "surrounding whitespace",
			output:       "  Score:   9  \n  Feedback:   Tidy.  ",
			wantScore:    9,
			wantFeedback: "Tidy.",
		},
		{
			name:    "missing score",
			output:  "Feedback: no score given",
			wantErr: true,
		},
		{
			name:    "unparseable score",
			output:  "Score: great\nFeedback: hm",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback, err := parseScoreAndFeedback(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantFeedback, feedback)
		})
	}
}
