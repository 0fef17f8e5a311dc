package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectExperience(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantMin      int
		wantMax      int
		wantLabel    string
		wantConf     float64
		wantNoSignal bool
	}{
		{
			name:      "bare plus years",
			input:     "We need 7+ years of backend experience",
			wantMin:   7,
			wantMax:   8,
			wantLabel: "7+ years",
			wantConf:  0.85,
		},
		{
			name:      "range wins over bare form",
			input:     "2-4 years experience required",
			wantMin:   2,
			wantMax:   4,
			wantLabel: "2-4 years",
			wantConf:  0.9,
		},
		{
			name:      "junior range has lower confidence",
			input:     "0-1 years welcome",
			wantMin:   0,
			wantMax:   1,
			wantLabel: "0-1 years",
			wantConf:  0.75,
		},
		{
			name:      "minimum phrasing",
			input:     "minimum 3 years in sales",
			wantMin:   3,
			wantMax:   4,
			wantLabel: "3+ years",
			wantConf:  0.85,
		},
		{
			name:      "fresher phrasing wins over numbers",
			input:     "Freshers welcome, even with 5 years experience",
			wantMin:   0,
			wantMax:   1,
			wantLabel: "freshers",
			wantConf:  0.9,
		},
		{
			name:      "no experience required",
			input:     "No experience required, join today",
			wantMin:   0,
			wantMax:   1,
			wantLabel: "freshers",
			wantConf:  0.9,
		},
		{
			name:         "no signal",
			input:        "Great role at a great company",
			wantNoSignal: true,
		},
		{
			name:         "empty input",
			input:        "",
			wantNoSignal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectExperience(tt.input)
			if tt.wantNoSignal {
				assert.Nil(t, got.YearsMin)
				assert.Nil(t, got.YearsMax)
				assert.Zero(t, got.Confidence)
				return
			}
			require.NotNil(t, got.YearsMin)
			require.NotNil(t, got.YearsMax)
			assert.Equal(t, tt.wantMin, *got.YearsMin)
			assert.Equal(t, tt.wantMax, *got.YearsMax)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.InDelta(t, tt.wantConf, got.Confidence, 0.001)
		})
	}
}
