package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEmploymentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType string
		wantConf float64
	}{
		{
			name:     "full-time with hyphen",
			input:    "this is a full-time role",
			wantType: "full-time",
			wantConf: 0.9,
		},
		{
			name:     "permanent maps to full-time",
			input:    "permanent position with benefits",
			wantType: "full-time",
			wantConf: 0.9,
		},
		{
			name:     "part-time",
			input:    "part time work for students",
			wantType: "part-time",
			wantConf: 0.75,
		},
		{
			name:     "contractual",
			input:    "contractual engagement for six months",
			wantType: "contract",
			wantConf: 0.9,
		},
		{
			name:     "internship",
			input:    "internship for final year students",
			wantType: "internship",
			wantConf: 0.75,
		},
		{
			name:     "freelance maps to temporary",
			input:    "freelance gigs available now",
			wantType: "temporary",
			wantConf: 0.75,
		},
		{
			name:     "full-time beats internship on confidence",
			input:    "full time role, interns also considered",
			wantType: "full-time",
			wantConf: 0.9,
		},
		{
			name:     "tie goes to earlier category",
			input:    "full-time contract position",
			wantType: "full-time",
			wantConf: 0.9,
		},
		{
			name:  "no signal",
			input: "exciting opportunity at a startup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEmploymentType(tt.input)
			assert.Equal(t, tt.wantType, got.Type)
			assert.InDelta(t, tt.wantConf, got.Confidence, 0.001)
		})
	}
}
