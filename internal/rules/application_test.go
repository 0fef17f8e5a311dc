package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuspiciousApplicationFlow(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantScore  float64
		wantReason string
	}{
		{
			name:       "payment demanded",
			raw:        "Pay the registration fee of 500 to confirm your slot",
			wantScore:  0.9,
			wantReason: "Application requires payment or financial commitment",
		},
		{
			name:       "sensitive documents before interview",
			raw:        "Send your aadhaar and photo to start the process",
			wantScore:  0.8,
			wantReason: "Job post asks for sensitive documents before interview",
		},
		{
			name:       "multiple informal channels",
			raw:        "Apply on WhatsApp or fill the google form link in bio",
			wantScore:  0.7,
			wantReason: "Multiple suspicious non-standard application channels detected",
		},
		{
			name:       "single informal channel",
			raw:        "Message us on telegram to apply",
			wantScore:  0.5,
			wantReason: "Suspicious application channel detected",
		},
		{
			name:      "standard application flow",
			raw:       "Apply through our careers portal with your resume",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suspiciousApplicationFlow(textContext(tt.raw))
			assert.InDelta(t, tt.wantScore, got.Score, 0.001)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}
