package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobshield/jobshield/internal/types"
)

func TestLanguageInconsistency(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		companyName string
		wantScore   float64
		wantReason  string
	}{
		{
			name:       "vernacular mix with shouting caps",
			raw:        "NAUKRI MILEGI TURANT! APPLY KARO AAJJ HII dosto, paise bhi milegi",
			wantScore:  0.85,
			wantReason: "Job uses mixed-language with aggressive formatting, common in scam posts",
		},
		{
			name:       "vernacular mix without company identity",
			raw:        "naukri chahiye? yahan apply karein, paise acche milegi",
			wantScore:  0.6,
			wantReason: "Job post uses informal mixed-language tone, lacks professionalism",
		},
		{
			name:        "vernacular mix tolerated with company identity",
			raw:         "naukri ke liye apply karein at our Pune office",
			companyName: "Acme Technologies",
			wantScore:   0,
		},
		{
			name:       "heavy shouting without vernacular",
			raw:        "URGENT OPENING APPLY TODAY EARN DAILY BONUS WEEKLY PAYOUT GUARANTEED NOWW",
			wantScore:  0.6,
			wantReason: "Job description shows excessive random capitalization or punctuation",
		},
		{
			name:       "mild shouting",
			raw:        "Join our SALES team TODAY for HUGE BONUSES this quarter",
			wantScore:  0.4,
			wantReason: "Unusual capitalization pattern detected in job post",
		},
		{
			name:      "plain professional text",
			raw:       "We hire engineers who enjoy distributed systems work.",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := textContext(tt.raw)
			jd.Company = types.Company{Name: tt.companyName}

			got := languageInconsistency(jd)
			assert.InDelta(t, tt.wantScore, got.Score, 0.001)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}
