package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingCompanyIdentity(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		companyName string
		wantScore   float64
		wantReason  string
	}{
		{
			name:        "parsed company name short-circuits",
			raw:         "confidential company hiring now",
			companyName: "Acme Technologies",
			wantScore:   0,
		},
		{
			name:       "explicit anonymity",
			raw:        "Role at a confidential company, details after selection",
			wantScore:  0.9,
			wantReason: "Company identity intentionally hidden or undisclosed",
		},
		{
			name:       "undisclosed third party recruiter",
			raw:        "We are hiring for client in the fintech space",
			wantScore:  0.55,
			wantReason: "Job appears to be posted by third-party recruiter without disclosing employer",
		},
		{
			name:       "no identity signal at all",
			raw:        "good pay, easy work, apply fast today",
			wantScore:  0.7,
			wantReason: "Job post does not reveal any identifiable company name",
		},
		{
			name:      "corporate suffix vouches for identity",
			raw:       "hiring at a reputed pvt ltd in pune",
			wantScore: 0,
		},
		{
			name:      "brand-like tokens vouch for identity",
			raw:       "Opening at Bluestone Dynamics for operations staff",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := textContext(tt.raw)
			jd.Company.Name = tt.companyName

			got := missingCompanyIdentity(jd)
			assert.InDelta(t, tt.wantScore, got.Score, 0.001)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}
