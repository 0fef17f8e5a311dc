package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "title from first clause",
			input:    "Senior Software Engineer, 7+ years experience required. Bangalore.",
			expected: "Senior Software Engineer",
		},
		{
			name:     "title behind extractor marker",
			input:    "[TITLE] Data Analyst - Remote\nAcme Corp\nResponsibilities:",
			expected: "Data Analyst - Remote",
		},
		{
			name:     "call to action line skipped",
			input:    "Urgent hiring now!\nBackend Developer\nJoin us today",
			expected: "Backend Developer",
		},
		{
			name:     "no professional function",
			input:    "Great opportunity for everyone\nEarn money fast\nContact now",
			expected: "",
		},
		{
			name:     "overlong line rejected",
			input:    "We are looking for a motivated and hardworking software engineer to grow with us",
			expected: "",
		},
		{
			name:     "title beyond scan window ignored",
			input:    "Welcome aboard\nAbout us\nOur mission\nSoftware Engineer",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferTitle(tt.input))
		})
	}
}

func TestInferSeniority(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"senior marker wins over mid", "Senior Software Engineer", "high"},
		{"lead", "Tech Lead", "high"},
		{"manager", "Marketing Manager", "high"},
		{"intern", "Software Intern", "low"},
		{"junior", "Junior Developer", "low"},
		{"plain engineer is mid", "Software Engineer", "mid"},
		{"analyst is mid", "Business Analyst", "mid"},
		{"no marker", "Brand Ambassador", ""},
		{"empty title", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferSeniority(tt.title))
		})
	}
}
