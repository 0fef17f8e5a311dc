// Package types defines the structured posting context shared by the
// parsing, rules, and insights layers.
package types

import "math"

// Company holds the inferred employer identity.
type Company struct {
	Name         string  `json:"name,omitempty"`
	InferredFrom string  `json:"inferred_from,omitempty"` // first_line / title / meta
	Confidence   float64 `json:"confidence"`
}

// JobRole holds structured role signals extracted by the detectors.
type JobRole struct {
	Title     string `json:"title,omitempty"`
	Seniority string `json:"seniority,omitempty"`

	Location           string  `json:"location,omitempty"`
	LocationConfidence float64 `json:"location_confidence"`

	EmploymentType       string  `json:"employment_type,omitempty"` // full-time, contract etc
	EmploymentConfidence float64 `json:"employment_confidence"`

	YearsExperience      *int    `json:"years_experience,omitempty"`
	ExperienceConfidence float64 `json:"experience_confidence"`

	RemoteMode       string  `json:"remote_mode,omitempty"` // remote / hybrid / onsite
	RemoteConfidence float64 `json:"remote_confidence"`
}

// Salary holds structured compensation signals. Amounts are optional;
// when both are present AmountMin <= AmountMax.
type Salary struct {
	RawText    string   `json:"raw_text,omitempty"`
	Currency   string   `json:"currency,omitempty"`
	AmountMin  *float64 `json:"amount_min,omitempty"`
	AmountMax  *float64 `json:"amount_max,omitempty"`
	Frequency  string   `json:"frequency,omitempty"` // month / year / hour
	Confidence float64  `json:"confidence"`
}

// Amount returns the best single figure for thresholding: the range
// maximum when present, otherwise the minimum.
func (s Salary) Amount() (float64, bool) {
	if s.AmountMax != nil {
		return *s.AmountMax, true
	}
	if s.AmountMin != nil {
		return *s.AmountMin, true
	}
	return 0, false
}

// HiringFlow holds recognized recruitment-process signals.
type HiringFlow struct {
	Steps               []string `json:"steps"`
	MentionsInterview   bool     `json:"mentions_interview"`
	SuspiciousFastTrack bool     `json:"suspicious_fast_track"`
	Confidence          float64  `json:"confidence"`
}

// Context is the canonical structured representation of a job posting.
// It is built once per request by the parser and must not be mutated by
// rules or insight extractors.
type Context struct {
	RawText string `json:"raw_text"`

	Company Company `json:"company"`
	Job     JobRole `json:"job"`
	Salary  Salary  `json:"salary"`

	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Benefits         []string `json:"benefits"`

	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phone_numbers"`

	HiringFlow HiringFlow `json:"hiring_flow"`

	ConfidenceScore float64 `json:"confidence_score"`
}

// ClampConfidence keeps a confidence value inside [0,1] and rounds it
// to two decimal places.
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return Round2(v)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
