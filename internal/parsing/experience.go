// Package parsing turns normalized job posting text into the canonical
// structured context consumed by the rules and insights layers. The
// detectors in this package are pure functions: each maps text to a
// small structured signal with a confidence in [0,1] and never mutates
// shared state.
package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ExperienceSignal is the experience detector output. YearsMin and
// YearsMax are nil when no experience requirement was recognized.
type ExperienceSignal struct {
	YearsMin   *int
	YearsMax   *int
	Label      string
	Confidence float64
}

var fresherPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfreshers?\b`),
	regexp.MustCompile(`\bno experience required\b`),
	regexp.MustCompile(`\bno prior experience\b`),
	regexp.MustCompile(`\bentry level\b`),
}

var (
	experienceRangeRe   = regexp.MustCompile(`\b(\d+)\s*-\s*(\d+)\s*(?:years|year|yrs|yr)\b`)
	experienceMinimumRe = regexp.MustCompile(`\b(?:minimum|at\s+least)\s+(\d+)\s*(?:years|year|yrs|yr)\b`)
	experienceBareRe    = regexp.MustCompile(`\b(\d+)\+?\s*(?:years|year|yrs|yr)\b`)
)

// DetectExperience extracts experience requirements such as "2+ years",
// "0-2 years", "at least 3 yrs" or fresher/entry-level phrasing.
// Checks run in priority order: fresher phrases, numeric range, then
// minimum or bare year forms.
func DetectExperience(text string) ExperienceSignal {
	if text == "" {
		return ExperienceSignal{}
	}
	lower := strings.ToLower(text)

	for _, re := range fresherPatterns {
		if re.MatchString(lower) {
			return ExperienceSignal{
				YearsMin:   intPtr(0),
				YearsMax:   intPtr(1),
				Label:      "freshers",
				Confidence: 0.9,
			}
		}
	}

	if m := experienceRangeRe.FindStringSubmatch(lower); m != nil {
		yearsMin, _ := strconv.Atoi(m[1])
		yearsMax, _ := strconv.Atoi(m[2])
		confidence := 0.75
		if yearsMin >= 2 {
			confidence = 0.9
		}
		return ExperienceSignal{
			YearsMin:   intPtr(yearsMin),
			YearsMax:   intPtr(yearsMax),
			Label:      fmt.Sprintf("%d-%d years", yearsMin, yearsMax),
			Confidence: confidence,
		}
	}

	for _, re := range []*regexp.Regexp{experienceMinimumRe, experienceBareRe} {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		years, _ := strconv.Atoi(m[1])
		confidence := 0.7
		if years >= 2 {
			confidence = 0.85
		}
		return ExperienceSignal{
			YearsMin:   intPtr(years),
			YearsMax:   intPtr(years + 1),
			Label:      fmt.Sprintf("%d+ years", years),
			Confidence: confidence,
		}
	}

	return ExperienceSignal{}
}

func intPtr(v int) *int { return &v }
