package parsing

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// hiringStepCategories is ordered so detected steps always come out in
// the same sequence.
var hiringStepCategories = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{"interview", []*regexp.Regexp{
		regexp.MustCompile(`\binterview\b`),
		regexp.MustCompile(`\btechnical interview\b`),
		regexp.MustCompile(`\bhr interview\b`),
		regexp.MustCompile(`\btelephonic interview\b`),
		regexp.MustCompile(`\bvirtual interview\b`),
		regexp.MustCompile(`\bvideo interview\b`),
	}},
	{"screening", []*regexp.Regexp{
		regexp.MustCompile(`\bscreening\b`),
		regexp.MustCompile(`\bshortlist(ed|ing)?\b`),
		regexp.MustCompile(`\bprofile review\b`),
	}},
	{"assessment", []*regexp.Regexp{
		regexp.MustCompile(`\bassignment\b`),
		regexp.MustCompile(`\bassessment\b`),
		regexp.MustCompile(`\bcoding test\b`),
		regexp.MustCompile(`\baptitude test\b`),
		regexp.MustCompile(`\btest\b`),
	}},
	{"background_check", []*regexp.Regexp{
		regexp.MustCompile(`\bbackground\b`),
		regexp.MustCompile(`\bverification\b`),
		regexp.MustCompile(`\bdocument verification\b`),
	}},
	{"offer_stage", []*regexp.Regexp{
		regexp.MustCompile(`\boffer letter\b`),
		regexp.MustCompile(`\bselection letter\b`),
		regexp.MustCompile(`\bjoining letter\b`),
	}},
}

var suspiciousNoProcessPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bno interview\b`),
	regexp.MustCompile(`\bno interview required\b`),
	regexp.MustCompile(`\bno selection process\b`),
	regexp.MustCompile(`\bguaranteed selection\b`),
	regexp.MustCompile(`\binstant offer\b`),
	regexp.MustCompile(`\binstant joining\b`),
}

// DetectHiringFlow extracts recruitment process signals: recognized
// step categories plus a suspicious "no process / instant offer" flag.
// Confidence accumulates 0.6 for any step, 0.2 for an interview
// mention, and 0.2 for a suspicious fast-track phrase, capped at 1.0.
// Like every detector here it only extracts; the rules layer decides.
func DetectHiringFlow(text string) types.HiringFlow {
	flow := types.HiringFlow{Steps: []string{}}
	if text == "" {
		return flow
	}
	lower := strings.ToLower(text)

	for _, category := range hiringStepCategories {
		for _, re := range category.patterns {
			if !re.MatchString(lower) {
				continue
			}
			flow.Steps = append(flow.Steps, category.name)
			if category.name == "interview" {
				flow.MentionsInterview = true
			}
			break
		}
	}

	for _, re := range suspiciousNoProcessPatterns {
		if re.MatchString(lower) {
			flow.SuspiciousFastTrack = true
			break
		}
	}

	confidence := 0.0
	if len(flow.Steps) > 0 {
		confidence += 0.6
	}
	if flow.MentionsInterview {
		confidence += 0.2
	}
	if flow.SuspiciousFastTrack {
		confidence += 0.2
	}
	flow.Confidence = types.ClampConfidence(confidence)

	return flow
}
