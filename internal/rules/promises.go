package rules

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

var strongPromisePhrases = []string{
	"guaranteed job",
	"100% job guarantee",
	"assured placement",
	"job assured",
	"placement guaranteed",
	"offer letter guaranteed",
	"salary guaranteed",
	"fixed job after training",
	"job without interview",
	"selection without interview",
	"instant selection",
	"same day joining guaranteed",
}

var mediumPromisePhrases = []string{
	"earn unlimited",
	"no effort required",
	"effortless income",
	"easy money",
	"earn while you sleep",
	"work only few hours and earn",
	"guaranteed selection",
	"instant approval",
	"quick approval",
	"job sure shot",
}

var (
	exclamationRunRe = regexp.MustCompile(`[!?]{2,}`)
	shoutingCapsRe   = regexp.MustCompile(`\b[A-Z]{4,}\b`)
)

// overPromising flags unrealistic hiring or earning guarantees.
// Escalation considers repetition and aggressive formatting; a posting
// with substantive structured content gets the benefit of the doubt on
// a single medium hit.
func overPromising(jd *types.Context) types.RuleResult {
	text := jd.RawText
	lower := strings.ToLower(text)

	if strings.TrimSpace(text) == "" {
		return types.RuleResult{}
	}

	for _, p := range strongPromisePhrases {
		if strings.Contains(lower, p) {
			return types.RuleResult{
				Score:  0.9,
				Reason: "Unrealistic guaranteed hiring / placement promises detected",
			}
		}
	}

	mediumHits := 0
	for _, p := range mediumPromisePhrases {
		if strings.Contains(lower, p) {
			mediumHits++
		}
	}

	exclamationRuns := len(exclamationRunRe.FindAllString(text, -1))
	shoutingCaps := len(shoutingCapsRe.FindAllString(text, -1))

	seemsStructured := len(jd.Responsibilities) >= 2 || len(jd.Requirements) >= 2

	switch {
	case mediumHits >= 2 && (exclamationRuns >= 3 || shoutingCaps >= 4):
		return types.RuleResult{
			Score:  0.8,
			Reason: "Highly exaggerated earning or instant hiring claims with aggressive tone",
		}
	case mediumHits >= 2:
		return types.RuleResult{
			Score:  0.7,
			Reason: "Multiple exaggerated earning / instant selection claims detected",
		}
	case mediumHits == 1 && !seemsStructured:
		return types.RuleResult{
			Score:  0.55,
			Reason: "Suspicious over-promising hiring / earning claim in unstructured job post",
		}
	case mediumHits == 1:
		return types.RuleResult{
			Score:  0.45,
			Reason: "Suspicious exaggerated promise found",
		}
	}

	return types.RuleResult{}
}
