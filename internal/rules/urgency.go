package rules

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

var urgentCallToActionRes = []*regexp.Regexp{
	regexp.MustCompile(`immediate join`),
	regexp.MustCompile(`urgent hiring`),
	regexp.MustCompile(`limited slots`),
	regexp.MustCompile(`join immediately`),
	regexp.MustCompile(`only few positions`),
}

// urgentLanguage flags direct pressure-to-join phrasing.
func urgentLanguage(jd *types.Context) types.RuleResult {
	lower := strings.ToLower(jd.RawText)

	for _, re := range urgentCallToActionRes {
		if re.MatchString(lower) {
			return types.RuleResult{
				Score:  0.7,
				Reason: "Urgent call-to-action language detected",
			}
		}
	}
	return types.RuleResult{}
}

var strongUrgencyRes = []*regexp.Regexp{
	regexp.MustCompile(`\bjoin immediately\b`),
	regexp.MustCompile(`\bimmediate join(?:ing)?\b`),
	regexp.MustCompile(`\bapply now\b`),
	regexp.MustCompile(`\bjoin now\b`),
	regexp.MustCompile(`\bno interview\b`),
	regexp.MustCompile(`\binstant selection\b`),
	regexp.MustCompile(`\bselected instantly\b`),
	regexp.MustCompile(`\bguaranteed selection\b`),
	regexp.MustCompile(`\blimited slots\b`),
	regexp.MustCompile(`\bact fast\b`),
	regexp.MustCompile(`\bapply asap\b`),
}

var mildUrgencyRes = []*regexp.Regexp{
	regexp.MustCompile(`\burgent\b`),
	regexp.MustCompile(`\burgently\b`),
	regexp.MustCompile(`\basap\b`),
	regexp.MustCompile(`\bimmediately\b`),
	regexp.MustCompile(`\bfast hiring\b`),
	regexp.MustCompile(`\bquick hiring\b`),
}

// urgencyDensity measures how hard the posting pushes urgency. Repeated
// strong phrases escalate the score; a barely-parsed context is skipped
// to avoid over-flagging noise.
func urgencyDensity(jd *types.Context) types.RuleResult {
	if jd.ConfidenceScore < 0.35 {
		return types.RuleResult{}
	}

	text := strings.ToLower(jd.Job.Title + " " + jd.RawText)

	strongHits := 0
	for _, re := range strongUrgencyRes {
		strongHits += len(re.FindAllString(text, -1))
	}
	mildHits := 0
	for _, re := range mildUrgencyRes {
		mildHits += len(re.FindAllString(text, -1))
	}
	totalHits := strongHits + mildHits

	switch {
	case strongHits >= 3 || totalHits >= 6:
		return types.RuleResult{
			Score:  0.9,
			Reason: "Extreme urgency pressure with repeated guaranteed / instant joining signals",
		}
	case strongHits >= 2 || totalHits >= 4:
		return types.RuleResult{
			Score:  0.7,
			Reason: "Multiple aggressive urgency phrases detected",
		}
	case strongHits == 1 && totalHits >= 3:
		return types.RuleResult{
			Score:  0.6,
			Reason: "Urgency-driven hiring language repeated several times",
		}
	case totalHits == 2:
		return types.RuleResult{
			Score:  0.45,
			Reason: "Repeated urgency tone found in job post",
		}
	case totalHits == 1:
		return types.RuleResult{
			Score:  0.25,
			Reason: "Some urgency pressure detected in the job description",
		}
	}

	return types.RuleResult{}
}
