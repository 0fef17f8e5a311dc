package rules

import (
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

var noProcessIndicators = []string{
	"no interview",
	"without interview",
	"direct joining",
	"instant joining",
	"same day joining",
	"same day selection",
	"guaranteed selection",
	"offer letter immediately",
	"instant offer",
	"no selection process",
	"no hr round",
	"no screening",
}

var vagueProcessIndicators = []string{
	"simple selection process",
	"easy hiring process",
	"very easy selection",
	"minimal interview",
	"quick selection",
	"fastest hiring",
	"hassle free hiring",
	"smooth selection",
}

var interviewMentionKeywords = []string{
	"interview",
	"technical round",
	"assessment",
	"screening",
	"shortlist",
	"selection process",
	"hr interview",
	"panel interview",
}

// hiringProcessAbsence flags postings that claim hiring without any
// evaluation, describe the process with suspiciously simplified
// language, or describe a role in detail while never mentioning a
// single selection step. Parsed hiring-flow steps vouch for the
// posting and suppress the fallback tiers.
func hiringProcessAbsence(jd *types.Context) types.RuleResult {
	raw := strings.ToLower(jd.RawText)

	for _, ind := range noProcessIndicators {
		if strings.Contains(raw, ind) {
			return types.RuleResult{
				Score:  0.9,
				Reason: "Job claims hiring/selection without any interview or formal evaluation",
			}
		}
	}

	vagueHits := 0
	for _, ind := range vagueProcessIndicators {
		if strings.Contains(raw, ind) {
			vagueHits++
		}
	}
	switch {
	case vagueHits >= 2:
		return types.RuleResult{
			Score:  0.6,
			Reason: "Hiring process described vaguely with unusually simplified claims",
		}
	case vagueHits == 1:
		return types.RuleResult{
			Score:  0.4,
			Reason: "Job suggests unusually easy hiring process without clarity",
		}
	}

	if len(jd.HiringFlow.Steps) >= 1 {
		return types.RuleResult{}
	}

	hasRoleInfo := len(jd.Responsibilities) > 0 || len(jd.Requirements) > 0
	mentionsInterview := false
	for _, k := range interviewMentionKeywords {
		if strings.Contains(raw, k) {
			mentionsInterview = true
			break
		}
	}

	if hasRoleInfo && !mentionsInterview {
		return types.RuleResult{
			Score:  0.35,
			Reason: "Job post describes role but does not explain interview or selection steps",
		}
	}

	return types.RuleResult{}
}
