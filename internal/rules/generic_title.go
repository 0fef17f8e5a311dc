package rules

import (
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// strongGenericTitles are scam-style role names that are themselves the
// product being sold, not a profession.
var strongGenericTitles = []string{
	"work from home job",
	"easy job",
	"simple job",
	"no skill job",
	"anyone can apply",
	"home based job",
	"online typing job",
	"form filling job",
	"sms sending job",
	"data entry job",
	"back office job",
	"online job",
	"domestic job",
	"part time earning",
}

var weakGenericTitles = []string{
	"multiple openings",
	"hiring for various roles",
	"multiple positions available",
	"staff required",
	"hiring staff",
	"required urgently",
	"fantastic opportunity",
	"great opportunity",
}

var professionalFunctionKeywords = []string{
	"engineer", "developer", "designer", "analyst", "manager", "consultant",
	"specialist", "scientist", "architect", "administrator", "executive",
	"sales", "marketing", "support", "technician",
}

// genericJobTitle flags vague or templated titles. Strong hits look at
// both the inferred title and the raw body, since scam postings often
// bury the giveaway phrasing mid-text.
func genericJobTitle(jd *types.Context) types.RuleResult {
	title := strings.ToLower(jd.Job.Title)
	raw := strings.ToLower(jd.RawText)

	if title == "" {
		return types.RuleResult{
			Score:  0.5,
			Reason: "Job post does not specify a clear job title",
		}
	}

	for _, g := range strongGenericTitles {
		if strings.Contains(title, g) || strings.Contains(raw, g) {
			return types.RuleResult{
				Score:  0.85,
				Reason: "Job title appears overly generic and commonly used in scam postings",
			}
		}
	}

	for _, g := range weakGenericTitles {
		if strings.Contains(title, g) || strings.Contains(raw, g) {
			return types.RuleResult{
				Score:  0.55,
				Reason: "Job title is vague and not role-specific",
			}
		}
	}

	for _, k := range professionalFunctionKeywords {
		if strings.Contains(title, k) {
			return types.RuleResult{}
		}
	}
	return types.RuleResult{
		Score:  0.45,
		Reason: "Job title lacks clear professional role or function",
	}
}
