package rules

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// vernacularTerms are informal Hindi-English phrases common in spammy
// postings aimed at the Indian job market.
var vernacularTerms = []string{
	"apply karein", "turant", "yahan", "naukri",
	"aap", "hum", "karega", "milegi", "paise",
	"sampark", "bharti", "rojgar", "avsar",
}

var englishRunRe = regexp.MustCompile(`[a-z]{3,}`)

// languageInconsistency flags mixed informal vernacular with aggressive
// formatting. Legitimate bilingual postings with a parsed company name
// or structured content are tolerated at the milder tiers.
func languageInconsistency(jd *types.Context) types.RuleResult {
	text := jd.RawText
	lower := strings.ToLower(text)

	if strings.TrimSpace(text) == "" {
		return types.RuleResult{}
	}

	vernacularHits := 0
	for _, t := range vernacularTerms {
		if strings.Contains(lower, t) {
			vernacularHits++
		}
	}
	mixedLanguage := englishRunRe.MatchString(lower) && vernacularHits > 0

	seemsProfessional := strings.TrimSpace(jd.Company.Name) != ""

	excessiveCaps := len(shoutingCapsRe.FindAllString(text, -1))
	punctuationRuns := len(exclamationRunRe.FindAllString(text, -1))

	if mixedLanguage && (excessiveCaps >= 4 || punctuationRuns >= 4) {
		return types.RuleResult{
			Score:  0.85,
			Reason: "Job uses mixed-language with aggressive formatting, common in scam posts",
		}
	}

	if mixedLanguage && !seemsProfessional {
		return types.RuleResult{
			Score:  0.6,
			Reason: "Job post uses informal mixed-language tone, lacks professionalism",
		}
	}

	if excessiveCaps >= 7 || punctuationRuns >= 6 {
		return types.RuleResult{
			Score:  0.6,
			Reason: "Job description shows excessive random capitalization or punctuation",
		}
	}

	if excessiveCaps >= 4 {
		return types.RuleResult{
			Score:  0.4,
			Reason: "Unusual capitalization pattern detected in job post",
		}
	}

	return types.RuleResult{}
}
