package rules

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

var explicitAnonymityPhrases = []string{
	"confidential company",
	"company name not disclosed",
	"client confidential",
	"confidential employer",
	"hidden company",
	"undisclosed company",
	"name withheld",
}

var thirdPartyMarkers = []string{
	"hiring for client",
	"recruiting for client",
	"recruiting on behalf of",
	"third party hiring",
	"staffing partner",
	"placement agency",
}

var corporateSuffixKeywords = []string{
	"pvt ltd",
	"private limited",
	"inc",
	"llc",
	"corp",
	"corporation",
	"ltd",
}

var brandTokenRe = regexp.MustCompile(`\b[A-Z][A-Za-z]{2,}\b`)

// missingCompanyIdentity flags postings with no identifiable employer.
// A confidently parsed company name short-circuits the rule entirely;
// otherwise three mutually exclusive tiers apply in descending
// severity: explicit anonymity, third-party hiring without disclosure,
// and total absence of any identity signal.
func missingCompanyIdentity(jd *types.Context) types.RuleResult {
	lower := strings.ToLower(jd.RawText)

	name := strings.TrimSpace(jd.Company.Name)
	if len(name) >= 3 {
		return types.RuleResult{}
	}

	for _, p := range explicitAnonymityPhrases {
		if strings.Contains(lower, p) {
			return types.RuleResult{
				Score:  0.9,
				Reason: "Company identity intentionally hidden or undisclosed",
			}
		}
	}

	for _, p := range thirdPartyMarkers {
		if strings.Contains(lower, p) {
			return types.RuleResult{
				Score:  0.55,
				Reason: "Job appears to be posted by third-party recruiter without disclosing employer",
			}
		}
	}

	hasCorporateKeyword := false
	for _, k := range corporateSuffixKeywords {
		if strings.Contains(lower, k) {
			hasCorporateKeyword = true
			break
		}
	}
	hasBrandCandidate := len(brandTokenRe.FindAllString(jd.RawText, 2)) >= 2

	if !hasCorporateKeyword && !hasBrandCandidate {
		return types.RuleResult{
			Score:  0.7,
			Reason: "Job post does not reveal any identifiable company name",
		}
	}

	return types.RuleResult{}
}
