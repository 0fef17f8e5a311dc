package rules

import (
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

var paymentDemandTerms = []string{
	"pay to apply",
	"application fee",
	"processing fee",
	"registration fee",
	"security deposit",
	"training fee",
	"refundable fee",
	"pay before interview",
	"pay before joining",
}

var documentDemandTerms = []string{
	"aadhaar",
	"pan card",
	"id proof",
	"documents before interview",
}

var informalChannelTerms = []string{
	"whatsapp",
	"telegram",
	"forms.gle",
	"google form",
	"dm us",
}

// suspiciousApplicationFlow flags unsafe application funnels in
// descending severity: monetary demands, sensitive-document demands
// before any interview, and informal messaging channels escalating
// with the count of distinct channels.
func suspiciousApplicationFlow(jd *types.Context) types.RuleResult {
	text := strings.ToLower(jd.RawText)

	for _, t := range paymentDemandTerms {
		if strings.Contains(text, t) {
			return types.RuleResult{
				Score:  0.9,
				Reason: "Application requires payment or financial commitment",
			}
		}
	}

	for _, t := range documentDemandTerms {
		if strings.Contains(text, t) {
			return types.RuleResult{
				Score:  0.8,
				Reason: "Job post asks for sensitive documents before interview",
			}
		}
	}

	channelHits := 0
	for _, t := range informalChannelTerms {
		if strings.Contains(text, t) {
			channelHits++
		}
	}
	switch {
	case channelHits >= 2:
		return types.RuleResult{
			Score:  0.7,
			Reason: "Multiple suspicious non-standard application channels detected",
		}
	case channelHits == 1:
		return types.RuleResult{
			Score:  0.5,
			Reason: "Suspicious application channel detected",
		}
	}

	return types.RuleResult{}
}
