package extract

import "strings"

// Portal identifies a recognized job board whose page structure we know
// how to extract from.
type Portal string

// Recognized portals. PortalGeneric means no portal-specific strategy
// applies and the largest-block fallback is used.
const (
	PortalLinkedIn  Portal = "linkedin"
	PortalIndeed    Portal = "indeed"
	PortalNaukri    Portal = "naukri"
	PortalWellfound Portal = "wellfound"
	PortalGeneric   Portal = "generic"
)

// DetectPortal guesses the source portal from document markup. This is
// best-effort: a wrong guess only costs us the portal-specific
// selectors, the generic fallback still runs.
func DetectPortal(markup string) Portal {
	lower := strings.ToLower(markup)

	switch {
	case strings.Contains(lower, "linkedin") || strings.Contains(lower, "jobs-details"):
		return PortalLinkedIn
	case strings.Contains(lower, "indeed") || strings.Contains(lower, "jobdescriptiontext"):
		return PortalIndeed
	case strings.Contains(lower, "naukri"):
		return PortalNaukri
	case strings.Contains(lower, "wellfound") || strings.Contains(lower, "angel.co"):
		return PortalWellfound
	default:
		return PortalGeneric
	}
}

// portalSelectors returns the content-region selectors for a portal, in
// preference order.
func portalSelectors(portal Portal) []string {
	switch portal {
	case PortalLinkedIn:
		return []string{
			".jobs-description",
			".jobs-box__html-content",
			".show-more-less-html__markup",
		}
	case PortalIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
		}
	case PortalNaukri:
		return []string{
			".job-desc",
			".jd-container",
			".description",
		}
	case PortalWellfound:
		return []string{
			".job-description",
			`[class*="styles__Description"]`,
		}
	default:
		return nil
	}
}
