// Package fetch - platform.go maps a posting URL to its job portal so
// callers can decide the fetch strategy before any markup exists.
package fetch

import (
	"net/url"
	"strings"

	"github.com/jobshield/jobshield/internal/extract"
)

// PortalFromURL identifies the job portal from the URL host alone.
// This is a pre-fetch hint; the extractor re-detects the portal from
// the markup itself, which wins when the two disagree.
func PortalFromURL(urlStr string) extract.Portal {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return extract.PortalGeneric
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "linkedin.com"):
		return extract.PortalLinkedIn
	case strings.Contains(host, "indeed.com"):
		return extract.PortalIndeed
	case strings.Contains(host, "naukri.com"):
		return extract.PortalNaukri
	case strings.Contains(host, "wellfound.com") || strings.Contains(host, "angel.co"):
		return extract.PortalWellfound
	}
	return extract.PortalGeneric
}

// NeedsBrowser reports whether the portal is known to render its
// posting content client-side, so a plain HTTP fetch will come back
// nearly empty and headless rendering should be used directly.
func NeedsBrowser(portal extract.Portal) bool {
	return portal == extract.PortalLinkedIn || portal == extract.PortalWellfound
}
