package parsing

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// LocationSignal is the location detector output: an optional place
// name and an optional remote/hybrid/onsite work mode, each with its
// own confidence.
type LocationSignal struct {
	Location           string
	LocationConfidence float64
	RemoteMode         string
	RemoteConfidence   float64
}

var remotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bremote\b`),
	regexp.MustCompile(`\bwork from home\b`),
	regexp.MustCompile(`\bwork-from-home\b`),
	regexp.MustCompile(`\bwork from anywhere\b`),
	regexp.MustCompile(`\banywhere\b`),
}

var hybridPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bhybrid\b`),
	regexp.MustCompile(`\bpartial remote\b`),
	regexp.MustCompile(`\b2-3 days office\b`),
	regexp.MustCompile(`\bsplit work model\b`),
}

var onsitePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bonsite\b`),
	regexp.MustCompile(`\bon-site\b`),
	regexp.MustCompile(`\boffice based\b`),
	regexp.MustCompile(`\bwork from office\b`),
}

// placeNameRe matches runs of capitalized tokens with an optional
// ", Country" suffix, a deliberately lightweight place-name heuristic.
var placeNameRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s[A-Z][a-zA-Z]+)*)(,\s*[A-Z][a-zA-Z]+)?\b`)

// sectionHeaderWords are generic posting headings that must never be
// mistaken for a place name.
var sectionHeaderWords = map[string]bool{
	"responsibilities": true,
	"requirements":     true,
	"benefits":         true,
}

// DetectLocation extracts where the job is based and how it is worked.
// Remote keywords win over hybrid, which win over onsite. The detector
// does not guess aggressively: a low-confidence empty result beats a
// wrong structured one.
func DetectLocation(text string) LocationSignal {
	if text == "" {
		return LocationSignal{}
	}

	remoteMode, remoteConf := detectRemoteMode(text)
	location, locationConf := detectPlaceName(text)

	// Remote postings mention locations loosely, so a place name found
	// alongside an explicit remote mode is a weak signal.
	if remoteMode == "remote" && location != "" && locationConf > 0.4 {
		locationConf = 0.4
	}

	return LocationSignal{
		Location:           location,
		LocationConfidence: types.ClampConfidence(locationConf),
		RemoteMode:         remoteMode,
		RemoteConfidence:   types.ClampConfidence(remoteConf),
	}
}

func detectRemoteMode(text string) (string, float64) {
	lower := strings.ToLower(text)

	for _, re := range remotePatterns {
		if re.MatchString(lower) {
			return "remote", 0.9
		}
	}
	for _, re := range hybridPatterns {
		if re.MatchString(lower) {
			return "hybrid", 0.85
		}
	}
	for _, re := range onsitePatterns {
		if re.MatchString(lower) {
			return "onsite", 0.8
		}
	}
	return "", 0.0
}

func detectPlaceName(text string) (string, float64) {
	matches := placeNameRe.FindAllStringSubmatch(text, -1)

	for _, m := range matches {
		candidate := strings.TrimSpace(m[1] + m[2])
		if candidate == "" {
			continue
		}
		// Long capitalized runs are sentences, not places.
		if len(strings.Fields(candidate)) > 5 {
			continue
		}
		if sectionHeaderWords[strings.ToLower(candidate)] {
			continue
		}
		return candidate, 0.75
	}

	return "", 0.0
}
