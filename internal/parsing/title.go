package parsing

import "strings"

// roleKeywords are professional functions a real job title tends to
// name.
var roleKeywords = []string{
	"engineer", "developer", "designer", "analyst", "manager", "consultant",
	"specialist", "scientist", "architect", "administrator", "executive",
	"sales", "marketing", "support", "technician", "intern",
}

// callToActionWords disqualify a line from being read as a title or
// company name.
var callToActionWords = []string{"hiring", "urgent", "apply", "job"}

const (
	maxTitleWords   = 8
	titleScanLines  = 3
	maxCompanyWords = 6
)

// InferTitle guesses a job title from the leading lines of the posting.
// It takes the first clause of each of the first few lines and accepts
// it when it is short, names a professional function, and is not a
// call to action. Returns empty when nothing title-like is found.
func InferTitle(text string) string {
	checked := 0
	for _, line := range nonEmptyLines(text) {
		line, _ = stripMetaPrefix(line)
		if line == "" {
			continue
		}
		checked++
		if checked > titleScanLines {
			break
		}

		fragment := firstClause(line)
		lower := strings.ToLower(fragment)
		if containsAny(lower, callToActionWords) {
			continue
		}
		if len(strings.Fields(fragment)) > maxTitleWords {
			continue
		}
		if containsAny(lower, roleKeywords) {
			return fragment
		}
	}
	return ""
}

// InferSeniority maps a title onto a coarse seniority band via a
// keyword ladder. Senior markers are checked first so "Senior Engineer"
// reads as high rather than mid.
func InferSeniority(title string) string {
	lower := strings.ToLower(title)
	if lower == "" {
		return ""
	}

	for _, k := range []string{"senior", "lead", "principal", "architect", "manager", "head"} {
		if strings.Contains(lower, k) {
			return "high"
		}
	}
	for _, k := range []string{"intern", "trainee", "junior", "associate", "graduate"} {
		if strings.Contains(lower, k) {
			return "low"
		}
	}
	for _, k := range []string{"engineer", "developer", "analyst"} {
		if strings.Contains(lower, k) {
			return "mid"
		}
	}
	return ""
}

// firstClause returns the text before the first sentence or clause
// separator.
func firstClause(line string) string {
	if idx := strings.IndexAny(line, ".,!?:;"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// stripMetaPrefix removes the extractor's metadata markers, reporting
// which one was present.
func stripMetaPrefix(line string) (string, string) {
	switch {
	case strings.HasPrefix(line, "[TITLE] "):
		return strings.TrimPrefix(line, "[TITLE] "), "title"
	case strings.HasPrefix(line, "[META] "):
		return strings.TrimPrefix(line, "[META] "), "meta"
	default:
		return line, "first_line"
	}
}
