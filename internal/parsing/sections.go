package parsing

import (
	"regexp"
	"strings"
)

var (
	responsibilityHeadings = []string{"responsibilities", "your role", "what you will do", "duties"}
	requirementHeadings    = []string{"requirements", "qualifications", "skills required", "what we are looking for", "must have"}
	benefitHeadings        = []string{"benefits", "perks", "what we offer"}
)

var (
	headingLineRe  = regexp.MustCompile(`^[A-Z][A-Za-z\s]{3,}$`)
	bulletMarkerRe = regexp.MustCompile(`^\s*[-*•]\s+(.*)`)
)

// sectionBullets extracts bullet items from the content blocks that
// follow headings matching any of the given keywords.
func sectionBullets(text string, headings []string) []string {
	bullets := []string{}
	for _, block := range findSectionBlocks(text, headings) {
		bullets = append(bullets, extractBullets(block)...)
	}
	return bullets
}

// findSectionBlocks collects the logical content blocks that follow
// recognized headings, stopping each block at the next heading-looking
// line.
func findSectionBlocks(text string, headings []string) []string {
	lines := nonEmptyLines(text)

	var blocks []string
	var buffer []string
	capturing := false

	flush := func() {
		if len(buffer) > 0 {
			blocks = append(blocks, strings.Join(buffer, "\n"))
			buffer = nil
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, headings) {
			flush()
			capturing = true
			continue
		}

		if capturing {
			if headingLineRe.MatchString(line) {
				capturing = false
				flush()
				continue
			}
			buffer = append(buffer, line)
		}
	}
	flush()

	return blocks
}

// extractBullets returns the bullet-style lines of a block, with the
// marker stripped.
func extractBullets(block string) []string {
	var bullets []string
	for _, line := range strings.Split(block, "\n") {
		if m := bulletMarkerRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if item := strings.TrimSpace(m[1]); item != "" {
				bullets = append(bullets, item)
			}
		}
	}
	return bullets
}

// nonEmptyLines returns trimmed non-empty lines.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
