// Package normalize cleans extracted job posting text into a canonical
// form suitable for detector and rule evaluation.
package normalize

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// MinUsableLength is the minimum cleaned-text length considered usable
// for structured parsing.
const MinUsableLength = 200

// ErrTooShort is returned when cleanup leaves less than MinUsableLength
// characters of substantive text.
var ErrTooShort = fmt.Errorf("normalized text below minimum usable length")

// codePointReplacer maps known problematic unicode code points to ASCII
// equivalents before any line-level processing runs.
var codePointReplacer = strings.NewReplacer(
	" ", " ", // non-breaking space
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

var (
	bulletPrefixRe    = regexp.MustCompile(`^\s*[•·▪●◦‣*-]\s+`)
	spaceRunRe        = regexp.MustCompile(`[ \t]{2,}`)
	excessNewlinesRe  = regexp.MustCompile(`\n{3,}`)
	boilerplateLineRe = regexp.MustCompile(`(?i)\b(cookie|cookies|privacy policy|terms of service|terms and conditions|advertisement|sponsored|subscribe|newsletter|sign in|log in|login|sign up)\b`)
)

// Text cleans and canonicalizes extracted posting text. The steps run
// in a fixed order: entity unescaping and code point mapping, bullet
// canonicalization, whitespace collapsing, then boilerplate removal.
// Returns ErrTooShort when the result is below MinUsableLength.
func Text(raw string) (string, error) {
	result := Clean(raw)
	if len(result) < MinUsableLength {
		return "", ErrTooShort
	}
	return result, nil
}

// Clean runs the same cleanup steps as Text but without the minimum
// length gate. Pasted posting text is cleaned with Clean, since short
// pastes are still worth analyzing; only extracted page content must
// clear the floor.
func Clean(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	// 1. Entities and problematic code points
	text := html.UnescapeString(raw)
	text = codePointReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 2. Per-line cleanup: bullets, space runs, trailing whitespace
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = bulletPrefixRe.ReplaceAllString(line, "- ")
		line = spaceRunRe.ReplaceAllString(line, " ")
		line = strings.TrimRight(line, " \t")
		cleaned = append(cleaned, line)
	}
	text = strings.Join(cleaned, "\n")

	// 3. Collapse excessive blank lines
	text = excessNewlinesRe.ReplaceAllString(text, "\n\n")

	// 4. Drop boilerplate lines without touching substantive content
	kept := make([]string, 0, len(cleaned))
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isBoilerplateLine(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// isBoilerplateLine reports whether a line is site chrome rather than
// posting content. Long lines are kept even when they mention a
// blocklisted word, so substantive prose is never dropped.
func isBoilerplateLine(line string) bool {
	if len(line) > 90 {
		return false
	}
	return boilerplateLineRe.MatchString(line)
}
