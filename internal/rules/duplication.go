package rules

import (
	"regexp"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

var redistributionIndicators = []string{
	"do not copy",
	"copyright",
	"all rights reserved",
	"this content is protected",
	"original posting",
	"plagiarized",
	"taken from",
	"source:",
}

var selfPromotionalPhrases = []string{
	"we are one of the leading",
	"renowned organization",
	"prestigious company",
	"world class organization",
	"industry leading company",
	"among the top companies",
	"number one company",
}

// commonCapitalizedWords are ordinary words that routinely start a line
// or sentence in a posting. Excluding them keeps the brand-token count
// to genuinely name-like tokens.
var commonCapitalizedWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "our": true,
	"you": true, "your": true, "this": true, "that": true, "are": true,
	"apply": true, "contact": true, "salary": true, "job": true,
	"role": true, "work": true, "team": true, "about": true, "join": true,
	"senior": true, "junior": true, "lead": true, "software": true,
	"engineer": true, "developer": true, "manager": true, "analyst": true,
	"designer": true, "responsibilities": true, "requirements": true,
	"benefits": true, "experience": true, "skills": true, "location": true,
	"remote": true, "hybrid": true, "interview": true, "years": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
}

const (
	// minRepeatableLineLen ignores short boilerplate lines when counting
	// repetition.
	minRepeatableLineLen = 25

	// brandTokenFloor is how many unrelated name-like tokens it takes to
	// suggest a stitched-together posting.
	brandTokenFloor = 5
)

var lineSpaceRe = regexp.MustCompile(`\s+`)

// copyPastePosting flags reused or templated content: explicit
// redistribution phrasing, the same substantive line repeated several
// times, many unrelated brand-like tokens with no resolved company, or
// heavy generic self-promotion.
func copyPastePosting(jd *types.Context) types.RuleResult {
	text := strings.TrimSpace(jd.RawText)
	if text == "" {
		return types.RuleResult{}
	}
	lower := strings.ToLower(text)

	for _, p := range redistributionIndicators {
		if strings.Contains(lower, p) {
			return types.RuleResult{
				Score:  0.9,
				Reason: "Job description explicitly indicates copied / redistributed content",
			}
		}
	}

	repeated := countRepeatedLines(text)
	switch {
	case repeated >= 3:
		return types.RuleResult{
			Score:  0.8,
			Reason: "Job description repeats large sections, suggesting reused content",
		}
	case repeated == 2:
		return types.RuleResult{
			Score:  0.6,
			Reason: "Job description contains duplicated sections indicating possible copy-paste",
		}
	}

	if strings.TrimSpace(jd.Company.Name) == "" && countBrandTokens(jd) >= brandTokenFloor {
		return types.RuleResult{
			Score:  0.55,
			Reason: "Multiple unrelated company/brand names suggest reused posting from other sources",
		}
	}

	boilerplateHits := 0
	for _, p := range selfPromotionalPhrases {
		if strings.Contains(lower, p) {
			boilerplateHits++
		}
	}
	if boilerplateHits >= 3 {
		return types.RuleResult{
			Score:  0.45,
			Reason: "Posting appears heavily templated with generic promotional language",
		}
	}

	return types.RuleResult{}
}

// countRepeatedLines counts distinct substantive lines that occur three
// or more times after whitespace normalization.
func countRepeatedLines(text string) int {
	seen := map[string]int{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minRepeatableLineLen {
			continue
		}
		norm := lineSpaceRe.ReplaceAllString(strings.ToLower(line), " ")
		seen[norm]++
	}
	repeated := 0
	for _, c := range seen {
		if c >= 3 {
			repeated++
		}
	}
	return repeated
}

// countBrandTokens counts unique capitalized name-like tokens, skipping
// common posting vocabulary and the parsed company name.
func countBrandTokens(jd *types.Context) int {
	companyLower := strings.ToLower(strings.TrimSpace(jd.Company.Name))

	unique := map[string]bool{}
	for _, tok := range brandTokenRe.FindAllString(jd.RawText, -1) {
		lower := strings.ToLower(tok)
		if lower == companyLower || commonCapitalizedWords[lower] {
			continue
		}
		unique[lower] = true
	}
	return len(unique)
}
