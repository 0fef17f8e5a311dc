package parsing

import (
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jobshield/jobshield/internal/types"
)

const (
	// minParseLength is the threshold below which the parser returns a
	// raw-text-only context instead of running detectors.
	minParseLength = 30

	// lowConfidence is assigned to contexts built from unusably short
	// input.
	lowConfidence = 0.2

	// baselineConfidence is the aggregate fallback when no detector
	// produced a signal, so low-information postings still reach the
	// rules layer with a usable context.
	baselineConfidence = 0.5
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().-]{8,14}\d`)
)

// ParseContext builds the canonical structured context from normalized
// posting text. It never fails: input shorter than minParseLength
// yields a context carrying only the raw text and a low fixed
// confidence. The five detectors run concurrently; a panic inside one
// degrades that detector to a zero signal without affecting the others.
func ParseContext(text string) *types.Context {
	trimmed := strings.TrimSpace(text)
	out := newContext(trimmed)

	if len(trimmed) < minParseLength {
		out.ConfidenceScore = lowConfidence
		return out
	}

	var (
		experience ExperienceSignal
		location   LocationSignal
		employment EmploymentSignal
		salary     types.Salary
		flow       types.HiringFlow
	)

	g := new(errgroup.Group)
	g.Go(isolated(func() { experience = DetectExperience(trimmed) }))
	g.Go(isolated(func() { location = DetectLocation(trimmed) }))
	g.Go(isolated(func() { employment = DetectEmploymentType(trimmed) }))
	g.Go(isolated(func() { salary = DetectSalary(trimmed) }))
	g.Go(isolated(func() { flow = DetectHiringFlow(trimmed) }))
	_ = g.Wait()

	title := InferTitle(trimmed)
	out.Job = types.JobRole{
		Title:                title,
		Seniority:            InferSeniority(title),
		Location:             location.Location,
		LocationConfidence:   location.LocationConfidence,
		EmploymentType:       employment.Type,
		EmploymentConfidence: employment.Confidence,
		YearsExperience:      experience.YearsMin,
		ExperienceConfidence: experience.Confidence,
		RemoteMode:           location.RemoteMode,
		RemoteConfidence:     location.RemoteConfidence,
	}
	out.Salary = salary
	if flow.Steps == nil {
		flow.Steps = []string{}
	}
	out.HiringFlow = flow

	out.Emails = extractEmails(trimmed)
	out.PhoneNumbers = extractPhoneNumbers(trimmed)
	out.Company = inferCompany(trimmed)

	out.Responsibilities = sectionBullets(trimmed, responsibilityHeadings)
	out.Requirements = sectionBullets(trimmed, requirementHeadings)
	out.Benefits = sectionBullets(trimmed, benefitHeadings)

	out.ConfidenceScore = aggregateConfidence(
		experience.Confidence,
		location.LocationConfidence,
		employment.Confidence,
		flow.Confidence,
		salary.Confidence,
	)

	return out
}

// newContext returns a context with all collections initialized, so
// consumers and the JSON payload never see nil slices.
func newContext(rawText string) *types.Context {
	return &types.Context{
		RawText:          rawText,
		Responsibilities: []string{},
		Requirements:     []string{},
		Benefits:         []string{},
		Emails:           []string{},
		PhoneNumbers:     []string{},
		HiringFlow:       types.HiringFlow{Steps: []string{}},
	}
}

// isolated wraps a detector call so a panic degrades that detector to
// its zero-value signal instead of tearing down the request.
func isolated(fn func()) func() error {
	return func() error {
		defer func() { _ = recover() }()
		fn()
		return nil
	}
}

// aggregateConfidence is the mean of non-zero detector confidences, or
// the baseline when every detector came back empty.
func aggregateConfidence(confidences ...float64) float64 {
	sum := 0.0
	n := 0
	for _, c := range confidences {
		if c > 0 {
			sum += c
			n++
		}
	}
	if n == 0 {
		return baselineConfidence
	}
	return types.Round2(sum / float64(n))
}

// extractEmails returns deduplicated contact addresses in first-seen
// order.
func extractEmails(text string) []string {
	seen := make(map[string]bool)
	emails := []string{}
	for _, m := range emailRe.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, m)
	}
	return emails
}

// extractPhoneNumbers returns deduplicated phone-like digit runs. The
// candidate must hold 10 to 13 digits once separators are stripped, so
// salary figures and years do not qualify.
func extractPhoneNumbers(text string) []string {
	seen := make(map[string]bool)
	phones := []string{}
	for _, m := range phoneRe.FindAllString(text, -1) {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, m)
		if len(digits) < 10 || len(digits) > 13 {
			continue
		}
		if seen[digits] {
			continue
		}
		seen[digits] = true
		phones = append(phones, strings.TrimSpace(m))
	}
	return phones
}

// inferCompany reads the employer name off the first content line when
// that line is short enough to be a label and is not a call to action.
func inferCompany(text string) types.Company {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return types.Company{}
	}

	first, inferredFrom := stripMetaPrefix(lines[0])
	first = strings.TrimSpace(first)
	if first == "" {
		return types.Company{}
	}

	if containsAny(strings.ToLower(first), callToActionWords) {
		return types.Company{}
	}
	if len(strings.Fields(first)) > maxCompanyWords {
		return types.Company{}
	}

	return types.Company{
		Name:         first,
		InferredFrom: inferredFrom,
		Confidence:   0.6,
	}
}
