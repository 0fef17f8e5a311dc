package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// currencySymbols maps currency glyphs to ISO codes.
var currencySymbols = map[string]string{
	"₹": "INR",
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
}

// currencyWordRes matches currency words as whole tokens. Ordered so
// detection is deterministic.
var currencyWordRes = []struct {
	re   *regexp.Regexp
	code string
}{
	{regexp.MustCompile(`\busd\b`), "USD"},
	{regexp.MustCompile(`\bdollars?\b`), "USD"},
	{regexp.MustCompile(`\binr\b`), "INR"},
	{regexp.MustCompile(`\brs\.?\b`), "INR"},
	{regexp.MustCompile(`\brupees\b`), "INR"},
	{regexp.MustCompile(`\beur\b`), "EUR"},
	{regexp.MustCompile(`\beuros?\b`), "EUR"},
	{regexp.MustCompile(`\bgbp\b`), "GBP"},
	{regexp.MustCompile(`\bpounds?\b`), "GBP"},
}

var frequencyRes = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{"month", []*regexp.Regexp{
		regexp.MustCompile(`\bper\s*month\b`),
		regexp.MustCompile(`\bmonthly\b`),
		regexp.MustCompile(`/\s*month`),
	}},
	{"year", []*regexp.Regexp{
		regexp.MustCompile(`\bper\s*year\b`),
		regexp.MustCompile(`\bannually\b`),
		regexp.MustCompile(`\byearly\b`),
		regexp.MustCompile(`/\s*year`),
	}},
	{"hour", []*regexp.Regexp{
		regexp.MustCompile(`\bper\s*hour\b`),
		regexp.MustCompile(`\bhourly\b`),
		regexp.MustCompile(`/\s*hour`),
	}},
}

// salaryAmountRe matches an optional currency symbol, an amount, and an
// optional dash-separated second amount forming a range.
var salaryAmountRe = regexp.MustCompile(`(₹|\$|€|£)?\s*(\d[\d,]*)(?:\s*-\s*(₹|\$|€|£)?\s*(\d[\d,]*))?`)

// DetectSalary extracts structured compensation signals: currency,
// min/max amount, and payment frequency. Confidence accumulates 0.3
// for a currency, 0.4 for an amount, and 0.3 for a frequency, capped
// at 1.0. This detector only extracts; it never judges fraud.
func DetectSalary(text string) types.Salary {
	if text == "" {
		return types.Salary{}
	}

	m := bestSalaryMatch(text)
	if m == nil {
		return types.Salary{}
	}

	symbol := m[1]
	if symbol == "" {
		symbol = m[3]
	}
	currency := detectCurrency(symbol, text)

	amountMin := parseAmount(m[2])
	amountMax := amountMin
	if m[4] != "" {
		amountMax = parseAmount(m[4])
	}
	// Postings sometimes quote ranges high-to-low.
	if amountMin != nil && amountMax != nil && *amountMin > *amountMax {
		amountMin, amountMax = amountMax, amountMin
	}
	frequency := detectFrequency(text)

	confidence := 0.0
	if currency != "" {
		confidence += 0.3
	}
	if amountMin != nil && *amountMin > 0 {
		confidence += 0.4
	}
	if frequency != "" {
		confidence += 0.3
	}

	return types.Salary{
		RawText:    strings.TrimSpace(m[0]),
		Currency:   currency,
		AmountMin:  amountMin,
		AmountMax:  amountMax,
		Frequency:  frequency,
		Confidence: types.ClampConfidence(confidence),
	}
}

// bestSalaryMatch picks the numeric match most likely to be a salary:
// the first match carrying a currency symbol, else the first amount of
// at least four digits, else the first match at all. Bare small numbers
// ("5 years") only win when nothing better exists.
func bestSalaryMatch(text string) []string {
	matches := salaryAmountRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	for _, m := range matches {
		if m[1] != "" || m[3] != "" {
			return m
		}
	}
	for _, m := range matches {
		if amount := parseAmount(m[2]); amount != nil && *amount >= 1000 {
			return m
		}
	}
	return matches[0]
}

func detectCurrency(symbol, text string) string {
	if code, ok := currencySymbols[symbol]; ok {
		return code
	}
	lower := strings.ToLower(text)
	for _, w := range currencyWordRes {
		if w.re.MatchString(lower) {
			return w.code
		}
	}
	return ""
}

func detectFrequency(text string) string {
	lower := strings.ToLower(text)
	for _, freq := range frequencyRes {
		for _, re := range freq.patterns {
			if re.MatchString(lower) {
				return freq.name
			}
		}
	}
	return ""
}

func parseAmount(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
