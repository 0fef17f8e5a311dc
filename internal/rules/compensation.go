package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// salaryThresholds holds heuristic monthly cutoffs for a currency.
// The calibration is empirical, carried over as configurable constants
// with no principled derivation claimed.
type salaryThresholds struct {
	High   float64
	Medium float64
}

var currencyMonthlyThresholds = map[string]salaryThresholds{
	"INR": {High: 70000, Medium: 40000},
	"USD": {High: 8000, Medium: 5000},
	"EUR": {High: 7000, Medium: 4500},
	"GBP": {High: 6500, Medium: 4000},
}

var defaultMonthlyThresholds = salaryThresholds{High: 70000, Medium: 40000}

// monthlyAmount normalizes a detected salary to a monthly figure so the
// thresholds compare like with like.
func monthlyAmount(s types.Salary) (float64, bool) {
	amount, ok := s.Amount()
	if !ok {
		return 0, false
	}
	switch s.Frequency {
	case "year":
		return amount / 12, true
	case "hour":
		return amount * 160, true
	case "week":
		return amount * 4, true
	case "day":
		return amount * 22, true
	default:
		return amount, true
	}
}

func thresholdsFor(currency string) salaryThresholds {
	if th, ok := currencyMonthlyThresholds[currency]; ok {
		return th
	}
	return defaultMonthlyThresholds
}

var positiveExperienceRes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d+\+?\s*(years|yrs)\b`),
	regexp.MustCompile(`\bminimum\s+\d+\s*(years|yrs)\b`),
	regexp.MustCompile(`\brequires?\s+\d+\s*(years|yrs)\b`),
}

var negativeExperienceRes = []*regexp.Regexp{
	regexp.MustCompile(`\bno experience\b`),
	regexp.MustCompile(`\bno experience required\b`),
	regexp.MustCompile(`\bfreshers?\b`),
	regexp.MustCompile(`\banyone can apply\b`),
}

// fallbackSalaryRe backs up the structured salary when the detector
// found nothing usable.
var fallbackSalaryRe = regexp.MustCompile(`(₹|\$)\s?([\d,]{3,})`)

// unrealisticSalary flags compensation that is too high for the stated
// experience bar: a high monthly figure paired with explicit
// no-experience language, or with no credible experience requirement
// at all.
func unrealisticSalary(jd *types.Context) types.RuleResult {
	lower := strings.ToLower(jd.RawText)

	monthly, currency, ok := salaryFigure(jd)
	if !ok {
		return types.RuleResult{}
	}
	th := thresholdsFor(currency)

	hasPositive := anyMatch(positiveExperienceRes, lower)
	hasNegative := anyMatch(negativeExperienceRes, lower)

	switch {
	case monthly >= th.High && hasNegative:
		return types.RuleResult{
			Score:  0.7,
			Reason: "High salary promised despite explicit no-experience requirement",
		}
	case monthly >= th.High && !hasPositive:
		return types.RuleResult{
			Score:  0.6,
			Reason: "High salary with no credible experience requirement",
		}
	case monthly >= th.Medium && hasNegative:
		return types.RuleResult{
			Score:  0.45,
			Reason: "Salary appears inflated for a role requiring no experience",
		}
	}

	return types.RuleResult{}
}

// roleSalaryMismatch flags a mismatch between the inferred seniority of
// the title and the offered pay.
func roleSalaryMismatch(jd *types.Context) types.RuleResult {
	lower := strings.ToLower(jd.RawText)

	monthly, currency, ok := salaryFigure(jd)
	if !ok {
		return types.RuleResult{}
	}
	th := thresholdsFor(currency)

	isHigh := monthly >= th.High
	isMedium := monthly >= th.Medium

	switch {
	case jd.Job.Seniority == "low" && isHigh:
		return types.RuleResult{
			Score:  0.85,
			Reason: "Entry-level role claims unusually high salary",
		}
	case jd.Job.Seniority == "low" && isMedium:
		return types.RuleResult{
			Score:  0.6,
			Reason: "Entry-level role salary appears suspiciously inflated",
		}
	case jd.Job.Seniority == "mid" && isHigh && strings.Contains(lower, "no experience"):
		return types.RuleResult{
			Score:  0.75,
			Reason: "High salary offered despite no strong seniority requirement",
		}
	}

	return types.RuleResult{}
}

// salaryFigure returns the monthly-normalized salary amount, preferring
// the structured detection and falling back to a raw-text scan.
func salaryFigure(jd *types.Context) (float64, string, bool) {
	if monthly, ok := monthlyAmount(jd.Salary); ok {
		return monthly, jd.Salary.Currency, true
	}

	m := fallbackSalaryRe.FindStringSubmatch(jd.RawText)
	if m == nil {
		return 0, "", false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return 0, "", false
	}
	currency := "INR"
	if m[1] == "$" {
		currency = "USD"
	}
	return amount, currency, true
}

func anyMatch(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
