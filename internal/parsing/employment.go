package parsing

import (
	"regexp"
	"strings"
)

// EmploymentSignal is the employment type detector output.
type EmploymentSignal struct {
	Type       string
	Confidence float64
}

// employmentCategories is an ordered list so detection stays
// deterministic regardless of execution order. Explicit full-time and
// contract matches carry higher confidence than the softer categories.
var employmentCategories = []struct {
	name       string
	confidence float64
	patterns   []*regexp.Regexp
}{
	{
		name:       "full-time",
		confidence: 0.9,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bfull[\s-]?time\b`),
			regexp.MustCompile(`\bpermanent\b`),
			regexp.MustCompile(`\bregular employment\b`),
		},
	},
	{
		name:       "part-time",
		confidence: 0.75,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bpart[\s-]?time\b`),
		},
	},
	{
		name:       "contract",
		confidence: 0.9,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bcontract(ual)?\b`),
			regexp.MustCompile(`\bfixed term\b`),
		},
	},
	{
		name:       "internship",
		confidence: 0.75,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bintern(ship)?\b`),
			regexp.MustCompile(`\btrainee\b`),
		},
	},
	{
		name:       "temporary",
		confidence: 0.75,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\btemporary\b`),
			regexp.MustCompile(`\bfreelance\b`),
			regexp.MustCompile(`\bgig work\b`),
		},
	},
}

// DetectEmploymentType classifies the posting as full-time, part-time,
// contract, internship, or temporary. The first category with the
// highest confidence wins.
func DetectEmploymentType(text string) EmploymentSignal {
	if text == "" {
		return EmploymentSignal{}
	}
	lower := strings.ToLower(text)

	best := EmploymentSignal{}
	for _, category := range employmentCategories {
		for _, re := range category.patterns {
			if !re.MatchString(lower) {
				continue
			}
			if category.confidence > best.Confidence {
				best = EmploymentSignal{Type: category.name, Confidence: category.confidence}
			}
			break
		}
	}

	return best
}
