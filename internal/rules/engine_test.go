package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobshield/jobshield/internal/types"
)

func textContext(raw string) *types.Context {
	return &types.Context{
		RawText:          raw,
		Responsibilities: []string{},
		Requirements:     []string{},
		Benefits:         []string{},
		Emails:           []string{},
		PhoneNumbers:     []string{},
		HiringFlow:       types.HiringFlow{Steps: []string{}},
	}
}

func fixedRule(name string, score float64, reason string) Rule {
	return Rule{
		Name: name,
		Check: func(*types.Context) types.RuleResult {
			return types.RuleResult{Score: score, Reason: reason}
		},
	}
}

func TestEvaluateSumsAndCaps(t *testing.T) {
	registry := []Rule{
		fixedRule("a", 0.5, "first"),
		fixedRule("b", 0.4, "second"),
		fixedRule("c", 0.3, "third"),
	}

	out := Evaluate(textContext("x"), registry)

	assert.Equal(t, 1.0, out.Score, "sum above 1.0 must be capped")
	assert.Equal(t, []string{"first", "second", "third"}, out.Reasons, "reasons keep registration order")
}

func TestEvaluateRounding(t *testing.T) {
	registry := []Rule{
		fixedRule("a", 0.333, "a"),
		fixedRule("b", 0.333, "b"),
	}

	out := Evaluate(textContext("x"), registry)
	assert.Equal(t, 0.67, out.Score)
}

func TestEvaluateIsolatesPanickingRule(t *testing.T) {
	registry := []Rule{
		fixedRule("before", 0.3, "before"),
		{
			Name: "broken",
			Check: func(*types.Context) types.RuleResult {
				panic("rule blew up")
			},
		},
		fixedRule("after", 0.2, "after"),
	}

	out := Evaluate(textContext("x"), registry)

	assert.Equal(t, 0.5, out.Score, "panicking rule contributes zero")
	assert.Equal(t, []string{"before", "after"}, out.Reasons)
}

func TestEvaluateClampsOutOfRangeScores(t *testing.T) {
	registry := []Rule{
		fixedRule("negative", -0.5, ""),
		fixedRule("oversized", 3.0, "huge"),
	}

	out := Evaluate(textContext("x"), registry)
	assert.Equal(t, 1.0, out.Score, "per-rule scores are clamped to [0,1] before summing")
}

func TestEvaluateEmptyRegistry(t *testing.T) {
	out := Evaluate(textContext("x"), nil)
	assert.Zero(t, out.Score)
	assert.Empty(t, out.Reasons)
	assert.NotNil(t, out.Reasons, "reasons must serialize as an empty array, not null")
}

func TestRegistryOrderIsStable(t *testing.T) {
	names := []string{}
	for _, r := range Registry() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"urgent-language",
		"urgency-density",
		"unrealistic-salary",
		"role-salary-mismatch",
		"missing-company-identity",
		"contact-trust",
		"generic-job-title",
		"hiring-process-absence",
		"over-promising",
		"language-inconsistency",
		"suspicious-application-flow",
		"copy-paste-posting",
	}, names)
}
