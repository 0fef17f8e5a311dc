// Package rules evaluates an ordered, fault-isolated registry of fraud
// heuristics against the structured posting context and aggregates
// their contributions into a single capped risk score.
package rules

import (
	"github.com/jobshield/jobshield/internal/types"
)

// CheckFunc is a single scoring rule. It must treat the context as
// read-only and return a score in [0,1] with an optional reason.
type CheckFunc func(*types.Context) types.RuleResult

// Rule is one registry entry. The registry is assembled once at startup
// and treated as configuration, never mutated at runtime.
type Rule struct {
	Name  string
	Theme string
	Check CheckFunc
}

// Outcome is the aggregated result of an engine run.
type Outcome struct {
	Score   float64
	Reasons []string
}

// Evaluate runs every registered rule in registration order. A failure
// inside a single rule contributes zero and no reason without
// interrupting the remaining rules. Scores are summed, capped at 1.0,
// and rounded to two decimals; reasons keep registration order so the
// final list reads as a coherent narrative. The engine never
// short-circuits: all rules always run and contribute additively.
func Evaluate(jd *types.Context, registry []Rule) Outcome {
	total := 0.0
	reasons := []string{}

	for _, rule := range registry {
		result := runRule(rule, jd)
		total += result.Score
		if result.Reason != "" {
			reasons = append(reasons, result.Reason)
		}
	}

	if total > 1.0 {
		total = 1.0
	}

	return Outcome{
		Score:   types.Round2(total),
		Reasons: reasons,
	}
}

// runRule executes one rule with full fault isolation: a panic folds
// into a zero-contribution result, and out-of-range scores are clamped.
func runRule(rule Rule, jd *types.Context) (result types.RuleResult) {
	defer func() {
		if recover() != nil {
			result = types.RuleResult{}
		}
	}()

	result = rule.Check(jd)
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}
	return result
}
