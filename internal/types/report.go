package types

// RuleResult is the outcome of a single rule invocation. A zero-score
// result with an empty reason means the rule did not fire.
type RuleResult struct {
	Score  float64
	Reason string
}

// SkillInsight is the non-scoring skill-keyword summary.
type SkillInsight struct {
	SkillsFound []string `json:"skills_found"`
	SkillCount  int      `json:"skill_count"`
}

// EmptySkillInsight returns a usable zero-value insight. SkillsFound is
// an empty slice, not nil, so the JSON payload always carries an array.
func EmptySkillInsight() SkillInsight {
	return SkillInsight{SkillsFound: []string{}}
}

// Insights groups the non-fraud product insights in the response.
type Insights struct {
	Skills SkillInsight `json:"skills"`
}

// Report is the aggregate analysis result returned to callers.
type Report struct {
	RuleScore  float64  `json:"rule_score"`
	Reasons    []string `json:"reasons"`
	Insights   Insights `json:"insights"`
	Confidence float64  `json:"confidence"`
}
