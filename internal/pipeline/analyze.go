// Package pipeline wires extraction, normalization, parsing, rule
// evaluation, and insight extraction into the single analysis entry
// point shared by the HTTP server and the CLI.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jobshield/jobshield/internal/extract"
	"github.com/jobshield/jobshield/internal/logger"
	"github.com/jobshield/jobshield/internal/normalize"
	"github.com/jobshield/jobshield/internal/parsing"
	"github.com/jobshield/jobshield/internal/rules"
	"github.com/jobshield/jobshield/internal/skills"
	"github.com/jobshield/jobshield/internal/types"
)

// invalidInputReason is the single explanation carried by the
// distinguished invalid-input report.
const invalidInputReason = "Invalid analysis input: job text or page markup required"

// StageError reports which pipeline stage failed and wraps the
// underlying cause.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsContentError reports whether err stems from unusable input content
// (nothing extractable, or text below the usable floor) rather than an
// internal fault. The server maps these to a client error status.
func IsContentError(err error) bool {
	return errors.Is(err, extract.ErrNoContent) || errors.Is(err, normalize.ErrTooShort)
}

// Options carries one analysis request. Exactly one of Text and Markup
// is expected; when both are set, Text wins and Markup is ignored.
type Options struct {
	Text   string
	Markup string
	Logger *zap.Logger
}

// Analyze runs the full screening pipeline. Markup goes through
// extraction and the length-gated normalizer; pasted text is cleaned
// without the length gate, since short pastes are still worth
// analyzing. Empty input yields the distinguished invalid-input report
// with no error. Extraction or normalization failure returns a
// StageError; everything downstream of normalization never fails.
func Analyze(opts Options) (*types.Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	text := strings.TrimSpace(opts.Text)
	markup := strings.TrimSpace(opts.Markup)

	if text == "" && markup == "" {
		return InvalidInputReport(), nil
	}

	if text == "" {
		extracted, err := extract.JobText(markup)
		if err != nil {
			return nil, &StageError{Stage: "extraction", Err: err}
		}
		normalized, err := normalize.Text(extracted)
		if err != nil {
			return nil, &StageError{Stage: "normalization", Err: err}
		}
		text = normalized
	} else {
		text = normalize.Clean(text)
	}

	jd := parsing.ParseContext(text)
	outcome := rules.Evaluate(jd, rules.Registry())
	insight := skills.FromContext(jd)

	log.Debug("analysis complete",
		zap.Float64("rule_score", outcome.Score),
		zap.Int("reasons", len(outcome.Reasons)),
		zap.Int("skills", insight.SkillCount),
		zap.Float64("confidence", jd.ConfidenceScore),
		zap.String("text", logger.TruncateForLog(text, 120)),
	)

	return &types.Report{
		RuleScore:  outcome.Score,
		Reasons:    outcome.Reasons,
		Insights:   types.Insights{Skills: insight},
		Confidence: jd.ConfidenceScore,
	}, nil
}

// InvalidInputReport is the fixed response for requests carrying no
// usable input at all: zero score, exactly one reason, empty insights.
func InvalidInputReport() *types.Report {
	return &types.Report{
		RuleScore: 0.0,
		Reasons:   []string{invalidInputReason},
		Insights:  types.Insights{Skills: types.EmptySkillInsight()},
	}
}
