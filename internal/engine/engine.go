// Package engine implements the investment-readiness scoring pipeline:
// normalize answers, aggregate weighted category scores, detect
// business-killer issues, classify risk and funding readiness, and plan
// remediation. The pipeline is a pure single-pass function of
// (catalog, answers) except for the result timestamp, and is safe to
// invoke concurrently for different submissions.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
)

// StrengthThreshold is the sub-score at or above which an answered
// question is reported as a strength.
const StrengthThreshold = 80.0

// Evaluate runs one answer batch through the full pipeline and returns
// an immutable result. It never returns an error: an empty or fully
// malformed batch yields the degenerate zero result (Critical Risk),
// which is itself a meaningful assessment state.
func Evaluate(cat *catalog.Catalog, batch model.AnswerBatch) *model.AssessmentResult {
	scored := normalizeBatch(cat, batch)

	overall, categories := Aggregate(cat, scored)
	issues := Detect(cat, scored)
	level, readiness := Classify(overall, categories, issues)
	steps := Plan(issues, categories)

	result := &model.AssessmentResult{
		OverallScore:     overall,
		RiskLevel:        level,
		CategoryScores:   categories,
		CriticalIssues:   issues,
		Strengths:        collectStrengths(cat, scored),
		FundingReadiness: readiness,
		NextSteps:        steps,
		CatalogVersion:   cat.Version(),
		GeneratedAt:      time.Now().UTC(),
	}

	zap.L().Debug("engine: evaluated batch",
		zap.String("owner_id", batch.OwnerID),
		zap.Int("answered", len(scored)),
		zap.Float64("overall_score", overall),
		zap.String("risk_level", string(level)),
		zap.Int("critical_issues", len(issues)),
	)

	return result
}

// normalizeBatch walks the catalog in order and scores every answered
// question. Unknown question ids in the batch are ignored; malformed
// answers are excluded. Iterating the catalog rather than the answer
// map keeps downstream ordering deterministic.
func normalizeBatch(cat *catalog.Catalog, batch model.AnswerBatch) []model.ScoredAnswer {
	if len(batch.Answers) == 0 {
		return nil
	}

	scored := make([]model.ScoredAnswer, 0, len(batch.Answers))
	for _, q := range cat.Questions() {
		raw, ok := batch.Answers[q.ID]
		if !ok {
			continue
		}
		sa, ok := Normalize(q, raw)
		if !ok {
			continue
		}
		scored = append(scored, sa)
	}
	return scored
}

func collectStrengths(cat *catalog.Catalog, scored []model.ScoredAnswer) []model.Strength {
	strengths := []model.Strength{}
	for _, sa := range scored {
		if sa.Score < StrengthThreshold {
			continue
		}
		q, ok := cat.ByID(sa.QuestionID)
		if !ok {
			continue
		}
		strengths = append(strengths, model.Strength{
			QuestionID: q.ID,
			Summary:    q.Text,
			Score:      sa.Score,
		})
	}
	return strengths
}
