package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundlens/readiness-cli/internal/model"
)

func TestPlanBucketsBySeverity(t *testing.T) {
	issues := []model.CriticalIssue{
		{QuestionID: "cash_runway", Severity: model.SeverityUrgent, Remedy: "fix cash"},
		{QuestionID: "key_person_dependency", Severity: model.SeverityUrgent, Remedy: "cross-train"},
		{QuestionID: "tax_liabilities", Severity: model.SeverityImportant, Remedy: "settle taxes"},
	}

	steps := Plan(issues, flatCategories(90))

	assert.Equal(t, []string{"fix cash", "cross-train"}, steps.Immediate)
	assert.Equal(t, []string{"settle taxes"}, steps.ShortTerm)
	assert.Empty(t, steps.Strategic)
}

func TestPlanCategoryRecommendations(t *testing.T) {
	t.Run("weak financials add bookkeeping to short term", func(t *testing.T) {
		scores := flatCategories(90)
		scores[model.CategoryFinancialHealth] = 55

		steps := Plan(nil, scores)
		assert.Equal(t, []string{recBookkeeping}, steps.ShortTerm)
	})

	t.Run("weak market position adds differentiation", func(t *testing.T) {
		scores := flatCategories(90)
		scores[model.CategoryMarketPosition] = 50

		steps := Plan(nil, scores)
		assert.Equal(t, []string{recDifferentiation}, steps.Strategic)
	})

	t.Run("growth below 70 adds growth plan", func(t *testing.T) {
		scores := flatCategories(90)
		scores[model.CategoryGrowthReadiness] = 65

		steps := Plan(nil, scores)
		assert.Equal(t, []string{recGrowthPlan}, steps.Strategic)
	})

	t.Run("issue remedies come before category recommendations", func(t *testing.T) {
		scores := flatCategories(90)
		scores[model.CategoryFinancialHealth] = 40

		issues := []model.CriticalIssue{
			{QuestionID: "tax_liabilities", Severity: model.SeverityImportant, Remedy: "settle taxes"},
		}

		steps := Plan(issues, scores)
		assert.Equal(t, []string{"settle taxes", recBookkeeping}, steps.ShortTerm)
	})

	t.Run("healthy profile has empty buckets", func(t *testing.T) {
		steps := Plan(nil, flatCategories(95))
		assert.Empty(t, steps.Immediate)
		assert.Empty(t, steps.ShortTerm)
		assert.Empty(t, steps.Strategic)
		assert.NotNil(t, steps.Immediate)
	})
}
