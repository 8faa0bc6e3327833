package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
)

func TestDetect(t *testing.T) {
	cat := catalog.Default()

	t.Run("critical tier produces one urgent issue", func(t *testing.T) {
		issues := Detect(cat, []model.ScoredAnswer{
			{QuestionID: "cash_runway", Score: 10, Tier: model.TierCritical},
		})

		require.Len(t, issues, 1)
		assert.Equal(t, model.SeverityUrgent, issues[0].Severity)
		assert.Equal(t, "Immediate", issues[0].Timeframe)
		assert.Equal(t, model.CategoryFinancialHealth, issues[0].Category)
		assert.NotEmpty(t, issues[0].Impact)
		assert.NotEmpty(t, issues[0].Remedy)
	})

	t.Run("high tier produces an important issue", func(t *testing.T) {
		issues := Detect(cat, []model.ScoredAnswer{
			{QuestionID: "cash_runway", Score: 40, Tier: model.TierHigh},
		})

		require.Len(t, issues, 1)
		assert.Equal(t, model.SeverityImportant, issues[0].Severity)
		assert.Equal(t, "30 days", issues[0].Timeframe)
	})

	t.Run("low and medium tiers never surface", func(t *testing.T) {
		issues := Detect(cat, []model.ScoredAnswer{
			{QuestionID: "cash_runway", Score: 100, Tier: model.TierLow},
			{QuestionID: "key_person_dependency", Score: 75, Tier: model.TierMedium},
		})
		assert.Empty(t, issues)
	})

	t.Run("non-killers never surface", func(t *testing.T) {
		issues := Detect(cat, []model.ScoredAnswer{
			{QuestionID: "gross_margin_trend", Score: 25, Tier: model.TierHigh},
			{QuestionID: "brand_recognition", Score: 20, Tier: model.TierHigh},
		})
		assert.Empty(t, issues)
	})

	t.Run("urgent before important, then by descending weight", func(t *testing.T) {
		issues := Detect(cat, []model.ScoredAnswer{
			{QuestionID: "supplier_concentration", Score: 30, Tier: model.TierHigh},     // important, weight 2
			{QuestionID: "tax_liabilities", Score: 40, Tier: model.TierHigh},            // important, weight 2.5
			{QuestionID: "key_person_dependency", Score: 15, Tier: model.TierCritical},  // urgent, weight 2.5
			{QuestionID: "cash_runway", Score: 10, Tier: model.TierCritical},            // urgent, weight 3
		})

		require.Len(t, issues, 4)
		assert.Equal(t, "cash_runway", issues[0].QuestionID)
		assert.Equal(t, "key_person_dependency", issues[1].QuestionID)
		assert.Equal(t, "tax_liabilities", issues[2].QuestionID)
		assert.Equal(t, "supplier_concentration", issues[3].QuestionID)
	})
}
