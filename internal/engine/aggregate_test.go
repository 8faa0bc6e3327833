package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("test", []model.Question{
		{ID: "f1", Text: "f1", Category: model.CategoryFinancialHealth, Type: model.TypeNumber, Weight: 3},
		{ID: "f2", Text: "f2", Category: model.CategoryFinancialHealth, Type: model.TypeNumber, Weight: 1},
		{ID: "m1", Text: "m1", Category: model.CategoryMarketPosition, Type: model.TypeNumber, Weight: 2},
		{ID: "g1", Text: "g1", Category: model.CategoryGrowthReadiness, Type: model.TypeNumber, Weight: 2},
	})
	require.NoError(t, err)
	return c
}

func TestAggregateWeightedMeans(t *testing.T) {
	cat := testCatalog(t)

	scored := []model.ScoredAnswer{
		{QuestionID: "f1", Score: 100, Tier: model.TierLow},
		{QuestionID: "f2", Score: 20, Tier: model.TierHigh},
		{QuestionID: "m1", Score: 50, Tier: model.TierMedium},
	}

	overall, categories := Aggregate(cat, scored)

	// financial: (100*3 + 20*1) / 4 = 80
	assert.InDelta(t, 80, categories[model.CategoryFinancialHealth], 0.001)
	assert.InDelta(t, 50, categories[model.CategoryMarketPosition], 0.001)

	// overall: (100*3 + 20*1 + 50*2) / 6 = 70
	assert.InDelta(t, 70, overall, 0.001)
}

func TestAggregateUnansweredCategoryIsZero(t *testing.T) {
	cat := testCatalog(t)

	_, categories := Aggregate(cat, []model.ScoredAnswer{
		{QuestionID: "f1", Score: 90, Tier: model.TierLow},
	})

	assert.InDelta(t, 0, categories[model.CategoryGrowthReadiness], 0.001)
	assert.InDelta(t, 0, categories[model.CategoryOperationalResilience], 0.001)
	assert.Len(t, categories, 5)
}

func TestAggregateEmpty(t *testing.T) {
	overall, categories := Aggregate(testCatalog(t), nil)
	assert.Zero(t, overall)
	for c, v := range categories {
		assert.Zero(t, v, string(c))
	}
}

func TestAggregateIgnoresUnknownQuestions(t *testing.T) {
	cat := testCatalog(t)

	overall, _ := Aggregate(cat, []model.ScoredAnswer{
		{QuestionID: "f1", Score: 60, Tier: model.TierMedium},
		{QuestionID: "retired_question", Score: 100, Tier: model.TierLow},
	})

	assert.InDelta(t, 60, overall, 0.001)
}
