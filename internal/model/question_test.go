package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionByLabel(t *testing.T) {
	q := Question{
		ID:   "cash_runway",
		Type: TypeChoice,
		Options: []ChoiceOption{
			{Label: "Less than 3 months", Score: 10, Tier: TierCritical},
			{Label: "3-6 months", Score: 40, Tier: TierHigh},
			{Label: "More than 12 months", Score: 100, Tier: TierLow},
		},
	}

	t.Run("exact match", func(t *testing.T) {
		opt, ok := q.OptionByLabel("3-6 months")
		assert.True(t, ok)
		assert.Equal(t, 40.0, opt.Score)
	})

	t.Run("case insensitive", func(t *testing.T) {
		opt, ok := q.OptionByLabel("less than 3 MONTHS")
		assert.True(t, ok)
		assert.Equal(t, TierCritical, opt.Tier)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := q.OptionByLabel("7 months")
		assert.False(t, ok)
	})
}

func TestCategoryValid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("marketing").Valid())
	assert.Len(t, AllCategories(), 5)
}

func TestQuestionTypeValid(t *testing.T) {
	for _, qt := range []QuestionType{TypeChoice, TypePercentage, TypeNumber, TypeScale, TypeBoolean} {
		assert.True(t, qt.Valid(), string(qt))
	}
	assert.False(t, QuestionType("essay").Valid())
}
