package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlens/readiness-cli/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, DefaultVersion, c.Version())
	assert.Equal(t, 20, c.Len())

	t.Run("covers every category", func(t *testing.T) {
		seen := map[model.Category]int{}
		for _, q := range c.Questions() {
			seen[q.Category]++
		}
		for _, cat := range model.AllCategories() {
			assert.Positive(t, seen[cat], string(cat))
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		q, ok := c.ByID("cash_runway")
		require.True(t, ok)
		assert.True(t, q.BusinessKiller)
		assert.Equal(t, model.CategoryFinancialHealth, q.Category)

		_, ok = c.ByID("no_such_question")
		assert.False(t, ok)
	})

	t.Run("business killers have issue text", func(t *testing.T) {
		for _, q := range c.Questions() {
			if !q.BusinessKiller {
				continue
			}
			txt := TextFor(q)
			assert.NotEqual(t, genericImpact, txt.Impact, q.ID)
		}
	})
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		questions []model.Question
		wantErr   string
	}{
		{"empty", "v1", nil, "at least one question"},
		{"missing version", "", []model.Question{validQuestion("q1")}, "version must be set"},
		{
			"duplicate ids", "v1",
			[]model.Question{validQuestion("q1"), validQuestion("q1")},
			"duplicate question id",
		},
		{
			"bad category", "v1",
			[]model.Question{{ID: "q1", Category: "vibes", Type: model.TypeBoolean, Weight: 1}},
			"unknown category",
		},
		{
			"zero weight", "v1",
			[]model.Question{{ID: "q1", Category: model.CategoryFinancialHealth, Type: model.TypeBoolean, Weight: 0}},
			"weight must be > 0",
		},
		{
			"choice without options", "v1",
			[]model.Question{{ID: "q1", Category: model.CategoryFinancialHealth, Type: model.TypeChoice, Weight: 1}},
			"no options",
		},
		{
			"option score out of range", "v1",
			[]model.Question{{
				ID: "q1", Category: model.CategoryFinancialHealth, Type: model.TypeChoice, Weight: 1,
				Options: []model.ChoiceOption{{Label: "a", Score: 150, Tier: model.TierLow}},
			}},
			"out of range",
		},
		{
			"options on boolean", "v1",
			[]model.Question{{
				ID: "q1", Category: model.CategoryFinancialHealth, Type: model.TypeBoolean, Weight: 1,
				Options: []model.ChoiceOption{{Label: "yes", Score: 100, Tier: model.TierLow}},
			}},
			"only allowed on choice",
		},
		{
			"threshold on scale", "v1",
			[]model.Question{{
				ID: "q1", Category: model.CategoryFinancialHealth, Type: model.TypeScale, Weight: 1,
				CriticalThreshold: threshold(3),
			}},
			"critical_threshold only allowed",
		},
		{
			"killer without issue text", "v1",
			[]model.Question{{
				ID: "mystery_killer", Category: model.CategoryFinancialHealth,
				Type: model.TypeBoolean, Weight: 1, BusinessKiller: true,
			}},
			"no issue text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.version, tt.questions)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func validQuestion(id string) model.Question {
	return model.Question{
		ID:       id,
		Text:     "test question",
		Category: model.CategoryFinancialHealth,
		Type:     model.TypeBoolean,
		Weight:   1,
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("round trip through export", func(t *testing.T) {
		data, err := Default().MarshalArtifact()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		loaded, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultVersion, loaded.Version())
		assert.Equal(t, Default().Len(), loaded.Len())

		q, ok := loaded.ByID("revenue_concentration")
		require.True(t, ok)
		require.NotNil(t, q.CriticalThreshold)
		assert.Equal(t, 50.0, *q.CriticalThreshold)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("questions: {nope"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestTextForFallback(t *testing.T) {
	q := model.Question{ID: "not_in_table"}
	txt := TextFor(q)
	assert.Equal(t, genericImpact, txt.Impact)
	assert.Equal(t, genericRemedy, txt.Remedy)
}
