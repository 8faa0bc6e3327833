package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/config"
	"github.com/fundlens/readiness-cli/internal/engine"
	"github.com/fundlens/readiness-cli/internal/model"
)

func sampleScoredAssessment(t *testing.T) *model.Assessment {
	t.Helper()
	cat := catalog.Default()
	batch := model.AnswerBatch{
		OwnerID: "acme",
		Answers: map[string]any{
			"cash_runway":        "Less than 3 months",
			"churn_rate":         5.0,
			"gross_margin_trend": "Improving",
		},
	}
	return &model.Assessment{
		ID:        "test-id",
		OwnerID:   batch.OwnerID,
		Answers:   batch.Answers,
		Result:    engine.Evaluate(cat, batch),
		CreatedAt: time.Now().UTC(),
	}
}

func TestWriteAssessmentTable(t *testing.T) {
	a := sampleScoredAssessment(t)

	var buf bytes.Buffer
	require.NoError(t, writeAssessmentTable(&buf, a))

	out := buf.String()
	assert.Contains(t, out, "Overall Score:")
	assert.Contains(t, out, "Risk Level:")
	assert.Contains(t, out, "Funding Readiness:")
	assert.Contains(t, out, "financial_health")
	assert.Contains(t, out, "Critical Issues:")
	assert.Contains(t, out, "cash_runway")
}

func TestWriteAssessmentCSV(t *testing.T) {
	a := sampleScoredAssessment(t)

	var buf bytes.Buffer
	require.NoError(t, writeAssessmentCSV(&buf, a))

	out := buf.String()
	assert.Contains(t, out, "section,key,value")
	assert.Contains(t, out, "summary,risk_level,")
	assert.Contains(t, out, "category,financial_health,")
	assert.Contains(t, out, "critical_issue,cash_runway,")
}

func TestWriteAssessmentJSON(t *testing.T) {
	a := sampleScoredAssessment(t)

	var buf bytes.Buffer
	require.NoError(t, writeAssessmentJSON(&buf, a))
	assert.Contains(t, buf.String(), `"overall_score"`)
	assert.Contains(t, buf.String(), `"funding_readiness"`)
}

func TestWriteAssessmentXLSX(t *testing.T) {
	a := sampleScoredAssessment(t)

	var buf bytes.Buffer
	require.NoError(t, writeAssessmentXLSX(&buf, a))
	assert.NotZero(t, buf.Len())
}

func TestWriteAssessmentCSV_NoResult(t *testing.T) {
	var buf bytes.Buffer
	err := writeAssessmentCSV(&buf, &model.Assessment{})
	require.Error(t, err)
}

func TestWriteAssessmentList(t *testing.T) {
	a := sampleScoredAssessment(t)
	as := []model.Assessment{*a}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeAssessmentList(&buf, as, "table"))
		assert.Contains(t, buf.String(), "test-id")
		assert.Contains(t, buf.String(), "acme")
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeAssessmentList(&buf, as, "csv"))
		assert.True(t, strings.HasPrefix(buf.String(), "id,owner_id,overall_score,risk_level,created_at"))
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeAssessmentList(&buf, as, "pdf")
		require.Error(t, err)
	})
}

func TestLoadAnswerFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cash_runway":"3-6 months","churn_rate":12}`), 0o644))

	batch, err := loadAnswerFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3-6 months", batch.Answers["cash_runway"])
	assert.EqualValues(t, 12, batch.Answers["churn_rate"])
}

func TestLoadAnswerFile_Errors(t *testing.T) {
	_, err := loadAnswerFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`not json`), 0o644))
	_, err = loadAnswerFile(bad)
	require.Error(t, err)
}

func TestLoadCatalog_DefaultAndFile(t *testing.T) {
	orig := cfg
	t.Cleanup(func() { cfg = orig })

	cfg = &config.Config{}
	cat, err := loadCatalog()
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultVersion, cat.Version())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data, err := cat.MarshalArtifact()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg = &config.Config{Catalog: config.CatalogConfig{Path: path}}
	loaded, err := loadCatalog()
	require.NoError(t, err)
	assert.Equal(t, cat.Version(), loaded.Version())
	assert.Equal(t, cat.Len(), loaded.Len())
}
