package assess

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
	"github.com/fundlens/readiness-cli/internal/store"
)

// fakeStore records calls and can be told to fail.
type fakeStore struct {
	saved      []model.Assessment
	failSave   bool
	listResult []model.Assessment
}

func (f *fakeStore) SaveAssessment(_ context.Context, a *model.Assessment) error {
	if f.failSave {
		return eris.New("boom")
	}
	f.saved = append(f.saved, *a)
	return nil
}

func (f *fakeStore) SaveAssessments(_ context.Context, as []model.Assessment) error {
	if f.failSave {
		return eris.New("boom")
	}
	f.saved = append(f.saved, as...)
	return nil
}

func (f *fakeStore) GetAssessment(_ context.Context, id string) (*model.Assessment, error) {
	for i := range f.saved {
		if f.saved[i].ID == id {
			return &f.saved[i], nil
		}
	}
	return nil, eris.Errorf("assessment not found: %s", id)
}

func (f *fakeStore) ListAssessments(_ context.Context, _ store.Filter) ([]model.Assessment, error) {
	return f.listResult, nil
}

func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Close() error                  { return nil }

func TestServiceRun_Persists(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(catalog.Default(), fs)

	batch := model.AnswerBatch{
		OwnerID: "owner-1",
		Answers: map[string]any{"cash_runway": "More than 12 months"},
	}
	a := svc.Run(context.Background(), batch)

	require.NotNil(t, a.Result)
	assert.Equal(t, "owner-1", a.OwnerID)
	require.Len(t, fs.saved, 1)
	assert.Equal(t, "owner-1", fs.saved[0].OwnerID)
}

func TestServiceRun_StoreFailureDoesNotDropResult(t *testing.T) {
	fs := &fakeStore{failSave: true}
	svc := NewService(catalog.Default(), fs)

	a := svc.Run(context.Background(), model.AnswerBatch{
		OwnerID: "owner-1",
		Answers: map[string]any{"cash_runway": "Less than 3 months"},
	})

	require.NotNil(t, a.Result)
	assert.NotEmpty(t, a.Result.CriticalIssues)
	assert.Empty(t, fs.saved)
}

func TestServiceRun_NilStore(t *testing.T) {
	svc := NewService(catalog.Default(), nil)

	a := svc.Run(context.Background(), model.AnswerBatch{
		Answers: map[string]any{"regulatory_filings": true},
	})
	require.NotNil(t, a.Result)
}

func TestServiceRunBatch(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(catalog.Default(), fs)

	batches := []model.AnswerBatch{
		{OwnerID: "a", Answers: map[string]any{"churn_rate": 5.0}},
		{OwnerID: "b", Answers: map[string]any{"churn_rate": 45.0}},
	}
	got := svc.RunBatch(context.Background(), batches)

	require.Len(t, got, 2)
	assert.Len(t, fs.saved, 2)
	require.NotNil(t, got[0].Result)
	require.NotNil(t, got[1].Result)
	assert.Greater(t, got[0].Result.OverallScore, got[1].Result.OverallScore)
}

func TestServiceRunBatch_Empty(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(catalog.Default(), fs)

	got := svc.RunBatch(context.Background(), nil)
	assert.Empty(t, got)
	assert.Empty(t, fs.saved)
}
