// Package assess coordinates scoring and persistence. It owns the rule
// that persistence is best-effort: a computed assessment is always
// returned to the caller even when saving it fails.
package assess

import (
	"context"

	"go.uber.org/zap"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/engine"
	"github.com/fundlens/readiness-cli/internal/model"
	"github.com/fundlens/readiness-cli/internal/store"
)

// Service evaluates answer batches against a catalog and records the
// outcomes. The store may be nil, in which case results are computed
// but not persisted.
type Service struct {
	catalog *catalog.Catalog
	store   store.Store
}

func NewService(cat *catalog.Catalog, st store.Store) *Service {
	return &Service{catalog: cat, store: st}
}

// Catalog returns the question catalog the service scores against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Run scores a single answer batch and persists the assessment.
// Persistence failures are logged and swallowed; the scored result is
// returned regardless.
func (s *Service) Run(ctx context.Context, batch model.AnswerBatch) *model.Assessment {
	result := engine.Evaluate(s.catalog, batch)

	a := &model.Assessment{
		OwnerID: batch.OwnerID,
		Answers: batch.Answers,
		Result:  result,
	}

	if s.store != nil {
		if err := s.store.SaveAssessment(ctx, a); err != nil {
			zap.L().Error("failed to save assessment",
				zap.String("owner_id", batch.OwnerID),
				zap.Error(err))
		}
	}
	return a
}

// RunBatch scores many answer batches and persists them in one bulk
// write. As with Run, a storage failure never discards the results.
func (s *Service) RunBatch(ctx context.Context, batches []model.AnswerBatch) []model.Assessment {
	assessments := make([]model.Assessment, 0, len(batches))
	for _, b := range batches {
		assessments = append(assessments, model.Assessment{
			OwnerID: b.OwnerID,
			Answers: b.Answers,
			Result:  engine.Evaluate(s.catalog, b),
		})
	}

	if s.store != nil && len(assessments) > 0 {
		if err := s.store.SaveAssessments(ctx, assessments); err != nil {
			zap.L().Error("failed to save assessment batch",
				zap.Int("count", len(assessments)),
				zap.Error(err))
		}
	}
	return assessments
}

// Get retrieves a stored assessment by id.
func (s *Service) Get(ctx context.Context, id string) (*model.Assessment, error) {
	return s.store.GetAssessment(ctx, id)
}

// List retrieves stored assessments matching the filter.
func (s *Service) List(ctx context.Context, filter store.Filter) ([]model.Assessment, error) {
	return s.store.ListAssessments(ctx, filter)
}
