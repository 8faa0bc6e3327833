package engine

import (
	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
)

// accumulator folds weighted sub-scores. Kept immutable per fold step
// so categories never share state.
type accumulator struct {
	weighted float64
	weight   float64
}

func (a accumulator) add(score, weight float64) accumulator {
	return accumulator{weighted: a.weighted + score*weight, weight: a.weight + weight}
}

func (a accumulator) mean() float64 {
	if a.weight <= 0 {
		return 0
	}
	return a.weighted / a.weight
}

// Aggregate computes the overall weighted score and a normalized score
// per category. Only answered questions participate; a category with no
// answered questions reports 0. The overall score uses each question's
// raw weight across the whole instrument, so category membership does
// not re-normalize cross-category weights.
func Aggregate(cat *catalog.Catalog, scored []model.ScoredAnswer) (float64, map[model.Category]float64) {
	byCategory := make(map[model.Category]accumulator, 5)
	var total accumulator

	for _, sa := range scored {
		q, ok := cat.ByID(sa.QuestionID)
		if !ok {
			continue
		}
		byCategory[q.Category] = byCategory[q.Category].add(sa.Score, q.Weight)
		total = total.add(sa.Score, q.Weight)
	}

	categoryScores := make(map[model.Category]float64, 5)
	for _, c := range model.AllCategories() {
		categoryScores[c] = byCategory[c].mean()
	}

	return total.mean(), categoryScores
}
