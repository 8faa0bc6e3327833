package engine

import "github.com/fundlens/readiness-cli/internal/model"

// Fixed category-driven recommendations.
const (
	recBookkeeping     = "Move to monthly management accounts prepared by a professional bookkeeper"
	recDifferentiation = "Develop and document a differentiation strategy against the top three competitors"
	recGrowthPlan      = "Produce a 12-month growth plan covering hiring, capacity, and funding milestones"
)

// Plan buckets critical-issue remedies and category-driven
// recommendations into immediate, short-term, and strategic horizons.
// Issue order from Detect is preserved within each bucket.
func Plan(issues []model.CriticalIssue, categories map[model.Category]float64) model.NextSteps {
	steps := model.NextSteps{
		Immediate: []string{},
		ShortTerm: []string{},
		Strategic: []string{},
	}

	for _, iss := range issues {
		switch iss.Severity {
		case model.SeverityUrgent:
			steps.Immediate = append(steps.Immediate, iss.Remedy)
		case model.SeverityImportant:
			steps.ShortTerm = append(steps.ShortTerm, iss.Remedy)
		}
	}

	if categories[model.CategoryFinancialHealth] < 60 {
		steps.ShortTerm = append(steps.ShortTerm, recBookkeeping)
	}
	if categories[model.CategoryMarketPosition] < 60 {
		steps.Strategic = append(steps.Strategic, recDifferentiation)
	}
	if categories[model.CategoryGrowthReadiness] < 70 {
		steps.Strategic = append(steps.Strategic, recGrowthPlan)
	}

	return steps
}
