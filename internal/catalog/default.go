package catalog

import "github.com/fundlens/readiness-cli/internal/model"

// DefaultVersion tags the built-in question battery.
const DefaultVersion = "2026.1"

func threshold(v float64) *float64 { return &v }

// Default returns the built-in catalog. It is validated at package
// init; a defect in the static data is a programming error.
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultQuestions())
	if err != nil {
		panic(err)
	}
	return c
}

// defaultQuestions is the fixed battery: five categories, weighted
// per-question, with business-killers marked.
func defaultQuestions() []model.Question {
	return []model.Question{
		// Financial health.
		{
			ID:             "cash_runway",
			Text:           "How many months of cash runway does the business hold at current burn?",
			Category:       model.CategoryFinancialHealth,
			Type:           model.TypeChoice,
			Weight:         3,
			BusinessKiller: true,
			Options: []model.ChoiceOption{
				{Label: "Less than 3 months", Score: 10, Tier: model.TierCritical},
				{Label: "3-6 months", Score: 40, Tier: model.TierHigh},
				{Label: "6-12 months", Score: 70, Tier: model.TierMedium},
				{Label: "More than 12 months", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:                "revenue_concentration",
			Text:              "What percentage of revenue comes from the single largest customer?",
			Category:          model.CategoryFinancialHealth,
			Type:              model.TypePercentage,
			Weight:            2.5,
			BusinessKiller:    true,
			CriticalThreshold: threshold(50),
		},
		{
			ID:       "gross_margin_trend",
			Text:     "How has gross margin moved over the last four quarters?",
			Category: model.CategoryFinancialHealth,
			Type:     model.TypeChoice,
			Weight:   2,
			Options: []model.ChoiceOption{
				{Label: "Declining", Score: 25, Tier: model.TierHigh},
				{Label: "Flat", Score: 55, Tier: model.TierMedium},
				{Label: "Improving", Score: 85, Tier: model.TierLow},
				{Label: "Improving strongly", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:       "monthly_close",
			Text:     "Are the books closed and reviewed every month?",
			Category: model.CategoryFinancialHealth,
			Type:     model.TypeBoolean,
			Weight:   1.5,
		},

		// Operational resilience.
		{
			ID:             "key_person_dependency",
			Text:           "How dependent are critical operations on specific individuals?",
			Category:       model.CategoryOperationalResilience,
			Type:           model.TypeChoice,
			Weight:         2.5,
			BusinessKiller: true,
			Options: []model.ChoiceOption{
				{Label: "One person handles all critical functions", Score: 15, Tier: model.TierCritical},
				{Label: "Two people cover critical functions", Score: 45, Tier: model.TierHigh},
				{Label: "Most functions have documented coverage", Score: 75, Tier: model.TierMedium},
				{Label: "Full cross-training and documentation", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:                "supplier_concentration",
			Text:              "What percentage of critical inputs comes from a single supplier?",
			Category:          model.CategoryOperationalResilience,
			Type:              model.TypePercentage,
			Weight:            2,
			BusinessKiller:    true,
			CriticalThreshold: threshold(60),
		},
		{
			ID:       "process_documentation",
			Text:     "How well documented are core operating processes? (1 = undocumented, 5 = fully documented)",
			Category: model.CategoryOperationalResilience,
			Type:     model.TypeScale,
			Weight:   1.5,
		},
		{
			ID:       "incident_recovery_plan",
			Text:     "Is there a tested plan for recovering from a major operational incident?",
			Category: model.CategoryOperationalResilience,
			Type:     model.TypeBoolean,
			Weight:   1.5,
		},

		// Market position.
		{
			ID:       "competitive_differentiation",
			Text:     "How defensible is the offering against competitors?",
			Category: model.CategoryMarketPosition,
			Type:     model.TypeChoice,
			Weight:   2,
			Options: []model.ChoiceOption{
				{Label: "No clear differentiation", Score: 20, Tier: model.TierHigh},
				{Label: "Some differentiation, easily copied", Score: 50, Tier: model.TierMedium},
				{Label: "Strong differentiation", Score: 80, Tier: model.TierLow},
				{Label: "Defensible moat", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:                "churn_rate",
			Text:              "What is the annual customer churn rate?",
			Category:          model.CategoryMarketPosition,
			Type:              model.TypePercentage,
			Weight:            2,
			CriticalThreshold: threshold(30),
		},
		{
			ID:       "market_trajectory",
			Text:     "How is the addressable market moving?",
			Category: model.CategoryMarketPosition,
			Type:     model.TypeChoice,
			Weight:   1.5,
			Options: []model.ChoiceOption{
				{Label: "Shrinking", Score: 20, Tier: model.TierHigh},
				{Label: "Flat", Score: 50, Tier: model.TierMedium},
				{Label: "Growing", Score: 80, Tier: model.TierLow},
				{Label: "Growing rapidly", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:       "brand_recognition",
			Text:     "How recognized is the brand within its target market? (1 = unknown, 5 = category leader)",
			Category: model.CategoryMarketPosition,
			Type:     model.TypeScale,
			Weight:   1,
		},

		// Compliance risk.
		{
			ID:             "regulatory_filings",
			Text:           "Are all statutory and regulatory filings current?",
			Category:       model.CategoryComplianceRisk,
			Type:           model.TypeBoolean,
			Weight:         2.5,
			BusinessKiller: true,
		},
		{
			ID:             "tax_liabilities",
			Text:           "What is the status of tax liabilities?",
			Category:       model.CategoryComplianceRisk,
			Type:           model.TypeChoice,
			Weight:         2.5,
			BusinessKiller: true,
			Options: []model.ChoiceOption{
				{Label: "Significant overdue liabilities", Score: 10, Tier: model.TierCritical},
				{Label: "Payment plan in place", Score: 40, Tier: model.TierHigh},
				{Label: "Minor items being resolved", Score: 70, Tier: model.TierMedium},
				{Label: "Fully current", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:       "contracts_reviewed",
			Text:     "Have all material contracts been reviewed by counsel in the last two years?",
			Category: model.CategoryComplianceRisk,
			Type:     model.TypeBoolean,
			Weight:   1.5,
		},
		{
			ID:       "data_protection",
			Text:     "How mature are data protection and privacy controls? (1 = none, 5 = audited)",
			Category: model.CategoryComplianceRisk,
			Type:     model.TypeScale,
			Weight:   1.5,
		},

		// Growth readiness.
		{
			ID:       "scalable_systems",
			Text:     "How well would current systems handle a doubling of volume? (1 = would break, 5 = headroom to spare)",
			Category: model.CategoryGrowthReadiness,
			Type:     model.TypeScale,
			Weight:   2,
		},
		{
			ID:       "growth_capital_plan",
			Text:     "How developed is the plan for deploying growth capital?",
			Category: model.CategoryGrowthReadiness,
			Type:     model.TypeChoice,
			Weight:   2,
			Options: []model.ChoiceOption{
				{Label: "No plan", Score: 20, Tier: model.TierHigh},
				{Label: "Rough outline", Score: 50, Tier: model.TierMedium},
				{Label: "Documented plan", Score: 80, Tier: model.TierLow},
				{Label: "Board-approved plan with milestones", Score: 100, Tier: model.TierLow},
			},
		},
		{
			ID:       "hiring_pipeline",
			Text:     "Is there an active pipeline for the next three critical hires?",
			Category: model.CategoryGrowthReadiness,
			Type:     model.TypeBoolean,
			Weight:   1.5,
		},
		{
			ID:                "capacity_utilization",
			Text:              "What percentage of current delivery capacity is already committed?",
			Category:          model.CategoryGrowthReadiness,
			Type:              model.TypePercentage,
			Weight:            1.5,
			CriticalThreshold: threshold(90),
		},
	}
}
