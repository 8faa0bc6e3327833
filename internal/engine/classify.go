package engine

import (
	"math"

	"github.com/fundlens/readiness-cli/internal/model"
)

// Funding readiness weights over the gating categories.
const (
	fundingWeightFinancial  = 0.4
	fundingWeightCompliance = 0.2
	fundingWeightGrowth     = 0.4
)

// Funding readiness recommendation bands.
const (
	recReadyForInvestment = "ready for investment discussions"
	recAddressKeyIssues   = "address key issues before approaching investors"
	recFocusFundamentals  = "focus on fundamentals before seeking investment"
)

// Fixed improvement strings per failing gating category, plus the
// urgent-issue escalation line.
const (
	improveFinancial  = "Strengthen financial reporting and cash management"
	improveCompliance = "Close outstanding compliance and regulatory gaps"
	improveGrowth     = "Build a credible, documented growth plan"
	improveUrgent     = "Resolve critical business risks immediately"
)

// Classify maps the overall score to a risk band and computes the
// funding-readiness sub-score from the financial, compliance, and
// growth categories.
func Classify(overall float64, categories map[model.Category]float64, issues []model.CriticalIssue) (model.RiskLevel, model.FundingReadiness) {
	level := model.RiskLevelFromScore(overall)

	raw := fundingWeightFinancial*categories[model.CategoryFinancialHealth] +
		fundingWeightCompliance*categories[model.CategoryComplianceRisk] +
		fundingWeightGrowth*categories[model.CategoryGrowthReadiness]
	score := int(math.Round(raw))

	var recommendation string
	switch {
	case score >= 80:
		recommendation = recReadyForInvestment
	case score >= 60:
		recommendation = recAddressKeyIssues
	default:
		recommendation = recFocusFundamentals
	}

	improvements := []string{}
	if categories[model.CategoryFinancialHealth] < 60 {
		improvements = append(improvements, improveFinancial)
	}
	if categories[model.CategoryComplianceRisk] < 60 {
		improvements = append(improvements, improveCompliance)
	}
	if categories[model.CategoryGrowthReadiness] < 60 {
		improvements = append(improvements, improveGrowth)
	}
	for _, iss := range issues {
		if iss.Severity == model.SeverityUrgent {
			improvements = append(improvements, improveUrgent)
			break
		}
	}

	return level, model.FundingReadiness{
		Score:                score,
		Recommendation:       recommendation,
		RequiredImprovements: improvements,
	}
}
