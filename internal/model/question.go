package model

import "strings"

// Category identifies one of the five scoring dimensions of the
// assessment instrument.
type Category string

const (
	CategoryFinancialHealth       Category = "financial_health"
	CategoryOperationalResilience Category = "operational_resilience"
	CategoryMarketPosition        Category = "market_position"
	CategoryComplianceRisk        Category = "compliance_risk"
	CategoryGrowthReadiness       Category = "growth_readiness"
)

// AllCategories returns the five categories in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryFinancialHealth,
		CategoryOperationalResilience,
		CategoryMarketPosition,
		CategoryComplianceRisk,
		CategoryGrowthReadiness,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryFinancialHealth, CategoryOperationalResilience,
		CategoryMarketPosition, CategoryComplianceRisk, CategoryGrowthReadiness:
		return true
	}
	return false
}

// QuestionType determines how a raw answer value is normalized into
// a sub-score.
type QuestionType string

const (
	TypeChoice     QuestionType = "choice"
	TypePercentage QuestionType = "percentage"
	TypeNumber     QuestionType = "number"
	TypeScale      QuestionType = "scale"
	TypeBoolean    QuestionType = "boolean"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeChoice, TypePercentage, TypeNumber, TypeScale, TypeBoolean:
		return true
	}
	return false
}

// ChoiceOption is one selectable answer for a choice question.
type ChoiceOption struct {
	Label string   `json:"label" yaml:"label"`
	Score float64  `json:"score" yaml:"score"`
	Tier  RiskTier `json:"tier" yaml:"tier"`
}

// Question is an immutable catalog entry. Weights are category-relative
// and need not sum to 1; the engine normalizes by weight sum.
type Question struct {
	ID                string         `json:"id" yaml:"id"`
	Text              string         `json:"text" yaml:"text"`
	Category          Category       `json:"category" yaml:"category"`
	Type              QuestionType   `json:"type" yaml:"type"`
	Weight            float64        `json:"weight" yaml:"weight"`
	BusinessKiller    bool           `json:"business_killer" yaml:"business_killer"`
	CriticalThreshold *float64       `json:"critical_threshold,omitempty" yaml:"critical_threshold,omitempty"`
	Options           []ChoiceOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// OptionByLabel looks up a choice option by label, case-insensitively.
func (q Question) OptionByLabel(label string) (ChoiceOption, bool) {
	for _, opt := range q.Options {
		if strings.EqualFold(opt.Label, label) {
			return opt, true
		}
	}
	return ChoiceOption{}, false
}
