package model

import "time"

// AnswerBatch is one completed submission: a mapping from question id
// to raw value plus a caller-supplied owner identifier. The owner id is
// attribution only and never participates in scoring.
type AnswerBatch struct {
	OwnerID string         `json:"owner_id"`
	Answers map[string]any `json:"answers"`
}

// ScoredAnswer is the normalized form of one answer: a 0-100 sub-score
// and its qualitative risk tier.
type ScoredAnswer struct {
	QuestionID string   `json:"question_id"`
	Score      float64  `json:"score"`
	Tier       RiskTier `json:"tier"`
}

// CriticalIssue is synthesized when a business-killer question lands in
// the high or critical tier.
type CriticalIssue struct {
	QuestionID string   `json:"question_id"`
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Impact     string   `json:"impact"`
	Remedy     string   `json:"remedy"`
	Timeframe  string   `json:"timeframe"`
}

// Strength records an answered question that scored at or above the
// strength threshold.
type Strength struct {
	QuestionID string  `json:"question_id"`
	Summary    string  `json:"summary"`
	Score      float64 `json:"score"`
}

// FundingReadiness is the narrower sub-score used to gate
// investment-conversation recommendations.
type FundingReadiness struct {
	Score                int      `json:"score"`
	Recommendation       string   `json:"recommendation"`
	RequiredImprovements []string `json:"required_improvements"`
}

// NextSteps buckets remediation guidance by horizon.
type NextSteps struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	Strategic []string `json:"strategic"`
}

// AssessmentResult is the immutable output of one engine invocation.
type AssessmentResult struct {
	OverallScore     float64              `json:"overall_score"`
	RiskLevel        RiskLevel            `json:"risk_level"`
	CategoryScores   map[Category]float64 `json:"category_scores"`
	CriticalIssues   []CriticalIssue      `json:"critical_issues"`
	Strengths        []Strength           `json:"strengths"`
	FundingReadiness FundingReadiness     `json:"funding_readiness"`
	NextSteps        NextSteps            `json:"next_steps"`
	CatalogVersion   string               `json:"catalog_version"`
	GeneratedAt      time.Time            `json:"generated_at"`
}

// Assessment is a persisted submission with its computed result.
type Assessment struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"owner_id"`
	Answers   map[string]any    `json:"answers"`
	Result    *AssessmentResult `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
