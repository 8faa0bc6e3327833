package model

// RiskTier is the qualitative severity bucket attached to a single
// scored answer.
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierMedium   RiskTier = "medium"
	TierHigh     RiskTier = "high"
	TierCritical RiskTier = "critical"
)

// tierRank maps tiers to numeric ranks for comparison. Higher rank
// means more severe.
var tierRank = map[RiskTier]int{
	TierLow:      0,
	TierMedium:   1,
	TierHigh:     2,
	TierCritical: 3,
}

// Rank returns the numeric severity rank of the tier. Unrecognized
// tiers rank below low.
func (t RiskTier) Rank() int {
	r, ok := tierRank[t]
	if !ok {
		return -1
	}
	return r
}

// Valid reports whether t is one of the four known tiers.
func (t RiskTier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// RiskLevel is the overall four-band classification derived from the
// aggregate score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low Risk"
	RiskModerate RiskLevel = "Moderate Risk"
	RiskHigh     RiskLevel = "High Risk"
	RiskCritical RiskLevel = "Critical Risk"
)

// RiskLevelFromScore maps an overall 0-100 score to its risk band.
// Boundaries are inclusive on the lower bound of each band.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskModerate
	case score >= 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Severity classifies a critical issue by urgency.
type Severity string

const (
	SeverityUrgent    Severity = "urgent"
	SeverityImportant Severity = "important"
)

// severityRank orders severities for sorting; urgent sorts first.
var severityRank = map[Severity]int{
	SeverityUrgent:    0,
	SeverityImportant: 1,
}

// Rank returns the sort rank of the severity.
func (s Severity) Rank() int {
	r, ok := severityRank[s]
	if !ok {
		return len(severityRank)
	}
	return r
}
