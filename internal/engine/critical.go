package engine

import (
	"sort"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
)

// Issue timeframes by severity.
const (
	timeframeUrgent    = "Immediate"
	timeframeImportant = "30 days"
)

// Detect flags business-killer questions whose answers landed in the
// high or critical tier and synthesizes one issue record per hit.
// Issues are ordered urgent before important, then by descending
// question weight.
func Detect(cat *catalog.Catalog, scored []model.ScoredAnswer) []model.CriticalIssue {
	type hit struct {
		issue  model.CriticalIssue
		weight float64
	}

	var hits []hit
	for _, sa := range scored {
		q, ok := cat.ByID(sa.QuestionID)
		if !ok || !q.BusinessKiller {
			continue
		}

		var severity model.Severity
		var timeframe string
		switch sa.Tier {
		case model.TierCritical:
			severity, timeframe = model.SeverityUrgent, timeframeUrgent
		case model.TierHigh:
			severity, timeframe = model.SeverityImportant, timeframeImportant
		default:
			continue
		}

		txt := catalog.TextFor(q)
		hits = append(hits, hit{
			issue: model.CriticalIssue{
				QuestionID: q.ID,
				Category:   q.Category,
				Severity:   severity,
				Impact:     txt.Impact,
				Remedy:     txt.Remedy,
				Timeframe:  timeframe,
			},
			weight: q.Weight,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if a, b := hits[i].issue.Severity.Rank(), hits[j].issue.Severity.Rank(); a != b {
			return a < b
		}
		return hits[i].weight > hits[j].weight
	})

	issues := make([]model.CriticalIssue, 0, len(hits))
	for _, h := range hits {
		issues = append(issues, h.issue)
	}
	return issues
}
