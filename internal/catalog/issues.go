package catalog

import "github.com/fundlens/readiness-cli/internal/model"

// IssueText holds the fixed impact/remedy copy for one question.
type IssueText struct {
	Impact string
	Remedy string
}

// issueTexts is the fixed per-question text table consulted when a
// business-killer lands in a high or critical tier. Questions absent
// from the table get the generic fallback; lookup never fails.
var issueTexts = map[string]IssueText{
	"cash_runway": {
		Impact: "The business may be unable to meet payroll and supplier obligations within the current quarter.",
		Remedy: "Build a 13-week cash flow forecast and secure bridge financing or cut discretionary spend now.",
	},
	"revenue_concentration": {
		Impact: "Losing the largest customer would remove a business-critical share of revenue overnight.",
		Remedy: "Launch a concrete plan to win at least two new accounts of comparable size this quarter.",
	},
	"key_person_dependency": {
		Impact: "An unplanned absence of one person would halt critical operations with no documented recovery path.",
		Remedy: "Document critical processes and cross-train a named deputy for every business-critical function.",
	},
	"regulatory_filings": {
		Impact: "Overdue statutory filings expose the business to penalties, license loss, and disqualification from funding.",
		Remedy: "Engage a compliance professional to bring all filings current within 30 days.",
	},
	"tax_liabilities": {
		Impact: "Outstanding tax liabilities accrue penalties and can trigger enforcement action against the business.",
		Remedy: "Agree a settlement or payment plan with the tax authority and fund it from the next revenue cycle.",
	},
	"churn_rate": {
		Impact: "The current churn rate erodes the customer base faster than typical acquisition can replace it.",
		Remedy: "Interview recently lost customers and fix the top two cancellation drivers.",
	},
	"supplier_concentration": {
		Impact: "A single supplier failure would interrupt delivery to customers with no qualified alternative.",
		Remedy: "Qualify a second source for every business-critical input.",
	},
}

const (
	genericImpact = "A critical weakness in this area can independently threaten the viability of the business."
	genericRemedy = "Review this area with a qualified advisor and agree a written remediation plan."
)

// TextFor returns the impact/remedy copy for a question, falling back
// to generic text for questions missing from the table.
func TextFor(q model.Question) IssueText {
	if t, ok := issueTexts[q.ID]; ok {
		return t
	}
	return IssueText{Impact: genericImpact, Remedy: genericRemedy}
}
