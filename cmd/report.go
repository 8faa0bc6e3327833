package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/fundlens/readiness-cli/internal/catalog"
	"github.com/fundlens/readiness-cli/internal/model"
	"github.com/fundlens/readiness-cli/internal/store"
)

// loadCatalog returns the configured catalog artifact, falling back to
// the built-in catalog when no path is configured.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

// openStore opens the configured store and ensures the schema exists.
func openStore(ctx context.Context) (store.Store, error) {
	st, err := store.New(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// outputTarget resolves --output into a writer, defaulting to stdout.
func outputTarget(outputPath string) (io.WriteCloser, bool, error) {
	if outputPath == "" {
		return os.Stdout, false, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, false, eris.Wrapf(err, "create output file %s", outputPath)
	}
	return f, true, nil
}

func outputAssessment(a *model.Assessment, format, outputPath string) error {
	w, isFile, err := outputTarget(outputPath)
	if err != nil {
		return err
	}
	if isFile {
		defer w.Close() //nolint:errcheck
	}

	switch format {
	case "json":
		return writeAssessmentJSON(w, a)
	case "csv":
		return writeAssessmentCSV(w, a)
	case "xlsx":
		if !isFile {
			return eris.New("report: xlsx format requires --output")
		}
		return writeAssessmentXLSX(w, a)
	case "table":
		return writeAssessmentTable(w, a)
	default:
		return eris.Errorf("report: unsupported format %q", format)
	}
}

func writeAssessmentJSON(w io.Writer, a *model.Assessment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(a), "report: encode JSON")
}

func writeAssessmentTable(w io.Writer, a *model.Assessment) error {
	r := a.Result
	if r == nil {
		_, err := fmt.Fprintln(w, "No result.")
		return err
	}

	fmt.Fprintf(w, "Overall Score:     %.1f / 100\n", r.OverallScore)
	fmt.Fprintf(w, "Risk Level:        %s\n", r.RiskLevel)
	fmt.Fprintf(w, "Funding Readiness: %d / 100\n", r.FundingReadiness.Score)
	fmt.Fprintf(w, "Recommendation:    %s\n", r.FundingReadiness.Recommendation)

	fmt.Fprintln(w, "\nCategory Scores:")
	for _, c := range model.AllCategories() {
		fmt.Fprintf(w, "  %-25s %6.1f\n", c, r.CategoryScores[c])
	}

	if len(r.CriticalIssues) > 0 {
		fmt.Fprintln(w, "\nCritical Issues:")
		for _, ci := range r.CriticalIssues {
			fmt.Fprintf(w, "  [%s] %s (%s)\n", ci.Severity, ci.QuestionID, ci.Timeframe)
			fmt.Fprintf(w, "    Impact: %s\n", ci.Impact)
			fmt.Fprintf(w, "    Remedy: %s\n", ci.Remedy)
		}
	}

	if len(r.Strengths) > 0 {
		fmt.Fprintln(w, "\nStrengths:")
		for _, s := range r.Strengths {
			fmt.Fprintf(w, "  %-30s %6.1f\n", s.QuestionID, s.Score)
		}
	}

	if len(r.FundingReadiness.RequiredImprovements) > 0 {
		fmt.Fprintln(w, "\nRequired Improvements:")
		for _, imp := range r.FundingReadiness.RequiredImprovements {
			fmt.Fprintf(w, "  - %s\n", imp)
		}
	}

	printSteps := func(label string, steps []string) {
		if len(steps) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", label)
		for _, s := range steps {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	printSteps("Immediate Actions", r.NextSteps.Immediate)
	printSteps("Short-Term Actions", r.NextSteps.ShortTerm)
	printSteps("Strategic Actions", r.NextSteps.Strategic)

	return nil
}

func writeAssessmentCSV(w io.Writer, a *model.Assessment) error {
	r := a.Result
	if r == nil {
		return eris.New("report: no result to export")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"section", "key", "value"}); err != nil {
		return eris.Wrap(err, "report: write CSV header")
	}

	rows := [][]string{
		{"summary", "overall_score", fmt.Sprintf("%.1f", r.OverallScore)},
		{"summary", "risk_level", string(r.RiskLevel)},
		{"summary", "funding_readiness", fmt.Sprintf("%d", r.FundingReadiness.Score)},
		{"summary", "recommendation", r.FundingReadiness.Recommendation},
	}
	for _, c := range model.AllCategories() {
		rows = append(rows, []string{"category", string(c), fmt.Sprintf("%.1f", r.CategoryScores[c])})
	}
	for _, ci := range r.CriticalIssues {
		rows = append(rows, []string{"critical_issue", ci.QuestionID, fmt.Sprintf("%s|%s|%s", ci.Severity, ci.Timeframe, ci.Remedy)})
	}
	for _, s := range r.Strengths {
		rows = append(rows, []string{"strength", s.QuestionID, fmt.Sprintf("%.1f", s.Score)})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "report: write CSV row")
		}
	}
	return nil
}

func writeAssessmentXLSX(w io.Writer, a *model.Assessment) error {
	r := a.Result
	if r == nil {
		return eris.New("report: no result to export")
	}

	f := xlsx.NewFile()

	summary, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	addKV := func(sheet *xlsx.Sheet, key string, value any) {
		row := sheet.AddRow()
		row.AddCell().SetString(key)
		switch v := value.(type) {
		case float64:
			row.AddCell().SetFloat(v)
		case int:
			row.AddCell().SetInt(v)
		default:
			row.AddCell().SetString(fmt.Sprint(v))
		}
	}
	addKV(summary, "Overall Score", r.OverallScore)
	addKV(summary, "Risk Level", string(r.RiskLevel))
	addKV(summary, "Funding Readiness", r.FundingReadiness.Score)
	addKV(summary, "Recommendation", r.FundingReadiness.Recommendation)
	addKV(summary, "Catalog Version", r.CatalogVersion)

	categories, err := f.AddSheet("Categories")
	if err != nil {
		return eris.Wrap(err, "report: add categories sheet")
	}
	for _, c := range model.AllCategories() {
		addKV(categories, string(c), r.CategoryScores[c])
	}

	if len(r.CriticalIssues) > 0 {
		issues, err := f.AddSheet("Critical Issues")
		if err != nil {
			return eris.Wrap(err, "report: add issues sheet")
		}
		header := issues.AddRow()
		for _, h := range []string{"question_id", "category", "severity", "timeframe", "impact", "remedy"} {
			header.AddCell().SetString(h)
		}
		for _, ci := range r.CriticalIssues {
			row := issues.AddRow()
			row.AddCell().SetString(ci.QuestionID)
			row.AddCell().SetString(string(ci.Category))
			row.AddCell().SetString(string(ci.Severity))
			row.AddCell().SetString(ci.Timeframe)
			row.AddCell().SetString(ci.Impact)
			row.AddCell().SetString(ci.Remedy)
		}
	}

	return eris.Wrap(f.Write(w), "report: write xlsx")
}

// writeAssessmentList renders stored assessments as a table or CSV.
func writeAssessmentList(w io.Writer, as []model.Assessment, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(as), "report: encode JSON")
	case "csv":
		cw := csv.NewWriter(w)
		defer cw.Flush()
		if err := cw.Write([]string{"id", "owner_id", "overall_score", "risk_level", "created_at"}); err != nil {
			return eris.Wrap(err, "report: write CSV header")
		}
		for i := range as {
			a := &as[i]
			score, level := "", ""
			if a.Result != nil {
				score = fmt.Sprintf("%.1f", a.Result.OverallScore)
				level = string(a.Result.RiskLevel)
			}
			if err := cw.Write([]string{a.ID, a.OwnerID, score, level, a.CreatedAt.Format("2006-01-02 15:04:05")}); err != nil {
				return eris.Wrap(err, "report: write CSV row")
			}
		}
		return nil
	case "table":
		fmt.Fprintf(w, "%-36s %-20s %7s %-15s %s\n", "ID", "Owner", "Score", "Risk Level", "Created")
		for i := range as {
			a := &as[i]
			score, level := "-", "-"
			if a.Result != nil {
				score = fmt.Sprintf("%.1f", a.Result.OverallScore)
				level = string(a.Result.RiskLevel)
			}
			fmt.Fprintf(w, "%-36s %-20s %7s %-15s %s\n", a.ID, a.OwnerID, score, level, a.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	default:
		return eris.Errorf("report: unsupported format %q", format)
	}
}
