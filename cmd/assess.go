package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fundlens/readiness-cli/internal/assess"
	"github.com/fundlens/readiness-cli/internal/model"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a single answer file",
	Long: `Score a questionnaire answer file against the question catalog.

The answer file is a JSON object mapping question ids to raw answers:

  {
    "cash_runway": "6-12 months",
    "churn_rate": 12,
    "regulatory_filings": true
  }

Examples:
  # Score and print a readable report
  readiness-cli assess --answers answers.json

  # Score, save to the store, and export the full result as JSON
  readiness-cli assess --answers answers.json --owner acme --save --format json

  # Export an xlsx report
  readiness-cli assess --answers answers.json --format xlsx --output report.xlsx`,
	RunE: runAssess,
}

func init() {
	f := assessCmd.Flags()
	f.String("answers", "", "path to JSON answer file (required)")
	f.String("owner", "", "owner id recorded with the assessment")
	f.String("format", "table", "output format: table, json, csv, or xlsx")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the assessment to the configured store")
	_ = assessCmd.MarkFlagRequired("answers")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	answersPath, _ := cmd.Flags().GetString("answers")
	owner, _ := cmd.Flags().GetString("owner")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	batch, err := loadAnswerFile(answersPath)
	if err != nil {
		return err
	}
	batch.OwnerID = owner

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	svc := assess.NewService(cat, nil)
	if save {
		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		svc = assess.NewService(cat, st)
	}

	a := svc.Run(ctx, *batch)

	zap.L().Info("assessment complete",
		zap.String("owner", owner),
		zap.Float64("overall_score", a.Result.OverallScore),
		zap.String("risk_level", string(a.Result.RiskLevel)),
	)

	if err := outputAssessment(a, format, outputPath); err != nil {
		return err
	}
	if save {
		fmt.Printf("Assessment saved: %s\n", a.ID)
	}
	return nil
}

// loadAnswerFile reads a JSON answer map from disk.
func loadAnswerFile(path string) (*model.AnswerBatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "assess: read answer file %s", path)
	}

	var answers map[string]any
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, eris.Wrapf(err, "assess: parse answer file %s", path)
	}
	return &model.AnswerBatch{Answers: answers}, nil
}
