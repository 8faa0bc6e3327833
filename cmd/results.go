package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fundlens/readiness-cli/internal/model"
	"github.com/fundlens/readiness-cli/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect stored assessments",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assessments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		owner, _ := cmd.Flags().GetString("owner")
		riskLevel, _ := cmd.Flags().GetString("risk-level")
		minScore, _ := cmd.Flags().GetFloat64("min-score")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		format, _ := cmd.Flags().GetString("format")

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		as, err := st.ListAssessments(ctx, store.Filter{
			OwnerID:   owner,
			RiskLevel: model.RiskLevel(riskLevel),
			MinScore:  minScore,
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			return err
		}
		return writeAssessmentList(os.Stdout, as, format)
	},
}

var resultsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one stored assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		a, err := st.GetAssessment(ctx, args[0])
		if err != nil {
			return err
		}
		return outputAssessment(a, format, outputPath)
	},
}

func init() {
	f := resultsListCmd.Flags()
	f.String("owner", "", "filter by owner id")
	f.String("risk-level", "", "filter by risk level (e.g. 'High Risk')")
	f.Float64("min-score", 0, "minimum overall score")
	f.Int("limit", 0, "maximum number of rows (default 100)")
	f.Int("offset", 0, "rows to skip")
	f.String("format", "table", "output format: table, json, or csv")

	g := resultsGetCmd.Flags()
	g.String("format", "table", "output format: table, json, csv, or xlsx")
	g.String("output", "", "output file path (default: stdout)")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsGetCmd)
	rootCmd.AddCommand(resultsCmd)
}
