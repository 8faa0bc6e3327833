package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fundlens/readiness-cli/internal/engine"
	"github.com/fundlens/readiness-cli/internal/model"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of answer files",
	Long: `Score every *.json answer file in a directory concurrently.

Each file is one answer batch; the file name (without extension) is
used as the owner id.

Examples:
  readiness-cli batch --dir ./submissions
  readiness-cli batch --dir ./submissions --concurrency 8 --save
  readiness-cli batch --dir ./submissions --limit 50`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.String("dir", "", "directory of JSON answer files (required)")
	f.Int("concurrency", 4, "number of files scored in parallel")
	f.Int("limit", 0, "maximum number of files to process (0=all)")
	f.Bool("save", false, "persist assessments to the configured store")
	_ = batchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir, _ := cmd.Flags().GetString("dir")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	limit, _ := cmd.Flags().GetInt("limit")
	save, _ := cmd.Flags().GetBool("save")

	if concurrency < 1 {
		return eris.Errorf("batch: --concurrency must be at least 1 (got %d)", concurrency)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return eris.Wrapf(err, "batch: read directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	if len(paths) == 0 {
		zap.L().Info("no answer files found", zap.String("dir", dir))
		return nil
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	zap.L().Info("processing batch",
		zap.Int("files", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64
	var mu sync.Mutex
	assessments := make([]model.Assessment, 0, len(paths))

	for _, path := range paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			log := zap.L().With(zap.String("file", path))

			batch, err := loadAnswerFile(path)
			if err != nil {
				failed.Add(1)
				log.Error("failed to load answer file", zap.Error(err))
				return nil // don't abort batch on individual failure
			}
			batch.OwnerID = strings.TrimSuffix(filepath.Base(path), ".json")

			result := engine.Evaluate(cat, *batch)
			succeeded.Add(1)
			log.Info("scored",
				zap.String("owner", batch.OwnerID),
				zap.Float64("overall_score", result.OverallScore),
				zap.String("risk_level", string(result.RiskLevel)),
			)

			mu.Lock()
			assessments = append(assessments, model.Assessment{
				OwnerID: batch.OwnerID,
				Answers: batch.Answers,
				Result:  result,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch: processing")
	}

	if save && len(assessments) > 0 {
		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.SaveAssessments(ctx, assessments); err != nil {
			return eris.Wrap(err, "batch: save")
		}
		fmt.Printf("Saved %d assessments\n", len(assessments))
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	printBatchSummary(assessments)
	return nil
}

func printBatchSummary(as []model.Assessment) {
	if len(as) == 0 {
		fmt.Println("No results.")
		return
	}
	var sum, maxScore float64
	minScore := 101.0
	byLevel := make(map[model.RiskLevel]int)
	for i := range as {
		r := as[i].Result
		sum += r.OverallScore
		if r.OverallScore > maxScore {
			maxScore = r.OverallScore
		}
		if r.OverallScore < minScore {
			minScore = r.OverallScore
		}
		byLevel[r.RiskLevel]++
	}
	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Total scored:  %d\n", len(as))
	fmt.Printf("Score range:   %.1f - %.1f\n", minScore, maxScore)
	fmt.Printf("Average score: %.1f\n", sum/float64(len(as)))
	for _, level := range []model.RiskLevel{model.RiskLow, model.RiskModerate, model.RiskHigh, model.RiskCritical} {
		if n := byLevel[level]; n > 0 {
			fmt.Printf("%-15s %d\n", level+":", n)
		}
	}
}
