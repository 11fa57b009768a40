package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khushibung05/KMeans/internal/config"
	"github.com/Khushibung05/KMeans/internal/logging"
	"github.com/Khushibung05/KMeans/internal/plotting"
	"github.com/Khushibung05/KMeans/pkg/dataset"
	"github.com/Khushibung05/KMeans/pkg/segment"
)

var (
	runInput    string
	runFeature1 string
	runFeature2 string
	runK        int
	runSeed     int64
	runPlot     string
	runVerbose  bool
)

// runCmd performs one segmentation pass without the TUI, for scripting.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one clustering pass headlessly and print the summary",
	Long: `Run the segmentation pipeline once and print the cluster summary and
interpretation to stdout.

Examples:
  # Cluster the first two numeric columns with defaults
  segdash run --input customers.csv

  # Choose features, K and seed, and save the scatter plot
  segdash run --input customers.csv \
    --feature1 Annual_Income --feature2 Spending_Score \
    --k 4 --seed 7 --plot clusters.png`,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "CSV dataset to cluster (required)")
	runCmd.Flags().StringVar(&runFeature1, "feature1", "", "first numeric column (default: first numeric column)")
	runCmd.Flags().StringVar(&runFeature2, "feature2", "", "second numeric column (default: second numeric column)")
	runCmd.Flags().IntVar(&runK, "k", 0, "cluster count (default: from config)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (default: from config)")
	runCmd.Flags().StringVar(&runPlot, "plot", "", "save the cluster scatter plot as PNG")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "debug logging")
	_ = runCmd.MarkFlagRequired("input")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewConsoleLogger(runVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ds, err := dataset.LoadFile(runInput)
	if err != nil {
		return err
	}
	if err := ds.EnsureClusterable(); err != nil {
		return err
	}

	numeric := ds.NumericColumns()
	f1, f2 := runFeature1, runFeature2
	if f1 == "" {
		f1 = numeric[0]
	}
	if f2 == "" {
		f2 = numeric[1]
		if f2 == f1 {
			f2 = numeric[0]
		}
	}

	k := runK
	if k == 0 {
		k = cfg.DefaultK
	}
	if k < cfg.KMin || k > cfg.KMax {
		return fmt.Errorf("k must be within [%d, %d], got %d", cfg.KMin, cfg.KMax, k)
	}
	seed := runSeed
	if !cmd.Flags().Changed("seed") {
		seed = cfg.DefaultSeed
	}

	logger.Debug("running segmentation",
		zap.String("input", runInput),
		zap.String("feature1", f1),
		zap.String("feature2", f2),
		zap.Int("k", k),
		zap.Int64("seed", seed),
	)

	res, err := segment.Run(ds, f1, f2, segment.Config{K: k, Seed: seed, MaxIter: cfg.MaxIterations})
	if err != nil {
		return err
	}

	printSummary(os.Stdout, res)

	if runPlot != "" {
		if err := plotting.SaveScatter(res, runPlot); err != nil {
			return err
		}
		logger.Info("scatter plot saved", zap.String("path", runPlot))
	}
	return nil
}

func printSummary(w *os.File, res *segment.Result) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Cluster", "Count", "Avg "+res.Feature1, "Avg "+res.Feature2)

	for _, s := range res.Summaries {
		t.Row(
			fmt.Sprintf("%d", s.Cluster),
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.2f", s.AvgFeature1),
			fmt.Sprintf("%.2f", s.AvgFeature2),
		)
	}

	fmt.Fprintln(w, t.Render())
	for _, s := range res.Summaries {
		fmt.Fprintf(w, "Cluster %d: %s\n", s.Cluster, s.Label)
	}
	fmt.Fprintf(w, "\ninertia=%.3f run=%s\n", res.Inertia, res.RunID)
}
