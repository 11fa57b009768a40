// Package main implements segdash, a terminal dashboard for K-Means
// customer segmentation.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khushibung05/KMeans/internal/config"
	"github.com/Khushibung05/KMeans/internal/logging"
	"github.com/Khushibung05/KMeans/internal/tui"
)

var (
	configPath string
	csvPath    string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "segdash",
	Short: "Interactive K-Means customer segmentation dashboard",
	Long: `segdash groups customers into segments with K-Means clustering.

Load a CSV with at least two numeric columns, pick a feature pair, choose a
cluster count and seed, then run clustering to see a scatter plot, a
per-cluster summary and a business interpretation of each segment.

Examples:
  # Start the dashboard and pick a file interactively
  segdash

  # Start with a dataset preloaded
  segdash --csv customers.csv`,
	Version: version,
	RunE:    runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "CSV dataset to preload")
	rootCmd.AddCommand(runCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewFileLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting dashboard", zap.String("version", version))
	p := tea.NewProgram(tui.New(cfg, logger, csvPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
