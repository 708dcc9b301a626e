package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cftracker/internal/config"
	"cftracker/internal/di"
	"cftracker/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:          "cftracker",
	Short:        "Chart solved and struggled Codeforces problems by rating",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("raw", false, "Keep solved problems in the struggled chart")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(versionCmd)
}

func classifyOptions(cmd *cobra.Command) usecase.ClassifyOptions {
	raw, _ := cmd.Flags().GetBool("raw")
	return usecase.ClassifyOptions{KeepSolved: raw}
}

// newAnalyzer loads configuration and wires an analyzer. The returned cleanup
// must be called once the analyzer is no longer needed.
func newAnalyzer(cmd *cobra.Command) (*usecase.Analyzer, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	analyzer, cleanup, err := di.InitializeAnalyzer(cmd.Context(), cfg, classifyOptions(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize analyzer: %w", err)
	}
	return analyzer, cleanup, nil
}
