package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cftracker/internal/adapter/terminal"
)

var browseCmd = &cobra.Command{
	Use:   "browse <handle>",
	Short: "Explore the charts of a handle interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, cleanup, err := newAnalyzer(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := analyzer.Analyze(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("analyze %s: %w", args[0], err)
		}
		return terminal.RunBrowser(report)
	},
}
