package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cftracker/internal/adapter/terminal"
	"cftracker/internal/domain/model"
)

var reportCmd = &cobra.Command{
	Use:   "report <handle>",
	Short: "Print the solved and struggled charts of a handle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		kindVal, _ := cmd.Flags().GetString("kind")
		bucket, _ := cmd.Flags().GetString("bucket")
		width, _ := cmd.Flags().GetInt("width")

		kinds, err := parseKinds(kindVal)
		if err != nil {
			return err
		}
		if bucket != "" && !model.IsBucketLabel(bucket) {
			return fmt.Errorf("%w: %q (want 800..2600 in steps of 100 or %s)", model.ErrInvalidBucket, bucket, model.OtherBucket)
		}

		analyzer, cleanup, err := newAnalyzer(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := analyzer.Analyze(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("analyze %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printReport(out, report, kinds, bucket, width)
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "Print the report as JSON")
	reportCmd.Flags().String("kind", "both", "Chart to print: solved, struggled or both")
	reportCmd.Flags().String("bucket", "", "List the problems of one bucket (e.g. 1200 or Other)")
	reportCmd.Flags().Int("width", 80, "Output width in columns")
}

func parseKinds(val string) ([]model.Kind, error) {
	if val == "" || val == "both" {
		return []model.Kind{model.KindSolved, model.KindStruggled}, nil
	}
	kind, err := model.ParseKind(val)
	if err != nil {
		return nil, err
	}
	return []model.Kind{kind}, nil
}

func printReport(out io.Writer, report *model.Report, kinds []model.Kind, bucket string, width int) {
	fmt.Fprintf(out, "%s: %d submissions analysed\n\n", report.Handle, report.Submissions)
	for _, kind := range kinds {
		chart := report.Chart(kind)
		if bucket != "" {
			fmt.Fprintln(out, terminal.ChartTitle(kind))
			fmt.Fprintln(out, terminal.RenderProblems(bucket, chart.Lookup(bucket)))
		} else {
			fmt.Fprintln(out, terminal.RenderChart(chart, width))
		}
		fmt.Fprintln(out)
	}
	if report.Struggled.Total() == 0 {
		fmt.Fprintln(out, "No problems with unsuccessful submissions found.")
	}
}
