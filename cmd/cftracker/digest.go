package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cftracker/internal/config"
	"cftracker/internal/di"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Post rating digests for CF_HANDLES to Discord on a schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		once, _ := cmd.Flags().GetBool("once")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		application, cleanup, err := di.InitializeDigestApp(cmd.Context(), cfg, classifyOptions(cmd))
		if err != nil {
			return fmt.Errorf("initialize digest: %w", err)
		}
		defer cleanup()

		if once {
			return application.RunOnce(cmd.Context())
		}
		return application.Run(cmd.Context())
	},
}

func init() {
	digestCmd.Flags().Bool("once", false, "Send a single digest and exit")
}
