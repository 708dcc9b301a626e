package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cftracker/internal/config"
	"cftracker/internal/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chart page and JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}

		server, cleanup, err := di.InitializeServer(cmd.Context(), cfg, classifyOptions(cmd))
		if err != nil {
			return fmt.Errorf("initialize server: %w", err)
		}
		defer cleanup()

		return server.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDR)")
}
