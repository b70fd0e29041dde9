package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/internal/server"
	"github.com/shashiranjanraj/barman/internal/session"
	"github.com/shashiranjanraj/barman/pkg/logger"
)

var (
	sessionTable   string
	sessionMetrics string
)

// barman session --table=N — interactive counter session.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive session against one table",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := sessionMetrics
		if addr == "" {
			addr = config.MetricsAddr()
		}
		if addr != "" {
			go func() {
				if err := server.Start(cmd.Context(), addr); err != nil {
					logger.Error("metrics server stopped", "error", err)
				}
			}()
		}

		s := session.New(pos.New(), sessionTable, os.Stdin, os.Stdout, os.Stdout)
		return s.Run(cmd.Context())
	},
}

func init() {
	sessionCmd.Flags().StringVar(&sessionTable, "table", "", "table number (required)")
	sessionCmd.Flags().StringVar(&sessionMetrics, "metrics", "", "expose /metrics and /healthz on this address while running")
	_ = sessionCmd.MarkFlagRequired("table")
}
