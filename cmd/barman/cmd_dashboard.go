package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/internal/render"
)

var dashboardDate string

// barman dashboard — daily sales summary.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the daily sales dashboard (defaults to today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dashboardDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		client := pos.New()
		sales, err := client.DailySales(cmd.Context(), date)
		if err != nil {
			return err
		}
		return render.Dashboard(os.Stdout, sales)
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "day to report, YYYY-MM-DD")
}
