package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/pkg/cache"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var serverFlag string

var rootCmd = &cobra.Command{
	Use:   "barman",
	Short: "barman — counter terminal for the bar POS service",
	Long: "barman is the staff-facing terminal of the hotel bar point of sale.\n" +
		"It talks to the remote POS service for tables, menu, orders, billing,\n" +
		"and the daily sales dashboard.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if serverFlag != "" {
			config.Set("SERVER_URL", serverFlag)
		}
		cache.Connect()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "POS service base URL (overrides SERVER_URL)")

	// Tables
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(tablesAddCmd)
	rootCmd.AddCommand(tablesSyncCmd)

	// Menu
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(menuCategoriesCmd)
	rootCmd.AddCommand(menuAddCmd)
	rootCmd.AddCommand(menuUpdateCmd)
	rootCmd.AddCommand(menuRemoveCmd)
	rootCmd.AddCommand(menuStockCmd)

	// Orders
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(orderAddCmd)
	rootCmd.AddCommand(orderQtyCmd)
	rootCmd.AddCommand(orderRemoveCmd)
	rootCmd.AddCommand(orderStatusCmd)
	rootCmd.AddCommand(orderCancelCmd)
	rootCmd.AddCommand(orderHistoryCmd)

	// Billing
	rootCmd.AddCommand(billCmd)
	rootCmd.AddCommand(billSettleCmd)

	// Dashboard & session
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(sessionCmd)
}
