package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/internal/render"
)

// barman tables — floor overview.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List every table with occupancy and running total",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		tables, err := client.Tables(cmd.Context())
		if err != nil {
			return err
		}
		return render.Tables(os.Stdout, tables)
	},
}

// barman tables:add <number> <capacity> — register a table.
var tablesAddCmd = &cobra.Command{
	Use:   "tables:add <number> <capacity>",
	Short: "Register a new table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("number must be an integer: %q", args[0])
		}
		capacity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("capacity must be an integer: %q", args[1])
		}

		client := pos.New()
		table, err := client.CreateTable(cmd.Context(), pos.CreateTableInput{
			Number:   number,
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Table %d created (capacity %d).\n", table.Number, table.Capacity)
		return nil
	},
}

// barman tables:sync — reconcile table occupancy with active orders.
var tablesSyncCmd = &cobra.Command{
	Use:   "tables:sync",
	Short: "Ask the service to reconcile table statuses with active orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		if err := client.SyncTableStatuses(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Table statuses synced.")
		return nil
	},
}
