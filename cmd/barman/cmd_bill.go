package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/internal/render"
)

var billTable string

// barman bill --table=N — itemised breakdown without settling.
var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Show the table's bill breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		ord, err := requireOrder(cmd.Context(), client, billTable)
		if err != nil {
			return err
		}
		return render.Bill(os.Stdout, *ord)
	},
}

var (
	settleTable   string
	settlePrinter string
	settleYes     bool
)

// barman bill:settle --table=N — print the receipt and mark the order billed.
var billSettleCmd = &cobra.Command{
	Use:   "bill:settle",
	Short: "Print the receipt and mark the order BILLED",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		ord, err := requireOrder(cmd.Context(), client, settleTable)
		if err != nil {
			return err
		}

		var printer io.Writer = os.Stdout
		if settlePrinter != "" {
			f, err := os.OpenFile(settlePrinter, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open printer %s: %w", settlePrinter, err)
			}
			defer f.Close()
			printer = f
		}

		confirm := confirmOnPrintFailure
		if settleYes {
			confirm = nil
		}

		res, err := client.Settle(cmd.Context(), *ord, printer, confirm)
		if err != nil {
			return err
		}
		if !res.Printed {
			fmt.Fprintf(os.Stderr, "receipt did not print: %v\n", res.PrintErr)
		}
		fmt.Printf("Table %s settled — order %s is %s.\n", settleTable, res.Order.ID, res.Order.Status)
		return nil
	},
}

func confirmOnPrintFailure(printErr error) bool {
	fmt.Fprintf(os.Stderr, "receipt failed to print: %v\n", printErr)
	fmt.Fprint(os.Stderr, "settle anyway? [y/N] ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	billCmd.Flags().StringVar(&billTable, "table", "", "table number (required)")
	_ = billCmd.MarkFlagRequired("table")

	billSettleCmd.Flags().StringVar(&settleTable, "table", "", "table number (required)")
	billSettleCmd.Flags().StringVar(&settlePrinter, "printer", "", "receipt destination file (default stdout)")
	billSettleCmd.Flags().BoolVar(&settleYes, "yes", false, "settle even if the receipt fails to print")
	_ = billSettleCmd.MarkFlagRequired("table")
}
