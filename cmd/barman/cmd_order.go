package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/internal/render"
)

var orderTable string

// barman order --table=N — the table's active order.
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show a table's active order",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		ord, err := client.CurrentOrder(cmd.Context(), orderTable)
		if err != nil {
			return err
		}
		return render.Order(os.Stdout, ord)
	},
}

// barman order:add <table> <menu-item-id> [qty] — add or merge a line.
var orderAddCmd = &cobra.Command{
	Use:   "order:add <table> <menu-item-id> [qty]",
	Short: "Add an item to the table's order, opening one if needed",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty := 1
		if len(args) == 3 {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("qty must be an integer: %q", args[2])
			}
			qty = n
		}

		client := pos.New()
		current, err := client.CurrentOrder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		ord, err := client.PlaceItem(cmd.Context(), args[0], current, pos.ItemInput{
			MenuItemID: args[1],
			Quantity:   qty,
		})
		if err != nil {
			return err
		}
		return render.Order(os.Stdout, ord)
	},
}

// barman order:qty <table> <menu-item-id> <qty> — set a line's quantity.
// Zero removes the line.
var orderQtyCmd = &cobra.Command{
	Use:   "order:qty <table> <menu-item-id> <qty>",
	Short: "Set an order line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("qty must be an integer: %q", args[2])
		}

		client := pos.New()
		ord, err := requireOrder(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		ord, err = client.UpdateItemQuantity(cmd.Context(), ord.ID, args[1], qty)
		if err != nil {
			return err
		}
		return render.Order(os.Stdout, ord)
	},
}

// barman order:remove <table> <menu-item-id> — drop a line.
var orderRemoveCmd = &cobra.Command{
	Use:   "order:remove <table> <menu-item-id>",
	Short: "Remove an item from the table's order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		ord, err := requireOrder(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		ord, err = client.RemoveItem(cmd.Context(), ord.ID, args[1])
		if err != nil {
			return err
		}
		return render.Order(os.Stdout, ord)
	},
}

// barman order:status <table> <status> — advance the order lifecycle.
var orderStatusCmd = &cobra.Command{
	Use:   "order:status <table> <status>",
	Short: "Set the order status (PLACED, IN_KITCHEN, SERVED, BILLED, COMPLETED)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.OrderStatus(strings.ToUpper(args[1]))

		client := pos.New()
		ord, err := requireOrder(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		ord, err = client.UpdateStatus(cmd.Context(), ord.ID, status)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s.\n", ord.ID, ord.Status)
		return nil
	},
}

// barman order:cancel <table> — cancel the active order.
var orderCancelCmd = &cobra.Command{
	Use:   "order:cancel <table>",
	Short: "Cancel the table's active order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		ord, err := requireOrder(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		ord, err = client.UpdateStatus(cmd.Context(), ord.ID, models.StatusCancelled)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s cancelled.\n", ord.ID)
		return nil
	},
}

// barman order:history <table> — every order the table has had today.
var orderHistoryCmd = &cobra.Command{
	Use:   "order:history <table>",
	Short: "List all orders for a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		orders, err := client.TableOrders(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders for this table.")
			return nil
		}
		for i := range orders {
			fmt.Printf("— %s  %s  %s\n", orders[i].ID, orders[i].Status, orders[i].CreatedAt.Format("15:04"))
			if err := render.Order(os.Stdout, &orders[i]); err != nil {
				return err
			}
		}
		return nil
	},
}

// requireOrder resolves a table's active order or fails with a usable
// message instead of a nil dereference downstream.
func requireOrder(ctx context.Context, client *pos.Client, tableNumber string) (*models.Order, error) {
	ord, err := client.CurrentOrder(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, fmt.Errorf("table %s has no active order", tableNumber)
	}
	return ord, nil
}

func init() {
	orderCmd.Flags().StringVar(&orderTable, "table", "", "table number (required)")
	_ = orderCmd.MarkFlagRequired("table")
}
