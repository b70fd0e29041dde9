package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/internal/render"
)

var (
	menuCategory string
	menuSearch   string
)

// barman menu — list the catalogue.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List menu items, optionally filtered by category or search term",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		items, err := client.MenuItems(cmd.Context(), pos.MenuQuery{
			Category:   menuCategory,
			SearchTerm: menuSearch,
		})
		if err != nil {
			return err
		}
		return render.Menu(os.Stdout, items)
	},
}

// barman menu:categories — list categories.
var menuCategoriesCmd = &cobra.Command{
	Use:   "menu:categories",
	Short: "List menu categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		cats, err := client.Categories(cmd.Context())
		if err != nil {
			return err
		}
		return render.Categories(os.Stdout, cats)
	},
}

var menuAddIn pos.CreateMenuItemInput

// barman menu:add — create a catalogue entry.
var menuAddCmd = &cobra.Command{
	Use:   "menu:add",
	Short: "Add a menu item",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		item, err := client.CreateMenuItem(cmd.Context(), menuAddIn)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (%s) — id %s\n", item.Name, item.Category, item.ID)
		return nil
	},
}

var (
	menuUpdAvailable bool
	menuUpdPrice     float64
	menuUpdIn        pos.UpdateMenuItemInput
)

// barman menu:update <id> — partial update; only flags you set are sent.
var menuUpdateCmd = &cobra.Command{
	Use:   "menu:update <id>",
	Short: "Update a menu item (only the flags you pass are changed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("price") {
			menuUpdIn.Price = &menuUpdPrice
		}
		if cmd.Flags().Changed("available") {
			menuUpdIn.IsAvailable = &menuUpdAvailable
		}

		client := pos.New()
		item, err := client.UpdateMenuItem(cmd.Context(), args[0], menuUpdIn)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s — id %s\n", item.Name, item.ID)
		return nil
	},
}

// barman menu:remove <id> — delete a catalogue entry.
var menuRemoveCmd = &cobra.Command{
	Use:   "menu:remove <id>",
	Short: "Remove a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		if err := client.DeleteMenuItem(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Menu item removed.")
		return nil
	},
}

var menuStockIn bool

// barman menu:stock <id> — flip availability.
var menuStockCmd = &cobra.Command{
	Use:   "menu:stock <id>",
	Short: "Mark a menu item in or out of stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := pos.New()
		item, err := client.UpdateMenuItemStock(cmd.Context(), args[0], menuStockIn)
		if err != nil {
			return err
		}
		state := "out of stock"
		if item.IsAvailable {
			state = "in stock"
		}
		fmt.Printf("%s is now %s.\n", item.Name, state)
		return nil
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuCategory, "category", "", "filter by category")
	menuCmd.Flags().StringVar(&menuSearch, "search", "", "filter by name/description substring")

	menuAddCmd.Flags().StringVar(&menuAddIn.Name, "name", "", "item name (required)")
	menuAddCmd.Flags().StringVar(&menuAddIn.Description, "description", "", "item description")
	menuAddCmd.Flags().StringVar(&menuAddIn.Category, "category", "", "category (required)")
	menuAddCmd.Flags().Float64Var(&menuAddIn.Price, "price", 0, "unit price")
	menuAddCmd.Flags().StringVar(&menuAddIn.Department, "department", "BAR", "KITCHEN or BAR")
	menuAddCmd.Flags().BoolVar(&menuAddIn.IsAvailable, "available", true, "available for ordering")

	menuUpdateCmd.Flags().StringVar(&menuUpdIn.Name, "name", "", "new name")
	menuUpdateCmd.Flags().StringVar(&menuUpdIn.Description, "description", "", "new description")
	menuUpdateCmd.Flags().StringVar(&menuUpdIn.Category, "category", "", "new category")
	menuUpdateCmd.Flags().Float64Var(&menuUpdPrice, "price", 0, "new unit price")
	menuUpdateCmd.Flags().StringVar(&menuUpdIn.Department, "department", "", "KITCHEN or BAR")
	menuUpdateCmd.Flags().BoolVar(&menuUpdAvailable, "available", true, "available for ordering")

	menuStockCmd.Flags().BoolVar(&menuStockIn, "in", true, "in stock (--in=false marks it out)")
}
