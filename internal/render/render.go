// Package render draws the terminal's tabular views: tables, menu, orders,
// bills, and the daily dashboard. Everything writes through text/tabwriter
// so columns line up on any terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shashiranjanraj/barman/app/billing"
	"github.com/shashiranjanraj/barman/app/models"
)

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

// Tables draws the table grid. Occupancy is the server's derived view of
// whether an active order exists.
func Tables(w io.Writer, tables []models.Table) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "TABLE\tCAPACITY\tSTATUS\tOPEN AMOUNT")
	fmt.Fprintln(tw, "-----\t--------\t------\t-----------")
	for _, t := range tables {
		amount := "-"
		if t.CurrentOrder != nil {
			amount = billing.Amount(t.CurrentOrder.Amount)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", t.Number, t.Capacity, t.Status, amount)
	}
	return tw.Flush()
}

// Menu draws a menu listing.
func Menu(w io.Writer, items []models.MenuItem) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "ID\tITEM\tCATEGORY\tDEPT\tPRICE\tAVAILABLE")
	fmt.Fprintln(tw, "--\t----\t--------\t----\t-----\t---------")
	for _, i := range items {
		avail := "yes"
		if !i.IsAvailable || !i.InStock {
			avail = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			i.ID, i.Name, i.Category, i.Department, billing.Amount(i.Price), avail)
	}
	return tw.Flush()
}

// Categories draws the category list.
func Categories(w io.Writer, cats []models.MenuCategory) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "ID\tCATEGORY")
	fmt.Fprintln(tw, "--\t--------")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	return tw.Flush()
}

// Order draws the current order, aggregated by menu item, with the running
// total. A nil order draws a short "no active order" note instead.
func Order(w io.Writer, ord *models.Order) error {
	if ord == nil {
		_, err := fmt.Fprintln(w, "No active order.")
		return err
	}

	fmt.Fprintf(w, "Order %s  (%s, %s)\n", ord.ID, ord.OrderType, ord.Status)
	lines, grandTotal := billing.Aggregate(ord.Items)

	tw := newTab(w)
	fmt.Fprintln(tw, "ITEM\tCATEGORY\tQTY\tAMOUNT")
	fmt.Fprintln(tw, "----\t--------\t---\t------")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", l.Name, l.Category, l.TotalQuantity, billing.Amount(l.TotalPrice))
	}
	fmt.Fprintf(tw, "\t\t\t%s\n", billing.Amount(grandTotal))
	return tw.Flush()
}

// Bill draws the settlement breakdown.
func Bill(w io.Writer, ord models.Order) error {
	bill := billing.Breakdown(ord)

	tw := newTab(w)
	fmt.Fprintf(tw, "Subtotal\t%s\n", billing.Amount(bill.Subtotal))
	fmt.Fprintf(tw, "Service Charge\t%s\n", billing.Amount(bill.ServiceCharge))
	fmt.Fprintf(tw, "Tax (%.0f%%)\t%s\n", bill.TaxPercent(), billing.Amount(bill.Tax))
	fmt.Fprintf(tw, "Total\t%s\n", billing.Amount(bill.Total))
	return tw.Flush()
}

// Dashboard draws the daily sales rollup.
func Dashboard(w io.Writer, sales *models.DailySales) error {
	fmt.Fprintf(w, "Sales for %s\n\n", sales.Date)

	tw := newTab(w)
	fmt.Fprintf(tw, "Total sales\t%s\n", billing.Amount(sales.TotalSales))
	fmt.Fprintf(tw, "Orders\t%d\n", sales.OrderCount)
	fmt.Fprintf(tw, "Average order\t%s\n", billing.Amount(sales.AverageOrderValue))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(sales.TopSellingItems) > 0 {
		fmt.Fprintln(w, "\nTop sellers")
		tw = newTab(w)
		fmt.Fprintln(tw, "ITEM\tQTY\tREVENUE")
		fmt.Fprintln(tw, "----\t---\t-------")
		for _, item := range sales.TopSellingItems {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", item.Name, item.Quantity, billing.Amount(item.Revenue))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(sales.SalesByHour) > 0 {
		fmt.Fprintln(w, "\nBy hour")
		tw = newTab(w)
		fmt.Fprintln(tw, "HOUR\tORDERS\tSALES")
		fmt.Fprintln(tw, "----\t------\t-----")
		for _, h := range sales.SalesByHour {
			fmt.Fprintf(tw, "%02d:00\t%d\t%s\n", h.Hour, h.OrderCount, billing.Amount(h.Sales))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
