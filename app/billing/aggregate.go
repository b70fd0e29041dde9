// Package billing holds the pure derivation logic of the terminal: order
// aggregation, bill breakdown, and receipt rendering. Nothing in this
// package talks to the network or holds state, so it is testable in
// isolation and reusable from both the CLI and the interactive session.
package billing

import (
	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/pkg/collection"
)

// AggregatedLine is one display row of an order: all raw lines referencing
// the same menu item folded together. Derived on every read, never stored.
type AggregatedLine struct {
	MenuItemID    string
	Name          string
	Category      string
	TotalQuantity int
	TotalPrice    float64
}

// Aggregate groups items by menu item and sums quantities and line totals.
//
// The first occurrence of a menu item establishes the row's display name,
// category, and position, so the output is stable in insertion order. The
// server may legitimately hold several lines for one menu item (two staff
// adding the same dish); aggregation folds them at display time.
//
// Empty input yields no lines and a grand total of 0.
func Aggregate(items []models.OrderItem) ([]AggregatedLine, float64) {
	groups := collection.GroupByOrdered(items, func(i models.OrderItem) string {
		return i.MenuItemID
	})

	lines := make([]AggregatedLine, 0, len(groups))
	var grandTotal float64

	for _, g := range groups {
		first := g.Items[0]
		line := AggregatedLine{
			MenuItemID: g.Key,
			Name:       first.Name(),
			Category:   first.Category(),
		}
		for _, item := range g.Items {
			line.TotalQuantity += item.Quantity
			line.TotalPrice += float64(item.Quantity) * item.Price
		}
		grandTotal += line.TotalPrice
		lines = append(lines, line)
	}

	return lines, grandTotal
}

// GrandTotal sums quantity × unit price over raw lines without grouping.
// It always equals the aggregated grand total; display code that only needs
// the number uses this cheaper form.
func GrandTotal(items []models.OrderItem) float64 {
	return collection.SumBy(items, func(i models.OrderItem) float64 {
		return float64(i.Quantity) * i.Price
	})
}
