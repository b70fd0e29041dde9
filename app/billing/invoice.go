package billing

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/config"
)

// receiptWidth is sized for 80mm thermal paper in a monospace face.
const receiptWidth = 32

// Invoice renders an order as a printable text receipt.
type Invoice struct {
	Order       models.Order
	TableNumber string
	Now         func() time.Time // nil → time.Now
}

// Render writes the receipt to w. Lines for one menu item are aggregated,
// so an order the server stored as two raw lines prints as one.
func (inv Invoice) Render(w io.Writer) error {
	now := time.Now
	if inv.Now != nil {
		now = inv.Now
	}

	var b strings.Builder
	rule := strings.Repeat("-", receiptWidth)

	center(&b, config.Get("RESTAURANT_NAME", "HOTEL BAR SYSTEM"))
	center(&b, config.Get("RESTAURANT_ADDRESS", "123 Main Street"))
	center(&b, config.Get("RESTAURANT_PHONE", "Tel: (123) 456-7890"))
	if gstin := config.Get("RESTAURANT_GSTIN", ""); gstin != "" {
		center(&b, "GSTIN: "+gstin)
	}
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "Bill #: %s\n", inv.Order.ID)
	if inv.TableNumber != "" {
		fmt.Fprintf(&b, "Table: %s\n", inv.TableNumber)
	}
	fmt.Fprintf(&b, "Date: %s\n", now().Format("02 Jan 2006 15:04"))
	b.WriteString(rule + "\n")

	lines, _ := Aggregate(inv.Order.Items)
	for _, line := range lines {
		b.WriteString(line.Name + "\n")
		unit := line.TotalPrice
		if line.TotalQuantity > 0 {
			unit = line.TotalPrice / float64(line.TotalQuantity)
		}
		row(&b,
			fmt.Sprintf("%d x %s", line.TotalQuantity, Amount(unit)),
			Amount(line.TotalPrice))
	}
	b.WriteString(rule + "\n")

	bill := Breakdown(inv.Order)
	row(&b, "Subtotal:", Amount(bill.Subtotal))
	row(&b, "Service Charge:", Amount(bill.ServiceCharge))
	row(&b, fmt.Sprintf("GST (%.0f%%):", bill.TaxPercent()), Amount(bill.Tax))
	b.WriteString(rule + "\n")
	row(&b, "Total:", Amount(bill.Total))
	b.WriteString(rule + "\n")

	center(&b, "Thank you for your visit!")
	center(&b, "Please visit again")

	_, err := io.WriteString(w, b.String())
	return err
}

func center(b *strings.Builder, s string) {
	pad := (receiptWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

// row writes a left/right justified line, as on a thermal receipt.
func row(b *strings.Builder, left, right string) {
	gap := receiptWidth - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")
}
