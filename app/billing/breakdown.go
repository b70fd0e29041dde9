package billing

import (
	"fmt"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/config"
)

// Bill is the displayed decomposition of an order's total. The subtotal is
// derived (total − tax − serviceCharge); tax and service charge are the
// server's numbers, never recomputed here.
type Bill struct {
	Subtotal      float64
	Tax           float64
	ServiceCharge float64
	Total         float64
}

// Breakdown derives the bill from an order. Absent fields read as 0 through
// the zero value. A negative subtotal signals a data error upstream; it is
// rendered as-is rather than clamped so the mismatch stays visible on the
// printed bill.
func Breakdown(o models.Order) Bill {
	return Bill{
		Subtotal:      o.Total - o.Tax - o.ServiceCharge,
		Tax:           o.Tax,
		ServiceCharge: o.ServiceCharge,
		Total:         o.Total,
	}
}

// TaxPercent is the tax share of the total, for the "GST (N%)" line.
// A zero total (new or empty order) reads as 0% instead of dividing by zero.
func (b Bill) TaxPercent() float64 {
	if b.Total == 0 {
		return 0
	}
	return b.Tax / b.Total * 100
}

// Amount formats a monetary value for display: currency symbol and exactly
// two decimal places. Display only — no unit conversion ever happens here.
func Amount(v float64) string {
	return fmt.Sprintf("%s%.2f", config.Currency(), v)
}
