package pos

import (
	"context"
	"errors"
	"io"

	"github.com/shashiranjanraj/barman/app/billing"
	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/pkg/logger"
	"github.com/shashiranjanraj/barman/pkg/metrics"
)

// ErrSettleAborted is returned when the operator declined to settle after
// the receipt failed to print. The order keeps its current status.
var ErrSettleAborted = errors.New("settlement aborted by operator")

// SettleResult reports how a settlement went. Order is the billed order;
// Printed and PrintErr describe the receipt step.
type SettleResult struct {
	Order    *models.Order
	Printed  bool
	PrintErr error
}

// Settle closes out a table's bill. The ordering is deliberate and must be
// preserved by callers: the receipt is rendered to printer FIRST, and the
// BILLED transition is attempted regardless of how printing went — a jammed
// printer never leaves a table stuck. When the print step fails and confirm
// is non-nil, the operator is asked before proceeding, since settling means
// the guest may leave without a physical copy; declining aborts with
// ErrSettleAborted and no status change. A nil confirm warns and proceeds.
//
// On success the caller clears its local order reference; the table's
// session is over.
func (c *Client) Settle(ctx context.Context, ord models.Order, printer io.Writer, confirm func(printErr error) bool) (SettleResult, error) {
	res := SettleResult{}

	inv := billing.Invoice{Order: ord, TableNumber: ord.TableNumber}
	if err := inv.Render(printer); err != nil {
		res.PrintErr = err
		logger.Warn("pos: receipt print failed, bill can still be settled",
			"order_id", ord.ID, "error", err)
		if confirm != nil && !confirm(err) {
			return res, ErrSettleAborted
		}
	} else {
		res.Printed = true
	}

	billed, err := c.UpdateStatus(ctx, ord.ID, models.StatusBilled)
	if err != nil {
		return res, err
	}
	res.Order = billed

	printed := "no"
	if res.Printed {
		printed = "yes"
	}
	metrics.BillsSettled.WithLabelValues(printed).Inc()

	return res, nil
}
