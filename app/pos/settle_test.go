package pos_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/pkg/testkit"
)

var errPrinterJam = errors.New("printer jam")

type jammedPrinter struct{}

func (jammedPrinter) Write([]byte) (int, error) { return 0, errPrinterJam }

func billedOrder() models.Order {
	ord := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	ord.Status = models.StatusBilled
	ord.Total = 345
	return ord
}

func TestSettlePrintsReceiptThenBills(t *testing.T) {
	step := testkit.Respond("PATCH", "/orders/ord-1/status", 200, billedOrder())
	testkit.NewTransport(step).Install(t)

	ord := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	ord.Total = 345

	var receipt strings.Builder
	res, err := newClient().Settle(context.Background(), ord, &receipt, nil)
	require.NoError(t, err)

	assert.True(t, res.Printed)
	assert.Equal(t, models.StatusBilled, res.Order.Status)
	assert.Contains(t, receipt.String(), "Bill #: ord-1")

	var sent map[string]string
	testkit.LastBody(t, step, &sent)
	assert.Equal(t, "BILLED", sent["status"])
}

func TestSettleProceedsWhenPrinterJamsAndNoConfirm(t *testing.T) {
	step := testkit.Respond("PATCH", "/orders/ord-1/status", 200, billedOrder())
	testkit.NewTransport(step).Install(t)

	ord := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	res, err := newClient().Settle(context.Background(), ord, jammedPrinter{}, nil)
	require.NoError(t, err)

	assert.False(t, res.Printed)
	assert.ErrorIs(t, res.PrintErr, errPrinterJam)
	testkit.AssertCalled(t, step, 1)
}

func TestSettleConfirmedAfterPrintFailure(t *testing.T) {
	step := testkit.Respond("PATCH", "/orders/ord-1/status", 200, billedOrder())
	testkit.NewTransport(step).Install(t)

	asked := false
	confirm := func(printErr error) bool {
		asked = true
		assert.ErrorIs(t, printErr, errPrinterJam)
		return true
	}

	ord := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	res, err := newClient().Settle(context.Background(), ord, jammedPrinter{}, confirm)
	require.NoError(t, err)
	assert.True(t, asked)
	assert.Equal(t, models.StatusBilled, res.Order.Status)
}

func TestSettleAbortedByOperator(t *testing.T) {
	step := testkit.Respond("PATCH", "/orders/ord-1/status", 200, billedOrder())
	mt := testkit.NewTransport(step)
	mt.Install(t)

	decline := func(error) bool { return false }

	ord := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	_, err := newClient().Settle(context.Background(), ord, jammedPrinter{}, decline)
	require.ErrorIs(t, err, pos.ErrSettleAborted)
	assert.Equal(t, 0, mt.Total(), "a declined settlement must not touch the order")
}

func TestSettleConfirmNotAskedWhenPrintSucceeds(t *testing.T) {
	step := testkit.Respond("PATCH", "/orders/ord-1/status", 200, billedOrder())
	testkit.NewTransport(step).Install(t)

	confirm := func(error) bool {
		t.Fatal("confirm must only run after a print failure")
		return false
	}

	ord := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	var receipt strings.Builder
	_, err := newClient().Settle(context.Background(), ord, &receipt, confirm)
	require.NoError(t, err)
}
