package pos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/pkg/testkit"
)

func newClient() *pos.Client {
	return pos.NewWithBase("http://pos.test")
}

func fakeOrder(id, table string, items ...models.OrderItem) models.Order {
	return models.Order{
		ID:          id,
		TableNumber: table,
		OrderType:   models.DineIn,
		Status:      models.StatusPlaced,
		Items:       items,
	}
}

func line(menuItemID string, qty int, price float64) models.OrderItem {
	return models.OrderItem{MenuItemID: menuItemID, Quantity: qty, Price: price}
}

func TestCreateOrder(t *testing.T) {
	want := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	step := testkit.Respond("POST", "/orders", 201, want)
	testkit.NewTransport(step).Install(t)

	got, err := newClient().CreateOrder(context.Background(), pos.CreateOrderInput{
		TableNumber: "5",
		OrderType:   models.DineIn,
		Items:       []pos.ItemInput{{MenuItemID: "beer-1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", got.ID)
	testkit.AssertCalled(t, step, 1)

	var sent pos.CreateOrderInput
	testkit.LastBody(t, step, &sent)
	assert.Equal(t, "5", sent.TableNumber)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, 2, sent.Items[0].Quantity)
}

func TestCreateOrderConflictIsNotRetried(t *testing.T) {
	step := testkit.Respond("POST", "/orders", 409,
		map[string]string{"message": "Table already has an active order"})
	testkit.NewTransport(step).Install(t)

	_, err := newClient().CreateOrder(context.Background(), pos.CreateOrderInput{
		TableNumber: "5",
		OrderType:   models.DineIn,
		Items:       []pos.ItemInput{{MenuItemID: "beer-1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, pos.IsConflict(err))
	assert.Contains(t, err.Error(), "active order")
	testkit.AssertCalled(t, step, 1)
}

func TestCreateOrderValidationStaysOffTheWire(t *testing.T) {
	step := testkit.Respond("POST", "/orders", 201, nil)
	mt := testkit.NewTransport(step)
	mt.Install(t)

	_, err := newClient().CreateOrder(context.Background(), pos.CreateOrderInput{
		OrderType: models.DineIn, // no table, no room, no items
	})
	require.Error(t, err)
	assert.True(t, pos.IsValidation(err))
	testkit.AssertNotCalled(t, step)
	assert.Equal(t, 0, mt.Total())
}

func TestCurrentOrderAbsentIsNotAnError(t *testing.T) {
	step := testkit.Respond("GET", "/orders/table/5/current", 404,
		map[string]string{"message": "No active order"})
	testkit.NewTransport(step).Install(t)

	got, err := newClient().CurrentOrder(context.Background(), "5")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCurrentOrderFound(t *testing.T) {
	step := testkit.Respond("GET", "/orders/table/5/current", 200,
		fakeOrder("ord-1", "5", line("beer-1", 1, 150)))
	testkit.NewTransport(step).Install(t)

	got, err := newClient().CurrentOrder(context.Background(), "5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ord-1", got.ID)
	assert.True(t, got.Active())
}

func TestUpdateItemQuantityZeroRemovesTheLine(t *testing.T) {
	patch := testkit.Respond("PATCH", "/orders/ord-1/items/beer-1", 200, nil)
	del := testkit.Respond("DELETE", "/orders/ord-1/items/beer-1", 200,
		fakeOrder("ord-1", "5"))
	testkit.NewTransport(patch, del).Install(t)

	got, err := newClient().UpdateItemQuantity(context.Background(), "ord-1", "beer-1", 0)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	testkit.AssertNotCalled(t, patch)
	testkit.AssertCalled(t, del, 1)
}

func TestPlaceItemOpensOrderWhenTableIsEmpty(t *testing.T) {
	step := testkit.Respond("POST", "/orders", 201,
		fakeOrder("ord-1", "5", line("beer-1", 1, 150)))
	testkit.NewTransport(step).Install(t)

	got, err := newClient().PlaceItem(context.Background(), "5", nil,
		pos.ItemInput{MenuItemID: "beer-1", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", got.ID)

	var sent pos.CreateOrderInput
	testkit.LastBody(t, step, &sent)
	assert.Equal(t, models.DineIn, sent.OrderType)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "beer-1", sent.Items[0].MenuItemID)
}

func TestPlaceItemMergesExistingLine(t *testing.T) {
	current := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	step := testkit.Respond("PATCH", "/orders/ord-1/items/beer-1", 200,
		fakeOrder("ord-1", "5", line("beer-1", 3, 150)))
	testkit.NewTransport(step).Install(t)

	got, err := newClient().PlaceItem(context.Background(), "5", &current,
		pos.ItemInput{MenuItemID: "beer-1", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Items[0].Quantity)

	var sent map[string]int
	testkit.LastBody(t, step, &sent)
	assert.Equal(t, 3, sent["quantity"], "quantity must be existing+added, not added")
}

func TestPlaceItemAddsNewLine(t *testing.T) {
	current := fakeOrder("ord-1", "5", line("beer-1", 2, 150))
	step := testkit.Respond("POST", "/orders/ord-1/items", 200,
		fakeOrder("ord-1", "5", line("beer-1", 2, 150), line("fries-1", 1, 99)))
	testkit.NewTransport(step).Install(t)

	got, err := newClient().PlaceItem(context.Background(), "5", &current,
		pos.ItemInput{MenuItemID: "fries-1", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	testkit.AssertCalled(t, step, 1)
}

func TestPlaceItemTreatsSettledOrderAsAbsent(t *testing.T) {
	billed := fakeOrder("ord-0", "5", line("beer-1", 1, 150))
	billed.Status = models.StatusBilled
	step := testkit.Respond("POST", "/orders", 201, fakeOrder("ord-1", "5"))
	testkit.NewTransport(step).Install(t)

	_, err := newClient().PlaceItem(context.Background(), "5", &billed,
		pos.ItemInput{MenuItemID: "beer-1", Quantity: 1})
	require.NoError(t, err)
	testkit.AssertCalled(t, step, 1)
}

func TestUpdateStatus(t *testing.T) {
	served := fakeOrder("ord-1", "5")
	served.Status = models.StatusServed
	step := testkit.Respond("PATCH", "/orders/ord-1/status", 200, served)
	testkit.NewTransport(step).Install(t)

	got, err := newClient().UpdateStatus(context.Background(), "ord-1", models.StatusServed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusServed, got.Status)

	var sent map[string]string
	testkit.LastBody(t, step, &sent)
	assert.Equal(t, "SERVED", sent["status"])
}

func TestNetworkErrorKind(t *testing.T) {
	boom := errors.New("connection refused")
	step := testkit.Fail("GET", "/orders/table/5/current", boom)
	testkit.NewTransport(step).Install(t)

	_, err := newClient().CurrentOrder(context.Background(), "5")
	require.Error(t, err)

	var apiErr *pos.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, pos.KindNetwork, apiErr.Kind)
	assert.ErrorIs(t, err, boom)
}

func TestRequestCarriesRequestID(t *testing.T) {
	step := testkit.Respond("GET", "/orders/table/5/current", 200, fakeOrder("ord-1", "5"))
	testkit.NewTransport(step).Install(t)

	_, err := newClient().CurrentOrder(context.Background(), "5")
	require.NoError(t, err)
	assert.NotEmpty(t, step.Last().Header.Get("X-Request-ID"))
}
