package pos

import (
	"context"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/pkg/http"
	"github.com/shashiranjanraj/barman/pkg/validate"
)

// ItemInput is one line of a new order or an add-item call.
type ItemInput struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity"   validate:"required,integer,gt=0"`
	Notes      string `json:"notes,omitempty"`
	Modifiers  string `json:"modifiers,omitempty"`
}

// CreateOrderInput is the payload for opening a table's order.
type CreateOrderInput struct {
	TableNumber string           `json:"tableNumber,omitempty"`
	RoomNumber  string           `json:"roomNumber,omitempty"`
	OrderType   models.OrderType `json:"orderType" validate:"required,in=DINE_IN,TAKEAWAY,ROOM_SERVICE"`
	Items       []ItemInput      `json:"items"     validate:"required"`
	Notes       string           `json:"notes,omitempty"`
}

func (in CreateOrderInput) check() map[string]string {
	errs := validate.Struct(in)
	if in.TableNumber == "" && in.RoomNumber == "" {
		errs["tableNumber"] = "A table or room number is required."
	}
	for _, item := range in.Items {
		for field, msg := range validate.Struct(item) {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}
	return errs
}

// CreateOrder opens a new order. The service enforces one active order
// per table; a second create comes back as a conflict that the caller must
// show, not retry.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if errs := in.check(); validate.HasErrors(errs) {
		return nil, validationError("create_order", errs)
	}

	var ord models.Order
	if err := c.do(ctx, "create_order", http.Post(c.base+"/orders").Body(in), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// CurrentOrder returns the table's single non-terminal order, or (nil, nil)
// when the table has none — an absent value, not an error.
func (c *Client) CurrentOrder(ctx context.Context, tableNumber string) (*models.Order, error) {
	var ord models.Order
	err := c.do(ctx, "current_order",
		http.Get(c.base+"/orders/table/"+tableNumber+"/current"), &ord)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

// TableOrders returns every order the service holds for a table, terminal
// ones included. Used by the history view.
func (c *Client) TableOrders(ctx context.Context, tableNumber string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, "table_orders",
		http.Get(c.base+"/orders/table/"+tableNumber), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AddItem appends a new line to an order. If the menu item is already on
// the order the caller must use UpdateItemQuantity with the summed quantity
// instead — the service stores a second raw line rather than merging.
// PlaceItem makes that decision automatically.
func (c *Client) AddItem(ctx context.Context, orderID string, item ItemInput) (*models.Order, error) {
	if errs := validate.Struct(item); validate.HasErrors(errs) {
		return nil, validationError("add_item", errs)
	}

	var ord models.Order
	if err := c.do(ctx, "add_item",
		http.Post(c.base+"/orders/"+orderID+"/items").Body(item), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// UpdateItemQuantity sets one line's quantity. A quantity of zero or less
// is the same as removing the line.
func (c *Client) UpdateItemQuantity(ctx context.Context, orderID, menuItemID string, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return c.RemoveItem(ctx, orderID, menuItemID)
	}

	var ord models.Order
	if err := c.do(ctx, "update_item_quantity",
		http.Patch(c.base+"/orders/"+orderID+"/items/"+menuItemID).
			Body(map[string]int{"quantity": quantity}), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// RemoveItem deletes one line from an order.
func (c *Client) RemoveItem(ctx context.Context, orderID, menuItemID string) (*models.Order, error) {
	var ord models.Order
	if err := c.do(ctx, "remove_item",
		http.Delete(c.base+"/orders/"+orderID+"/items/"+menuItemID), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// UpdateStatus asks the service for a status transition. The transition
// machine lives entirely on the server; an out-of-order move comes back as
// a remote error carrying the server's message.
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	var ord models.Order
	if err := c.do(ctx, "update_status",
		http.Patch(c.base+"/orders/"+orderID+"/status").
			Body(map[string]models.OrderStatus{"status": status}), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// SyncTableStatuses asks the service to reconcile table occupancy with
// active orders.
func (c *Client) SyncTableStatuses(ctx context.Context) error {
	return c.do(ctx, "sync_table_statuses",
		http.Post(c.base+"/orders/sync-table-statuses"), nil)
}

// PlaceItem is the composition step behind the "Add" button. It owns the
// client-side merge decision:
//
//   - no current order → create one (DINE_IN) with this single item,
//   - item already on the order → update its quantity to existing+quantity,
//   - otherwise → add a new line.
//
// The current order is passed in and the updated one returned; nothing is
// held in ambient state.
func (c *Client) PlaceItem(ctx context.Context, tableNumber string, current *models.Order, item ItemInput) (*models.Order, error) {
	if !current.Active() {
		return c.CreateOrder(ctx, CreateOrderInput{
			TableNumber: tableNumber,
			OrderType:   models.DineIn,
			Items:       []ItemInput{item},
		})
	}

	if existing := current.Item(item.MenuItemID); existing != nil {
		return c.UpdateItemQuantity(ctx, current.ID, item.MenuItemID, existing.Quantity+item.Quantity)
	}

	return c.AddItem(ctx, current.ID, item)
}
