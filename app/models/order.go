// Package models holds the wire types exchanged with the remote POS service.
//
// Every struct mirrors a JSON body the service sends or accepts. The terminal
// never owns this data: after each mutation the full server response replaces
// whatever was held locally.
package models

import "time"

// OrderType classifies where an order is consumed.
type OrderType string

const (
	DineIn      OrderType = "DINE_IN"
	Takeaway    OrderType = "TAKEAWAY"
	RoomService OrderType = "ROOM_SERVICE"
)

// OrderStatus is the lifecycle state of an order. The transition machine
// (PLACED → IN_KITCHEN → SERVED → BILLED → COMPLETED, CANCELLED from any
// non-terminal state) is enforced by the remote service, not here.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusInKitchen OrderStatus = "IN_KITCHEN"
	StatusServed    OrderStatus = "SERVED"
	StatusBilled    OrderStatus = "BILLED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether the status closes the order's table session.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusBilled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line of an order. Price is the unit price captured when
// the item was added and may diverge from the live menu price.
type OrderItem struct {
	ID         string    `json:"id,omitempty"`
	OrderID    string    `json:"orderId,omitempty"`
	MenuItemID string    `json:"menuItemId"`
	MenuItem   *MenuItem `json:"menuItem,omitempty"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	Notes      string    `json:"notes,omitempty"`
	Modifiers  string    `json:"modifiers,omitempty"`
}

// Name returns the display name for the line, falling back to the menu item
// snapshot when present.
func (i OrderItem) Name() string {
	if i.MenuItem != nil {
		return i.MenuItem.Name
	}
	return i.MenuItemID
}

// Category returns the menu category for the line, or "" when the snapshot
// was not expanded by the server.
func (i OrderItem) Category() string {
	if i.MenuItem != nil {
		return i.MenuItem.Category
	}
	return ""
}

// Order is one table or room session's order. Items keep the server's
// insertion order; display relies on it, totals do not.
//
// The service guarantees total = subtotal + tax + serviceCharge. The
// terminal only redisplays that decomposition and never recomputes tax or
// service charge itself.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber,omitempty"`
	TableNumber   string      `json:"tableNumber,omitempty"`
	RoomNumber    string      `json:"roomNumber,omitempty"`
	OrderType     OrderType   `json:"orderType"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	ServiceCharge float64     `json:"serviceCharge"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	PaymentStatus bool        `json:"paymentStatus"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
	UpdatedAt     time.Time   `json:"updatedAt,omitempty"`
}

// Active reports whether the order still holds its table's session.
func (o *Order) Active() bool {
	return o != nil && !o.Status.Terminal()
}

// Item returns the line referencing menuItemID, or nil.
func (o *Order) Item(menuItemID string) *OrderItem {
	if o == nil {
		return nil
	}
	for i := range o.Items {
		if o.Items[i].MenuItemID == menuItemID {
			return &o.Items[i]
		}
	}
	return nil
}
