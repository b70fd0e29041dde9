package models

import "time"

// TableStatus is the service's view of a table.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// TableOrder is the summary of a table's active order as returned inline
// with the table itself.
type TableOrder struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime,omitempty"`
	Amount    float64 `json:"amount"`
	Items     []struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	} `json:"items,omitempty"`
}

// Table is one physical table. IsOccupied is derived by the service from
// whether an active (non-billed) order exists for it.
type Table struct {
	ID           int         `json:"id"`
	Number       int         `json:"number"`
	Capacity     int         `json:"capacity"`
	Status       TableStatus `json:"status"`
	IsOccupied   bool        `json:"isOccupied"`
	CurrentOrder *TableOrder `json:"currentOrder,omitempty"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt,omitempty"`
}
