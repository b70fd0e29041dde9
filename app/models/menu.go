package models

import "time"

// Department routes a menu item's preparation.
const (
	DepartmentKitchen = "KITCHEN"
	DepartmentBar     = "BAR"
)

// MenuItem is a catalogue entry. Orders reference it by ID and snapshot its
// price; they never own it.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	InStock     bool      `json:"inStock"`
	IsAvailable bool      `json:"isAvailable"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// MenuCategory is a named grouping of menu items.
type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
