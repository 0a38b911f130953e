package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList is a named list of things to buy for a kitchen.
type ShoppingList struct {
	ID        uuid.UUID
	KitchenID uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShoppingListItem is one line on a shopping list. ItemID links back to
// the inventory item when the line was generated from a restock
// suggestion; free-form lines leave it nil.
type ShoppingListItem struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	ItemID    *uuid.UUID
	Name      string
	Quantity  float64
	Unit      string
	IsChecked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
