package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a kind of good tracked in a kitchen (e.g. "olive oil").
// Quantities live on batches; the item carries the restock threshold that
// the low-stock sweep compares against.
type InventoryItem struct {
	ID          uuid.UUID
	KitchenID   uuid.UUID
	Name        string
	Category    *string
	DefaultUnit string
	Threshold   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InventoryBatch is a quantity of an item acquired at one time, tracked
// separately for expiry and FIFO consumption.
// Invariant: Quantity >= 0. A batch drained to zero by consumption
// transitions to USED regardless of its expiry date.
type InventoryBatch struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Quantity  float64
	Unit      string
	ExpiresAt *time.Time
	Status    BatchStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpiresWithin reports whether the batch has an expiry date inside the
// window [now, now+d]. Batches without an expiry date never expire.
func (b InventoryBatch) ExpiresWithin(now time.Time, d time.Duration) bool {
	if b.ExpiresAt == nil {
		return false
	}
	exp := *b.ExpiresAt
	return !exp.Before(now) && !exp.After(now.Add(d))
}

// UsageLog records a single draw-down event against an item. Entries with
// consumption actions feed the restock-prediction sweep.
type UsageLog struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BatchID   *uuid.UUID
	UserID    uuid.UUID
	Action    UsageAction
	Quantity  float64
	CreatedAt time.Time
}
