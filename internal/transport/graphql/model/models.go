package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// InventoryItemFilter narrows inventory item listings.
type InventoryItemFilter struct {
	Category *string
	Search   *string
	LowStock *bool
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category *domain.ExpenseCategory
	PaidBy   *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// UploadReceiptInput carries a base64-encoded receipt image.
type UploadReceiptInput struct {
	KitchenID   uuid.UUID
	Data        string
	ContentType string
}

// CategoryTotal is one row of a monthly expense summary breakdown.
type CategoryTotal struct {
	Category   domain.ExpenseCategory
	TotalCents int64
}

// ExpenseSummary is the GraphQL shape of a monthly summary: the
// per-category map is flattened into a stable list.
type ExpenseSummary struct {
	KitchenID  uuid.UUID
	Year       int
	Month      int
	TotalCents int64
	ByCategory []CategoryTotal
}
