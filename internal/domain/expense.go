package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense is money spent on a kitchen. Amounts are stored in minor
// currency units (cents) to avoid float drift.
type Expense struct {
	ID          uuid.UUID
	KitchenID   uuid.UUID
	PaidBy      uuid.UUID
	AmountCents int64
	Currency    string
	Category    ExpenseCategory
	Note        *string
	SpentAt     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseSummary aggregates spending for one month of one kitchen.
type ExpenseSummary struct {
	KitchenID  uuid.UUID
	Year       int
	Month      time.Month
	TotalCents int64
	ByCategory map[ExpenseCategory]int64
}
