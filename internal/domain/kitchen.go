package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kitchen is a physical or logical space under a household. It owns
// inventory, shopping lists, expenses, meal plans and reminders.
// Kitchens have no membership table of their own: access is resolved
// through the owning household.
type Kitchen struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
