package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a dated prompt attached to a kitchen. Sweep-generated
// reminders carry the triggering entity in EntityID; user-created CUSTOM
// reminders may leave it nil.
//
// Invariant: for a given (kitchen, type, entity) at most one incomplete
// reminder exists. The store enforces this with a partial unique index,
// so concurrent sweeps cannot double-create.
type Reminder struct {
	ID          uuid.UUID
	KitchenID   uuid.UUID
	Type        ReminderType
	Title       string
	Body        *string
	EntityID    *uuid.UUID
	ScheduledAt time.Time
	IsCompleted bool
	IsRecurring bool
	Frequency   *Frequency
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Due reports whether the reminder's scheduled time has been reached.
func (r Reminder) Due(now time.Time) bool {
	return !r.IsCompleted && !r.ScheduledAt.After(now)
}
