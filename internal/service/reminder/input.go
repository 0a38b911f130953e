package reminder

import (
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// CreateInput holds the parameters for a user-created reminder.
// Users create CUSTOM and MEAL_PREP reminders; the derived types
// (LOW_STOCK, EXPIRY, SHOPPING) belong to the sweep.
type CreateInput struct {
	KitchenID   uuid.UUID
	Type        domain.ReminderType
	Title       string
	Body        *string
	ScheduledAt time.Time
	IsRecurring bool
	Frequency   *domain.Frequency
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	switch i.Type {
	case domain.ReminderTypeCustom, domain.ReminderTypeMealPrep:
	case domain.ReminderTypeLowStock, domain.ReminderTypeExpiry, domain.ReminderTypeShopping:
		errs = append(errs, domain.FieldError{Field: "type", Message: "derived reminder types cannot be created manually"})
	default:
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	if i.ScheduledAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scheduled_at", Message: "required"})
	}
	if i.IsRecurring {
		if i.Frequency == nil {
			errs = append(errs, domain.FieldError{Field: "frequency", Message: "required for recurring reminders"})
		} else if !i.Frequency.IsValid() {
			errs = append(errs, domain.FieldError{Field: "frequency", Message: "invalid value"})
		}
	} else if i.Frequency != nil {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "only valid for recurring reminders"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing a reminder.
type UpdateInput struct {
	ReminderID  uuid.UUID
	Title       string
	Body        *string
	ScheduledAt time.Time
	IsRecurring bool
	Frequency   *domain.Frequency
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ReminderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reminder_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.ScheduledAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scheduled_at", Message: "required"})
	}
	if i.IsRecurring {
		if i.Frequency == nil {
			errs = append(errs, domain.FieldError{Field: "frequency", Message: "required for recurring reminders"})
		} else if !i.Frequency.IsValid() {
			errs = append(errs, domain.FieldError{Field: "frequency", Message: "invalid value"})
		}
	} else if i.Frequency != nil {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "only valid for recurring reminders"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
