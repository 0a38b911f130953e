package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// CreateInput holds the parameters for recording an expense.
type CreateInput struct {
	KitchenID   uuid.UUID
	AmountCents int64
	Currency    string
	Category    domain.ExpenseCategory
	Note        *string
	SpentAt     time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	errs = append(errs, validateExpenseFields(i.AmountCents, i.Currency, i.Category, i.Note, i.SpentAt)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing an expense.
type UpdateInput struct {
	ExpenseID   uuid.UUID
	AmountCents int64
	Currency    string
	Category    domain.ExpenseCategory
	Note        *string
	SpentAt     time.Time
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ExpenseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "expense_id", Message: "required"})
	}
	errs = append(errs, validateExpenseFields(i.AmountCents, i.Currency, i.Category, i.Note, i.SpentAt)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateExpenseFields(amountCents int64, currency string, category domain.ExpenseCategory, note *string, spentAt time.Time) []domain.FieldError {
	var errs []domain.FieldError

	if amountCents <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount_cents", Message: "must be > 0"})
	}
	if len(currency) != 3 {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter ISO 4217 code"})
	}
	if !category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if note != nil && len(*note) > 500 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long (max 500)"})
	}
	if spentAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "spent_at", Message: "required"})
	}

	return errs
}
