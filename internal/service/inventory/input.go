package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an inventory item.
type CreateItemInput struct {
	KitchenID   uuid.UUID
	Name        string
	Category    *string
	DefaultUnit string
	Threshold   float64
}

// Validate checks all fields and collects all errors.
func (i *CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.DefaultUnit == "" {
		errs = append(errs, domain.FieldError{Field: "default_unit", Message: "required"})
	}
	if i.Threshold < 0 {
		errs = append(errs, domain.FieldError{Field: "threshold", Message: "must be >= 0"})
	}
	if i.Category != nil && len(*i.Category) > 100 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long (max 100)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateItemInput holds the parameters for editing an inventory item.
type UpdateItemInput struct {
	ItemID      uuid.UUID
	Name        string
	Category    *string
	DefaultUnit string
	Threshold   float64
}

// Validate checks all fields and collects all errors.
func (i *UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.DefaultUnit == "" {
		errs = append(errs, domain.FieldError{Field: "default_unit", Message: "required"})
	}
	if i.Threshold < 0 {
		errs = append(errs, domain.FieldError{Field: "threshold", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddBatchInput holds the parameters for adding stock.
type AddBatchInput struct {
	ItemID    uuid.UUID
	Quantity  float64
	Unit      string
	ExpiresAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i *AddBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be > 0"})
	}
	if i.Unit == "" {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ConsumeInput holds the parameters for drawing stock down.
type ConsumeInput struct {
	ItemID   uuid.UUID
	Quantity float64
	Action   domain.UsageAction
}

// Validate checks all fields and collects all errors.
func (i *ConsumeInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be > 0"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
