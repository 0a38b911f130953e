package shopping

import (
	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// CreateListInput holds the parameters for creating a shopping list.
type CreateListInput struct {
	KitchenID uuid.UUID
	Name      string
}

// Validate checks all fields and collects all errors.
func (i *CreateListInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddLineInput holds the parameters for adding a line to a list.
type AddLineInput struct {
	ListID   uuid.UUID
	ItemID   *uuid.UUID
	Name     string
	Quantity float64
	Unit     string
}

// Validate checks all fields and collects all errors.
func (i *AddLineInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be > 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateLineInput holds the parameters for editing a line.
type UpdateLineInput struct {
	LineID   uuid.UUID
	Name     string
	Quantity float64
	Unit     string
}

// Validate checks all fields and collects all errors.
func (i *UpdateLineInput) Validate() error {
	var errs []domain.FieldError

	if i.LineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "line_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be > 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
