package household

import (
	"net/mail"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// CreateInput holds the parameters for creating a household.
type CreateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

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

// UpdateInput holds the parameters for renaming a household.
type UpdateInput struct {
	HouseholdID uuid.UUID
	Name        string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
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

// InviteInput holds the parameters for inviting a user by email.
type InviteInput struct {
	HouseholdID uuid.UUID
	Email       string
	Role        domain.Role
}

// Validate checks all fields and collects all errors.
func (i *InviteInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	} else if i.Role == domain.RoleOwner {
		errs = append(errs, domain.FieldError{Field: "role", Message: "cannot invite as OWNER"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateRoleInput holds the parameters for changing a member's role.
type UpdateRoleInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        domain.Role
}

// Validate checks all fields and collects all errors.
func (i *UpdateRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
