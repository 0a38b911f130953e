package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// CreateEntryInput holds the parameters for planning a meal.
type CreateEntryInput struct {
	KitchenID uuid.UUID
	Date      time.Time
	Meal      domain.MealType
	Title     string
	RecipeID  *uuid.UUID
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i *CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Meal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal", Message: "invalid value"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEntryInput holds the parameters for editing a planned meal.
type UpdateEntryInput struct {
	EntryID  uuid.UUID
	Date     time.Time
	Meal     domain.MealType
	Title    string
	RecipeID *uuid.UUID
	Notes    *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Meal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal", Message: "invalid value"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SaveRecipeInput holds the parameters for saving a recipe by hand.
type SaveRecipeInput struct {
	KitchenID    uuid.UUID
	Title        string
	Ingredients  []domain.RecipeIngredient
	Instructions string
	Servings     int
}

// Validate checks all fields and collects all errors.
func (i *SaveRecipeInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	if i.Instructions == "" {
		errs = append(errs, domain.FieldError{Field: "instructions", Message: "required"})
	}
	if i.Servings <= 0 {
		errs = append(errs, domain.FieldError{Field: "servings", Message: "must be > 0"})
	}
	for _, ing := range i.Ingredients {
		if ing.Name == "" {
			errs = append(errs, domain.FieldError{Field: "ingredients", Message: "ingredient name required"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GenerateRecipeInput holds the parameters for an LLM recipe suggestion.
type GenerateRecipeInput struct {
	KitchenID uuid.UUID
	Prompt    *string
	Servings  int
}

// Validate checks all fields and collects all errors.
func (i *GenerateRecipeInput) Validate() error {
	var errs []domain.FieldError

	if i.KitchenID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "kitchen_id", Message: "required"})
	}
	if i.Servings <= 0 || i.Servings > 20 {
		errs = append(errs, domain.FieldError{Field: "servings", Message: "must be 1..20"})
	}
	if i.Prompt != nil && len(*i.Prompt) > 500 {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
