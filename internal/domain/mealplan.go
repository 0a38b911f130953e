package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanEntry assigns a dish to a meal slot on a date for a kitchen.
// RecipeID is set when the entry references a saved recipe.
type MealPlanEntry struct {
	ID        uuid.UUID
	KitchenID uuid.UUID
	Date      time.Time
	Meal      MealType
	Title     string
	RecipeID  *uuid.UUID
	Notes     *string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recipe is a stored dish description. LLM-generated recipes keep the
// model's raw output in Instructions and are marked Generated.
type Recipe struct {
	ID           uuid.UUID
	KitchenID    uuid.UUID
	Title        string
	Ingredients  []RecipeIngredient
	Instructions string
	Servings     int
	Generated    bool
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
}

// RecipeIngredient is one ingredient line of a recipe.
type RecipeIngredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// ReceiptLine is one inventory candidate parsed from a receipt image.
// Lines are drafts: the user confirms them before they become batches.
type ReceiptLine struct {
	Name       string
	Quantity   float64
	Unit       string
	PriceCents int64
}
