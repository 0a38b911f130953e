package mealplan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const recipeColumns = `id, kitchen_id, title, ingredients, instructions, servings, generated, created_by, created_at`

const createRecipeSQL = `
INSERT INTO recipes (id, kitchen_id, title, ingredients, instructions, servings, generated, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + recipeColumns

const getRecipeSQL = `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

const listRecipesSQL = `
SELECT ` + recipeColumns + ` FROM recipes
WHERE kitchen_id = $1
ORDER BY created_at DESC`

const deleteRecipeSQL = `DELETE FROM recipes WHERE id = $1`

// CreateRecipe stores a recipe. Ingredients are kept as a jsonb column;
// they are read back whole, never queried into.
func (r *Repo) CreateRecipe(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanRecipe(q.QueryRow(ctx, createRecipeSQL,
		rec.ID, rec.KitchenID, rec.Title, ingredients, rec.Instructions,
		rec.Servings, rec.Generated, rec.CreatedBy, rec.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	return out, nil
}

// GetRecipe returns a recipe by primary key.
func (r *Repo) GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanRecipe(q.QueryRow(ctx, getRecipeSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}
	return out, nil
}

// ListRecipes returns a kitchen's recipes, newest first.
func (r *Repo) ListRecipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRecipesSQL, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var out []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteRecipe removes a recipe. Meal plan entries keep their title but
// lose the reference (the FK is ON DELETE SET NULL).
func (r *Repo) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteRecipeSQL, id)
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var rec domain.Recipe
	var ingredients []byte
	err := row.Scan(&rec.ID, &rec.KitchenID, &rec.Title, &ingredients,
		&rec.Instructions, &rec.Servings, &rec.Generated, &rec.CreatedBy, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
		return nil, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	return &rec, nil
}
