// Package kitchen implements kitchen persistence using PostgreSQL.
package kitchen

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides kitchen persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new kitchen repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const kitchenColumns = `id, household_id, name, description, created_at, updated_at`

const createKitchenSQL = `
INSERT INTO kitchens (id, household_id, name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + kitchenColumns

const getKitchenSQL = `SELECT ` + kitchenColumns + ` FROM kitchens WHERE id = $1`

const updateKitchenSQL = `
UPDATE kitchens SET name = $2, description = $3, updated_at = now()
WHERE id = $1
RETURNING ` + kitchenColumns

const deleteKitchenSQL = `DELETE FROM kitchens WHERE id = $1`

const listKitchensSQL = `
SELECT ` + kitchenColumns + ` FROM kitchens
WHERE household_id = $1
ORDER BY created_at`

const getHouseholdIDSQL = `SELECT household_id FROM kitchens WHERE id = $1`

const memberUserIDsSQL = `
SELECT m.user_id
FROM memberships m
JOIN kitchens k ON k.household_id = m.household_id
WHERE k.id = $1`

// Create inserts a kitchen.
func (r *Repo) Create(ctx context.Context, k *domain.Kitchen) (*domain.Kitchen, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanKitchen(q.QueryRow(ctx, createKitchenSQL,
		k.ID, k.HouseholdID, k.Name, k.Description, k.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "kitchen", k.ID)
	}
	return out, nil
}

// GetByID returns a kitchen by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanKitchen(q.QueryRow(ctx, getKitchenSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "kitchen", id)
	}
	return out, nil
}

// HouseholdID resolves a kitchen to its owning household. The access
// guard calls this before delegating to the household membership check.
func (r *Repo) HouseholdID(ctx context.Context, kitchenID uuid.UUID) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var householdID uuid.UUID
	if err := q.QueryRow(ctx, getHouseholdIDSQL, kitchenID).Scan(&householdID); err != nil {
		return uuid.Nil, postgres.MapError(err, "kitchen", kitchenID)
	}
	return householdID, nil
}

// MemberUserIDs returns every user with access to a kitchen via its
// owning household. The sweep fans notifications out to this set.
func (r *Repo) MemberUserIDs(ctx context.Context, kitchenID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, memberUserIDsSQL, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("list kitchen members: %w", err)
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan member id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Update changes a kitchen's name and description.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Kitchen, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanKitchen(q.QueryRow(ctx, updateKitchenSQL, id, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "kitchen", id)
	}
	return out, nil
}

// Delete removes a kitchen; inventory, lists, expenses and reminders cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteKitchenSQL, id)
	if err != nil {
		return postgres.MapError(err, "kitchen", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("kitchen %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByHousehold returns the kitchens of one household.
func (r *Repo) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listKitchensSQL, householdID)
	if err != nil {
		return nil, fmt.Errorf("list kitchens: %w", err)
	}
	defer rows.Close()

	var out []*domain.Kitchen
	for rows.Next() {
		k, err := scanKitchen(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kitchen: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func scanKitchen(row pgx.Row) (*domain.Kitchen, error) {
	var k domain.Kitchen
	if err := row.Scan(&k.ID, &k.HouseholdID, &k.Name, &k.Description, &k.CreatedAt, &k.UpdatedAt); err != nil {
		return nil, err
	}
	return &k, nil
}
