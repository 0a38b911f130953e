// Package household implements household and membership persistence
// using PostgreSQL.
package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides household, membership, and invite persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new household repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const householdColumns = `id, name, created_by, created_at, updated_at`

const createHouseholdSQL = `
INSERT INTO households (id, name, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + householdColumns

const getHouseholdSQL = `SELECT ` + householdColumns + ` FROM households WHERE id = $1`

const updateHouseholdSQL = `
UPDATE households SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + householdColumns

const deleteHouseholdSQL = `DELETE FROM households WHERE id = $1`

const listHouseholdsForUserSQL = `
SELECT h.id, h.name, h.created_by, h.created_at, h.updated_at
FROM households h
JOIN memberships m ON m.household_id = h.id
WHERE m.user_id = $1
ORDER BY h.created_at`

// Create inserts a household row. The creator's OWNER membership is a
// separate insert; the service wraps both in one transaction.
func (r *Repo) Create(ctx context.Context, h *domain.Household) (*domain.Household, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanHousehold(q.QueryRow(ctx, createHouseholdSQL, h.ID, h.Name, h.CreatedBy, h.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "household", h.ID)
	}
	return out, nil
}

// GetByID returns a household by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanHousehold(q.QueryRow(ctx, getHouseholdSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "household", id)
	}
	return out, nil
}

// Update renames a household.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanHousehold(q.QueryRow(ctx, updateHouseholdSQL, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "household", id)
	}
	return out, nil
}

// Delete removes a household; kitchens, memberships and invites cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteHouseholdSQL, id)
	if err != nil {
		return postgres.MapError(err, "household", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("household %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListForUser returns every household the user is a member of.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Household, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listHouseholdsForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	defer rows.Close()

	var out []*domain.Household
	for rows.Next() {
		h, err := scanHousehold(rows)
		if err != nil {
			return nil, fmt.Errorf("scan household: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanHousehold(row pgx.Row) (*domain.Household, error) {
	var h domain.Household
	if err := row.Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}
