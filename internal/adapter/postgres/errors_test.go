package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if err := MapError(nil, "reminder", uuid.New()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "household", uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrNotFound},
		{"23514", domain.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			t.Parallel()
			pgErr := &pgconn.PgError{Code: tc.code}
			err := MapError(pgErr, "reminder", uuid.New())
			if !errors.Is(err, tc.want) {
				t.Errorf("code %s: expected %v, got %v", tc.code, tc.want, err)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	err := MapError(context.DeadlineExceeded, "batch", uuid.New())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("deadline error should pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("context error must not be mapped to a domain error")
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	base := fmt.Errorf("connection reset")
	id := uuid.New()
	err := MapError(base, "invite", id)
	if !errors.Is(err, base) {
		t.Fatal("original error should remain in the chain")
	}
}
