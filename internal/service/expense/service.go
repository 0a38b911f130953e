// Package expense implements kitchen expense tracking and monthly
// summaries.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	postgresexp "github.com/hearthhq/hearth-backend/internal/adapter/postgres/expense"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

type expenseRepo interface {
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	List(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MonthlySummary(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error)
}

type accessService interface {
	RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

// Service implements expense business logic.
type Service struct {
	log    *slog.Logger
	repo   expenseRepo
	access accessService
}

// NewService creates a new expense service.
func NewService(logger *slog.Logger, repo expenseRepo, access accessService) *Service {
	return &Service{
		log:    logger.With("service", "expense"),
		repo:   repo,
		access: access,
	}
}

// Create records an expense against a kitchen. Requires MEMBER.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireKitchen(ctx, userID, input.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	e, err := s.repo.Create(ctx, &domain.Expense{
		ID:          uuid.New(),
		KitchenID:   input.KitchenID,
		PaidBy:      userID,
		AmountCents: input.AmountCents,
		Currency:    strings.ToUpper(input.Currency),
		Category:    input.Category,
		Note:        input.Note,
		SpentAt:     input.SpentAt,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("expense.Create: %w", err)
	}

	s.log.InfoContext(ctx, "expense recorded",
		slog.String("expense_id", e.ID.String()),
		slog.String("kitchen_id", input.KitchenID.String()),
		slog.Int64("amount_cents", input.AmountCents))

	return e, nil
}

// Get returns one expense the caller can see.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, e.KitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns a kitchen's expenses matching the filter.
func (s *Service) List(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, kitchenID, f)
}

// Update edits an expense. The payer or any ADMIN may edit; other
// members may not touch each other's entries.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	minRole := domain.RoleAdmin
	if e.PaidBy == userID {
		minRole = domain.RoleMember
	}
	if _, err := s.access.RequireKitchen(ctx, userID, e.KitchenID, minRole); err != nil {
		return nil, err
	}

	e.AmountCents = input.AmountCents
	e.Currency = strings.ToUpper(input.Currency)
	e.Category = input.Category
	e.Note = input.Note
	e.SpentAt = input.SpentAt

	return s.repo.Update(ctx, e)
}

// Delete removes an expense. Same rule as Update: payer or ADMIN.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	minRole := domain.RoleAdmin
	if e.PaidBy == userID {
		minRole = domain.RoleMember
	}
	if _, err := s.access.RequireKitchen(ctx, userID, e.KitchenID, minRole); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// MonthlySummary aggregates a kitchen's spending for one calendar month.
func (s *Service) MonthlySummary(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if month < time.January || month > time.December {
		return nil, domain.NewValidationError("month", "must be 1..12")
	}
	if year < 2000 || year > 2200 {
		return nil, domain.NewValidationError("year", "out of range")
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.MonthlySummary(ctx, kitchenID, year, month)
}
