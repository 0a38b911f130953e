package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgresexp "github.com/hearthhq/hearth-backend/internal/adapter/postgres/expense"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// expenseRepoMock is a hand-rolled stub: unset methods panic.
type expenseRepoMock struct {
	CreateFunc         func(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	ListFunc           func(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error)
	UpdateFunc         func(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	MonthlySummaryFunc func(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error)
}

func (m *expenseRepoMock) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	if m.CreateFunc == nil {
		panic("expenseRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, e)
}

func (m *expenseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	if m.GetByIDFunc == nil {
		panic("expenseRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *expenseRepoMock) List(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error) {
	if m.ListFunc == nil {
		panic("expenseRepoMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, kitchenID, f)
}

func (m *expenseRepoMock) Update(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	if m.UpdateFunc == nil {
		panic("expenseRepoMock.UpdateFunc: method is nil but was called")
	}
	return m.UpdateFunc(ctx, e)
}

func (m *expenseRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("expenseRepoMock.DeleteFunc: method is nil but was called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *expenseRepoMock) MonthlySummary(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error) {
	if m.MonthlySummaryFunc == nil {
		panic("expenseRepoMock.MonthlySummaryFunc: method is nil but was called")
	}
	return m.MonthlySummaryFunc(ctx, kitchenID, year, month)
}

type accessServiceMock struct {
	RequireKitchenFunc func(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

func (m *accessServiceMock) RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	if m.RequireKitchenFunc == nil {
		panic("accessServiceMock.RequireKitchenFunc: method is nil but was called")
	}
	return m.RequireKitchenFunc(ctx, userID, kitchenID, minRole)
}
