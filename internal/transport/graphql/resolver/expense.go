package resolver

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	postgresexp "github.com/hearthhq/hearth-backend/internal/adapter/postgres/expense"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/expense"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/model"
)

func (r *queryResolver) Expense(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	return r.expense.Get(ctx, id)
}

func (r *queryResolver) Expenses(ctx context.Context, kitchenID uuid.UUID, filter *model.ExpenseFilter) ([]*domain.Expense, error) {
	var f postgresexp.Filter
	if filter != nil {
		f.Category = filter.Category
		f.PaidBy = filter.PaidBy
		f.From = filter.From
		f.To = filter.To
	}
	return r.expense.List(ctx, kitchenID, f)
}

func (r *queryResolver) ExpenseSummary(ctx context.Context, kitchenID uuid.UUID, year, month int) (*model.ExpenseSummary, error) {
	summary, err := r.expense.MonthlySummary(ctx, kitchenID, year, time.Month(month))
	if err != nil {
		return nil, err
	}

	// Flatten the category map into a list with a stable order.
	byCategory := make([]model.CategoryTotal, 0, len(summary.ByCategory))
	for cat, total := range summary.ByCategory {
		byCategory = append(byCategory, model.CategoryTotal{Category: cat, TotalCents: total})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		return byCategory[i].Category < byCategory[j].Category
	})

	return &model.ExpenseSummary{
		KitchenID:  summary.KitchenID,
		Year:       summary.Year,
		Month:      int(summary.Month),
		TotalCents: summary.TotalCents,
		ByCategory: byCategory,
	}, nil
}

func (r *mutationResolver) CreateExpense(ctx context.Context, input expense.CreateInput) (*domain.Expense, error) {
	return r.expense.Create(ctx, input)
}

func (r *mutationResolver) UpdateExpense(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error) {
	return r.expense.Update(ctx, input)
}

func (r *mutationResolver) DeleteExpense(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.expense.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
