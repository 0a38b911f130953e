package reminder

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// reminderRepoMock is a hand-rolled stub: unset methods panic.
type reminderRepoMock struct {
	CreateFunc        func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByKitchenFunc func(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error)
	CompleteFunc      func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	UpdateFunc        func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *reminderRepoMock) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	if m.CreateFunc == nil {
		panic("reminderRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, rem)
}

func (m *reminderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	if m.GetByIDFunc == nil {
		panic("reminderRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *reminderRepoMock) ListByKitchen(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error) {
	if m.ListByKitchenFunc == nil {
		panic("reminderRepoMock.ListByKitchenFunc: method is nil but was called")
	}
	return m.ListByKitchenFunc(ctx, kitchenID, includeCompleted)
}

func (m *reminderRepoMock) Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	if m.CompleteFunc == nil {
		panic("reminderRepoMock.CompleteFunc: method is nil but was called")
	}
	return m.CompleteFunc(ctx, id)
}

func (m *reminderRepoMock) Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	if m.UpdateFunc == nil {
		panic("reminderRepoMock.UpdateFunc: method is nil but was called")
	}
	return m.UpdateFunc(ctx, rem)
}

func (m *reminderRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("reminderRepoMock.DeleteFunc: method is nil but was called")
	}
	return m.DeleteFunc(ctx, id)
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
