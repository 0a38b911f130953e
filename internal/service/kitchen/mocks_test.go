package kitchen

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

type kitchenRepoMock struct {
	CreateFunc          func(ctx context.Context, k *domain.Kitchen) (*domain.Kitchen, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Kitchen, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	ListByHouseholdFunc func(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error)
}

func (m *kitchenRepoMock) Create(ctx context.Context, k *domain.Kitchen) (*domain.Kitchen, error) {
	if m.CreateFunc == nil {
		panic("CreateFunc is nil but was called")
	}
	return m.CreateFunc(ctx, k)
}

func (m *kitchenRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error) {
	if m.GetByIDFunc == nil {
		panic("GetByIDFunc is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *kitchenRepoMock) Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Kitchen, error) {
	if m.UpdateFunc == nil {
		panic("UpdateFunc is nil but was called")
	}
	return m.UpdateFunc(ctx, id, name, description)
}

func (m *kitchenRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc is nil but was called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *kitchenRepoMock) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error) {
	if m.ListByHouseholdFunc == nil {
		panic("ListByHouseholdFunc is nil but was called")
	}
	return m.ListByHouseholdFunc(ctx, householdID)
}

type accessServiceMock struct {
	RequireFunc        func(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
	RequireKitchenFunc func(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

func (m *accessServiceMock) Require(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	if m.RequireFunc == nil {
		panic("RequireFunc is nil but was called")
	}
	return m.RequireFunc(ctx, userID, householdID, minRole)
}

func (m *accessServiceMock) RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	if m.RequireKitchenFunc == nil {
		panic("RequireKitchenFunc is nil but was called")
	}
	return m.RequireKitchenFunc(ctx, userID, kitchenID, minRole)
}
