package access

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

var _ householdRepo = &householdRepoMock{}

type householdRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	GetMembershipFunc func(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetMembership []struct {
			HouseholdID uuid.UUID
			UserID      uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockGetMembership sync.RWMutex
}

func (mock *householdRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	if mock.GetByIDFunc == nil {
		panic("householdRepoMock.GetByIDFunc: method is nil but householdRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *householdRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *householdRepoMock) GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error) {
	if mock.GetMembershipFunc == nil {
		panic("householdRepoMock.GetMembershipFunc: method is nil but householdRepo.GetMembership was just called")
	}
	callInfo := struct {
		HouseholdID uuid.UUID
		UserID      uuid.UUID
	}{HouseholdID: householdID, UserID: userID}
	mock.lockGetMembership.Lock()
	mock.calls.GetMembership = append(mock.calls.GetMembership, callInfo)
	mock.lockGetMembership.Unlock()
	return mock.GetMembershipFunc(ctx, householdID, userID)
}

func (mock *householdRepoMock) GetMembershipCalls() []struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
} {
	mock.lockGetMembership.RLock()
	calls := mock.calls.GetMembership
	mock.lockGetMembership.RUnlock()
	return calls
}

var _ kitchenRepo = &kitchenRepoMock{}

type kitchenRepoMock struct {
	HouseholdIDFunc func(ctx context.Context, kitchenID uuid.UUID) (uuid.UUID, error)

	calls struct {
		HouseholdID []struct {
			KitchenID uuid.UUID
		}
	}
	lockHouseholdID sync.RWMutex
}

func (mock *kitchenRepoMock) HouseholdID(ctx context.Context, kitchenID uuid.UUID) (uuid.UUID, error) {
	if mock.HouseholdIDFunc == nil {
		panic("kitchenRepoMock.HouseholdIDFunc: method is nil but kitchenRepo.HouseholdID was just called")
	}
	callInfo := struct{ KitchenID uuid.UUID }{KitchenID: kitchenID}
	mock.lockHouseholdID.Lock()
	mock.calls.HouseholdID = append(mock.calls.HouseholdID, callInfo)
	mock.lockHouseholdID.Unlock()
	return mock.HouseholdIDFunc(ctx, kitchenID)
}

func (mock *kitchenRepoMock) HouseholdIDCalls() []struct {
	KitchenID uuid.UUID
} {
	mock.lockHouseholdID.RLock()
	calls := mock.calls.HouseholdID
	mock.lockHouseholdID.RUnlock()
	return calls
}
