package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Memberships by HouseholdID
// ---------------------------------------------------------------------------

func newMembershipsBatchFn(repo membershipRepo) dataloader.BatchFunc[uuid.UUID, []*domain.Membership] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.Membership] {
		memberships, err := repo.ListMembershipsByHouseholds(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.Membership](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.Membership, len(keys))
		for _, m := range memberships {
			grouped[m.HouseholdID] = append(grouped[m.HouseholdID], m)
		}

		return mapResults(keys, grouped, emptySlice[*domain.Membership])
	}
}

// ---------------------------------------------------------------------------
// Inventory items by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newItemsBatchFn(repo itemRepo) dataloader.BatchFunc[uuid.UUID, *domain.InventoryItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.InventoryItem] {
		items, err := repo.GetItemsByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.InventoryItem](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.InventoryItem, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}

		results := make([]*dataloader.Result[*domain.InventoryItem], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.InventoryItem]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
