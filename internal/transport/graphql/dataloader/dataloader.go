// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer: everything loaded here is reachable
// only through a parent object the service layer already authorized.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

type membershipRepo interface {
	ListMembershipsByHouseholds(ctx context.Context, householdIDs []uuid.UUID) ([]*domain.Membership, error)
}

type itemRepo interface {
	GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.InventoryItem, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User       userRepo
	Membership membershipRepo
	Item       itemRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains all DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	UserByID                 *dataloader.Loader[uuid.UUID, *domain.User]
	MembershipsByHouseholdID *dataloader.Loader[uuid.UUID, []*domain.Membership]
	ItemByID                 *dataloader.Loader[uuid.UUID, *domain.InventoryItem]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:                 newLoader(newUsersBatchFn(repos.User)),
		MembershipsByHouseholdID: newLoader(newMembershipsBatchFn(repos.Membership)),
		ItemByID:                 newLoader(newItemsBatchFn(repos.Item)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context — is middleware configured?")
	}
	return l
}
