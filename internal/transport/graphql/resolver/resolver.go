package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	postgresexp "github.com/hearthhq/hearth-backend/internal/adapter/postgres/expense"
	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/auth"
	"github.com/hearthhq/hearth-backend/internal/service/expense"
	"github.com/hearthhq/hearth-backend/internal/service/household"
	"github.com/hearthhq/hearth-backend/internal/service/inventory"
	"github.com/hearthhq/hearth-backend/internal/service/kitchen"
	"github.com/hearthhq/hearth-backend/internal/service/mealplan"
	"github.com/hearthhq/hearth-backend/internal/service/notification"
	"github.com/hearthhq/hearth-backend/internal/service/reminder"
	"github.com/hearthhq/hearth-backend/internal/service/shopping"
)

// authService defines what resolver needs from Auth service.
type authService interface {
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input auth.UpdateProfileInput) (*domain.User, error)
}

// householdService defines what resolver needs from Household service.
type householdService interface {
	Create(ctx context.Context, input household.CreateInput) (*domain.Household, error)
	Get(ctx context.Context, householdID uuid.UUID) (*domain.Household, error)
	ListMine(ctx context.Context) ([]*domain.Household, error)
	Update(ctx context.Context, input household.UpdateInput) (*domain.Household, error)
	Delete(ctx context.Context, householdID uuid.UUID) error
	Invite(ctx context.Context, input household.InviteInput) (*domain.Invite, error)
	AcceptInvite(ctx context.Context, rawToken string) (*domain.Membership, error)
	RevokeInvite(ctx context.Context, inviteID, householdID uuid.UUID) (*domain.Invite, error)
	ListInvites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error)
	UpdateMemberRole(ctx context.Context, input household.UpdateRoleInput) (*domain.Membership, error)
	RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error
}

// kitchenService defines what resolver needs from Kitchen service.
type kitchenService interface {
	Create(ctx context.Context, input kitchen.CreateInput) (*domain.Kitchen, error)
	Get(ctx context.Context, kitchenID uuid.UUID) (*domain.Kitchen, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error)
	Update(ctx context.Context, input kitchen.UpdateInput) (*domain.Kitchen, error)
	Delete(ctx context.Context, kitchenID uuid.UUID) error
}

// inventoryService defines what resolver needs from Inventory service.
type inventoryService interface {
	CreateItem(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, kitchenID uuid.UUID, filter postgresinv.ItemFilter) ([]*domain.InventoryItem, error)
	ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error)
	UpdateItem(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	AddBatch(ctx context.Context, input inventory.AddBatchInput) (*domain.InventoryBatch, error)
	ListBatches(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error)
	DiscardBatch(ctx context.Context, batchID uuid.UUID) (*domain.InventoryBatch, error)
	DeleteBatch(ctx context.Context, batchID uuid.UUID) error
	Consume(ctx context.Context, input inventory.ConsumeInput) ([]*domain.InventoryBatch, error)
	ListUsage(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error)
}

// shoppingService defines what resolver needs from Shopping service.
type shoppingService interface {
	CreateList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error)
	ListByKitchen(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error)
	RenameList(ctx context.Context, listID uuid.UUID, name string) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	RestockSuggestions(ctx context.Context, kitchenID uuid.UUID) ([]shopping.RestockSuggestion, error)
	AddRestockSuggestions(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
	AddLine(ctx context.Context, input shopping.AddLineInput) (*domain.ShoppingListItem, error)
	ListLines(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
	UpdateLine(ctx context.Context, input shopping.UpdateLineInput) (*domain.ShoppingListItem, error)
	SetLineChecked(ctx context.Context, lineID uuid.UUID, checked bool) (*domain.ShoppingListItem, error)
	DeleteLine(ctx context.Context, lineID uuid.UUID) error
	ClearChecked(ctx context.Context, listID uuid.UUID) (int, error)
}

// expenseService defines what resolver needs from Expense service.
type expenseService interface {
	Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	List(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error)
	Update(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MonthlySummary(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error)
}

// mealplanService defines what resolver needs from MealPlan service.
type mealplanService interface {
	CreateEntry(ctx context.Context, input mealplan.CreateEntryInput) (*domain.MealPlanEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error)
	ListEntries(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)
	UpdateEntry(ctx context.Context, input mealplan.UpdateEntryInput) (*domain.MealPlanEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	SaveRecipe(ctx context.Context, input mealplan.SaveRecipeInput) (*domain.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	GenerateRecipe(ctx context.Context, input mealplan.GenerateRecipeInput) (*domain.Recipe, error)
	UploadReceipt(ctx context.Context, kitchenID uuid.UUID, data []byte, contentType string) (string, error)
	ParseReceipt(ctx context.Context, kitchenID uuid.UUID, key string) ([]domain.ReceiptLine, error)
}

// reminderService defines what resolver needs from Reminder service.
type reminderService interface {
	Create(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByKitchen(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error)
	Update(ctx context.Context, input reminder.UpdateInput) (*domain.Reminder, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// notificationService defines what resolver needs from Notification service.
type notificationService interface {
	ListMine(ctx context.Context, includeRead bool, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int, error)
	UnreadCount(ctx context.Context) (int, error)
	Subscribe(ctx context.Context, input notification.SubscribeInput) (*domain.PushSubscription, error)
	Unsubscribe(ctx context.Context, endpoint string) error
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	auth         authService
	household    householdService
	kitchen      kitchenService
	inventory    inventoryService
	shopping     shoppingService
	expense      expenseService
	mealplan     mealplanService
	reminder     reminderService
	notification notificationService
	log          *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	auth authService,
	household householdService,
	kitchen kitchenService,
	inventory inventoryService,
	shopping shoppingService,
	expense expenseService,
	mealplan mealplanService,
	reminder reminderService,
	notification notificationService,
) *Resolver {
	return &Resolver{
		auth:         auth,
		household:    household,
		kitchen:      kitchen,
		inventory:    inventory,
		shopping:     shopping,
		expense:      expense,
		mealplan:     mealplan,
		reminder:     reminder,
		notification: notification,
		log:          log.With("component", "graphql"),
	}
}

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type householdResolver struct{ *Resolver }
type membershipResolver struct{ *Resolver }
type inventoryItemResolver struct{ *Resolver }
type shoppingListResolver struct{ *Resolver }
type shoppingListItemResolver struct{ *Resolver }
type mealPlanEntryResolver struct{ *Resolver }
