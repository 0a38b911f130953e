package resolver

import (
	"context"
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

type authServiceMock struct {
	MeFunc            func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input auth.UpdateProfileInput) (*domain.User, error)
}

func (m *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if m.MeFunc == nil {
		panic("MeFunc is nil but was called")
	}
	return m.MeFunc(ctx)
}

func (m *authServiceMock) UpdateProfile(ctx context.Context, input auth.UpdateProfileInput) (*domain.User, error) {
	if m.UpdateProfileFunc == nil {
		panic("UpdateProfileFunc is nil but was called")
	}
	return m.UpdateProfileFunc(ctx, input)
}

type householdServiceMock struct {
	CreateFunc           func(ctx context.Context, input household.CreateInput) (*domain.Household, error)
	GetFunc              func(ctx context.Context, householdID uuid.UUID) (*domain.Household, error)
	ListMineFunc         func(ctx context.Context) ([]*domain.Household, error)
	UpdateFunc           func(ctx context.Context, input household.UpdateInput) (*domain.Household, error)
	DeleteFunc           func(ctx context.Context, householdID uuid.UUID) error
	InviteFunc           func(ctx context.Context, input household.InviteInput) (*domain.Invite, error)
	AcceptInviteFunc     func(ctx context.Context, rawToken string) (*domain.Membership, error)
	RevokeInviteFunc     func(ctx context.Context, inviteID, householdID uuid.UUID) (*domain.Invite, error)
	ListInvitesFunc      func(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error)
	UpdateMemberRoleFunc func(ctx context.Context, input household.UpdateRoleInput) (*domain.Membership, error)
	RemoveMemberFunc     func(ctx context.Context, householdID, userID uuid.UUID) error
}

func (m *householdServiceMock) Create(ctx context.Context, input household.CreateInput) (*domain.Household, error) {
	if m.CreateFunc == nil {
		panic("CreateFunc is nil but was called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *householdServiceMock) Get(ctx context.Context, householdID uuid.UUID) (*domain.Household, error) {
	if m.GetFunc == nil {
		panic("GetFunc is nil but was called")
	}
	return m.GetFunc(ctx, householdID)
}

func (m *householdServiceMock) ListMine(ctx context.Context) ([]*domain.Household, error) {
	if m.ListMineFunc == nil {
		panic("ListMineFunc is nil but was called")
	}
	return m.ListMineFunc(ctx)
}

func (m *householdServiceMock) Update(ctx context.Context, input household.UpdateInput) (*domain.Household, error) {
	if m.UpdateFunc == nil {
		panic("UpdateFunc is nil but was called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *householdServiceMock) Delete(ctx context.Context, householdID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc is nil but was called")
	}
	return m.DeleteFunc(ctx, householdID)
}

func (m *householdServiceMock) Invite(ctx context.Context, input household.InviteInput) (*domain.Invite, error) {
	if m.InviteFunc == nil {
		panic("InviteFunc is nil but was called")
	}
	return m.InviteFunc(ctx, input)
}

func (m *householdServiceMock) AcceptInvite(ctx context.Context, rawToken string) (*domain.Membership, error) {
	if m.AcceptInviteFunc == nil {
		panic("AcceptInviteFunc is nil but was called")
	}
	return m.AcceptInviteFunc(ctx, rawToken)
}

func (m *householdServiceMock) RevokeInvite(ctx context.Context, inviteID, householdID uuid.UUID) (*domain.Invite, error) {
	if m.RevokeInviteFunc == nil {
		panic("RevokeInviteFunc is nil but was called")
	}
	return m.RevokeInviteFunc(ctx, inviteID, householdID)
}

func (m *householdServiceMock) ListInvites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error) {
	if m.ListInvitesFunc == nil {
		panic("ListInvitesFunc is nil but was called")
	}
	return m.ListInvitesFunc(ctx, householdID)
}

func (m *householdServiceMock) UpdateMemberRole(ctx context.Context, input household.UpdateRoleInput) (*domain.Membership, error) {
	if m.UpdateMemberRoleFunc == nil {
		panic("UpdateMemberRoleFunc is nil but was called")
	}
	return m.UpdateMemberRoleFunc(ctx, input)
}

func (m *householdServiceMock) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error {
	if m.RemoveMemberFunc == nil {
		panic("RemoveMemberFunc is nil but was called")
	}
	return m.RemoveMemberFunc(ctx, householdID, userID)
}

type kitchenServiceMock struct {
	CreateFunc          func(ctx context.Context, input kitchen.CreateInput) (*domain.Kitchen, error)
	GetFunc             func(ctx context.Context, kitchenID uuid.UUID) (*domain.Kitchen, error)
	ListByHouseholdFunc func(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error)
	UpdateFunc          func(ctx context.Context, input kitchen.UpdateInput) (*domain.Kitchen, error)
	DeleteFunc          func(ctx context.Context, kitchenID uuid.UUID) error
}

func (m *kitchenServiceMock) Create(ctx context.Context, input kitchen.CreateInput) (*domain.Kitchen, error) {
	if m.CreateFunc == nil {
		panic("CreateFunc is nil but was called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *kitchenServiceMock) Get(ctx context.Context, kitchenID uuid.UUID) (*domain.Kitchen, error) {
	if m.GetFunc == nil {
		panic("GetFunc is nil but was called")
	}
	return m.GetFunc(ctx, kitchenID)
}

func (m *kitchenServiceMock) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error) {
	if m.ListByHouseholdFunc == nil {
		panic("ListByHouseholdFunc is nil but was called")
	}
	return m.ListByHouseholdFunc(ctx, householdID)
}

func (m *kitchenServiceMock) Update(ctx context.Context, input kitchen.UpdateInput) (*domain.Kitchen, error) {
	if m.UpdateFunc == nil {
		panic("UpdateFunc is nil but was called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *kitchenServiceMock) Delete(ctx context.Context, kitchenID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc is nil but was called")
	}
	return m.DeleteFunc(ctx, kitchenID)
}

type inventoryServiceMock struct {
	CreateItemFunc   func(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	GetItemFunc      func(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	ListItemsFunc    func(ctx context.Context, kitchenID uuid.UUID, filter postgresinv.ItemFilter) ([]*domain.InventoryItem, error)
	ItemQuantityFunc func(ctx context.Context, itemID uuid.UUID) (float64, error)
	UpdateItemFunc   func(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItemFunc   func(ctx context.Context, itemID uuid.UUID) error
	AddBatchFunc     func(ctx context.Context, input inventory.AddBatchInput) (*domain.InventoryBatch, error)
	ListBatchesFunc  func(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error)
	DiscardBatchFunc func(ctx context.Context, batchID uuid.UUID) (*domain.InventoryBatch, error)
	DeleteBatchFunc  func(ctx context.Context, batchID uuid.UUID) error
	ConsumeFunc      func(ctx context.Context, input inventory.ConsumeInput) ([]*domain.InventoryBatch, error)
	ListUsageFunc    func(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error)
}

func (m *inventoryServiceMock) CreateItem(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error) {
	if m.CreateItemFunc == nil {
		panic("CreateItemFunc is nil but was called")
	}
	return m.CreateItemFunc(ctx, input)
}

func (m *inventoryServiceMock) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	if m.GetItemFunc == nil {
		panic("GetItemFunc is nil but was called")
	}
	return m.GetItemFunc(ctx, itemID)
}

func (m *inventoryServiceMock) ListItems(ctx context.Context, kitchenID uuid.UUID, filter postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
	if m.ListItemsFunc == nil {
		panic("ListItemsFunc is nil but was called")
	}
	return m.ListItemsFunc(ctx, kitchenID, filter)
}

func (m *inventoryServiceMock) ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error) {
	if m.ItemQuantityFunc == nil {
		panic("ItemQuantityFunc is nil but was called")
	}
	return m.ItemQuantityFunc(ctx, itemID)
}

func (m *inventoryServiceMock) UpdateItem(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error) {
	if m.UpdateItemFunc == nil {
		panic("UpdateItemFunc is nil but was called")
	}
	return m.UpdateItemFunc(ctx, input)
}

func (m *inventoryServiceMock) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if m.DeleteItemFunc == nil {
		panic("DeleteItemFunc is nil but was called")
	}
	return m.DeleteItemFunc(ctx, itemID)
}

func (m *inventoryServiceMock) AddBatch(ctx context.Context, input inventory.AddBatchInput) (*domain.InventoryBatch, error) {
	if m.AddBatchFunc == nil {
		panic("AddBatchFunc is nil but was called")
	}
	return m.AddBatchFunc(ctx, input)
}

func (m *inventoryServiceMock) ListBatches(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
	if m.ListBatchesFunc == nil {
		panic("ListBatchesFunc is nil but was called")
	}
	return m.ListBatchesFunc(ctx, itemID)
}

func (m *inventoryServiceMock) DiscardBatch(ctx context.Context, batchID uuid.UUID) (*domain.InventoryBatch, error) {
	if m.DiscardBatchFunc == nil {
		panic("DiscardBatchFunc is nil but was called")
	}
	return m.DiscardBatchFunc(ctx, batchID)
}

func (m *inventoryServiceMock) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	if m.DeleteBatchFunc == nil {
		panic("DeleteBatchFunc is nil but was called")
	}
	return m.DeleteBatchFunc(ctx, batchID)
}

func (m *inventoryServiceMock) Consume(ctx context.Context, input inventory.ConsumeInput) ([]*domain.InventoryBatch, error) {
	if m.ConsumeFunc == nil {
		panic("ConsumeFunc is nil but was called")
	}
	return m.ConsumeFunc(ctx, input)
}

func (m *inventoryServiceMock) ListUsage(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error) {
	if m.ListUsageFunc == nil {
		panic("ListUsageFunc is nil but was called")
	}
	return m.ListUsageFunc(ctx, itemID, since)
}

type shoppingServiceMock struct {
	CreateListFunc            func(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error)
	GetListFunc               func(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error)
	ListByKitchenFunc         func(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error)
	RenameListFunc            func(ctx context.Context, listID uuid.UUID, name string) (*domain.ShoppingList, error)
	DeleteListFunc            func(ctx context.Context, listID uuid.UUID) error
	RestockSuggestionsFunc    func(ctx context.Context, kitchenID uuid.UUID) ([]shopping.RestockSuggestion, error)
	AddRestockSuggestionsFunc func(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
	AddLineFunc               func(ctx context.Context, input shopping.AddLineInput) (*domain.ShoppingListItem, error)
	ListLinesFunc             func(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
	UpdateLineFunc            func(ctx context.Context, input shopping.UpdateLineInput) (*domain.ShoppingListItem, error)
	SetLineCheckedFunc        func(ctx context.Context, lineID uuid.UUID, checked bool) (*domain.ShoppingListItem, error)
	DeleteLineFunc            func(ctx context.Context, lineID uuid.UUID) error
	ClearCheckedFunc          func(ctx context.Context, listID uuid.UUID) (int, error)
}

func (m *shoppingServiceMock) CreateList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error) {
	if m.CreateListFunc == nil {
		panic("CreateListFunc is nil but was called")
	}
	return m.CreateListFunc(ctx, input)
}

func (m *shoppingServiceMock) GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error) {
	if m.GetListFunc == nil {
		panic("GetListFunc is nil but was called")
	}
	return m.GetListFunc(ctx, listID)
}

func (m *shoppingServiceMock) ListByKitchen(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error) {
	if m.ListByKitchenFunc == nil {
		panic("ListByKitchenFunc is nil but was called")
	}
	return m.ListByKitchenFunc(ctx, kitchenID)
}

func (m *shoppingServiceMock) RenameList(ctx context.Context, listID uuid.UUID, name string) (*domain.ShoppingList, error) {
	if m.RenameListFunc == nil {
		panic("RenameListFunc is nil but was called")
	}
	return m.RenameListFunc(ctx, listID, name)
}

func (m *shoppingServiceMock) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if m.DeleteListFunc == nil {
		panic("DeleteListFunc is nil but was called")
	}
	return m.DeleteListFunc(ctx, listID)
}

func (m *shoppingServiceMock) RestockSuggestions(ctx context.Context, kitchenID uuid.UUID) ([]shopping.RestockSuggestion, error) {
	if m.RestockSuggestionsFunc == nil {
		panic("RestockSuggestionsFunc is nil but was called")
	}
	return m.RestockSuggestionsFunc(ctx, kitchenID)
}

func (m *shoppingServiceMock) AddRestockSuggestions(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	if m.AddRestockSuggestionsFunc == nil {
		panic("AddRestockSuggestionsFunc is nil but was called")
	}
	return m.AddRestockSuggestionsFunc(ctx, listID)
}

func (m *shoppingServiceMock) AddLine(ctx context.Context, input shopping.AddLineInput) (*domain.ShoppingListItem, error) {
	if m.AddLineFunc == nil {
		panic("AddLineFunc is nil but was called")
	}
	return m.AddLineFunc(ctx, input)
}

func (m *shoppingServiceMock) ListLines(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	if m.ListLinesFunc == nil {
		panic("ListLinesFunc is nil but was called")
	}
	return m.ListLinesFunc(ctx, listID)
}

func (m *shoppingServiceMock) UpdateLine(ctx context.Context, input shopping.UpdateLineInput) (*domain.ShoppingListItem, error) {
	if m.UpdateLineFunc == nil {
		panic("UpdateLineFunc is nil but was called")
	}
	return m.UpdateLineFunc(ctx, input)
}

func (m *shoppingServiceMock) SetLineChecked(ctx context.Context, lineID uuid.UUID, checked bool) (*domain.ShoppingListItem, error) {
	if m.SetLineCheckedFunc == nil {
		panic("SetLineCheckedFunc is nil but was called")
	}
	return m.SetLineCheckedFunc(ctx, lineID, checked)
}

func (m *shoppingServiceMock) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	if m.DeleteLineFunc == nil {
		panic("DeleteLineFunc is nil but was called")
	}
	return m.DeleteLineFunc(ctx, lineID)
}

func (m *shoppingServiceMock) ClearChecked(ctx context.Context, listID uuid.UUID) (int, error) {
	if m.ClearCheckedFunc == nil {
		panic("ClearCheckedFunc is nil but was called")
	}
	return m.ClearCheckedFunc(ctx, listID)
}

type expenseServiceMock struct {
	CreateFunc         func(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	GetFunc            func(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	ListFunc           func(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error)
	UpdateFunc         func(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	MonthlySummaryFunc func(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error)
}

func (m *expenseServiceMock) Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error) {
	if m.CreateFunc == nil {
		panic("CreateFunc is nil but was called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *expenseServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	if m.GetFunc == nil {
		panic("GetFunc is nil but was called")
	}
	return m.GetFunc(ctx, id)
}

func (m *expenseServiceMock) List(ctx context.Context, kitchenID uuid.UUID, f postgresexp.Filter) ([]*domain.Expense, error) {
	if m.ListFunc == nil {
		panic("ListFunc is nil but was called")
	}
	return m.ListFunc(ctx, kitchenID, f)
}

func (m *expenseServiceMock) Update(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error) {
	if m.UpdateFunc == nil {
		panic("UpdateFunc is nil but was called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *expenseServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc is nil but was called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *expenseServiceMock) MonthlySummary(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error) {
	if m.MonthlySummaryFunc == nil {
		panic("MonthlySummaryFunc is nil but was called")
	}
	return m.MonthlySummaryFunc(ctx, kitchenID, year, month)
}

type mealplanServiceMock struct {
	CreateEntryFunc    func(ctx context.Context, input mealplan.CreateEntryInput) (*domain.MealPlanEntry, error)
	GetEntryFunc       func(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error)
	ListEntriesFunc    func(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)
	UpdateEntryFunc    func(ctx context.Context, input mealplan.UpdateEntryInput) (*domain.MealPlanEntry, error)
	DeleteEntryFunc    func(ctx context.Context, id uuid.UUID) error
	SaveRecipeFunc     func(ctx context.Context, input mealplan.SaveRecipeInput) (*domain.Recipe, error)
	GetRecipeFunc      func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	ListRecipesFunc    func(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error)
	DeleteRecipeFunc   func(ctx context.Context, id uuid.UUID) error
	GenerateRecipeFunc func(ctx context.Context, input mealplan.GenerateRecipeInput) (*domain.Recipe, error)
	UploadReceiptFunc  func(ctx context.Context, kitchenID uuid.UUID, data []byte, contentType string) (string, error)
	ParseReceiptFunc   func(ctx context.Context, kitchenID uuid.UUID, key string) ([]domain.ReceiptLine, error)
}

func (m *mealplanServiceMock) CreateEntry(ctx context.Context, input mealplan.CreateEntryInput) (*domain.MealPlanEntry, error) {
	if m.CreateEntryFunc == nil {
		panic("CreateEntryFunc is nil but was called")
	}
	return m.CreateEntryFunc(ctx, input)
}

func (m *mealplanServiceMock) GetEntry(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error) {
	if m.GetEntryFunc == nil {
		panic("GetEntryFunc is nil but was called")
	}
	return m.GetEntryFunc(ctx, id)
}

func (m *mealplanServiceMock) ListEntries(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	if m.ListEntriesFunc == nil {
		panic("ListEntriesFunc is nil but was called")
	}
	return m.ListEntriesFunc(ctx, kitchenID, from, to)
}

func (m *mealplanServiceMock) UpdateEntry(ctx context.Context, input mealplan.UpdateEntryInput) (*domain.MealPlanEntry, error) {
	if m.UpdateEntryFunc == nil {
		panic("UpdateEntryFunc is nil but was called")
	}
	return m.UpdateEntryFunc(ctx, input)
}

func (m *mealplanServiceMock) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if m.DeleteEntryFunc == nil {
		panic("DeleteEntryFunc is nil but was called")
	}
	return m.DeleteEntryFunc(ctx, id)
}

func (m *mealplanServiceMock) SaveRecipe(ctx context.Context, input mealplan.SaveRecipeInput) (*domain.Recipe, error) {
	if m.SaveRecipeFunc == nil {
		panic("SaveRecipeFunc is nil but was called")
	}
	return m.SaveRecipeFunc(ctx, input)
}

func (m *mealplanServiceMock) GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if m.GetRecipeFunc == nil {
		panic("GetRecipeFunc is nil but was called")
	}
	return m.GetRecipeFunc(ctx, id)
}

func (m *mealplanServiceMock) ListRecipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error) {
	if m.ListRecipesFunc == nil {
		panic("ListRecipesFunc is nil but was called")
	}
	return m.ListRecipesFunc(ctx, kitchenID)
}

func (m *mealplanServiceMock) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if m.DeleteRecipeFunc == nil {
		panic("DeleteRecipeFunc is nil but was called")
	}
	return m.DeleteRecipeFunc(ctx, id)
}

func (m *mealplanServiceMock) GenerateRecipe(ctx context.Context, input mealplan.GenerateRecipeInput) (*domain.Recipe, error) {
	if m.GenerateRecipeFunc == nil {
		panic("GenerateRecipeFunc is nil but was called")
	}
	return m.GenerateRecipeFunc(ctx, input)
}

func (m *mealplanServiceMock) UploadReceipt(ctx context.Context, kitchenID uuid.UUID, data []byte, contentType string) (string, error) {
	if m.UploadReceiptFunc == nil {
		panic("UploadReceiptFunc is nil but was called")
	}
	return m.UploadReceiptFunc(ctx, kitchenID, data, contentType)
}

func (m *mealplanServiceMock) ParseReceipt(ctx context.Context, kitchenID uuid.UUID, key string) ([]domain.ReceiptLine, error) {
	if m.ParseReceiptFunc == nil {
		panic("ParseReceiptFunc is nil but was called")
	}
	return m.ParseReceiptFunc(ctx, kitchenID, key)
}

type reminderServiceMock struct {
	CreateFunc        func(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByKitchenFunc func(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error)
	UpdateFunc        func(ctx context.Context, input reminder.UpdateInput) (*domain.Reminder, error)
	CompleteFunc      func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *reminderServiceMock) Create(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error) {
	if m.CreateFunc == nil {
		panic("CreateFunc is nil but was called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *reminderServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	if m.GetFunc == nil {
		panic("GetFunc is nil but was called")
	}
	return m.GetFunc(ctx, id)
}

func (m *reminderServiceMock) ListByKitchen(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error) {
	if m.ListByKitchenFunc == nil {
		panic("ListByKitchenFunc is nil but was called")
	}
	return m.ListByKitchenFunc(ctx, kitchenID, includeCompleted)
}

func (m *reminderServiceMock) Update(ctx context.Context, input reminder.UpdateInput) (*domain.Reminder, error) {
	if m.UpdateFunc == nil {
		panic("UpdateFunc is nil but was called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *reminderServiceMock) Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	if m.CompleteFunc == nil {
		panic("CompleteFunc is nil but was called")
	}
	return m.CompleteFunc(ctx, id)
}

func (m *reminderServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc is nil but was called")
	}
	return m.DeleteFunc(ctx, id)
}

type notificationServiceMock struct {
	ListMineFunc    func(ctx context.Context, includeRead bool, limit int) ([]*domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID) error
	MarkAllReadFunc func(ctx context.Context) (int, error)
	UnreadCountFunc func(ctx context.Context) (int, error)
	SubscribeFunc   func(ctx context.Context, input notification.SubscribeInput) (*domain.PushSubscription, error)
	UnsubscribeFunc func(ctx context.Context, endpoint string) error
}

func (m *notificationServiceMock) ListMine(ctx context.Context, includeRead bool, limit int) ([]*domain.Notification, error) {
	if m.ListMineFunc == nil {
		panic("ListMineFunc is nil but was called")
	}
	return m.ListMineFunc(ctx, includeRead, limit)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, id uuid.UUID) error {
	if m.MarkReadFunc == nil {
		panic("MarkReadFunc is nil but was called")
	}
	return m.MarkReadFunc(ctx, id)
}

func (m *notificationServiceMock) MarkAllRead(ctx context.Context) (int, error) {
	if m.MarkAllReadFunc == nil {
		panic("MarkAllReadFunc is nil but was called")
	}
	return m.MarkAllReadFunc(ctx)
}

func (m *notificationServiceMock) UnreadCount(ctx context.Context) (int, error) {
	if m.UnreadCountFunc == nil {
		panic("UnreadCountFunc is nil but was called")
	}
	return m.UnreadCountFunc(ctx)
}

func (m *notificationServiceMock) Subscribe(ctx context.Context, input notification.SubscribeInput) (*domain.PushSubscription, error) {
	if m.SubscribeFunc == nil {
		panic("SubscribeFunc is nil but was called")
	}
	return m.SubscribeFunc(ctx, input)
}

func (m *notificationServiceMock) Unsubscribe(ctx context.Context, endpoint string) error {
	if m.UnsubscribeFunc == nil {
		panic("UnsubscribeFunc is nil but was called")
	}
	return m.UnsubscribeFunc(ctx, endpoint)
}
