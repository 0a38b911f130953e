// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/google/uuid"
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
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/model"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// region    ************************** generated!.gotpl **************************

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:     cfg.Schema,
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
		complexity: cfg.Complexity,
	}
}

type Config struct {
	Schema     *ast.Schema
	Resolvers  ResolverRoot
	Directives DirectiveRoot
	Complexity ComplexityRoot
}

type ResolverRoot interface {
	Household() HouseholdResolver
	InventoryItem() InventoryItemResolver
	MealPlanEntry() MealPlanEntryResolver
	Membership() MembershipResolver
	Mutation() MutationResolver
	Query() QueryResolver
	ShoppingList() ShoppingListResolver
	ShoppingListItem() ShoppingListItemResolver
}

type DirectiveRoot struct {
}

type ComplexityRoot struct {
	CategoryTotal struct {
		Category   func(childComplexity int) int
		TotalCents func(childComplexity int) int
	}

	Expense struct {
		AmountCents func(childComplexity int) int
		Category    func(childComplexity int) int
		CreatedAt   func(childComplexity int) int
		Currency    func(childComplexity int) int
		ID          func(childComplexity int) int
		KitchenID   func(childComplexity int) int
		Note        func(childComplexity int) int
		PaidBy      func(childComplexity int) int
		SpentAt     func(childComplexity int) int
		UpdatedAt   func(childComplexity int) int
	}

	ExpenseSummary struct {
		ByCategory func(childComplexity int) int
		KitchenID  func(childComplexity int) int
		Month      func(childComplexity int) int
		TotalCents func(childComplexity int) int
		Year       func(childComplexity int) int
	}

	Household struct {
		CreatedAt func(childComplexity int) int
		CreatedBy func(childComplexity int) int
		ID        func(childComplexity int) int
		Kitchens  func(childComplexity int) int
		Members   func(childComplexity int) int
		Name      func(childComplexity int) int
		UpdatedAt func(childComplexity int) int
	}

	InventoryBatch struct {
		CreatedAt func(childComplexity int) int
		ExpiresAt func(childComplexity int) int
		ID        func(childComplexity int) int
		ItemID    func(childComplexity int) int
		Quantity  func(childComplexity int) int
		Status    func(childComplexity int) int
		Unit      func(childComplexity int) int
		UpdatedAt func(childComplexity int) int
	}

	InventoryItem struct {
		Batches     func(childComplexity int) int
		Category    func(childComplexity int) int
		CreatedAt   func(childComplexity int) int
		DefaultUnit func(childComplexity int) int
		ID          func(childComplexity int) int
		KitchenID   func(childComplexity int) int
		Name        func(childComplexity int) int
		Quantity    func(childComplexity int) int
		Threshold   func(childComplexity int) int
		UpdatedAt   func(childComplexity int) int
	}

	Invite struct {
		CreatedAt   func(childComplexity int) int
		Email       func(childComplexity int) int
		ExpiresAt   func(childComplexity int) int
		HouseholdID func(childComplexity int) int
		ID          func(childComplexity int) int
		InvitedBy   func(childComplexity int) int
		Role        func(childComplexity int) int
		Status      func(childComplexity int) int
	}

	Kitchen struct {
		CreatedAt   func(childComplexity int) int
		Description func(childComplexity int) int
		HouseholdID func(childComplexity int) int
		ID          func(childComplexity int) int
		Name        func(childComplexity int) int
		UpdatedAt   func(childComplexity int) int
	}

	MealPlanEntry struct {
		CreatedAt func(childComplexity int) int
		CreatedBy func(childComplexity int) int
		Date      func(childComplexity int) int
		ID        func(childComplexity int) int
		KitchenID func(childComplexity int) int
		Meal      func(childComplexity int) int
		Notes     func(childComplexity int) int
		Recipe    func(childComplexity int) int
		RecipeID  func(childComplexity int) int
		Title     func(childComplexity int) int
		UpdatedAt func(childComplexity int) int
	}

	Membership struct {
		CreatedAt   func(childComplexity int) int
		HouseholdID func(childComplexity int) int
		ID          func(childComplexity int) int
		Role        func(childComplexity int) int
		User        func(childComplexity int) int
		UserID      func(childComplexity int) int
	}

	Mutation struct {
		AcceptInvite             func(childComplexity int, token string) int
		AddBatch                 func(childComplexity int, input inventory.AddBatchInput) int
		AddRestockSuggestions    func(childComplexity int, listID uuid.UUID) int
		AddShoppingListItem      func(childComplexity int, input shopping.AddLineInput) int
		ClearCheckedItems        func(childComplexity int, listID uuid.UUID) int
		CompleteReminder         func(childComplexity int, id uuid.UUID) int
		Consume                  func(childComplexity int, input inventory.ConsumeInput) int
		CreateExpense            func(childComplexity int, input expense.CreateInput) int
		CreateHousehold          func(childComplexity int, input household.CreateInput) int
		CreateInventoryItem      func(childComplexity int, input inventory.CreateItemInput) int
		CreateKitchen            func(childComplexity int, input kitchen.CreateInput) int
		CreateMealPlanEntry      func(childComplexity int, input mealplan.CreateEntryInput) int
		CreateReminder           func(childComplexity int, input reminder.CreateInput) int
		CreateShoppingList       func(childComplexity int, input shopping.CreateListInput) int
		DeleteBatch              func(childComplexity int, id uuid.UUID) int
		DeleteExpense            func(childComplexity int, id uuid.UUID) int
		DeleteHousehold          func(childComplexity int, id uuid.UUID) int
		DeleteInventoryItem      func(childComplexity int, id uuid.UUID) int
		DeleteKitchen            func(childComplexity int, id uuid.UUID) int
		DeleteMealPlanEntry      func(childComplexity int, id uuid.UUID) int
		DeleteRecipe             func(childComplexity int, id uuid.UUID) int
		DeleteReminder           func(childComplexity int, id uuid.UUID) int
		DeleteShoppingList       func(childComplexity int, id uuid.UUID) int
		DeleteShoppingListItem   func(childComplexity int, lineID uuid.UUID) int
		DiscardBatch             func(childComplexity int, id uuid.UUID) int
		GenerateRecipe           func(childComplexity int, input mealplan.GenerateRecipeInput) int
		InviteMember             func(childComplexity int, input household.InviteInput) int
		MarkAllNotificationsRead func(childComplexity int) int
		MarkNotificationRead     func(childComplexity int, id uuid.UUID) int
		ParseReceipt             func(childComplexity int, kitchenID uuid.UUID, key string) int
		RemoveMember             func(childComplexity int, householdID uuid.UUID, userID uuid.UUID) int
		RenameShoppingList       func(childComplexity int, id uuid.UUID, name string) int
		RevokeInvite             func(childComplexity int, inviteID uuid.UUID, householdID uuid.UUID) int
		SaveRecipe               func(childComplexity int, input mealplan.SaveRecipeInput) int
		SetItemChecked           func(childComplexity int, lineID uuid.UUID, checked bool) int
		SubscribePush            func(childComplexity int, input notification.SubscribeInput) int
		UnsubscribePush          func(childComplexity int, endpoint string) int
		UpdateExpense            func(childComplexity int, input expense.UpdateInput) int
		UpdateHousehold          func(childComplexity int, input household.UpdateInput) int
		UpdateInventoryItem      func(childComplexity int, input inventory.UpdateItemInput) int
		UpdateKitchen            func(childComplexity int, input kitchen.UpdateInput) int
		UpdateMealPlanEntry      func(childComplexity int, input mealplan.UpdateEntryInput) int
		UpdateMemberRole         func(childComplexity int, input household.UpdateRoleInput) int
		UpdateProfile            func(childComplexity int, input auth.UpdateProfileInput) int
		UpdateReminder           func(childComplexity int, input reminder.UpdateInput) int
		UpdateShoppingListItem   func(childComplexity int, input shopping.UpdateLineInput) int
		UploadReceipt            func(childComplexity int, input model.UploadReceiptInput) int
	}

	Notification struct {
		Body      func(childComplexity int) int
		CreatedAt func(childComplexity int) int
		ID        func(childComplexity int) int
		IsRead    func(childComplexity int) int
		Title     func(childComplexity int) int
		UserID    func(childComplexity int) int
	}

	PushSubscription struct {
		CreatedAt func(childComplexity int) int
		Endpoint  func(childComplexity int) int
		ID        func(childComplexity int) int
		UserID    func(childComplexity int) int
	}

	Query struct {
		Expense            func(childComplexity int, id uuid.UUID) int
		ExpenseSummary     func(childComplexity int, kitchenID uuid.UUID, year int, month int) int
		Expenses           func(childComplexity int, kitchenID uuid.UUID, filter *model.ExpenseFilter) int
		Household          func(childComplexity int, id uuid.UUID) int
		InventoryItem      func(childComplexity int, id uuid.UUID) int
		InventoryItems     func(childComplexity int, kitchenID uuid.UUID, filter *model.InventoryItemFilter) int
		Invites            func(childComplexity int, householdID uuid.UUID) int
		Kitchen            func(childComplexity int, id uuid.UUID) int
		Kitchens           func(childComplexity int, householdID uuid.UUID) int
		Me                 func(childComplexity int) int
		MealPlan           func(childComplexity int, kitchenID uuid.UUID, from time.Time, to time.Time) int
		MyHouseholds       func(childComplexity int) int
		MyNotifications    func(childComplexity int, includeRead bool, limit int) int
		Recipe             func(childComplexity int, id uuid.UUID) int
		Recipes            func(childComplexity int, kitchenID uuid.UUID) int
		Reminder           func(childComplexity int, id uuid.UUID) int
		Reminders          func(childComplexity int, kitchenID uuid.UUID, includeCompleted bool) int
		RestockSuggestions func(childComplexity int, kitchenID uuid.UUID) int
		ShoppingList       func(childComplexity int, id uuid.UUID) int
		ShoppingLists      func(childComplexity int, kitchenID uuid.UUID) int
		UnreadCount        func(childComplexity int) int
		UsageLog           func(childComplexity int, itemID uuid.UUID, since time.Time) int
	}

	ReceiptLine struct {
		Name       func(childComplexity int) int
		PriceCents func(childComplexity int) int
		Quantity   func(childComplexity int) int
		Unit       func(childComplexity int) int
	}

	Recipe struct {
		CreatedAt    func(childComplexity int) int
		CreatedBy    func(childComplexity int) int
		Generated    func(childComplexity int) int
		ID           func(childComplexity int) int
		Ingredients  func(childComplexity int) int
		Instructions func(childComplexity int) int
		KitchenID    func(childComplexity int) int
		Servings     func(childComplexity int) int
		Title        func(childComplexity int) int
	}

	RecipeIngredient struct {
		Name     func(childComplexity int) int
		Quantity func(childComplexity int) int
		Unit     func(childComplexity int) int
	}

	Reminder struct {
		Body        func(childComplexity int) int
		CreatedAt   func(childComplexity int) int
		EntityID    func(childComplexity int) int
		Frequency   func(childComplexity int) int
		ID          func(childComplexity int) int
		IsCompleted func(childComplexity int) int
		IsRecurring func(childComplexity int) int
		KitchenID   func(childComplexity int) int
		ScheduledAt func(childComplexity int) int
		Title       func(childComplexity int) int
		Type        func(childComplexity int) int
		UpdatedAt   func(childComplexity int) int
	}

	RestockSuggestion struct {
		ItemID   func(childComplexity int) int
		Name     func(childComplexity int) int
		Quantity func(childComplexity int) int
		Unit     func(childComplexity int) int
	}

	ShoppingList struct {
		CreatedAt func(childComplexity int) int
		CreatedBy func(childComplexity int) int
		ID        func(childComplexity int) int
		Items     func(childComplexity int) int
		KitchenID func(childComplexity int) int
		Name      func(childComplexity int) int
		UpdatedAt func(childComplexity int) int
	}

	ShoppingListItem struct {
		CreatedAt func(childComplexity int) int
		ID        func(childComplexity int) int
		IsChecked func(childComplexity int) int
		Item      func(childComplexity int) int
		ItemID    func(childComplexity int) int
		ListID    func(childComplexity int) int
		Name      func(childComplexity int) int
		Quantity  func(childComplexity int) int
		Unit      func(childComplexity int) int
		UpdatedAt func(childComplexity int) int
	}

	UsageLog struct {
		Action    func(childComplexity int) int
		BatchID   func(childComplexity int) int
		CreatedAt func(childComplexity int) int
		ID        func(childComplexity int) int
		ItemID    func(childComplexity int) int
		Quantity  func(childComplexity int) int
		UserID    func(childComplexity int) int
	}

	User struct {
		AvatarURL func(childComplexity int) int
		CreatedAt func(childComplexity int) int
		Email     func(childComplexity int) int
		ID        func(childComplexity int) int
		Name      func(childComplexity int) int
	}
}

type HouseholdResolver interface {
	Members(ctx context.Context, obj *domain.Household) ([]*domain.Membership, error)
	Kitchens(ctx context.Context, obj *domain.Household) ([]*domain.Kitchen, error)
}
type InventoryItemResolver interface {
	Quantity(ctx context.Context, obj *domain.InventoryItem) (float64, error)
	Batches(ctx context.Context, obj *domain.InventoryItem) ([]*domain.InventoryBatch, error)
}
type MealPlanEntryResolver interface {
	Recipe(ctx context.Context, obj *domain.MealPlanEntry) (*domain.Recipe, error)
}
type MembershipResolver interface {
	User(ctx context.Context, obj *domain.Membership) (*domain.User, error)
}
type MutationResolver interface {
	CreateExpense(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) (bool, error)
	CreateHousehold(ctx context.Context, input household.CreateInput) (*domain.Household, error)
	UpdateHousehold(ctx context.Context, input household.UpdateInput) (*domain.Household, error)
	DeleteHousehold(ctx context.Context, id uuid.UUID) (bool, error)
	InviteMember(ctx context.Context, input household.InviteInput) (*domain.Invite, error)
	AcceptInvite(ctx context.Context, token string) (*domain.Membership, error)
	RevokeInvite(ctx context.Context, inviteID uuid.UUID, householdID uuid.UUID) (*domain.Invite, error)
	UpdateMemberRole(ctx context.Context, input household.UpdateRoleInput) (*domain.Membership, error)
	RemoveMember(ctx context.Context, householdID uuid.UUID, userID uuid.UUID) (bool, error)
	CreateInventoryItem(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id uuid.UUID) (bool, error)
	AddBatch(ctx context.Context, input inventory.AddBatchInput) (*domain.InventoryBatch, error)
	DiscardBatch(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) (bool, error)
	Consume(ctx context.Context, input inventory.ConsumeInput) ([]*domain.InventoryBatch, error)
	CreateKitchen(ctx context.Context, input kitchen.CreateInput) (*domain.Kitchen, error)
	UpdateKitchen(ctx context.Context, input kitchen.UpdateInput) (*domain.Kitchen, error)
	DeleteKitchen(ctx context.Context, id uuid.UUID) (bool, error)
	CreateMealPlanEntry(ctx context.Context, input mealplan.CreateEntryInput) (*domain.MealPlanEntry, error)
	UpdateMealPlanEntry(ctx context.Context, input mealplan.UpdateEntryInput) (*domain.MealPlanEntry, error)
	DeleteMealPlanEntry(ctx context.Context, id uuid.UUID) (bool, error)
	SaveRecipe(ctx context.Context, input mealplan.SaveRecipeInput) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) (bool, error)
	GenerateRecipe(ctx context.Context, input mealplan.GenerateRecipeInput) (*domain.Recipe, error)
	UploadReceipt(ctx context.Context, input model.UploadReceiptInput) (string, error)
	ParseReceipt(ctx context.Context, kitchenID uuid.UUID, key string) ([]*domain.ReceiptLine, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAllNotificationsRead(ctx context.Context) (int, error)
	SubscribePush(ctx context.Context, input notification.SubscribeInput) (*domain.PushSubscription, error)
	UnsubscribePush(ctx context.Context, endpoint string) (bool, error)
	CreateReminder(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error)
	UpdateReminder(ctx context.Context, input reminder.UpdateInput) (*domain.Reminder, error)
	CompleteReminder(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, input auth.UpdateProfileInput) (*domain.User, error)
	CreateShoppingList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error)
	RenameShoppingList(ctx context.Context, id uuid.UUID, name string) (*domain.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, id uuid.UUID) (bool, error)
	AddShoppingListItem(ctx context.Context, input shopping.AddLineInput) (*domain.ShoppingListItem, error)
	UpdateShoppingListItem(ctx context.Context, input shopping.UpdateLineInput) (*domain.ShoppingListItem, error)
	SetItemChecked(ctx context.Context, lineID uuid.UUID, checked bool) (*domain.ShoppingListItem, error)
	DeleteShoppingListItem(ctx context.Context, lineID uuid.UUID) (bool, error)
	ClearCheckedItems(ctx context.Context, listID uuid.UUID) (int, error)
	AddRestockSuggestions(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
}
type QueryResolver interface {
	Expense(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	Expenses(ctx context.Context, kitchenID uuid.UUID, filter *model.ExpenseFilter) ([]*domain.Expense, error)
	ExpenseSummary(ctx context.Context, kitchenID uuid.UUID, year int, month int) (*model.ExpenseSummary, error)
	MyHouseholds(ctx context.Context) ([]*domain.Household, error)
	Household(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	Invites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error)
	InventoryItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	InventoryItems(ctx context.Context, kitchenID uuid.UUID, filter *model.InventoryItemFilter) ([]*domain.InventoryItem, error)
	UsageLog(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error)
	Kitchen(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error)
	Kitchens(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error)
	MealPlan(ctx context.Context, kitchenID uuid.UUID, from time.Time, to time.Time) ([]*domain.MealPlanEntry, error)
	Recipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	Recipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error)
	MyNotifications(ctx context.Context, includeRead bool, limit int) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	Reminder(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Reminders(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error)
	Me(ctx context.Context) (*domain.User, error)
	ShoppingList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	ShoppingLists(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error)
	RestockSuggestions(ctx context.Context, kitchenID uuid.UUID) ([]*shopping.RestockSuggestion, error)
}
type ShoppingListResolver interface {
	Items(ctx context.Context, obj *domain.ShoppingList) ([]*domain.ShoppingListItem, error)
}
type ShoppingListItemResolver interface {
	Item(ctx context.Context, obj *domain.ShoppingListItem) (*domain.InventoryItem, error)
}

type executableSchema struct {
	schema     *ast.Schema
	resolvers  ResolverRoot
	directives DirectiveRoot
	complexity ComplexityRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	if e.schema != nil {
		return e.schema
	}
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	ec := executionContext{nil, e, 0, 0, nil}
	_ = ec
	switch typeName + "." + field {

	case "CategoryTotal.category":
		if e.complexity.CategoryTotal.Category == nil {
			break
		}

		return e.complexity.CategoryTotal.Category(childComplexity), true
	case "CategoryTotal.totalCents":
		if e.complexity.CategoryTotal.TotalCents == nil {
			break
		}

		return e.complexity.CategoryTotal.TotalCents(childComplexity), true

	case "Expense.amountCents":
		if e.complexity.Expense.AmountCents == nil {
			break
		}

		return e.complexity.Expense.AmountCents(childComplexity), true
	case "Expense.category":
		if e.complexity.Expense.Category == nil {
			break
		}

		return e.complexity.Expense.Category(childComplexity), true
	case "Expense.createdAt":
		if e.complexity.Expense.CreatedAt == nil {
			break
		}

		return e.complexity.Expense.CreatedAt(childComplexity), true
	case "Expense.currency":
		if e.complexity.Expense.Currency == nil {
			break
		}

		return e.complexity.Expense.Currency(childComplexity), true
	case "Expense.id":
		if e.complexity.Expense.ID == nil {
			break
		}

		return e.complexity.Expense.ID(childComplexity), true
	case "Expense.kitchenId":
		if e.complexity.Expense.KitchenID == nil {
			break
		}

		return e.complexity.Expense.KitchenID(childComplexity), true
	case "Expense.note":
		if e.complexity.Expense.Note == nil {
			break
		}

		return e.complexity.Expense.Note(childComplexity), true
	case "Expense.paidBy":
		if e.complexity.Expense.PaidBy == nil {
			break
		}

		return e.complexity.Expense.PaidBy(childComplexity), true
	case "Expense.spentAt":
		if e.complexity.Expense.SpentAt == nil {
			break
		}

		return e.complexity.Expense.SpentAt(childComplexity), true
	case "Expense.updatedAt":
		if e.complexity.Expense.UpdatedAt == nil {
			break
		}

		return e.complexity.Expense.UpdatedAt(childComplexity), true

	case "ExpenseSummary.byCategory":
		if e.complexity.ExpenseSummary.ByCategory == nil {
			break
		}

		return e.complexity.ExpenseSummary.ByCategory(childComplexity), true
	case "ExpenseSummary.kitchenId":
		if e.complexity.ExpenseSummary.KitchenID == nil {
			break
		}

		return e.complexity.ExpenseSummary.KitchenID(childComplexity), true
	case "ExpenseSummary.month":
		if e.complexity.ExpenseSummary.Month == nil {
			break
		}

		return e.complexity.ExpenseSummary.Month(childComplexity), true
	case "ExpenseSummary.totalCents":
		if e.complexity.ExpenseSummary.TotalCents == nil {
			break
		}

		return e.complexity.ExpenseSummary.TotalCents(childComplexity), true
	case "ExpenseSummary.year":
		if e.complexity.ExpenseSummary.Year == nil {
			break
		}

		return e.complexity.ExpenseSummary.Year(childComplexity), true

	case "Household.createdAt":
		if e.complexity.Household.CreatedAt == nil {
			break
		}

		return e.complexity.Household.CreatedAt(childComplexity), true
	case "Household.createdBy":
		if e.complexity.Household.CreatedBy == nil {
			break
		}

		return e.complexity.Household.CreatedBy(childComplexity), true
	case "Household.id":
		if e.complexity.Household.ID == nil {
			break
		}

		return e.complexity.Household.ID(childComplexity), true
	case "Household.kitchens":
		if e.complexity.Household.Kitchens == nil {
			break
		}

		return e.complexity.Household.Kitchens(childComplexity), true
	case "Household.members":
		if e.complexity.Household.Members == nil {
			break
		}

		return e.complexity.Household.Members(childComplexity), true
	case "Household.name":
		if e.complexity.Household.Name == nil {
			break
		}

		return e.complexity.Household.Name(childComplexity), true
	case "Household.updatedAt":
		if e.complexity.Household.UpdatedAt == nil {
			break
		}

		return e.complexity.Household.UpdatedAt(childComplexity), true

	case "InventoryBatch.createdAt":
		if e.complexity.InventoryBatch.CreatedAt == nil {
			break
		}

		return e.complexity.InventoryBatch.CreatedAt(childComplexity), true
	case "InventoryBatch.expiresAt":
		if e.complexity.InventoryBatch.ExpiresAt == nil {
			break
		}

		return e.complexity.InventoryBatch.ExpiresAt(childComplexity), true
	case "InventoryBatch.id":
		if e.complexity.InventoryBatch.ID == nil {
			break
		}

		return e.complexity.InventoryBatch.ID(childComplexity), true
	case "InventoryBatch.itemId":
		if e.complexity.InventoryBatch.ItemID == nil {
			break
		}

		return e.complexity.InventoryBatch.ItemID(childComplexity), true
	case "InventoryBatch.quantity":
		if e.complexity.InventoryBatch.Quantity == nil {
			break
		}

		return e.complexity.InventoryBatch.Quantity(childComplexity), true
	case "InventoryBatch.status":
		if e.complexity.InventoryBatch.Status == nil {
			break
		}

		return e.complexity.InventoryBatch.Status(childComplexity), true
	case "InventoryBatch.unit":
		if e.complexity.InventoryBatch.Unit == nil {
			break
		}

		return e.complexity.InventoryBatch.Unit(childComplexity), true
	case "InventoryBatch.updatedAt":
		if e.complexity.InventoryBatch.UpdatedAt == nil {
			break
		}

		return e.complexity.InventoryBatch.UpdatedAt(childComplexity), true

	case "InventoryItem.batches":
		if e.complexity.InventoryItem.Batches == nil {
			break
		}

		return e.complexity.InventoryItem.Batches(childComplexity), true
	case "InventoryItem.category":
		if e.complexity.InventoryItem.Category == nil {
			break
		}

		return e.complexity.InventoryItem.Category(childComplexity), true
	case "InventoryItem.createdAt":
		if e.complexity.InventoryItem.CreatedAt == nil {
			break
		}

		return e.complexity.InventoryItem.CreatedAt(childComplexity), true
	case "InventoryItem.defaultUnit":
		if e.complexity.InventoryItem.DefaultUnit == nil {
			break
		}

		return e.complexity.InventoryItem.DefaultUnit(childComplexity), true
	case "InventoryItem.id":
		if e.complexity.InventoryItem.ID == nil {
			break
		}

		return e.complexity.InventoryItem.ID(childComplexity), true
	case "InventoryItem.kitchenId":
		if e.complexity.InventoryItem.KitchenID == nil {
			break
		}

		return e.complexity.InventoryItem.KitchenID(childComplexity), true
	case "InventoryItem.name":
		if e.complexity.InventoryItem.Name == nil {
			break
		}

		return e.complexity.InventoryItem.Name(childComplexity), true
	case "InventoryItem.quantity":
		if e.complexity.InventoryItem.Quantity == nil {
			break
		}

		return e.complexity.InventoryItem.Quantity(childComplexity), true
	case "InventoryItem.threshold":
		if e.complexity.InventoryItem.Threshold == nil {
			break
		}

		return e.complexity.InventoryItem.Threshold(childComplexity), true
	case "InventoryItem.updatedAt":
		if e.complexity.InventoryItem.UpdatedAt == nil {
			break
		}

		return e.complexity.InventoryItem.UpdatedAt(childComplexity), true

	case "Invite.createdAt":
		if e.complexity.Invite.CreatedAt == nil {
			break
		}

		return e.complexity.Invite.CreatedAt(childComplexity), true
	case "Invite.email":
		if e.complexity.Invite.Email == nil {
			break
		}

		return e.complexity.Invite.Email(childComplexity), true
	case "Invite.expiresAt":
		if e.complexity.Invite.ExpiresAt == nil {
			break
		}

		return e.complexity.Invite.ExpiresAt(childComplexity), true
	case "Invite.householdId":
		if e.complexity.Invite.HouseholdID == nil {
			break
		}

		return e.complexity.Invite.HouseholdID(childComplexity), true
	case "Invite.id":
		if e.complexity.Invite.ID == nil {
			break
		}

		return e.complexity.Invite.ID(childComplexity), true
	case "Invite.invitedBy":
		if e.complexity.Invite.InvitedBy == nil {
			break
		}

		return e.complexity.Invite.InvitedBy(childComplexity), true
	case "Invite.role":
		if e.complexity.Invite.Role == nil {
			break
		}

		return e.complexity.Invite.Role(childComplexity), true
	case "Invite.status":
		if e.complexity.Invite.Status == nil {
			break
		}

		return e.complexity.Invite.Status(childComplexity), true

	case "Kitchen.createdAt":
		if e.complexity.Kitchen.CreatedAt == nil {
			break
		}

		return e.complexity.Kitchen.CreatedAt(childComplexity), true
	case "Kitchen.description":
		if e.complexity.Kitchen.Description == nil {
			break
		}

		return e.complexity.Kitchen.Description(childComplexity), true
	case "Kitchen.householdId":
		if e.complexity.Kitchen.HouseholdID == nil {
			break
		}

		return e.complexity.Kitchen.HouseholdID(childComplexity), true
	case "Kitchen.id":
		if e.complexity.Kitchen.ID == nil {
			break
		}

		return e.complexity.Kitchen.ID(childComplexity), true
	case "Kitchen.name":
		if e.complexity.Kitchen.Name == nil {
			break
		}

		return e.complexity.Kitchen.Name(childComplexity), true
	case "Kitchen.updatedAt":
		if e.complexity.Kitchen.UpdatedAt == nil {
			break
		}

		return e.complexity.Kitchen.UpdatedAt(childComplexity), true

	case "MealPlanEntry.createdAt":
		if e.complexity.MealPlanEntry.CreatedAt == nil {
			break
		}

		return e.complexity.MealPlanEntry.CreatedAt(childComplexity), true
	case "MealPlanEntry.createdBy":
		if e.complexity.MealPlanEntry.CreatedBy == nil {
			break
		}

		return e.complexity.MealPlanEntry.CreatedBy(childComplexity), true
	case "MealPlanEntry.date":
		if e.complexity.MealPlanEntry.Date == nil {
			break
		}

		return e.complexity.MealPlanEntry.Date(childComplexity), true
	case "MealPlanEntry.id":
		if e.complexity.MealPlanEntry.ID == nil {
			break
		}

		return e.complexity.MealPlanEntry.ID(childComplexity), true
	case "MealPlanEntry.kitchenId":
		if e.complexity.MealPlanEntry.KitchenID == nil {
			break
		}

		return e.complexity.MealPlanEntry.KitchenID(childComplexity), true
	case "MealPlanEntry.meal":
		if e.complexity.MealPlanEntry.Meal == nil {
			break
		}

		return e.complexity.MealPlanEntry.Meal(childComplexity), true
	case "MealPlanEntry.notes":
		if e.complexity.MealPlanEntry.Notes == nil {
			break
		}

		return e.complexity.MealPlanEntry.Notes(childComplexity), true
	case "MealPlanEntry.recipe":
		if e.complexity.MealPlanEntry.Recipe == nil {
			break
		}

		return e.complexity.MealPlanEntry.Recipe(childComplexity), true
	case "MealPlanEntry.recipeId":
		if e.complexity.MealPlanEntry.RecipeID == nil {
			break
		}

		return e.complexity.MealPlanEntry.RecipeID(childComplexity), true
	case "MealPlanEntry.title":
		if e.complexity.MealPlanEntry.Title == nil {
			break
		}

		return e.complexity.MealPlanEntry.Title(childComplexity), true
	case "MealPlanEntry.updatedAt":
		if e.complexity.MealPlanEntry.UpdatedAt == nil {
			break
		}

		return e.complexity.MealPlanEntry.UpdatedAt(childComplexity), true

	case "Membership.createdAt":
		if e.complexity.Membership.CreatedAt == nil {
			break
		}

		return e.complexity.Membership.CreatedAt(childComplexity), true
	case "Membership.householdId":
		if e.complexity.Membership.HouseholdID == nil {
			break
		}

		return e.complexity.Membership.HouseholdID(childComplexity), true
	case "Membership.id":
		if e.complexity.Membership.ID == nil {
			break
		}

		return e.complexity.Membership.ID(childComplexity), true
	case "Membership.role":
		if e.complexity.Membership.Role == nil {
			break
		}

		return e.complexity.Membership.Role(childComplexity), true
	case "Membership.user":
		if e.complexity.Membership.User == nil {
			break
		}

		return e.complexity.Membership.User(childComplexity), true
	case "Membership.userId":
		if e.complexity.Membership.UserID == nil {
			break
		}

		return e.complexity.Membership.UserID(childComplexity), true

	case "Mutation.acceptInvite":
		if e.complexity.Mutation.AcceptInvite == nil {
			break
		}

		args, err := ec.field_Mutation_acceptInvite_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.AcceptInvite(childComplexity, args["token"].(string)), true
	case "Mutation.addBatch":
		if e.complexity.Mutation.AddBatch == nil {
			break
		}

		args, err := ec.field_Mutation_addBatch_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.AddBatch(childComplexity, args["input"].(inventory.AddBatchInput)), true
	case "Mutation.addRestockSuggestions":
		if e.complexity.Mutation.AddRestockSuggestions == nil {
			break
		}

		args, err := ec.field_Mutation_addRestockSuggestions_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.AddRestockSuggestions(childComplexity, args["listId"].(uuid.UUID)), true
	case "Mutation.addShoppingListItem":
		if e.complexity.Mutation.AddShoppingListItem == nil {
			break
		}

		args, err := ec.field_Mutation_addShoppingListItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.AddShoppingListItem(childComplexity, args["input"].(shopping.AddLineInput)), true
	case "Mutation.clearCheckedItems":
		if e.complexity.Mutation.ClearCheckedItems == nil {
			break
		}

		args, err := ec.field_Mutation_clearCheckedItems_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ClearCheckedItems(childComplexity, args["listId"].(uuid.UUID)), true
	case "Mutation.completeReminder":
		if e.complexity.Mutation.CompleteReminder == nil {
			break
		}

		args, err := ec.field_Mutation_completeReminder_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CompleteReminder(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.consume":
		if e.complexity.Mutation.Consume == nil {
			break
		}

		args, err := ec.field_Mutation_consume_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.Consume(childComplexity, args["input"].(inventory.ConsumeInput)), true
	case "Mutation.createExpense":
		if e.complexity.Mutation.CreateExpense == nil {
			break
		}

		args, err := ec.field_Mutation_createExpense_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateExpense(childComplexity, args["input"].(expense.CreateInput)), true
	case "Mutation.createHousehold":
		if e.complexity.Mutation.CreateHousehold == nil {
			break
		}

		args, err := ec.field_Mutation_createHousehold_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateHousehold(childComplexity, args["input"].(household.CreateInput)), true
	case "Mutation.createInventoryItem":
		if e.complexity.Mutation.CreateInventoryItem == nil {
			break
		}

		args, err := ec.field_Mutation_createInventoryItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateInventoryItem(childComplexity, args["input"].(inventory.CreateItemInput)), true
	case "Mutation.createKitchen":
		if e.complexity.Mutation.CreateKitchen == nil {
			break
		}

		args, err := ec.field_Mutation_createKitchen_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateKitchen(childComplexity, args["input"].(kitchen.CreateInput)), true
	case "Mutation.createMealPlanEntry":
		if e.complexity.Mutation.CreateMealPlanEntry == nil {
			break
		}

		args, err := ec.field_Mutation_createMealPlanEntry_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateMealPlanEntry(childComplexity, args["input"].(mealplan.CreateEntryInput)), true
	case "Mutation.createReminder":
		if e.complexity.Mutation.CreateReminder == nil {
			break
		}

		args, err := ec.field_Mutation_createReminder_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateReminder(childComplexity, args["input"].(reminder.CreateInput)), true
	case "Mutation.createShoppingList":
		if e.complexity.Mutation.CreateShoppingList == nil {
			break
		}

		args, err := ec.field_Mutation_createShoppingList_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateShoppingList(childComplexity, args["input"].(shopping.CreateListInput)), true
	case "Mutation.deleteBatch":
		if e.complexity.Mutation.DeleteBatch == nil {
			break
		}

		args, err := ec.field_Mutation_deleteBatch_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteBatch(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteExpense":
		if e.complexity.Mutation.DeleteExpense == nil {
			break
		}

		args, err := ec.field_Mutation_deleteExpense_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteExpense(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteHousehold":
		if e.complexity.Mutation.DeleteHousehold == nil {
			break
		}

		args, err := ec.field_Mutation_deleteHousehold_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteHousehold(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteInventoryItem":
		if e.complexity.Mutation.DeleteInventoryItem == nil {
			break
		}

		args, err := ec.field_Mutation_deleteInventoryItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteInventoryItem(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteKitchen":
		if e.complexity.Mutation.DeleteKitchen == nil {
			break
		}

		args, err := ec.field_Mutation_deleteKitchen_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteKitchen(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteMealPlanEntry":
		if e.complexity.Mutation.DeleteMealPlanEntry == nil {
			break
		}

		args, err := ec.field_Mutation_deleteMealPlanEntry_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteMealPlanEntry(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteRecipe":
		if e.complexity.Mutation.DeleteRecipe == nil {
			break
		}

		args, err := ec.field_Mutation_deleteRecipe_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteRecipe(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteReminder":
		if e.complexity.Mutation.DeleteReminder == nil {
			break
		}

		args, err := ec.field_Mutation_deleteReminder_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteReminder(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteShoppingList":
		if e.complexity.Mutation.DeleteShoppingList == nil {
			break
		}

		args, err := ec.field_Mutation_deleteShoppingList_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteShoppingList(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.deleteShoppingListItem":
		if e.complexity.Mutation.DeleteShoppingListItem == nil {
			break
		}

		args, err := ec.field_Mutation_deleteShoppingListItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteShoppingListItem(childComplexity, args["lineId"].(uuid.UUID)), true
	case "Mutation.discardBatch":
		if e.complexity.Mutation.DiscardBatch == nil {
			break
		}

		args, err := ec.field_Mutation_discardBatch_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DiscardBatch(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.generateRecipe":
		if e.complexity.Mutation.GenerateRecipe == nil {
			break
		}

		args, err := ec.field_Mutation_generateRecipe_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.GenerateRecipe(childComplexity, args["input"].(mealplan.GenerateRecipeInput)), true
	case "Mutation.inviteMember":
		if e.complexity.Mutation.InviteMember == nil {
			break
		}

		args, err := ec.field_Mutation_inviteMember_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.InviteMember(childComplexity, args["input"].(household.InviteInput)), true
	case "Mutation.markAllNotificationsRead":
		if e.complexity.Mutation.MarkAllNotificationsRead == nil {
			break
		}

		return e.complexity.Mutation.MarkAllNotificationsRead(childComplexity), true
	case "Mutation.markNotificationRead":
		if e.complexity.Mutation.MarkNotificationRead == nil {
			break
		}

		args, err := ec.field_Mutation_markNotificationRead_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MarkNotificationRead(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.parseReceipt":
		if e.complexity.Mutation.ParseReceipt == nil {
			break
		}

		args, err := ec.field_Mutation_parseReceipt_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ParseReceipt(childComplexity, args["kitchenId"].(uuid.UUID), args["key"].(string)), true
	case "Mutation.removeMember":
		if e.complexity.Mutation.RemoveMember == nil {
			break
		}

		args, err := ec.field_Mutation_removeMember_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RemoveMember(childComplexity, args["householdId"].(uuid.UUID), args["userId"].(uuid.UUID)), true
	case "Mutation.renameShoppingList":
		if e.complexity.Mutation.RenameShoppingList == nil {
			break
		}

		args, err := ec.field_Mutation_renameShoppingList_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RenameShoppingList(childComplexity, args["id"].(uuid.UUID), args["name"].(string)), true
	case "Mutation.revokeInvite":
		if e.complexity.Mutation.RevokeInvite == nil {
			break
		}

		args, err := ec.field_Mutation_revokeInvite_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RevokeInvite(childComplexity, args["inviteId"].(uuid.UUID), args["householdId"].(uuid.UUID)), true
	case "Mutation.saveRecipe":
		if e.complexity.Mutation.SaveRecipe == nil {
			break
		}

		args, err := ec.field_Mutation_saveRecipe_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SaveRecipe(childComplexity, args["input"].(mealplan.SaveRecipeInput)), true
	case "Mutation.setItemChecked":
		if e.complexity.Mutation.SetItemChecked == nil {
			break
		}

		args, err := ec.field_Mutation_setItemChecked_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SetItemChecked(childComplexity, args["lineId"].(uuid.UUID), args["checked"].(bool)), true
	case "Mutation.subscribePush":
		if e.complexity.Mutation.SubscribePush == nil {
			break
		}

		args, err := ec.field_Mutation_subscribePush_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SubscribePush(childComplexity, args["input"].(notification.SubscribeInput)), true
	case "Mutation.unsubscribePush":
		if e.complexity.Mutation.UnsubscribePush == nil {
			break
		}

		args, err := ec.field_Mutation_unsubscribePush_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UnsubscribePush(childComplexity, args["endpoint"].(string)), true
	case "Mutation.updateExpense":
		if e.complexity.Mutation.UpdateExpense == nil {
			break
		}

		args, err := ec.field_Mutation_updateExpense_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateExpense(childComplexity, args["input"].(expense.UpdateInput)), true
	case "Mutation.updateHousehold":
		if e.complexity.Mutation.UpdateHousehold == nil {
			break
		}

		args, err := ec.field_Mutation_updateHousehold_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateHousehold(childComplexity, args["input"].(household.UpdateInput)), true
	case "Mutation.updateInventoryItem":
		if e.complexity.Mutation.UpdateInventoryItem == nil {
			break
		}

		args, err := ec.field_Mutation_updateInventoryItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateInventoryItem(childComplexity, args["input"].(inventory.UpdateItemInput)), true
	case "Mutation.updateKitchen":
		if e.complexity.Mutation.UpdateKitchen == nil {
			break
		}

		args, err := ec.field_Mutation_updateKitchen_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateKitchen(childComplexity, args["input"].(kitchen.UpdateInput)), true
	case "Mutation.updateMealPlanEntry":
		if e.complexity.Mutation.UpdateMealPlanEntry == nil {
			break
		}

		args, err := ec.field_Mutation_updateMealPlanEntry_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateMealPlanEntry(childComplexity, args["input"].(mealplan.UpdateEntryInput)), true
	case "Mutation.updateMemberRole":
		if e.complexity.Mutation.UpdateMemberRole == nil {
			break
		}

		args, err := ec.field_Mutation_updateMemberRole_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateMemberRole(childComplexity, args["input"].(household.UpdateRoleInput)), true
	case "Mutation.updateProfile":
		if e.complexity.Mutation.UpdateProfile == nil {
			break
		}

		args, err := ec.field_Mutation_updateProfile_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateProfile(childComplexity, args["input"].(auth.UpdateProfileInput)), true
	case "Mutation.updateReminder":
		if e.complexity.Mutation.UpdateReminder == nil {
			break
		}

		args, err := ec.field_Mutation_updateReminder_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateReminder(childComplexity, args["input"].(reminder.UpdateInput)), true
	case "Mutation.updateShoppingListItem":
		if e.complexity.Mutation.UpdateShoppingListItem == nil {
			break
		}

		args, err := ec.field_Mutation_updateShoppingListItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateShoppingListItem(childComplexity, args["input"].(shopping.UpdateLineInput)), true
	case "Mutation.uploadReceipt":
		if e.complexity.Mutation.UploadReceipt == nil {
			break
		}

		args, err := ec.field_Mutation_uploadReceipt_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UploadReceipt(childComplexity, args["input"].(model.UploadReceiptInput)), true

	case "Notification.body":
		if e.complexity.Notification.Body == nil {
			break
		}

		return e.complexity.Notification.Body(childComplexity), true
	case "Notification.createdAt":
		if e.complexity.Notification.CreatedAt == nil {
			break
		}

		return e.complexity.Notification.CreatedAt(childComplexity), true
	case "Notification.id":
		if e.complexity.Notification.ID == nil {
			break
		}

		return e.complexity.Notification.ID(childComplexity), true
	case "Notification.isRead":
		if e.complexity.Notification.IsRead == nil {
			break
		}

		return e.complexity.Notification.IsRead(childComplexity), true
	case "Notification.title":
		if e.complexity.Notification.Title == nil {
			break
		}

		return e.complexity.Notification.Title(childComplexity), true
	case "Notification.userId":
		if e.complexity.Notification.UserID == nil {
			break
		}

		return e.complexity.Notification.UserID(childComplexity), true

	case "PushSubscription.createdAt":
		if e.complexity.PushSubscription.CreatedAt == nil {
			break
		}

		return e.complexity.PushSubscription.CreatedAt(childComplexity), true
	case "PushSubscription.endpoint":
		if e.complexity.PushSubscription.Endpoint == nil {
			break
		}

		return e.complexity.PushSubscription.Endpoint(childComplexity), true
	case "PushSubscription.id":
		if e.complexity.PushSubscription.ID == nil {
			break
		}

		return e.complexity.PushSubscription.ID(childComplexity), true
	case "PushSubscription.userId":
		if e.complexity.PushSubscription.UserID == nil {
			break
		}

		return e.complexity.PushSubscription.UserID(childComplexity), true

	case "Query.expense":
		if e.complexity.Query.Expense == nil {
			break
		}

		args, err := ec.field_Query_expense_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Expense(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.expenseSummary":
		if e.complexity.Query.ExpenseSummary == nil {
			break
		}

		args, err := ec.field_Query_expenseSummary_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ExpenseSummary(childComplexity, args["kitchenId"].(uuid.UUID), args["year"].(int), args["month"].(int)), true
	case "Query.expenses":
		if e.complexity.Query.Expenses == nil {
			break
		}

		args, err := ec.field_Query_expenses_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Expenses(childComplexity, args["kitchenId"].(uuid.UUID), args["filter"].(*model.ExpenseFilter)), true
	case "Query.household":
		if e.complexity.Query.Household == nil {
			break
		}

		args, err := ec.field_Query_household_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Household(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.inventoryItem":
		if e.complexity.Query.InventoryItem == nil {
			break
		}

		args, err := ec.field_Query_inventoryItem_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.InventoryItem(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.inventoryItems":
		if e.complexity.Query.InventoryItems == nil {
			break
		}

		args, err := ec.field_Query_inventoryItems_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.InventoryItems(childComplexity, args["kitchenId"].(uuid.UUID), args["filter"].(*model.InventoryItemFilter)), true
	case "Query.invites":
		if e.complexity.Query.Invites == nil {
			break
		}

		args, err := ec.field_Query_invites_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Invites(childComplexity, args["householdId"].(uuid.UUID)), true
	case "Query.kitchen":
		if e.complexity.Query.Kitchen == nil {
			break
		}

		args, err := ec.field_Query_kitchen_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Kitchen(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.kitchens":
		if e.complexity.Query.Kitchens == nil {
			break
		}

		args, err := ec.field_Query_kitchens_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Kitchens(childComplexity, args["householdId"].(uuid.UUID)), true
	case "Query.me":
		if e.complexity.Query.Me == nil {
			break
		}

		return e.complexity.Query.Me(childComplexity), true
	case "Query.mealPlan":
		if e.complexity.Query.MealPlan == nil {
			break
		}

		args, err := ec.field_Query_mealPlan_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MealPlan(childComplexity, args["kitchenId"].(uuid.UUID), args["from"].(time.Time), args["to"].(time.Time)), true
	case "Query.myHouseholds":
		if e.complexity.Query.MyHouseholds == nil {
			break
		}

		return e.complexity.Query.MyHouseholds(childComplexity), true
	case "Query.myNotifications":
		if e.complexity.Query.MyNotifications == nil {
			break
		}

		args, err := ec.field_Query_myNotifications_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MyNotifications(childComplexity, args["includeRead"].(bool), args["limit"].(int)), true
	case "Query.recipe":
		if e.complexity.Query.Recipe == nil {
			break
		}

		args, err := ec.field_Query_recipe_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Recipe(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.recipes":
		if e.complexity.Query.Recipes == nil {
			break
		}

		args, err := ec.field_Query_recipes_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Recipes(childComplexity, args["kitchenId"].(uuid.UUID)), true
	case "Query.reminder":
		if e.complexity.Query.Reminder == nil {
			break
		}

		args, err := ec.field_Query_reminder_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Reminder(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.reminders":
		if e.complexity.Query.Reminders == nil {
			break
		}

		args, err := ec.field_Query_reminders_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Reminders(childComplexity, args["kitchenId"].(uuid.UUID), args["includeCompleted"].(bool)), true
	case "Query.restockSuggestions":
		if e.complexity.Query.RestockSuggestions == nil {
			break
		}

		args, err := ec.field_Query_restockSuggestions_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.RestockSuggestions(childComplexity, args["kitchenId"].(uuid.UUID)), true
	case "Query.shoppingList":
		if e.complexity.Query.ShoppingList == nil {
			break
		}

		args, err := ec.field_Query_shoppingList_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ShoppingList(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.shoppingLists":
		if e.complexity.Query.ShoppingLists == nil {
			break
		}

		args, err := ec.field_Query_shoppingLists_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ShoppingLists(childComplexity, args["kitchenId"].(uuid.UUID)), true
	case "Query.unreadCount":
		if e.complexity.Query.UnreadCount == nil {
			break
		}

		return e.complexity.Query.UnreadCount(childComplexity), true
	case "Query.usageLog":
		if e.complexity.Query.UsageLog == nil {
			break
		}

		args, err := ec.field_Query_usageLog_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.UsageLog(childComplexity, args["itemId"].(uuid.UUID), args["since"].(time.Time)), true

	case "ReceiptLine.name":
		if e.complexity.ReceiptLine.Name == nil {
			break
		}

		return e.complexity.ReceiptLine.Name(childComplexity), true
	case "ReceiptLine.priceCents":
		if e.complexity.ReceiptLine.PriceCents == nil {
			break
		}

		return e.complexity.ReceiptLine.PriceCents(childComplexity), true
	case "ReceiptLine.quantity":
		if e.complexity.ReceiptLine.Quantity == nil {
			break
		}

		return e.complexity.ReceiptLine.Quantity(childComplexity), true
	case "ReceiptLine.unit":
		if e.complexity.ReceiptLine.Unit == nil {
			break
		}

		return e.complexity.ReceiptLine.Unit(childComplexity), true

	case "Recipe.createdAt":
		if e.complexity.Recipe.CreatedAt == nil {
			break
		}

		return e.complexity.Recipe.CreatedAt(childComplexity), true
	case "Recipe.createdBy":
		if e.complexity.Recipe.CreatedBy == nil {
			break
		}

		return e.complexity.Recipe.CreatedBy(childComplexity), true
	case "Recipe.generated":
		if e.complexity.Recipe.Generated == nil {
			break
		}

		return e.complexity.Recipe.Generated(childComplexity), true
	case "Recipe.id":
		if e.complexity.Recipe.ID == nil {
			break
		}

		return e.complexity.Recipe.ID(childComplexity), true
	case "Recipe.ingredients":
		if e.complexity.Recipe.Ingredients == nil {
			break
		}

		return e.complexity.Recipe.Ingredients(childComplexity), true
	case "Recipe.instructions":
		if e.complexity.Recipe.Instructions == nil {
			break
		}

		return e.complexity.Recipe.Instructions(childComplexity), true
	case "Recipe.kitchenId":
		if e.complexity.Recipe.KitchenID == nil {
			break
		}

		return e.complexity.Recipe.KitchenID(childComplexity), true
	case "Recipe.servings":
		if e.complexity.Recipe.Servings == nil {
			break
		}

		return e.complexity.Recipe.Servings(childComplexity), true
	case "Recipe.title":
		if e.complexity.Recipe.Title == nil {
			break
		}

		return e.complexity.Recipe.Title(childComplexity), true

	case "RecipeIngredient.name":
		if e.complexity.RecipeIngredient.Name == nil {
			break
		}

		return e.complexity.RecipeIngredient.Name(childComplexity), true
	case "RecipeIngredient.quantity":
		if e.complexity.RecipeIngredient.Quantity == nil {
			break
		}

		return e.complexity.RecipeIngredient.Quantity(childComplexity), true
	case "RecipeIngredient.unit":
		if e.complexity.RecipeIngredient.Unit == nil {
			break
		}

		return e.complexity.RecipeIngredient.Unit(childComplexity), true

	case "Reminder.body":
		if e.complexity.Reminder.Body == nil {
			break
		}

		return e.complexity.Reminder.Body(childComplexity), true
	case "Reminder.createdAt":
		if e.complexity.Reminder.CreatedAt == nil {
			break
		}

		return e.complexity.Reminder.CreatedAt(childComplexity), true
	case "Reminder.entityId":
		if e.complexity.Reminder.EntityID == nil {
			break
		}

		return e.complexity.Reminder.EntityID(childComplexity), true
	case "Reminder.frequency":
		if e.complexity.Reminder.Frequency == nil {
			break
		}

		return e.complexity.Reminder.Frequency(childComplexity), true
	case "Reminder.id":
		if e.complexity.Reminder.ID == nil {
			break
		}

		return e.complexity.Reminder.ID(childComplexity), true
	case "Reminder.isCompleted":
		if e.complexity.Reminder.IsCompleted == nil {
			break
		}

		return e.complexity.Reminder.IsCompleted(childComplexity), true
	case "Reminder.isRecurring":
		if e.complexity.Reminder.IsRecurring == nil {
			break
		}

		return e.complexity.Reminder.IsRecurring(childComplexity), true
	case "Reminder.kitchenId":
		if e.complexity.Reminder.KitchenID == nil {
			break
		}

		return e.complexity.Reminder.KitchenID(childComplexity), true
	case "Reminder.scheduledAt":
		if e.complexity.Reminder.ScheduledAt == nil {
			break
		}

		return e.complexity.Reminder.ScheduledAt(childComplexity), true
	case "Reminder.title":
		if e.complexity.Reminder.Title == nil {
			break
		}

		return e.complexity.Reminder.Title(childComplexity), true
	case "Reminder.type":
		if e.complexity.Reminder.Type == nil {
			break
		}

		return e.complexity.Reminder.Type(childComplexity), true
	case "Reminder.updatedAt":
		if e.complexity.Reminder.UpdatedAt == nil {
			break
		}

		return e.complexity.Reminder.UpdatedAt(childComplexity), true

	case "RestockSuggestion.itemId":
		if e.complexity.RestockSuggestion.ItemID == nil {
			break
		}

		return e.complexity.RestockSuggestion.ItemID(childComplexity), true
	case "RestockSuggestion.name":
		if e.complexity.RestockSuggestion.Name == nil {
			break
		}

		return e.complexity.RestockSuggestion.Name(childComplexity), true
	case "RestockSuggestion.quantity":
		if e.complexity.RestockSuggestion.Quantity == nil {
			break
		}

		return e.complexity.RestockSuggestion.Quantity(childComplexity), true
	case "RestockSuggestion.unit":
		if e.complexity.RestockSuggestion.Unit == nil {
			break
		}

		return e.complexity.RestockSuggestion.Unit(childComplexity), true

	case "ShoppingList.createdAt":
		if e.complexity.ShoppingList.CreatedAt == nil {
			break
		}

		return e.complexity.ShoppingList.CreatedAt(childComplexity), true
	case "ShoppingList.createdBy":
		if e.complexity.ShoppingList.CreatedBy == nil {
			break
		}

		return e.complexity.ShoppingList.CreatedBy(childComplexity), true
	case "ShoppingList.id":
		if e.complexity.ShoppingList.ID == nil {
			break
		}

		return e.complexity.ShoppingList.ID(childComplexity), true
	case "ShoppingList.items":
		if e.complexity.ShoppingList.Items == nil {
			break
		}

		return e.complexity.ShoppingList.Items(childComplexity), true
	case "ShoppingList.kitchenId":
		if e.complexity.ShoppingList.KitchenID == nil {
			break
		}

		return e.complexity.ShoppingList.KitchenID(childComplexity), true
	case "ShoppingList.name":
		if e.complexity.ShoppingList.Name == nil {
			break
		}

		return e.complexity.ShoppingList.Name(childComplexity), true
	case "ShoppingList.updatedAt":
		if e.complexity.ShoppingList.UpdatedAt == nil {
			break
		}

		return e.complexity.ShoppingList.UpdatedAt(childComplexity), true

	case "ShoppingListItem.createdAt":
		if e.complexity.ShoppingListItem.CreatedAt == nil {
			break
		}

		return e.complexity.ShoppingListItem.CreatedAt(childComplexity), true
	case "ShoppingListItem.id":
		if e.complexity.ShoppingListItem.ID == nil {
			break
		}

		return e.complexity.ShoppingListItem.ID(childComplexity), true
	case "ShoppingListItem.isChecked":
		if e.complexity.ShoppingListItem.IsChecked == nil {
			break
		}

		return e.complexity.ShoppingListItem.IsChecked(childComplexity), true
	case "ShoppingListItem.item":
		if e.complexity.ShoppingListItem.Item == nil {
			break
		}

		return e.complexity.ShoppingListItem.Item(childComplexity), true
	case "ShoppingListItem.itemId":
		if e.complexity.ShoppingListItem.ItemID == nil {
			break
		}

		return e.complexity.ShoppingListItem.ItemID(childComplexity), true
	case "ShoppingListItem.listId":
		if e.complexity.ShoppingListItem.ListID == nil {
			break
		}

		return e.complexity.ShoppingListItem.ListID(childComplexity), true
	case "ShoppingListItem.name":
		if e.complexity.ShoppingListItem.Name == nil {
			break
		}

		return e.complexity.ShoppingListItem.Name(childComplexity), true
	case "ShoppingListItem.quantity":
		if e.complexity.ShoppingListItem.Quantity == nil {
			break
		}

		return e.complexity.ShoppingListItem.Quantity(childComplexity), true
	case "ShoppingListItem.unit":
		if e.complexity.ShoppingListItem.Unit == nil {
			break
		}

		return e.complexity.ShoppingListItem.Unit(childComplexity), true
	case "ShoppingListItem.updatedAt":
		if e.complexity.ShoppingListItem.UpdatedAt == nil {
			break
		}

		return e.complexity.ShoppingListItem.UpdatedAt(childComplexity), true

	case "UsageLog.action":
		if e.complexity.UsageLog.Action == nil {
			break
		}

		return e.complexity.UsageLog.Action(childComplexity), true
	case "UsageLog.batchId":
		if e.complexity.UsageLog.BatchID == nil {
			break
		}

		return e.complexity.UsageLog.BatchID(childComplexity), true
	case "UsageLog.createdAt":
		if e.complexity.UsageLog.CreatedAt == nil {
			break
		}

		return e.complexity.UsageLog.CreatedAt(childComplexity), true
	case "UsageLog.id":
		if e.complexity.UsageLog.ID == nil {
			break
		}

		return e.complexity.UsageLog.ID(childComplexity), true
	case "UsageLog.itemId":
		if e.complexity.UsageLog.ItemID == nil {
			break
		}

		return e.complexity.UsageLog.ItemID(childComplexity), true
	case "UsageLog.quantity":
		if e.complexity.UsageLog.Quantity == nil {
			break
		}

		return e.complexity.UsageLog.Quantity(childComplexity), true
	case "UsageLog.userId":
		if e.complexity.UsageLog.UserID == nil {
			break
		}

		return e.complexity.UsageLog.UserID(childComplexity), true

	case "User.avatarUrl":
		if e.complexity.User.AvatarURL == nil {
			break
		}

		return e.complexity.User.AvatarURL(childComplexity), true
	case "User.createdAt":
		if e.complexity.User.CreatedAt == nil {
			break
		}

		return e.complexity.User.CreatedAt(childComplexity), true
	case "User.email":
		if e.complexity.User.Email == nil {
			break
		}

		return e.complexity.User.Email(childComplexity), true
	case "User.id":
		if e.complexity.User.ID == nil {
			break
		}

		return e.complexity.User.ID(childComplexity), true
	case "User.name":
		if e.complexity.User.Name == nil {
			break
		}

		return e.complexity.User.Name(childComplexity), true

	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{opCtx, e, 0, 0, make(chan graphql.DeferredResult)}
	inputUnmarshalMap := graphql.BuildUnmarshalerMap(
		ec.unmarshalInputAddBatchInput,
		ec.unmarshalInputAddShoppingListItemInput,
		ec.unmarshalInputConsumeInput,
		ec.unmarshalInputCreateExpenseInput,
		ec.unmarshalInputCreateHouseholdInput,
		ec.unmarshalInputCreateInventoryItemInput,
		ec.unmarshalInputCreateKitchenInput,
		ec.unmarshalInputCreateMealPlanEntryInput,
		ec.unmarshalInputCreateReminderInput,
		ec.unmarshalInputCreateShoppingListInput,
		ec.unmarshalInputExpenseFilter,
		ec.unmarshalInputGenerateRecipeInput,
		ec.unmarshalInputInventoryItemFilter,
		ec.unmarshalInputInviteMemberInput,
		ec.unmarshalInputRecipeIngredientInput,
		ec.unmarshalInputSaveRecipeInput,
		ec.unmarshalInputSubscribePushInput,
		ec.unmarshalInputUpdateExpenseInput,
		ec.unmarshalInputUpdateHouseholdInput,
		ec.unmarshalInputUpdateInventoryItemInput,
		ec.unmarshalInputUpdateKitchenInput,
		ec.unmarshalInputUpdateMealPlanEntryInput,
		ec.unmarshalInputUpdateMemberRoleInput,
		ec.unmarshalInputUpdateProfileInput,
		ec.unmarshalInputUpdateReminderInput,
		ec.unmarshalInputUpdateShoppingListItemInput,
		ec.unmarshalInputUploadReceiptInput,
	)
	first := true

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *graphql.Response {
			var response graphql.Response
			var data graphql.Marshaler
			if first {
				first = false
				ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
				data = ec._Query(ctx, opCtx.Operation.SelectionSet)
			} else {
				if atomic.LoadInt32(&ec.pendingDeferred) > 0 {
					result := <-ec.deferredResults
					atomic.AddInt32(&ec.pendingDeferred, -1)
					data = result.Result
					response.Path = result.Path
					response.Label = result.Label
					response.Errors = result.Errors
				} else {
					return nil
				}
			}
			var buf bytes.Buffer
			data.MarshalGQL(&buf)
			response.Data = buf.Bytes()
			if atomic.LoadInt32(&ec.deferred) > 0 {
				hasNext := atomic.LoadInt32(&ec.pendingDeferred) > 0
				response.HasNext = &hasNext
			}

			return &response
		}
	case ast.Mutation:
		return func(ctx context.Context) *graphql.Response {
			if !first {
				return nil
			}
			first = false
			ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
			data := ec._Mutation(ctx, opCtx.Operation.SelectionSet)
			var buf bytes.Buffer
			data.MarshalGQL(&buf)

			return &graphql.Response{
				Data: buf.Bytes(),
			}
		}

	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
	deferred        int32
	pendingDeferred int32
	deferredResults chan graphql.DeferredResult
}

func (ec *executionContext) processDeferredGroup(dg graphql.DeferredGroup) {
	atomic.AddInt32(&ec.pendingDeferred, 1)
	go func() {
		ctx := graphql.WithFreshResponseContext(dg.Context)
		dg.FieldSet.Dispatch(ctx)
		ds := graphql.DeferredResult{
			Path:   dg.Path,
			Label:  dg.Label,
			Result: dg.FieldSet,
			Errors: graphql.GetErrors(ctx),
		}
		// null fields should bubble up
		if dg.FieldSet.Invalids > 0 {
			ds.Result = graphql.Null
		}
		ec.deferredResults <- ds
	}()
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

var sources = []*ast.Source{
	{Name: "../schema/expense.graphql", Input: `enum ExpenseCategory {
  GROCERIES
  EQUIPMENT
  DINING_OUT
  OTHER
}

type Expense {
  id: UUID!
  kitchenId: UUID!
  paidBy: UUID!
  amountCents: Int!
  currency: String!
  category: ExpenseCategory!
  note: String
  spentAt: DateTime!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type CategoryTotal {
  category: ExpenseCategory!
  totalCents: Int!
}

type ExpenseSummary {
  kitchenId: UUID!
  year: Int!
  month: Int!
  totalCents: Int!
  byCategory: [CategoryTotal!]!
}

input ExpenseFilter {
  category: ExpenseCategory
  paidBy: UUID
  from: DateTime
  to: DateTime
}

input CreateExpenseInput {
  kitchenId: UUID!
  amountCents: Int!
  currency: String!
  category: ExpenseCategory!
  note: String
  spentAt: DateTime!
}

input UpdateExpenseInput {
  expenseId: UUID!
  amountCents: Int!
  currency: String!
  category: ExpenseCategory!
  note: String
  spentAt: DateTime!
}

extend type Query {
  expense(id: UUID!): Expense!
  expenses(kitchenId: UUID!, filter: ExpenseFilter): [Expense!]!
  expenseSummary(kitchenId: UUID!, year: Int!, month: Int!): ExpenseSummary!
}

extend type Mutation {
  createExpense(input: CreateExpenseInput!): Expense!
  updateExpense(input: UpdateExpenseInput!): Expense!
  deleteExpense(id: UUID!): Boolean!
}
`, BuiltIn: false},
	{Name: "../schema/household.graphql", Input: `enum Role {
  VIEWER
  MEMBER
  ADMIN
  OWNER
}

type Household {
  id: UUID!
  name: String!
  createdBy: UUID!
  members: [Membership!]!
  kitchens: [Kitchen!]!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type Membership {
  id: UUID!
  householdId: UUID!
  userId: UUID!
  role: Role!
  user: User!
  createdAt: DateTime!
}

enum InviteStatus {
  PENDING
  ACCEPTED
  REVOKED
  EXPIRED
}

type Invite {
  id: UUID!
  householdId: UUID!
  email: String!
  role: Role!
  status: InviteStatus!
  invitedBy: UUID!
  expiresAt: DateTime!
  createdAt: DateTime!
}

input CreateHouseholdInput {
  name: String!
}

input UpdateHouseholdInput {
  householdId: UUID!
  name: String!
}

input InviteMemberInput {
  householdId: UUID!
  email: String!
  role: Role!
}

input UpdateMemberRoleInput {
  householdId: UUID!
  userId: UUID!
  role: Role!
}

extend type Query {
  myHouseholds: [Household!]!
  household(id: UUID!): Household!
  invites(householdId: UUID!): [Invite!]!
}

extend type Mutation {
  createHousehold(input: CreateHouseholdInput!): Household!
  updateHousehold(input: UpdateHouseholdInput!): Household!
  deleteHousehold(id: UUID!): Boolean!
  inviteMember(input: InviteMemberInput!): Invite!
  acceptInvite(token: String!): Membership!
  revokeInvite(inviteId: UUID!, householdId: UUID!): Invite!
  updateMemberRole(input: UpdateMemberRoleInput!): Membership!
  removeMember(householdId: UUID!, userId: UUID!): Boolean!
}
`, BuiltIn: false},
	{Name: "../schema/inventory.graphql", Input: `enum BatchStatus {
  ACTIVE
  USED
  EXPIRED
  WASTED
}

enum UsageAction {
  USED
  CONSUMED
  COOKED
  WASTED
  EXPIRED
}

type InventoryItem {
  id: UUID!
  kitchenId: UUID!
  name: String!
  category: String
  defaultUnit: String!
  threshold: Float!
  quantity: Float!
  batches: [InventoryBatch!]!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type InventoryBatch {
  id: UUID!
  itemId: UUID!
  quantity: Float!
  unit: String!
  expiresAt: DateTime
  status: BatchStatus!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type UsageLog {
  id: UUID!
  itemId: UUID!
  batchId: UUID
  userId: UUID!
  action: UsageAction!
  quantity: Float!
  createdAt: DateTime!
}

input InventoryItemFilter {
  category: String
  search: String
  lowStock: Boolean
}

input CreateInventoryItemInput {
  kitchenId: UUID!
  name: String!
  category: String
  defaultUnit: String!
  threshold: Float!
}

input UpdateInventoryItemInput {
  itemId: UUID!
  name: String!
  category: String
  defaultUnit: String!
  threshold: Float!
}

input AddBatchInput {
  itemId: UUID!
  quantity: Float!
  unit: String!
  expiresAt: DateTime
}

input ConsumeInput {
  itemId: UUID!
  quantity: Float!
  action: UsageAction!
}

extend type Query {
  inventoryItem(id: UUID!): InventoryItem!
  inventoryItems(kitchenId: UUID!, filter: InventoryItemFilter): [InventoryItem!]!
  usageLog(itemId: UUID!, since: DateTime!): [UsageLog!]!
}

extend type Mutation {
  createInventoryItem(input: CreateInventoryItemInput!): InventoryItem!
  updateInventoryItem(input: UpdateInventoryItemInput!): InventoryItem!
  deleteInventoryItem(id: UUID!): Boolean!
  addBatch(input: AddBatchInput!): InventoryBatch!
  discardBatch(id: UUID!): InventoryBatch!
  deleteBatch(id: UUID!): Boolean!
  consume(input: ConsumeInput!): [InventoryBatch!]!
}
`, BuiltIn: false},
	{Name: "../schema/kitchen.graphql", Input: `type Kitchen {
  id: UUID!
  householdId: UUID!
  name: String!
  description: String
  createdAt: DateTime!
  updatedAt: DateTime!
}

input CreateKitchenInput {
  householdId: UUID!
  name: String!
  description: String
}

input UpdateKitchenInput {
  kitchenId: UUID!
  name: String!
  description: String
}

extend type Query {
  kitchen(id: UUID!): Kitchen!
  kitchens(householdId: UUID!): [Kitchen!]!
}

extend type Mutation {
  createKitchen(input: CreateKitchenInput!): Kitchen!
  updateKitchen(input: UpdateKitchenInput!): Kitchen!
  deleteKitchen(id: UUID!): Boolean!
}
`, BuiltIn: false},
	{Name: "../schema/mealplan.graphql", Input: `enum MealType {
  BREAKFAST
  LUNCH
  DINNER
  SNACK
}

type MealPlanEntry {
  id: UUID!
  kitchenId: UUID!
  date: DateTime!
  meal: MealType!
  title: String!
  recipeId: UUID
  recipe: Recipe
  notes: String
  createdBy: UUID!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type Recipe {
  id: UUID!
  kitchenId: UUID!
  title: String!
  ingredients: [RecipeIngredient!]!
  instructions: String!
  servings: Int!
  generated: Boolean!
  createdBy: UUID!
  createdAt: DateTime!
}

type RecipeIngredient {
  name: String!
  quantity: Float!
  unit: String!
}

type ReceiptLine {
  name: String!
  quantity: Float!
  unit: String!
  priceCents: Int!
}

input CreateMealPlanEntryInput {
  kitchenId: UUID!
  date: DateTime!
  meal: MealType!
  title: String!
  recipeId: UUID
  notes: String
}

input UpdateMealPlanEntryInput {
  entryId: UUID!
  date: DateTime!
  meal: MealType!
  title: String!
  recipeId: UUID
  notes: String
}

input RecipeIngredientInput {
  name: String!
  quantity: Float!
  unit: String!
}

input SaveRecipeInput {
  kitchenId: UUID!
  title: String!
  ingredients: [RecipeIngredientInput!]!
  instructions: String!
  servings: Int!
}

input GenerateRecipeInput {
  kitchenId: UUID!
  prompt: String
  servings: Int!
}

input UploadReceiptInput {
  kitchenId: UUID!
  data: String!
  contentType: String!
}

extend type Query {
  mealPlan(kitchenId: UUID!, from: DateTime!, to: DateTime!): [MealPlanEntry!]!
  recipe(id: UUID!): Recipe!
  recipes(kitchenId: UUID!): [Recipe!]!
}

extend type Mutation {
  createMealPlanEntry(input: CreateMealPlanEntryInput!): MealPlanEntry!
  updateMealPlanEntry(input: UpdateMealPlanEntryInput!): MealPlanEntry!
  deleteMealPlanEntry(id: UUID!): Boolean!
  saveRecipe(input: SaveRecipeInput!): Recipe!
  deleteRecipe(id: UUID!): Boolean!
  generateRecipe(input: GenerateRecipeInput!): Recipe!
  uploadReceipt(input: UploadReceiptInput!): String!
  parseReceipt(kitchenId: UUID!, key: String!): [ReceiptLine!]!
}
`, BuiltIn: false},
	{Name: "../schema/notification.graphql", Input: `type Notification {
  id: UUID!
  userId: UUID!
  title: String!
  body: String!
  isRead: Boolean!
  createdAt: DateTime!
}

type PushSubscription {
  id: UUID!
  userId: UUID!
  endpoint: String!
  createdAt: DateTime!
}

input SubscribePushInput {
  endpoint: String!
  p256dhKey: String!
  authKey: String!
}

extend type Query {
  myNotifications(includeRead: Boolean! = false, limit: Int! = 50): [Notification!]!
  unreadCount: Int!
}

extend type Mutation {
  markNotificationRead(id: UUID!): Boolean!
  markAllNotificationsRead: Int!
  subscribePush(input: SubscribePushInput!): PushSubscription!
  unsubscribePush(endpoint: String!): Boolean!
}
`, BuiltIn: false},
	{Name: "../schema/reminder.graphql", Input: `enum ReminderType {
  LOW_STOCK
  EXPIRY
  SHOPPING
  MEAL_PREP
  CUSTOM
}

enum Frequency {
  DAILY
  WEEKLY
  MONTHLY
  YEARLY
}

type Reminder {
  id: UUID!
  kitchenId: UUID!
  type: ReminderType!
  title: String!
  body: String
  entityId: UUID
  scheduledAt: DateTime!
  isCompleted: Boolean!
  isRecurring: Boolean!
  frequency: Frequency
  createdAt: DateTime!
  updatedAt: DateTime!
}

input CreateReminderInput {
  kitchenId: UUID!
  type: ReminderType!
  title: String!
  body: String
  scheduledAt: DateTime!
  isRecurring: Boolean!
  frequency: Frequency
}

input UpdateReminderInput {
  reminderId: UUID!
  title: String!
  body: String
  scheduledAt: DateTime!
  isRecurring: Boolean!
  frequency: Frequency
}

extend type Query {
  reminder(id: UUID!): Reminder!
  reminders(kitchenId: UUID!, includeCompleted: Boolean! = false): [Reminder!]!
}

extend type Mutation {
  createReminder(input: CreateReminderInput!): Reminder!
  updateReminder(input: UpdateReminderInput!): Reminder!
  completeReminder(id: UUID!): Reminder!
  deleteReminder(id: UUID!): Boolean!
}
`, BuiltIn: false},
	{Name: "../schema/schema.graphql", Input: `scalar UUID
scalar DateTime

type Query
type Mutation

type User {
  id: UUID!
  email: String!
  name: String!
  avatarUrl: String
  createdAt: DateTime!
}

input UpdateProfileInput {
  name: String
  avatarUrl: String
}

extend type Query {
  me: User!
}

extend type Mutation {
  updateProfile(input: UpdateProfileInput!): User!
}
`, BuiltIn: false},
	{Name: "../schema/shopping.graphql", Input: `type ShoppingList {
  id: UUID!
  kitchenId: UUID!
  name: String!
  createdBy: UUID!
  items: [ShoppingListItem!]!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type ShoppingListItem {
  id: UUID!
  listId: UUID!
  itemId: UUID
  item: InventoryItem
  name: String!
  quantity: Float!
  unit: String!
  isChecked: Boolean!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type RestockSuggestion {
  itemId: UUID!
  name: String!
  quantity: Float!
  unit: String!
}

input CreateShoppingListInput {
  kitchenId: UUID!
  name: String!
}

input AddShoppingListItemInput {
  listId: UUID!
  itemId: UUID
  name: String!
  quantity: Float!
  unit: String!
}

input UpdateShoppingListItemInput {
  lineId: UUID!
  name: String!
  quantity: Float!
  unit: String!
}

extend type Query {
  shoppingList(id: UUID!): ShoppingList!
  shoppingLists(kitchenId: UUID!): [ShoppingList!]!
  restockSuggestions(kitchenId: UUID!): [RestockSuggestion!]!
}

extend type Mutation {
  createShoppingList(input: CreateShoppingListInput!): ShoppingList!
  renameShoppingList(id: UUID!, name: String!): ShoppingList!
  deleteShoppingList(id: UUID!): Boolean!
  addShoppingListItem(input: AddShoppingListItemInput!): ShoppingListItem!
  updateShoppingListItem(input: UpdateShoppingListItemInput!): ShoppingListItem!
  setItemChecked(lineId: UUID!, checked: Boolean!): ShoppingListItem!
  deleteShoppingListItem(lineId: UUID!): Boolean!
  clearCheckedItems(listId: UUID!): Int!
  addRestockSuggestions(listId: UUID!): [ShoppingListItem!]!
}
`, BuiltIn: false},
}
var parsedSchema = gqlparser.MustLoadSchema(sources...)

// endregion ************************** generated!.gotpl **************************

// region    ***************************** args.gotpl *****************************

func (ec *executionContext) field_Mutation_acceptInvite_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "token", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["token"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_addBatch_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNAddBatchInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐAddBatchInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_addRestockSuggestions_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "listId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["listId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_addShoppingListItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNAddShoppingListItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐAddLineInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_clearCheckedItems_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "listId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["listId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_completeReminder_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_consume_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNConsumeInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐConsumeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createExpense_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateExpenseInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋexpenseᚐCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createHousehold_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateHouseholdInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createInventoryItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateInventoryItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐCreateItemInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createKitchen_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateKitchenInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋkitchenᚐCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createMealPlanEntry_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateMealPlanEntryInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐCreateEntryInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createReminder_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateReminderInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋreminderᚐCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createShoppingList_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateShoppingListInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐCreateListInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteBatch_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteExpense_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteHousehold_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteInventoryItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteKitchen_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteMealPlanEntry_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteRecipe_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteReminder_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteShoppingListItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "lineId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["lineId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteShoppingList_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_discardBatch_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_generateRecipe_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNGenerateRecipeInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐGenerateRecipeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_inviteMember_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNInviteMemberInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐInviteInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_markNotificationRead_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_parseReceipt_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "key", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["key"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_removeMember_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "householdId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["householdId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "userId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["userId"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_renameShoppingList_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_revokeInvite_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "inviteId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["inviteId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "householdId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["householdId"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_saveRecipe_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSaveRecipeInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐSaveRecipeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_setItemChecked_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "lineId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["lineId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "checked", ec.unmarshalNBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["checked"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_subscribePush_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSubscribePushInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋnotificationᚐSubscribeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_unsubscribePush_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "endpoint", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["endpoint"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateExpense_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateExpenseInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋexpenseᚐUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateHousehold_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateHouseholdInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateInventoryItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateInventoryItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐUpdateItemInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateKitchen_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateKitchenInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋkitchenᚐUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateMealPlanEntry_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateMealPlanEntryInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐUpdateEntryInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateMemberRole_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateMemberRoleInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐUpdateRoleInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateProfile_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateProfileInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋauthᚐUpdateProfileInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateReminder_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateReminderInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋreminderᚐUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateShoppingListItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateShoppingListItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐUpdateLineInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_uploadReceipt_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUploadReceiptInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUploadReceiptInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query___type_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_expenseSummary_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "year", ec.unmarshalNInt2int)
	if err != nil {
		return nil, err
	}
	args["year"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "month", ec.unmarshalNInt2int)
	if err != nil {
		return nil, err
	}
	args["month"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_expense_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_expenses_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "filter", ec.unmarshalOExpenseFilter2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐExpenseFilter)
	if err != nil {
		return nil, err
	}
	args["filter"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_household_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_inventoryItem_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_inventoryItems_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "filter", ec.unmarshalOInventoryItemFilter2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐInventoryItemFilter)
	if err != nil {
		return nil, err
	}
	args["filter"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_invites_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "householdId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["householdId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_kitchen_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_kitchens_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "householdId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["householdId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_mealPlan_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "from", ec.unmarshalNDateTime2timeᚐTime)
	if err != nil {
		return nil, err
	}
	args["from"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "to", ec.unmarshalNDateTime2timeᚐTime)
	if err != nil {
		return nil, err
	}
	args["to"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_myNotifications_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeRead", ec.unmarshalNBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeRead"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalNInt2int)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_recipe_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_recipes_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_reminder_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_reminders_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "includeCompleted", ec.unmarshalNBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeCompleted"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_restockSuggestions_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_shoppingList_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_shoppingLists_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "kitchenId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["kitchenId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_usageLog_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "itemId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["itemId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "since", ec.unmarshalNDateTime2timeᚐTime)
	if err != nil {
		return nil, err
	}
	args["since"] = arg1
	return args, nil
}

func (ec *executionContext) field___Directive_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Field_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_enumValues_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_fields_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

// endregion ***************************** args.gotpl *****************************

// region    ************************** directives.gotpl **************************

// endregion ************************** directives.gotpl **************************

// region    **************************** field.gotpl *****************************

func (ec *executionContext) _CategoryTotal_category(ctx context.Context, field graphql.CollectedField, obj *model.CategoryTotal) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CategoryTotal_category,
		func(ctx context.Context) (any, error) {
			return obj.Category, nil
		},
		nil,
		ec.marshalNExpenseCategory2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CategoryTotal_category(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CategoryTotal",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ExpenseCategory does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CategoryTotal_totalCents(ctx context.Context, field graphql.CollectedField, obj *model.CategoryTotal) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CategoryTotal_totalCents,
		func(ctx context.Context) (any, error) {
			return obj.TotalCents, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CategoryTotal_totalCents(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CategoryTotal",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_id(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_kitchenId(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_paidBy(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_paidBy,
		func(ctx context.Context) (any, error) {
			return obj.PaidBy, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_paidBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_amountCents(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_amountCents,
		func(ctx context.Context) (any, error) {
			return obj.AmountCents, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_amountCents(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_currency(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_currency,
		func(ctx context.Context) (any, error) {
			return obj.Currency, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_currency(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_category(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_category,
		func(ctx context.Context) (any, error) {
			return obj.Category, nil
		},
		nil,
		ec.marshalNExpenseCategory2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_category(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ExpenseCategory does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_note(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_note,
		func(ctx context.Context) (any, error) {
			return obj.Note, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Expense_note(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_spentAt(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_spentAt,
		func(ctx context.Context) (any, error) {
			return obj.SpentAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_spentAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Expense_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.Expense) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Expense_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Expense_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Expense",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ExpenseSummary_kitchenId(ctx context.Context, field graphql.CollectedField, obj *model.ExpenseSummary) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ExpenseSummary_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ExpenseSummary_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ExpenseSummary",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ExpenseSummary_year(ctx context.Context, field graphql.CollectedField, obj *model.ExpenseSummary) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ExpenseSummary_year,
		func(ctx context.Context) (any, error) {
			return obj.Year, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ExpenseSummary_year(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ExpenseSummary",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ExpenseSummary_month(ctx context.Context, field graphql.CollectedField, obj *model.ExpenseSummary) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ExpenseSummary_month,
		func(ctx context.Context) (any, error) {
			return obj.Month, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ExpenseSummary_month(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ExpenseSummary",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ExpenseSummary_totalCents(ctx context.Context, field graphql.CollectedField, obj *model.ExpenseSummary) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ExpenseSummary_totalCents,
		func(ctx context.Context) (any, error) {
			return obj.TotalCents, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ExpenseSummary_totalCents(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ExpenseSummary",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ExpenseSummary_byCategory(ctx context.Context, field graphql.CollectedField, obj *model.ExpenseSummary) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ExpenseSummary_byCategory,
		func(ctx context.Context) (any, error) {
			return obj.ByCategory, nil
		},
		nil,
		ec.marshalNCategoryTotal2ᚕgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCategoryTotalᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ExpenseSummary_byCategory(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ExpenseSummary",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "category":
				return ec.fieldContext_CategoryTotal_category(ctx, field)
			case "totalCents":
				return ec.fieldContext_CategoryTotal_totalCents(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CategoryTotal", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_id(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_name(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_createdBy(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_createdBy,
		func(ctx context.Context) (any, error) {
			return obj.CreatedBy, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_createdBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_members(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_members,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Household().Members(ctx, obj)
		},
		nil,
		ec.marshalNMembership2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembershipᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_members(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Membership_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Membership_householdId(ctx, field)
			case "userId":
				return ec.fieldContext_Membership_userId(ctx, field)
			case "role":
				return ec.fieldContext_Membership_role(ctx, field)
			case "user":
				return ec.fieldContext_Membership_user(ctx, field)
			case "createdAt":
				return ec.fieldContext_Membership_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Membership", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_kitchens(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_kitchens,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Household().Kitchens(ctx, obj)
		},
		nil,
		ec.marshalNKitchen2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchenᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_kitchens(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Kitchen_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Kitchen_householdId(ctx, field)
			case "name":
				return ec.fieldContext_Kitchen_name(ctx, field)
			case "description":
				return ec.fieldContext_Kitchen_description(ctx, field)
			case "createdAt":
				return ec.fieldContext_Kitchen_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Kitchen_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Kitchen", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Household_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.Household) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Household_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Household_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Household",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_id(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_itemId(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_itemId,
		func(ctx context.Context) (any, error) {
			return obj.ItemID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_itemId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_quantity(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_quantity,
		func(ctx context.Context) (any, error) {
			return obj.Quantity, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_unit(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_unit,
		func(ctx context.Context) (any, error) {
			return obj.Unit, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_unit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_expiresAt(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_expiresAt,
		func(ctx context.Context) (any, error) {
			return obj.ExpiresAt, nil
		},
		nil,
		ec.marshalODateTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_expiresAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_status(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNBatchStatus2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐBatchStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BatchStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryBatch_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryBatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryBatch_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryBatch_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryBatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_id(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_kitchenId(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_name(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_category(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_category,
		func(ctx context.Context) (any, error) {
			return obj.Category, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_category(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_defaultUnit(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_defaultUnit,
		func(ctx context.Context) (any, error) {
			return obj.DefaultUnit, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_defaultUnit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_threshold(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_threshold,
		func(ctx context.Context) (any, error) {
			return obj.Threshold, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_threshold(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_quantity(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_quantity,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.InventoryItem().Quantity(ctx, obj)
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_batches(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_batches,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.InventoryItem().Batches(ctx, obj)
		},
		nil,
		ec.marshalNInventoryBatch2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatchᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_batches(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryBatch_id(ctx, field)
			case "itemId":
				return ec.fieldContext_InventoryBatch_itemId(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryBatch_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_InventoryBatch_unit(ctx, field)
			case "expiresAt":
				return ec.fieldContext_InventoryBatch_expiresAt(ctx, field)
			case "status":
				return ec.fieldContext_InventoryBatch_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryBatch_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryBatch_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryBatch", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _InventoryItem_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.InventoryItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_InventoryItem_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_InventoryItem_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "InventoryItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_id(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_householdId(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_householdId,
		func(ctx context.Context) (any, error) {
			return obj.HouseholdID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_householdId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_email(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_email,
		func(ctx context.Context) (any, error) {
			return obj.Email, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_email(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_role(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_role,
		func(ctx context.Context) (any, error) {
			return obj.Role, nil
		},
		nil,
		ec.marshalNRole2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRole,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_role(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Role does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_status(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNInviteStatus2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInviteStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type InviteStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_invitedBy(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_invitedBy,
		func(ctx context.Context) (any, error) {
			return obj.InvitedBy, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_invitedBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_expiresAt(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_expiresAt,
		func(ctx context.Context) (any, error) {
			return obj.ExpiresAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_expiresAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Invite_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Invite) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Invite_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Invite_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Invite",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Kitchen_id(ctx context.Context, field graphql.CollectedField, obj *domain.Kitchen) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Kitchen_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Kitchen_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Kitchen",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Kitchen_householdId(ctx context.Context, field graphql.CollectedField, obj *domain.Kitchen) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Kitchen_householdId,
		func(ctx context.Context) (any, error) {
			return obj.HouseholdID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Kitchen_householdId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Kitchen",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Kitchen_name(ctx context.Context, field graphql.CollectedField, obj *domain.Kitchen) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Kitchen_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Kitchen_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Kitchen",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Kitchen_description(ctx context.Context, field graphql.CollectedField, obj *domain.Kitchen) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Kitchen_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Kitchen_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Kitchen",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Kitchen_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Kitchen) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Kitchen_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Kitchen_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Kitchen",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Kitchen_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.Kitchen) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Kitchen_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Kitchen_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Kitchen",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_id(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_kitchenId(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_date(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_date,
		func(ctx context.Context) (any, error) {
			return obj.Date, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_date(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_meal(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_meal,
		func(ctx context.Context) (any, error) {
			return obj.Meal, nil
		},
		nil,
		ec.marshalNMealType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_meal(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type MealType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_title(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_recipeId(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_recipeId,
		func(ctx context.Context) (any, error) {
			return obj.RecipeID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_recipeId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_recipe(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_recipe,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.MealPlanEntry().Recipe(ctx, obj)
		},
		nil,
		ec.marshalORecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_recipe(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Recipe_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Recipe_kitchenId(ctx, field)
			case "title":
				return ec.fieldContext_Recipe_title(ctx, field)
			case "ingredients":
				return ec.fieldContext_Recipe_ingredients(ctx, field)
			case "instructions":
				return ec.fieldContext_Recipe_instructions(ctx, field)
			case "servings":
				return ec.fieldContext_Recipe_servings(ctx, field)
			case "generated":
				return ec.fieldContext_Recipe_generated(ctx, field)
			case "createdBy":
				return ec.fieldContext_Recipe_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_Recipe_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Recipe", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_notes(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_notes,
		func(ctx context.Context) (any, error) {
			return obj.Notes, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_notes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_createdBy(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_createdBy,
		func(ctx context.Context) (any, error) {
			return obj.CreatedBy, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_createdBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MealPlanEntry_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.MealPlanEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MealPlanEntry_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MealPlanEntry_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MealPlanEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Membership_id(ctx context.Context, field graphql.CollectedField, obj *domain.Membership) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Membership_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Membership_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Membership",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Membership_householdId(ctx context.Context, field graphql.CollectedField, obj *domain.Membership) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Membership_householdId,
		func(ctx context.Context) (any, error) {
			return obj.HouseholdID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Membership_householdId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Membership",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Membership_userId(ctx context.Context, field graphql.CollectedField, obj *domain.Membership) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Membership_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Membership_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Membership",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Membership_role(ctx context.Context, field graphql.CollectedField, obj *domain.Membership) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Membership_role,
		func(ctx context.Context) (any, error) {
			return obj.Role, nil
		},
		nil,
		ec.marshalNRole2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRole,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Membership_role(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Membership",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Role does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Membership_user(ctx context.Context, field graphql.CollectedField, obj *domain.Membership) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Membership_user,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Membership().User(ctx, obj)
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Membership_user(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Membership",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "avatarUrl":
				return ec.fieldContext_User_avatarUrl(ctx, field)
			case "createdAt":
				return ec.fieldContext_User_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Membership_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Membership) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Membership_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Membership_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Membership",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createExpense(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createExpense,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateExpense(ctx, fc.Args["input"].(expense.CreateInput))
		},
		nil,
		ec.marshalNExpense2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpense,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createExpense(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Expense_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Expense_kitchenId(ctx, field)
			case "paidBy":
				return ec.fieldContext_Expense_paidBy(ctx, field)
			case "amountCents":
				return ec.fieldContext_Expense_amountCents(ctx, field)
			case "currency":
				return ec.fieldContext_Expense_currency(ctx, field)
			case "category":
				return ec.fieldContext_Expense_category(ctx, field)
			case "note":
				return ec.fieldContext_Expense_note(ctx, field)
			case "spentAt":
				return ec.fieldContext_Expense_spentAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Expense_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Expense_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Expense", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createExpense_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateExpense(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateExpense,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateExpense(ctx, fc.Args["input"].(expense.UpdateInput))
		},
		nil,
		ec.marshalNExpense2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpense,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateExpense(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Expense_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Expense_kitchenId(ctx, field)
			case "paidBy":
				return ec.fieldContext_Expense_paidBy(ctx, field)
			case "amountCents":
				return ec.fieldContext_Expense_amountCents(ctx, field)
			case "currency":
				return ec.fieldContext_Expense_currency(ctx, field)
			case "category":
				return ec.fieldContext_Expense_category(ctx, field)
			case "note":
				return ec.fieldContext_Expense_note(ctx, field)
			case "spentAt":
				return ec.fieldContext_Expense_spentAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Expense_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Expense_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Expense", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateExpense_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteExpense(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteExpense,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteExpense(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteExpense(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteExpense_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createHousehold(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createHousehold,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateHousehold(ctx, fc.Args["input"].(household.CreateInput))
		},
		nil,
		ec.marshalNHousehold2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHousehold,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createHousehold(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Household_id(ctx, field)
			case "name":
				return ec.fieldContext_Household_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_Household_createdBy(ctx, field)
			case "members":
				return ec.fieldContext_Household_members(ctx, field)
			case "kitchens":
				return ec.fieldContext_Household_kitchens(ctx, field)
			case "createdAt":
				return ec.fieldContext_Household_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Household_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Household", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createHousehold_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateHousehold(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateHousehold,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateHousehold(ctx, fc.Args["input"].(household.UpdateInput))
		},
		nil,
		ec.marshalNHousehold2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHousehold,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateHousehold(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Household_id(ctx, field)
			case "name":
				return ec.fieldContext_Household_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_Household_createdBy(ctx, field)
			case "members":
				return ec.fieldContext_Household_members(ctx, field)
			case "kitchens":
				return ec.fieldContext_Household_kitchens(ctx, field)
			case "createdAt":
				return ec.fieldContext_Household_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Household_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Household", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateHousehold_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteHousehold(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteHousehold,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteHousehold(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteHousehold(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteHousehold_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_inviteMember(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_inviteMember,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().InviteMember(ctx, fc.Args["input"].(household.InviteInput))
		},
		nil,
		ec.marshalNInvite2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInvite,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_inviteMember(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Invite_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Invite_householdId(ctx, field)
			case "email":
				return ec.fieldContext_Invite_email(ctx, field)
			case "role":
				return ec.fieldContext_Invite_role(ctx, field)
			case "status":
				return ec.fieldContext_Invite_status(ctx, field)
			case "invitedBy":
				return ec.fieldContext_Invite_invitedBy(ctx, field)
			case "expiresAt":
				return ec.fieldContext_Invite_expiresAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Invite_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Invite", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_inviteMember_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_acceptInvite(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_acceptInvite,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AcceptInvite(ctx, fc.Args["token"].(string))
		},
		nil,
		ec.marshalNMembership2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembership,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_acceptInvite(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Membership_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Membership_householdId(ctx, field)
			case "userId":
				return ec.fieldContext_Membership_userId(ctx, field)
			case "role":
				return ec.fieldContext_Membership_role(ctx, field)
			case "user":
				return ec.fieldContext_Membership_user(ctx, field)
			case "createdAt":
				return ec.fieldContext_Membership_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Membership", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_acceptInvite_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_revokeInvite(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_revokeInvite,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RevokeInvite(ctx, fc.Args["inviteId"].(uuid.UUID), fc.Args["householdId"].(uuid.UUID))
		},
		nil,
		ec.marshalNInvite2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInvite,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_revokeInvite(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Invite_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Invite_householdId(ctx, field)
			case "email":
				return ec.fieldContext_Invite_email(ctx, field)
			case "role":
				return ec.fieldContext_Invite_role(ctx, field)
			case "status":
				return ec.fieldContext_Invite_status(ctx, field)
			case "invitedBy":
				return ec.fieldContext_Invite_invitedBy(ctx, field)
			case "expiresAt":
				return ec.fieldContext_Invite_expiresAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Invite_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Invite", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_revokeInvite_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateMemberRole(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateMemberRole,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateMemberRole(ctx, fc.Args["input"].(household.UpdateRoleInput))
		},
		nil,
		ec.marshalNMembership2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembership,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateMemberRole(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Membership_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Membership_householdId(ctx, field)
			case "userId":
				return ec.fieldContext_Membership_userId(ctx, field)
			case "role":
				return ec.fieldContext_Membership_role(ctx, field)
			case "user":
				return ec.fieldContext_Membership_user(ctx, field)
			case "createdAt":
				return ec.fieldContext_Membership_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Membership", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateMemberRole_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_removeMember(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_removeMember,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RemoveMember(ctx, fc.Args["householdId"].(uuid.UUID), fc.Args["userId"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_removeMember(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_removeMember_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createInventoryItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createInventoryItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateInventoryItem(ctx, fc.Args["input"].(inventory.CreateItemInput))
		},
		nil,
		ec.marshalNInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createInventoryItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryItem_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_InventoryItem_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_InventoryItem_name(ctx, field)
			case "category":
				return ec.fieldContext_InventoryItem_category(ctx, field)
			case "defaultUnit":
				return ec.fieldContext_InventoryItem_defaultUnit(ctx, field)
			case "threshold":
				return ec.fieldContext_InventoryItem_threshold(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryItem_quantity(ctx, field)
			case "batches":
				return ec.fieldContext_InventoryItem_batches(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createInventoryItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateInventoryItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateInventoryItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateInventoryItem(ctx, fc.Args["input"].(inventory.UpdateItemInput))
		},
		nil,
		ec.marshalNInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateInventoryItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryItem_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_InventoryItem_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_InventoryItem_name(ctx, field)
			case "category":
				return ec.fieldContext_InventoryItem_category(ctx, field)
			case "defaultUnit":
				return ec.fieldContext_InventoryItem_defaultUnit(ctx, field)
			case "threshold":
				return ec.fieldContext_InventoryItem_threshold(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryItem_quantity(ctx, field)
			case "batches":
				return ec.fieldContext_InventoryItem_batches(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateInventoryItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteInventoryItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteInventoryItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteInventoryItem(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteInventoryItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteInventoryItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_addBatch(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_addBatch,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AddBatch(ctx, fc.Args["input"].(inventory.AddBatchInput))
		},
		nil,
		ec.marshalNInventoryBatch2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatch,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_addBatch(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryBatch_id(ctx, field)
			case "itemId":
				return ec.fieldContext_InventoryBatch_itemId(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryBatch_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_InventoryBatch_unit(ctx, field)
			case "expiresAt":
				return ec.fieldContext_InventoryBatch_expiresAt(ctx, field)
			case "status":
				return ec.fieldContext_InventoryBatch_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryBatch_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryBatch_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryBatch", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_addBatch_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_discardBatch(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_discardBatch,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DiscardBatch(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNInventoryBatch2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatch,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_discardBatch(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryBatch_id(ctx, field)
			case "itemId":
				return ec.fieldContext_InventoryBatch_itemId(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryBatch_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_InventoryBatch_unit(ctx, field)
			case "expiresAt":
				return ec.fieldContext_InventoryBatch_expiresAt(ctx, field)
			case "status":
				return ec.fieldContext_InventoryBatch_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryBatch_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryBatch_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryBatch", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_discardBatch_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteBatch(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteBatch,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteBatch(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteBatch(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteBatch_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_consume(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_consume,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().Consume(ctx, fc.Args["input"].(inventory.ConsumeInput))
		},
		nil,
		ec.marshalNInventoryBatch2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatchᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_consume(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryBatch_id(ctx, field)
			case "itemId":
				return ec.fieldContext_InventoryBatch_itemId(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryBatch_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_InventoryBatch_unit(ctx, field)
			case "expiresAt":
				return ec.fieldContext_InventoryBatch_expiresAt(ctx, field)
			case "status":
				return ec.fieldContext_InventoryBatch_status(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryBatch_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryBatch_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryBatch", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_consume_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createKitchen(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createKitchen,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateKitchen(ctx, fc.Args["input"].(kitchen.CreateInput))
		},
		nil,
		ec.marshalNKitchen2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchen,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createKitchen(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Kitchen_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Kitchen_householdId(ctx, field)
			case "name":
				return ec.fieldContext_Kitchen_name(ctx, field)
			case "description":
				return ec.fieldContext_Kitchen_description(ctx, field)
			case "createdAt":
				return ec.fieldContext_Kitchen_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Kitchen_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Kitchen", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createKitchen_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateKitchen(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateKitchen,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateKitchen(ctx, fc.Args["input"].(kitchen.UpdateInput))
		},
		nil,
		ec.marshalNKitchen2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchen,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateKitchen(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Kitchen_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Kitchen_householdId(ctx, field)
			case "name":
				return ec.fieldContext_Kitchen_name(ctx, field)
			case "description":
				return ec.fieldContext_Kitchen_description(ctx, field)
			case "createdAt":
				return ec.fieldContext_Kitchen_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Kitchen_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Kitchen", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateKitchen_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteKitchen(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteKitchen,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteKitchen(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteKitchen(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteKitchen_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createMealPlanEntry(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createMealPlanEntry,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateMealPlanEntry(ctx, fc.Args["input"].(mealplan.CreateEntryInput))
		},
		nil,
		ec.marshalNMealPlanEntry2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntry,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createMealPlanEntry(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_MealPlanEntry_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_MealPlanEntry_kitchenId(ctx, field)
			case "date":
				return ec.fieldContext_MealPlanEntry_date(ctx, field)
			case "meal":
				return ec.fieldContext_MealPlanEntry_meal(ctx, field)
			case "title":
				return ec.fieldContext_MealPlanEntry_title(ctx, field)
			case "recipeId":
				return ec.fieldContext_MealPlanEntry_recipeId(ctx, field)
			case "recipe":
				return ec.fieldContext_MealPlanEntry_recipe(ctx, field)
			case "notes":
				return ec.fieldContext_MealPlanEntry_notes(ctx, field)
			case "createdBy":
				return ec.fieldContext_MealPlanEntry_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_MealPlanEntry_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_MealPlanEntry_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MealPlanEntry", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createMealPlanEntry_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateMealPlanEntry(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateMealPlanEntry,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateMealPlanEntry(ctx, fc.Args["input"].(mealplan.UpdateEntryInput))
		},
		nil,
		ec.marshalNMealPlanEntry2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntry,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateMealPlanEntry(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_MealPlanEntry_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_MealPlanEntry_kitchenId(ctx, field)
			case "date":
				return ec.fieldContext_MealPlanEntry_date(ctx, field)
			case "meal":
				return ec.fieldContext_MealPlanEntry_meal(ctx, field)
			case "title":
				return ec.fieldContext_MealPlanEntry_title(ctx, field)
			case "recipeId":
				return ec.fieldContext_MealPlanEntry_recipeId(ctx, field)
			case "recipe":
				return ec.fieldContext_MealPlanEntry_recipe(ctx, field)
			case "notes":
				return ec.fieldContext_MealPlanEntry_notes(ctx, field)
			case "createdBy":
				return ec.fieldContext_MealPlanEntry_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_MealPlanEntry_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_MealPlanEntry_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MealPlanEntry", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateMealPlanEntry_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteMealPlanEntry(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteMealPlanEntry,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteMealPlanEntry(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteMealPlanEntry(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteMealPlanEntry_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_saveRecipe(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_saveRecipe,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SaveRecipe(ctx, fc.Args["input"].(mealplan.SaveRecipeInput))
		},
		nil,
		ec.marshalNRecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_saveRecipe(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Recipe_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Recipe_kitchenId(ctx, field)
			case "title":
				return ec.fieldContext_Recipe_title(ctx, field)
			case "ingredients":
				return ec.fieldContext_Recipe_ingredients(ctx, field)
			case "instructions":
				return ec.fieldContext_Recipe_instructions(ctx, field)
			case "servings":
				return ec.fieldContext_Recipe_servings(ctx, field)
			case "generated":
				return ec.fieldContext_Recipe_generated(ctx, field)
			case "createdBy":
				return ec.fieldContext_Recipe_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_Recipe_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Recipe", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_saveRecipe_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteRecipe(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteRecipe,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteRecipe(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteRecipe(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteRecipe_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_generateRecipe(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_generateRecipe,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().GenerateRecipe(ctx, fc.Args["input"].(mealplan.GenerateRecipeInput))
		},
		nil,
		ec.marshalNRecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_generateRecipe(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Recipe_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Recipe_kitchenId(ctx, field)
			case "title":
				return ec.fieldContext_Recipe_title(ctx, field)
			case "ingredients":
				return ec.fieldContext_Recipe_ingredients(ctx, field)
			case "instructions":
				return ec.fieldContext_Recipe_instructions(ctx, field)
			case "servings":
				return ec.fieldContext_Recipe_servings(ctx, field)
			case "generated":
				return ec.fieldContext_Recipe_generated(ctx, field)
			case "createdBy":
				return ec.fieldContext_Recipe_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_Recipe_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Recipe", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_generateRecipe_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_uploadReceipt(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_uploadReceipt,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UploadReceipt(ctx, fc.Args["input"].(model.UploadReceiptInput))
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_uploadReceipt(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_uploadReceipt_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_parseReceipt(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_parseReceipt,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ParseReceipt(ctx, fc.Args["kitchenId"].(uuid.UUID), fc.Args["key"].(string))
		},
		nil,
		ec.marshalNReceiptLine2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReceiptLineᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_parseReceipt(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext_ReceiptLine_name(ctx, field)
			case "quantity":
				return ec.fieldContext_ReceiptLine_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_ReceiptLine_unit(ctx, field)
			case "priceCents":
				return ec.fieldContext_ReceiptLine_priceCents(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ReceiptLine", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_parseReceipt_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_markNotificationRead(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_markNotificationRead,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MarkNotificationRead(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_markNotificationRead(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_markNotificationRead_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_markAllNotificationsRead(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_markAllNotificationsRead,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Mutation().MarkAllNotificationsRead(ctx)
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_markAllNotificationsRead(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_subscribePush(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_subscribePush,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SubscribePush(ctx, fc.Args["input"].(notification.SubscribeInput))
		},
		nil,
		ec.marshalNPushSubscription2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐPushSubscription,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_subscribePush(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PushSubscription_id(ctx, field)
			case "userId":
				return ec.fieldContext_PushSubscription_userId(ctx, field)
			case "endpoint":
				return ec.fieldContext_PushSubscription_endpoint(ctx, field)
			case "createdAt":
				return ec.fieldContext_PushSubscription_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PushSubscription", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_subscribePush_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_unsubscribePush(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_unsubscribePush,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UnsubscribePush(ctx, fc.Args["endpoint"].(string))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_unsubscribePush(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_unsubscribePush_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createReminder(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createReminder,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateReminder(ctx, fc.Args["input"].(reminder.CreateInput))
		},
		nil,
		ec.marshalNReminder2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createReminder(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Reminder_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Reminder_kitchenId(ctx, field)
			case "type":
				return ec.fieldContext_Reminder_type(ctx, field)
			case "title":
				return ec.fieldContext_Reminder_title(ctx, field)
			case "body":
				return ec.fieldContext_Reminder_body(ctx, field)
			case "entityId":
				return ec.fieldContext_Reminder_entityId(ctx, field)
			case "scheduledAt":
				return ec.fieldContext_Reminder_scheduledAt(ctx, field)
			case "isCompleted":
				return ec.fieldContext_Reminder_isCompleted(ctx, field)
			case "isRecurring":
				return ec.fieldContext_Reminder_isRecurring(ctx, field)
			case "frequency":
				return ec.fieldContext_Reminder_frequency(ctx, field)
			case "createdAt":
				return ec.fieldContext_Reminder_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Reminder_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Reminder", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createReminder_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateReminder(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateReminder,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateReminder(ctx, fc.Args["input"].(reminder.UpdateInput))
		},
		nil,
		ec.marshalNReminder2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateReminder(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Reminder_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Reminder_kitchenId(ctx, field)
			case "type":
				return ec.fieldContext_Reminder_type(ctx, field)
			case "title":
				return ec.fieldContext_Reminder_title(ctx, field)
			case "body":
				return ec.fieldContext_Reminder_body(ctx, field)
			case "entityId":
				return ec.fieldContext_Reminder_entityId(ctx, field)
			case "scheduledAt":
				return ec.fieldContext_Reminder_scheduledAt(ctx, field)
			case "isCompleted":
				return ec.fieldContext_Reminder_isCompleted(ctx, field)
			case "isRecurring":
				return ec.fieldContext_Reminder_isRecurring(ctx, field)
			case "frequency":
				return ec.fieldContext_Reminder_frequency(ctx, field)
			case "createdAt":
				return ec.fieldContext_Reminder_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Reminder_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Reminder", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateReminder_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_completeReminder(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_completeReminder,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CompleteReminder(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNReminder2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_completeReminder(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Reminder_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Reminder_kitchenId(ctx, field)
			case "type":
				return ec.fieldContext_Reminder_type(ctx, field)
			case "title":
				return ec.fieldContext_Reminder_title(ctx, field)
			case "body":
				return ec.fieldContext_Reminder_body(ctx, field)
			case "entityId":
				return ec.fieldContext_Reminder_entityId(ctx, field)
			case "scheduledAt":
				return ec.fieldContext_Reminder_scheduledAt(ctx, field)
			case "isCompleted":
				return ec.fieldContext_Reminder_isCompleted(ctx, field)
			case "isRecurring":
				return ec.fieldContext_Reminder_isRecurring(ctx, field)
			case "frequency":
				return ec.fieldContext_Reminder_frequency(ctx, field)
			case "createdAt":
				return ec.fieldContext_Reminder_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Reminder_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Reminder", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_completeReminder_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteReminder(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteReminder,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteReminder(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteReminder(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteReminder_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateProfile(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateProfile,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateProfile(ctx, fc.Args["input"].(auth.UpdateProfileInput))
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateProfile(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "avatarUrl":
				return ec.fieldContext_User_avatarUrl(ctx, field)
			case "createdAt":
				return ec.fieldContext_User_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateProfile_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createShoppingList(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createShoppingList,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateShoppingList(ctx, fc.Args["input"].(shopping.CreateListInput))
		},
		nil,
		ec.marshalNShoppingList2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingList,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createShoppingList(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingList_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_ShoppingList_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingList_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_ShoppingList_createdBy(ctx, field)
			case "items":
				return ec.fieldContext_ShoppingList_items(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingList_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingList_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createShoppingList_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_renameShoppingList(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_renameShoppingList,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RenameShoppingList(ctx, fc.Args["id"].(uuid.UUID), fc.Args["name"].(string))
		},
		nil,
		ec.marshalNShoppingList2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingList,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_renameShoppingList(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingList_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_ShoppingList_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingList_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_ShoppingList_createdBy(ctx, field)
			case "items":
				return ec.fieldContext_ShoppingList_items(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingList_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingList_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_renameShoppingList_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteShoppingList(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteShoppingList,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteShoppingList(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteShoppingList(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteShoppingList_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_addShoppingListItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_addShoppingListItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AddShoppingListItem(ctx, fc.Args["input"].(shopping.AddLineInput))
		},
		nil,
		ec.marshalNShoppingListItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_addShoppingListItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingListItem_id(ctx, field)
			case "listId":
				return ec.fieldContext_ShoppingListItem_listId(ctx, field)
			case "itemId":
				return ec.fieldContext_ShoppingListItem_itemId(ctx, field)
			case "item":
				return ec.fieldContext_ShoppingListItem_item(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingListItem_name(ctx, field)
			case "quantity":
				return ec.fieldContext_ShoppingListItem_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_ShoppingListItem_unit(ctx, field)
			case "isChecked":
				return ec.fieldContext_ShoppingListItem_isChecked(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingListItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingListItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingListItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_addShoppingListItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateShoppingListItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateShoppingListItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateShoppingListItem(ctx, fc.Args["input"].(shopping.UpdateLineInput))
		},
		nil,
		ec.marshalNShoppingListItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateShoppingListItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingListItem_id(ctx, field)
			case "listId":
				return ec.fieldContext_ShoppingListItem_listId(ctx, field)
			case "itemId":
				return ec.fieldContext_ShoppingListItem_itemId(ctx, field)
			case "item":
				return ec.fieldContext_ShoppingListItem_item(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingListItem_name(ctx, field)
			case "quantity":
				return ec.fieldContext_ShoppingListItem_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_ShoppingListItem_unit(ctx, field)
			case "isChecked":
				return ec.fieldContext_ShoppingListItem_isChecked(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingListItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingListItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingListItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateShoppingListItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_setItemChecked(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_setItemChecked,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SetItemChecked(ctx, fc.Args["lineId"].(uuid.UUID), fc.Args["checked"].(bool))
		},
		nil,
		ec.marshalNShoppingListItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_setItemChecked(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingListItem_id(ctx, field)
			case "listId":
				return ec.fieldContext_ShoppingListItem_listId(ctx, field)
			case "itemId":
				return ec.fieldContext_ShoppingListItem_itemId(ctx, field)
			case "item":
				return ec.fieldContext_ShoppingListItem_item(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingListItem_name(ctx, field)
			case "quantity":
				return ec.fieldContext_ShoppingListItem_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_ShoppingListItem_unit(ctx, field)
			case "isChecked":
				return ec.fieldContext_ShoppingListItem_isChecked(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingListItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingListItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingListItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_setItemChecked_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteShoppingListItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteShoppingListItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteShoppingListItem(ctx, fc.Args["lineId"].(uuid.UUID))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteShoppingListItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteShoppingListItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_clearCheckedItems(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_clearCheckedItems,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ClearCheckedItems(ctx, fc.Args["listId"].(uuid.UUID))
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_clearCheckedItems(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_clearCheckedItems_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_addRestockSuggestions(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_addRestockSuggestions,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AddRestockSuggestions(ctx, fc.Args["listId"].(uuid.UUID))
		},
		nil,
		ec.marshalNShoppingListItem2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItemᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_addRestockSuggestions(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingListItem_id(ctx, field)
			case "listId":
				return ec.fieldContext_ShoppingListItem_listId(ctx, field)
			case "itemId":
				return ec.fieldContext_ShoppingListItem_itemId(ctx, field)
			case "item":
				return ec.fieldContext_ShoppingListItem_item(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingListItem_name(ctx, field)
			case "quantity":
				return ec.fieldContext_ShoppingListItem_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_ShoppingListItem_unit(ctx, field)
			case "isChecked":
				return ec.fieldContext_ShoppingListItem_isChecked(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingListItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingListItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingListItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_addRestockSuggestions_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Notification_id(ctx context.Context, field graphql.CollectedField, obj *domain.Notification) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_userId(ctx context.Context, field graphql.CollectedField, obj *domain.Notification) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_title(ctx context.Context, field graphql.CollectedField, obj *domain.Notification) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_body(ctx context.Context, field graphql.CollectedField, obj *domain.Notification) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_body,
		func(ctx context.Context) (any, error) {
			return obj.Body, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_body(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_isRead(ctx context.Context, field graphql.CollectedField, obj *domain.Notification) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_isRead,
		func(ctx context.Context) (any, error) {
			return obj.IsRead, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_isRead(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Notification_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Notification) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Notification_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Notification_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Notification",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PushSubscription_id(ctx context.Context, field graphql.CollectedField, obj *domain.PushSubscription) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PushSubscription_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PushSubscription_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PushSubscription",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PushSubscription_userId(ctx context.Context, field graphql.CollectedField, obj *domain.PushSubscription) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PushSubscription_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PushSubscription_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PushSubscription",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PushSubscription_endpoint(ctx context.Context, field graphql.CollectedField, obj *domain.PushSubscription) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PushSubscription_endpoint,
		func(ctx context.Context) (any, error) {
			return obj.Endpoint, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PushSubscription_endpoint(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PushSubscription",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PushSubscription_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.PushSubscription) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PushSubscription_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PushSubscription_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PushSubscription",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_expense(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_expense,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Expense(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNExpense2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpense,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_expense(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Expense_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Expense_kitchenId(ctx, field)
			case "paidBy":
				return ec.fieldContext_Expense_paidBy(ctx, field)
			case "amountCents":
				return ec.fieldContext_Expense_amountCents(ctx, field)
			case "currency":
				return ec.fieldContext_Expense_currency(ctx, field)
			case "category":
				return ec.fieldContext_Expense_category(ctx, field)
			case "note":
				return ec.fieldContext_Expense_note(ctx, field)
			case "spentAt":
				return ec.fieldContext_Expense_spentAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Expense_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Expense_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Expense", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_expense_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_expenses(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_expenses,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Expenses(ctx, fc.Args["kitchenId"].(uuid.UUID), fc.Args["filter"].(*model.ExpenseFilter))
		},
		nil,
		ec.marshalNExpense2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_expenses(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Expense_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Expense_kitchenId(ctx, field)
			case "paidBy":
				return ec.fieldContext_Expense_paidBy(ctx, field)
			case "amountCents":
				return ec.fieldContext_Expense_amountCents(ctx, field)
			case "currency":
				return ec.fieldContext_Expense_currency(ctx, field)
			case "category":
				return ec.fieldContext_Expense_category(ctx, field)
			case "note":
				return ec.fieldContext_Expense_note(ctx, field)
			case "spentAt":
				return ec.fieldContext_Expense_spentAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Expense_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Expense_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Expense", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_expenses_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_expenseSummary(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_expenseSummary,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ExpenseSummary(ctx, fc.Args["kitchenId"].(uuid.UUID), fc.Args["year"].(int), fc.Args["month"].(int))
		},
		nil,
		ec.marshalNExpenseSummary2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐExpenseSummary,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_expenseSummary(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kitchenId":
				return ec.fieldContext_ExpenseSummary_kitchenId(ctx, field)
			case "year":
				return ec.fieldContext_ExpenseSummary_year(ctx, field)
			case "month":
				return ec.fieldContext_ExpenseSummary_month(ctx, field)
			case "totalCents":
				return ec.fieldContext_ExpenseSummary_totalCents(ctx, field)
			case "byCategory":
				return ec.fieldContext_ExpenseSummary_byCategory(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ExpenseSummary", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_expenseSummary_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_myHouseholds(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_myHouseholds,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().MyHouseholds(ctx)
		},
		nil,
		ec.marshalNHousehold2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHouseholdᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_myHouseholds(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Household_id(ctx, field)
			case "name":
				return ec.fieldContext_Household_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_Household_createdBy(ctx, field)
			case "members":
				return ec.fieldContext_Household_members(ctx, field)
			case "kitchens":
				return ec.fieldContext_Household_kitchens(ctx, field)
			case "createdAt":
				return ec.fieldContext_Household_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Household_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Household", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_household(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_household,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Household(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNHousehold2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHousehold,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_household(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Household_id(ctx, field)
			case "name":
				return ec.fieldContext_Household_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_Household_createdBy(ctx, field)
			case "members":
				return ec.fieldContext_Household_members(ctx, field)
			case "kitchens":
				return ec.fieldContext_Household_kitchens(ctx, field)
			case "createdAt":
				return ec.fieldContext_Household_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Household_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Household", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_household_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_invites(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_invites,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Invites(ctx, fc.Args["householdId"].(uuid.UUID))
		},
		nil,
		ec.marshalNInvite2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInviteᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_invites(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Invite_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Invite_householdId(ctx, field)
			case "email":
				return ec.fieldContext_Invite_email(ctx, field)
			case "role":
				return ec.fieldContext_Invite_role(ctx, field)
			case "status":
				return ec.fieldContext_Invite_status(ctx, field)
			case "invitedBy":
				return ec.fieldContext_Invite_invitedBy(ctx, field)
			case "expiresAt":
				return ec.fieldContext_Invite_expiresAt(ctx, field)
			case "createdAt":
				return ec.fieldContext_Invite_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Invite", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_invites_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_inventoryItem(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_inventoryItem,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().InventoryItem(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_inventoryItem(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryItem_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_InventoryItem_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_InventoryItem_name(ctx, field)
			case "category":
				return ec.fieldContext_InventoryItem_category(ctx, field)
			case "defaultUnit":
				return ec.fieldContext_InventoryItem_defaultUnit(ctx, field)
			case "threshold":
				return ec.fieldContext_InventoryItem_threshold(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryItem_quantity(ctx, field)
			case "batches":
				return ec.fieldContext_InventoryItem_batches(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_inventoryItem_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_inventoryItems(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_inventoryItems,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().InventoryItems(ctx, fc.Args["kitchenId"].(uuid.UUID), fc.Args["filter"].(*model.InventoryItemFilter))
		},
		nil,
		ec.marshalNInventoryItem2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItemᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_inventoryItems(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryItem_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_InventoryItem_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_InventoryItem_name(ctx, field)
			case "category":
				return ec.fieldContext_InventoryItem_category(ctx, field)
			case "defaultUnit":
				return ec.fieldContext_InventoryItem_defaultUnit(ctx, field)
			case "threshold":
				return ec.fieldContext_InventoryItem_threshold(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryItem_quantity(ctx, field)
			case "batches":
				return ec.fieldContext_InventoryItem_batches(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryItem", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_inventoryItems_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_usageLog(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_usageLog,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().UsageLog(ctx, fc.Args["itemId"].(uuid.UUID), fc.Args["since"].(time.Time))
		},
		nil,
		ec.marshalNUsageLog2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageLogᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_usageLog(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_UsageLog_id(ctx, field)
			case "itemId":
				return ec.fieldContext_UsageLog_itemId(ctx, field)
			case "batchId":
				return ec.fieldContext_UsageLog_batchId(ctx, field)
			case "userId":
				return ec.fieldContext_UsageLog_userId(ctx, field)
			case "action":
				return ec.fieldContext_UsageLog_action(ctx, field)
			case "quantity":
				return ec.fieldContext_UsageLog_quantity(ctx, field)
			case "createdAt":
				return ec.fieldContext_UsageLog_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type UsageLog", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_usageLog_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_kitchen(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_kitchen,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Kitchen(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNKitchen2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchen,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_kitchen(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Kitchen_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Kitchen_householdId(ctx, field)
			case "name":
				return ec.fieldContext_Kitchen_name(ctx, field)
			case "description":
				return ec.fieldContext_Kitchen_description(ctx, field)
			case "createdAt":
				return ec.fieldContext_Kitchen_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Kitchen_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Kitchen", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_kitchen_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_kitchens(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_kitchens,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Kitchens(ctx, fc.Args["householdId"].(uuid.UUID))
		},
		nil,
		ec.marshalNKitchen2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchenᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_kitchens(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Kitchen_id(ctx, field)
			case "householdId":
				return ec.fieldContext_Kitchen_householdId(ctx, field)
			case "name":
				return ec.fieldContext_Kitchen_name(ctx, field)
			case "description":
				return ec.fieldContext_Kitchen_description(ctx, field)
			case "createdAt":
				return ec.fieldContext_Kitchen_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Kitchen_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Kitchen", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_kitchens_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_mealPlan(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mealPlan,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MealPlan(ctx, fc.Args["kitchenId"].(uuid.UUID), fc.Args["from"].(time.Time), fc.Args["to"].(time.Time))
		},
		nil,
		ec.marshalNMealPlanEntry2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_mealPlan(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_MealPlanEntry_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_MealPlanEntry_kitchenId(ctx, field)
			case "date":
				return ec.fieldContext_MealPlanEntry_date(ctx, field)
			case "meal":
				return ec.fieldContext_MealPlanEntry_meal(ctx, field)
			case "title":
				return ec.fieldContext_MealPlanEntry_title(ctx, field)
			case "recipeId":
				return ec.fieldContext_MealPlanEntry_recipeId(ctx, field)
			case "recipe":
				return ec.fieldContext_MealPlanEntry_recipe(ctx, field)
			case "notes":
				return ec.fieldContext_MealPlanEntry_notes(ctx, field)
			case "createdBy":
				return ec.fieldContext_MealPlanEntry_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_MealPlanEntry_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_MealPlanEntry_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MealPlanEntry", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mealPlan_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_recipe(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_recipe,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Recipe(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNRecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_recipe(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Recipe_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Recipe_kitchenId(ctx, field)
			case "title":
				return ec.fieldContext_Recipe_title(ctx, field)
			case "ingredients":
				return ec.fieldContext_Recipe_ingredients(ctx, field)
			case "instructions":
				return ec.fieldContext_Recipe_instructions(ctx, field)
			case "servings":
				return ec.fieldContext_Recipe_servings(ctx, field)
			case "generated":
				return ec.fieldContext_Recipe_generated(ctx, field)
			case "createdBy":
				return ec.fieldContext_Recipe_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_Recipe_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Recipe", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_recipe_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_recipes(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_recipes,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Recipes(ctx, fc.Args["kitchenId"].(uuid.UUID))
		},
		nil,
		ec.marshalNRecipe2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_recipes(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Recipe_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Recipe_kitchenId(ctx, field)
			case "title":
				return ec.fieldContext_Recipe_title(ctx, field)
			case "ingredients":
				return ec.fieldContext_Recipe_ingredients(ctx, field)
			case "instructions":
				return ec.fieldContext_Recipe_instructions(ctx, field)
			case "servings":
				return ec.fieldContext_Recipe_servings(ctx, field)
			case "generated":
				return ec.fieldContext_Recipe_generated(ctx, field)
			case "createdBy":
				return ec.fieldContext_Recipe_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_Recipe_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Recipe", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_recipes_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_myNotifications(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_myNotifications,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MyNotifications(ctx, fc.Args["includeRead"].(bool), fc.Args["limit"].(int))
		},
		nil,
		ec.marshalNNotification2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐNotificationᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_myNotifications(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Notification_id(ctx, field)
			case "userId":
				return ec.fieldContext_Notification_userId(ctx, field)
			case "title":
				return ec.fieldContext_Notification_title(ctx, field)
			case "body":
				return ec.fieldContext_Notification_body(ctx, field)
			case "isRead":
				return ec.fieldContext_Notification_isRead(ctx, field)
			case "createdAt":
				return ec.fieldContext_Notification_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Notification", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_myNotifications_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_unreadCount(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_unreadCount,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().UnreadCount(ctx)
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_unreadCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_reminder(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_reminder,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Reminder(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNReminder2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_reminder(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Reminder_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Reminder_kitchenId(ctx, field)
			case "type":
				return ec.fieldContext_Reminder_type(ctx, field)
			case "title":
				return ec.fieldContext_Reminder_title(ctx, field)
			case "body":
				return ec.fieldContext_Reminder_body(ctx, field)
			case "entityId":
				return ec.fieldContext_Reminder_entityId(ctx, field)
			case "scheduledAt":
				return ec.fieldContext_Reminder_scheduledAt(ctx, field)
			case "isCompleted":
				return ec.fieldContext_Reminder_isCompleted(ctx, field)
			case "isRecurring":
				return ec.fieldContext_Reminder_isRecurring(ctx, field)
			case "frequency":
				return ec.fieldContext_Reminder_frequency(ctx, field)
			case "createdAt":
				return ec.fieldContext_Reminder_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Reminder_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Reminder", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_reminder_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_reminders(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_reminders,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Reminders(ctx, fc.Args["kitchenId"].(uuid.UUID), fc.Args["includeCompleted"].(bool))
		},
		nil,
		ec.marshalNReminder2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminderᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_reminders(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Reminder_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_Reminder_kitchenId(ctx, field)
			case "type":
				return ec.fieldContext_Reminder_type(ctx, field)
			case "title":
				return ec.fieldContext_Reminder_title(ctx, field)
			case "body":
				return ec.fieldContext_Reminder_body(ctx, field)
			case "entityId":
				return ec.fieldContext_Reminder_entityId(ctx, field)
			case "scheduledAt":
				return ec.fieldContext_Reminder_scheduledAt(ctx, field)
			case "isCompleted":
				return ec.fieldContext_Reminder_isCompleted(ctx, field)
			case "isRecurring":
				return ec.fieldContext_Reminder_isRecurring(ctx, field)
			case "frequency":
				return ec.fieldContext_Reminder_frequency(ctx, field)
			case "createdAt":
				return ec.fieldContext_Reminder_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Reminder_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Reminder", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_reminders_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_me(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_me,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().Me(ctx)
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_me(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "avatarUrl":
				return ec.fieldContext_User_avatarUrl(ctx, field)
			case "createdAt":
				return ec.fieldContext_User_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_shoppingList(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_shoppingList,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ShoppingList(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNShoppingList2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingList,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_shoppingList(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingList_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_ShoppingList_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingList_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_ShoppingList_createdBy(ctx, field)
			case "items":
				return ec.fieldContext_ShoppingList_items(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingList_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingList_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_shoppingList_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_shoppingLists(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_shoppingLists,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ShoppingLists(ctx, fc.Args["kitchenId"].(uuid.UUID))
		},
		nil,
		ec.marshalNShoppingList2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_shoppingLists(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingList_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_ShoppingList_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingList_name(ctx, field)
			case "createdBy":
				return ec.fieldContext_ShoppingList_createdBy(ctx, field)
			case "items":
				return ec.fieldContext_ShoppingList_items(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingList_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingList_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingList", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_shoppingLists_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_restockSuggestions(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_restockSuggestions,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().RestockSuggestions(ctx, fc.Args["kitchenId"].(uuid.UUID))
		},
		nil,
		ec.marshalNRestockSuggestion2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐRestockSuggestionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_restockSuggestions(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "itemId":
				return ec.fieldContext_RestockSuggestion_itemId(ctx, field)
			case "name":
				return ec.fieldContext_RestockSuggestion_name(ctx, field)
			case "quantity":
				return ec.fieldContext_RestockSuggestion_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_RestockSuggestion_unit(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type RestockSuggestion", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_restockSuggestions_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___type(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___type,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___type(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query___type_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___schema(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___schema,
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___schema(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "description":
				return ec.fieldContext___Schema_description(ctx, field)
			case "types":
				return ec.fieldContext___Schema_types(ctx, field)
			case "queryType":
				return ec.fieldContext___Schema_queryType(ctx, field)
			case "mutationType":
				return ec.fieldContext___Schema_mutationType(ctx, field)
			case "subscriptionType":
				return ec.fieldContext___Schema_subscriptionType(ctx, field)
			case "directives":
				return ec.fieldContext___Schema_directives(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Schema", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ReceiptLine_name(ctx context.Context, field graphql.CollectedField, obj *domain.ReceiptLine) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ReceiptLine_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ReceiptLine_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ReceiptLine",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ReceiptLine_quantity(ctx context.Context, field graphql.CollectedField, obj *domain.ReceiptLine) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ReceiptLine_quantity,
		func(ctx context.Context) (any, error) {
			return obj.Quantity, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ReceiptLine_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ReceiptLine",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ReceiptLine_unit(ctx context.Context, field graphql.CollectedField, obj *domain.ReceiptLine) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ReceiptLine_unit,
		func(ctx context.Context) (any, error) {
			return obj.Unit, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ReceiptLine_unit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ReceiptLine",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ReceiptLine_priceCents(ctx context.Context, field graphql.CollectedField, obj *domain.ReceiptLine) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ReceiptLine_priceCents,
		func(ctx context.Context) (any, error) {
			return obj.PriceCents, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ReceiptLine_priceCents(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ReceiptLine",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_id(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_kitchenId(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_title(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_ingredients(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_ingredients,
		func(ctx context.Context) (any, error) {
			return obj.Ingredients, nil
		},
		nil,
		ec.marshalNRecipeIngredient2ᚕgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredientᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_ingredients(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext_RecipeIngredient_name(ctx, field)
			case "quantity":
				return ec.fieldContext_RecipeIngredient_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_RecipeIngredient_unit(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type RecipeIngredient", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_instructions(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_instructions,
		func(ctx context.Context) (any, error) {
			return obj.Instructions, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_instructions(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_servings(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_servings,
		func(ctx context.Context) (any, error) {
			return obj.Servings, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_servings(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_generated(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_generated,
		func(ctx context.Context) (any, error) {
			return obj.Generated, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_generated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_createdBy(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_createdBy,
		func(ctx context.Context) (any, error) {
			return obj.CreatedBy, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_createdBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Recipe_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Recipe) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Recipe_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Recipe_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Recipe",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RecipeIngredient_name(ctx context.Context, field graphql.CollectedField, obj *domain.RecipeIngredient) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RecipeIngredient_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RecipeIngredient_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RecipeIngredient",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RecipeIngredient_quantity(ctx context.Context, field graphql.CollectedField, obj *domain.RecipeIngredient) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RecipeIngredient_quantity,
		func(ctx context.Context) (any, error) {
			return obj.Quantity, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RecipeIngredient_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RecipeIngredient",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RecipeIngredient_unit(ctx context.Context, field graphql.CollectedField, obj *domain.RecipeIngredient) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RecipeIngredient_unit,
		func(ctx context.Context) (any, error) {
			return obj.Unit, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RecipeIngredient_unit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RecipeIngredient",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_id(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_kitchenId(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_type(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalNReminderType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminderType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ReminderType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_title(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_body(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_body,
		func(ctx context.Context) (any, error) {
			return obj.Body, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Reminder_body(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_entityId(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_entityId,
		func(ctx context.Context) (any, error) {
			return obj.EntityID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Reminder_entityId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_scheduledAt(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_scheduledAt,
		func(ctx context.Context) (any, error) {
			return obj.ScheduledAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_scheduledAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_isCompleted(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_isCompleted,
		func(ctx context.Context) (any, error) {
			return obj.IsCompleted, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_isCompleted(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_isRecurring(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_isRecurring,
		func(ctx context.Context) (any, error) {
			return obj.IsRecurring, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_isRecurring(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_frequency(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_frequency,
		func(ctx context.Context) (any, error) {
			return obj.Frequency, nil
		},
		nil,
		ec.marshalOFrequency2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐFrequency,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Reminder_frequency(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Frequency does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Reminder_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.Reminder) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Reminder_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Reminder_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Reminder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RestockSuggestion_itemId(ctx context.Context, field graphql.CollectedField, obj *shopping.RestockSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RestockSuggestion_itemId,
		func(ctx context.Context) (any, error) {
			return obj.ItemID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RestockSuggestion_itemId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RestockSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RestockSuggestion_name(ctx context.Context, field graphql.CollectedField, obj *shopping.RestockSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RestockSuggestion_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RestockSuggestion_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RestockSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RestockSuggestion_quantity(ctx context.Context, field graphql.CollectedField, obj *shopping.RestockSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RestockSuggestion_quantity,
		func(ctx context.Context) (any, error) {
			return obj.Quantity, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RestockSuggestion_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RestockSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _RestockSuggestion_unit(ctx context.Context, field graphql.CollectedField, obj *shopping.RestockSuggestion) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_RestockSuggestion_unit,
		func(ctx context.Context) (any, error) {
			return obj.Unit, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_RestockSuggestion_unit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "RestockSuggestion",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_id(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_kitchenId(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_kitchenId,
		func(ctx context.Context) (any, error) {
			return obj.KitchenID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_kitchenId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_name(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_createdBy(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_createdBy,
		func(ctx context.Context) (any, error) {
			return obj.CreatedBy, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_createdBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_items(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_items,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.ShoppingList().Items(ctx, obj)
		},
		nil,
		ec.marshalNShoppingListItem2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItemᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_items(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ShoppingListItem_id(ctx, field)
			case "listId":
				return ec.fieldContext_ShoppingListItem_listId(ctx, field)
			case "itemId":
				return ec.fieldContext_ShoppingListItem_itemId(ctx, field)
			case "item":
				return ec.fieldContext_ShoppingListItem_item(ctx, field)
			case "name":
				return ec.fieldContext_ShoppingListItem_name(ctx, field)
			case "quantity":
				return ec.fieldContext_ShoppingListItem_quantity(ctx, field)
			case "unit":
				return ec.fieldContext_ShoppingListItem_unit(ctx, field)
			case "isChecked":
				return ec.fieldContext_ShoppingListItem_isChecked(ctx, field)
			case "createdAt":
				return ec.fieldContext_ShoppingListItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ShoppingListItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ShoppingListItem", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingList_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingList) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingList_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingList_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingList",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_id(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_listId(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_listId,
		func(ctx context.Context) (any, error) {
			return obj.ListID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_listId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_itemId(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_itemId,
		func(ctx context.Context) (any, error) {
			return obj.ItemID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_itemId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_item(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_item,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.ShoppingListItem().Item(ctx, obj)
		},
		nil,
		ec.marshalOInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_item(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_InventoryItem_id(ctx, field)
			case "kitchenId":
				return ec.fieldContext_InventoryItem_kitchenId(ctx, field)
			case "name":
				return ec.fieldContext_InventoryItem_name(ctx, field)
			case "category":
				return ec.fieldContext_InventoryItem_category(ctx, field)
			case "defaultUnit":
				return ec.fieldContext_InventoryItem_defaultUnit(ctx, field)
			case "threshold":
				return ec.fieldContext_InventoryItem_threshold(ctx, field)
			case "quantity":
				return ec.fieldContext_InventoryItem_quantity(ctx, field)
			case "batches":
				return ec.fieldContext_InventoryItem_batches(ctx, field)
			case "createdAt":
				return ec.fieldContext_InventoryItem_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_InventoryItem_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type InventoryItem", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_name(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_quantity(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_quantity,
		func(ctx context.Context) (any, error) {
			return obj.Quantity, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_unit(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_unit,
		func(ctx context.Context) (any, error) {
			return obj.Unit, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_unit(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_isChecked(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_isChecked,
		func(ctx context.Context) (any, error) {
			return obj.IsChecked, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_isChecked(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ShoppingListItem_updatedAt(ctx context.Context, field graphql.CollectedField, obj *domain.ShoppingListItem) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ShoppingListItem_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ShoppingListItem_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ShoppingListItem",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_id(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UsageLog_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_itemId(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_itemId,
		func(ctx context.Context) (any, error) {
			return obj.ItemID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UsageLog_itemId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_batchId(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_batchId,
		func(ctx context.Context) (any, error) {
			return obj.BatchID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_UsageLog_batchId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_userId(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UsageLog_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_action(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_action,
		func(ctx context.Context) (any, error) {
			return obj.Action, nil
		},
		nil,
		ec.marshalNUsageAction2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageAction,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UsageLog_action(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UsageAction does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_quantity(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_quantity,
		func(ctx context.Context) (any, error) {
			return obj.Quantity, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UsageLog_quantity(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UsageLog_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.UsageLog) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UsageLog_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UsageLog_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UsageLog",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_id(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_email(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_email,
		func(ctx context.Context) (any, error) {
			return obj.Email, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_email(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_name(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_avatarUrl(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_avatarUrl,
		func(ctx context.Context) (any, error) {
			return obj.AvatarURL, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_User_avatarUrl(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_createdAt(ctx context.Context, field graphql.CollectedField, obj *domain.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Directive_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_isRepeatable(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_isRepeatable,
		func(ctx context.Context) (any, error) {
			return obj.IsRepeatable, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_isRepeatable(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_locations(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_locations,
		func(ctx context.Context) (any, error) {
			return obj.Locations, nil
		},
		nil,
		ec.marshalN__DirectiveLocation2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_locations(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __DirectiveLocation does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Directive_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Field_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Field_type(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_type(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_defaultValue(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_defaultValue,
		func(ctx context.Context) (any, error) {
			return obj.DefaultValue, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_defaultValue(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_types(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_types,
		func(ctx context.Context) (any, error) {
			return obj.Types(), nil
		},
		nil,
		ec.marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_types(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_queryType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_queryType,
		func(ctx context.Context) (any, error) {
			return obj.QueryType(), nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_queryType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_mutationType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_mutationType,
		func(ctx context.Context) (any, error) {
			return obj.MutationType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_mutationType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_subscriptionType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_subscriptionType,
		func(ctx context.Context) (any, error) {
			return obj.SubscriptionType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_subscriptionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_directives(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_directives,
		func(ctx context.Context) (any, error) {
			return obj.Directives(), nil
		},
		nil,
		ec.marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_directives(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Directive_name(ctx, field)
			case "description":
				return ec.fieldContext___Directive_description(ctx, field)
			case "isRepeatable":
				return ec.fieldContext___Directive_isRepeatable(ctx, field)
			case "locations":
				return ec.fieldContext___Directive_locations(ctx, field)
			case "args":
				return ec.fieldContext___Directive_args(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Directive", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_kind(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_kind,
		func(ctx context.Context) (any, error) {
			return obj.Kind(), nil
		},
		nil,
		ec.marshalN__TypeKind2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Type_kind(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __TypeKind does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_name,
		func(ctx context.Context) (any, error) {
			return obj.Name(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_specifiedByURL(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_specifiedByURL,
		func(ctx context.Context) (any, error) {
			return obj.SpecifiedByURL(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_specifiedByURL(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_fields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_fields,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.Fields(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_fields(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Field_name(ctx, field)
			case "description":
				return ec.fieldContext___Field_description(ctx, field)
			case "args":
				return ec.fieldContext___Field_args(ctx, field)
			case "type":
				return ec.fieldContext___Field_type(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___Field_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___Field_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Field", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_fields_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_interfaces(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_interfaces,
		func(ctx context.Context) (any, error) {
			return obj.Interfaces(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_interfaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_possibleTypes(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_possibleTypes,
		func(ctx context.Context) (any, error) {
			return obj.PossibleTypes(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_possibleTypes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_enumValues(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_enumValues,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.EnumValues(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_enumValues(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___EnumValue_name(ctx, field)
			case "description":
				return ec.fieldContext___EnumValue_description(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___EnumValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___EnumValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __EnumValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_enumValues_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_inputFields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_inputFields,
		func(ctx context.Context) (any, error) {
			return obj.InputFields(), nil
		},
		nil,
		ec.marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_inputFields(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_ofType(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_ofType,
		func(ctx context.Context) (any, error) {
			return obj.OfType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_ofType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_isOneOf(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_isOneOf,
		func(ctx context.Context) (any, error) {
			return obj.IsOneOf(), nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_isOneOf(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

// endregion **************************** field.gotpl *****************************

// region    **************************** input.gotpl *****************************

func (ec *executionContext) unmarshalInputAddBatchInput(ctx context.Context, obj any) (inventory.AddBatchInput, error) {
	var it inventory.AddBatchInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"itemId", "quantity", "unit", "expiresAt"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "itemId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("itemId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ItemID = data
		case "quantity":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("quantity"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Quantity = data
		case "unit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("unit"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Unit = data
		case "expiresAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("expiresAt"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.ExpiresAt = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputAddShoppingListItemInput(ctx context.Context, obj any) (shopping.AddLineInput, error) {
	var it shopping.AddLineInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"listId", "itemId", "name", "quantity", "unit"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "listId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("listId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ListID = data
		case "itemId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("itemId"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ItemID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "quantity":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("quantity"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Quantity = data
		case "unit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("unit"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Unit = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputConsumeInput(ctx context.Context, obj any) (inventory.ConsumeInput, error) {
	var it inventory.ConsumeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"itemId", "quantity", "action"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "itemId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("itemId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ItemID = data
		case "quantity":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("quantity"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Quantity = data
		case "action":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("action"))
			data, err := ec.unmarshalNUsageAction2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageAction(ctx, v)
			if err != nil {
				return it, err
			}
			it.Action = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateExpenseInput(ctx context.Context, obj any) (expense.CreateInput, error) {
	var it expense.CreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "amountCents", "currency", "category", "note", "spentAt"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "amountCents":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("amountCents"))
			data, err := ec.unmarshalNInt2int64(ctx, v)
			if err != nil {
				return it, err
			}
			it.AmountCents = data
		case "currency":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("currency"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Currency = data
		case "category":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("category"))
			data, err := ec.unmarshalNExpenseCategory2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx, v)
			if err != nil {
				return it, err
			}
			it.Category = data
		case "note":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("note"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Note = data
		case "spentAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("spentAt"))
			data, err := ec.unmarshalNDateTime2timeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.SpentAt = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateHouseholdInput(ctx context.Context, obj any) (household.CreateInput, error) {
	var it household.CreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateInventoryItemInput(ctx context.Context, obj any) (inventory.CreateItemInput, error) {
	var it inventory.CreateItemInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "name", "category", "defaultUnit", "threshold"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "category":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("category"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Category = data
		case "defaultUnit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("defaultUnit"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.DefaultUnit = data
		case "threshold":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("threshold"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Threshold = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateKitchenInput(ctx context.Context, obj any) (kitchen.CreateInput, error) {
	var it kitchen.CreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"householdId", "name", "description"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "householdId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("householdId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.HouseholdID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateMealPlanEntryInput(ctx context.Context, obj any) (mealplan.CreateEntryInput, error) {
	var it mealplan.CreateEntryInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "date", "meal", "title", "recipeId", "notes"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "date":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("date"))
			data, err := ec.unmarshalNDateTime2timeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.Date = data
		case "meal":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("meal"))
			data, err := ec.unmarshalNMealType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealType(ctx, v)
			if err != nil {
				return it, err
			}
			it.Meal = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "recipeId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recipeId"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.RecipeID = data
		case "notes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("notes"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Notes = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateReminderInput(ctx context.Context, obj any) (reminder.CreateInput, error) {
	var it reminder.CreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "type", "title", "body", "scheduledAt", "isRecurring", "frequency"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "type":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("type"))
			data, err := ec.unmarshalNReminderType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminderType(ctx, v)
			if err != nil {
				return it, err
			}
			it.Type = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "body":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("body"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Body = data
		case "scheduledAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("scheduledAt"))
			data, err := ec.unmarshalNDateTime2timeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.ScheduledAt = data
		case "isRecurring":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isRecurring"))
			data, err := ec.unmarshalNBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsRecurring = data
		case "frequency":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("frequency"))
			data, err := ec.unmarshalOFrequency2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐFrequency(ctx, v)
			if err != nil {
				return it, err
			}
			it.Frequency = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateShoppingListInput(ctx context.Context, obj any) (shopping.CreateListInput, error) {
	var it shopping.CreateListInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "name"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputExpenseFilter(ctx context.Context, obj any) (model.ExpenseFilter, error) {
	var it model.ExpenseFilter
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"category", "paidBy", "from", "to"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "category":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("category"))
			data, err := ec.unmarshalOExpenseCategory2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx, v)
			if err != nil {
				return it, err
			}
			it.Category = data
		case "paidBy":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("paidBy"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.PaidBy = data
		case "from":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("from"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.From = data
		case "to":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("to"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.To = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputGenerateRecipeInput(ctx context.Context, obj any) (mealplan.GenerateRecipeInput, error) {
	var it mealplan.GenerateRecipeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "prompt", "servings"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "prompt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("prompt"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Prompt = data
		case "servings":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("servings"))
			data, err := ec.unmarshalNInt2int(ctx, v)
			if err != nil {
				return it, err
			}
			it.Servings = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputInventoryItemFilter(ctx context.Context, obj any) (model.InventoryItemFilter, error) {
	var it model.InventoryItemFilter
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"category", "search", "lowStock"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "category":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("category"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Category = data
		case "search":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("search"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Search = data
		case "lowStock":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("lowStock"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.LowStock = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputInviteMemberInput(ctx context.Context, obj any) (household.InviteInput, error) {
	var it household.InviteInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"householdId", "email", "role"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "householdId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("householdId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.HouseholdID = data
		case "email":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("email"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Email = data
		case "role":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("role"))
			data, err := ec.unmarshalNRole2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRole(ctx, v)
			if err != nil {
				return it, err
			}
			it.Role = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputRecipeIngredientInput(ctx context.Context, obj any) (domain.RecipeIngredient, error) {
	var it domain.RecipeIngredient
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name", "quantity", "unit"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "quantity":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("quantity"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Quantity = data
		case "unit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("unit"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Unit = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSaveRecipeInput(ctx context.Context, obj any) (mealplan.SaveRecipeInput, error) {
	var it mealplan.SaveRecipeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "title", "ingredients", "instructions", "servings"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "ingredients":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("ingredients"))
			data, err := ec.unmarshalNRecipeIngredientInput2ᚕgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredientᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Ingredients = data
		case "instructions":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("instructions"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Instructions = data
		case "servings":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("servings"))
			data, err := ec.unmarshalNInt2int(ctx, v)
			if err != nil {
				return it, err
			}
			it.Servings = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSubscribePushInput(ctx context.Context, obj any) (notification.SubscribeInput, error) {
	var it notification.SubscribeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"endpoint", "p256dhKey", "authKey"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "endpoint":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("endpoint"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Endpoint = data
		case "p256dhKey":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("p256dhKey"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.P256dhKey = data
		case "authKey":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("authKey"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.AuthKey = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateExpenseInput(ctx context.Context, obj any) (expense.UpdateInput, error) {
	var it expense.UpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"expenseId", "amountCents", "currency", "category", "note", "spentAt"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "expenseId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("expenseId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ExpenseID = data
		case "amountCents":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("amountCents"))
			data, err := ec.unmarshalNInt2int64(ctx, v)
			if err != nil {
				return it, err
			}
			it.AmountCents = data
		case "currency":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("currency"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Currency = data
		case "category":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("category"))
			data, err := ec.unmarshalNExpenseCategory2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx, v)
			if err != nil {
				return it, err
			}
			it.Category = data
		case "note":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("note"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Note = data
		case "spentAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("spentAt"))
			data, err := ec.unmarshalNDateTime2timeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.SpentAt = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateHouseholdInput(ctx context.Context, obj any) (household.UpdateInput, error) {
	var it household.UpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"householdId", "name"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "householdId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("householdId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.HouseholdID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateInventoryItemInput(ctx context.Context, obj any) (inventory.UpdateItemInput, error) {
	var it inventory.UpdateItemInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"itemId", "name", "category", "defaultUnit", "threshold"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "itemId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("itemId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ItemID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "category":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("category"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Category = data
		case "defaultUnit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("defaultUnit"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.DefaultUnit = data
		case "threshold":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("threshold"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Threshold = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateKitchenInput(ctx context.Context, obj any) (kitchen.UpdateInput, error) {
	var it kitchen.UpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "name", "description"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateMealPlanEntryInput(ctx context.Context, obj any) (mealplan.UpdateEntryInput, error) {
	var it mealplan.UpdateEntryInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"entryId", "date", "meal", "title", "recipeId", "notes"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "entryId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("entryId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.EntryID = data
		case "date":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("date"))
			data, err := ec.unmarshalNDateTime2timeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.Date = data
		case "meal":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("meal"))
			data, err := ec.unmarshalNMealType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealType(ctx, v)
			if err != nil {
				return it, err
			}
			it.Meal = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "recipeId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recipeId"))
			data, err := ec.unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.RecipeID = data
		case "notes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("notes"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Notes = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateMemberRoleInput(ctx context.Context, obj any) (household.UpdateRoleInput, error) {
	var it household.UpdateRoleInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"householdId", "userId", "role"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "householdId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("householdId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.HouseholdID = data
		case "userId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("userId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.UserID = data
		case "role":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("role"))
			data, err := ec.unmarshalNRole2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRole(ctx, v)
			if err != nil {
				return it, err
			}
			it.Role = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateProfileInput(ctx context.Context, obj any) (auth.UpdateProfileInput, error) {
	var it auth.UpdateProfileInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name", "avatarUrl"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "avatarUrl":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("avatarUrl"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.AvatarURL = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateReminderInput(ctx context.Context, obj any) (reminder.UpdateInput, error) {
	var it reminder.UpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"reminderId", "title", "body", "scheduledAt", "isRecurring", "frequency"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "reminderId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("reminderId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ReminderID = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "body":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("body"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Body = data
		case "scheduledAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("scheduledAt"))
			data, err := ec.unmarshalNDateTime2timeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.ScheduledAt = data
		case "isRecurring":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isRecurring"))
			data, err := ec.unmarshalNBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsRecurring = data
		case "frequency":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("frequency"))
			data, err := ec.unmarshalOFrequency2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐFrequency(ctx, v)
			if err != nil {
				return it, err
			}
			it.Frequency = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateShoppingListItemInput(ctx context.Context, obj any) (shopping.UpdateLineInput, error) {
	var it shopping.UpdateLineInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"lineId", "name", "quantity", "unit"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "lineId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("lineId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.LineID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "quantity":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("quantity"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Quantity = data
		case "unit":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("unit"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Unit = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUploadReceiptInput(ctx context.Context, obj any) (model.UploadReceiptInput, error) {
	var it model.UploadReceiptInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"kitchenId", "data", "contentType"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "kitchenId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("kitchenId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.KitchenID = data
		case "data":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("data"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Data = data
		case "contentType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("contentType"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ContentType = data
		}
	}

	return it, nil
}

// endregion **************************** input.gotpl *****************************

// region    ************************** interface.gotpl ***************************

// endregion ************************** interface.gotpl ***************************

// region    **************************** object.gotpl ****************************

var categoryTotalImplementors = []string{"CategoryTotal"}

func (ec *executionContext) _CategoryTotal(ctx context.Context, sel ast.SelectionSet, obj *model.CategoryTotal) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, categoryTotalImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CategoryTotal")
		case "category":
			out.Values[i] = ec._CategoryTotal_category(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "totalCents":
			out.Values[i] = ec._CategoryTotal_totalCents(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var expenseImplementors = []string{"Expense"}

func (ec *executionContext) _Expense(ctx context.Context, sel ast.SelectionSet, obj *domain.Expense) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, expenseImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Expense")
		case "id":
			out.Values[i] = ec._Expense_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "kitchenId":
			out.Values[i] = ec._Expense_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "paidBy":
			out.Values[i] = ec._Expense_paidBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "amountCents":
			out.Values[i] = ec._Expense_amountCents(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "currency":
			out.Values[i] = ec._Expense_currency(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "category":
			out.Values[i] = ec._Expense_category(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "note":
			out.Values[i] = ec._Expense_note(ctx, field, obj)
		case "spentAt":
			out.Values[i] = ec._Expense_spentAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._Expense_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._Expense_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var expenseSummaryImplementors = []string{"ExpenseSummary"}

func (ec *executionContext) _ExpenseSummary(ctx context.Context, sel ast.SelectionSet, obj *model.ExpenseSummary) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, expenseSummaryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ExpenseSummary")
		case "kitchenId":
			out.Values[i] = ec._ExpenseSummary_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "year":
			out.Values[i] = ec._ExpenseSummary_year(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "month":
			out.Values[i] = ec._ExpenseSummary_month(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "totalCents":
			out.Values[i] = ec._ExpenseSummary_totalCents(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "byCategory":
			out.Values[i] = ec._ExpenseSummary_byCategory(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var householdImplementors = []string{"Household"}

func (ec *executionContext) _Household(ctx context.Context, sel ast.SelectionSet, obj *domain.Household) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, householdImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Household")
		case "id":
			out.Values[i] = ec._Household_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._Household_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdBy":
			out.Values[i] = ec._Household_createdBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "members":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Household_members(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "kitchens":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Household_kitchens(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._Household_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._Household_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var inventoryBatchImplementors = []string{"InventoryBatch"}

func (ec *executionContext) _InventoryBatch(ctx context.Context, sel ast.SelectionSet, obj *domain.InventoryBatch) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, inventoryBatchImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("InventoryBatch")
		case "id":
			out.Values[i] = ec._InventoryBatch_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "itemId":
			out.Values[i] = ec._InventoryBatch_itemId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "quantity":
			out.Values[i] = ec._InventoryBatch_quantity(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unit":
			out.Values[i] = ec._InventoryBatch_unit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "expiresAt":
			out.Values[i] = ec._InventoryBatch_expiresAt(ctx, field, obj)
		case "status":
			out.Values[i] = ec._InventoryBatch_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._InventoryBatch_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._InventoryBatch_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var inventoryItemImplementors = []string{"InventoryItem"}

func (ec *executionContext) _InventoryItem(ctx context.Context, sel ast.SelectionSet, obj *domain.InventoryItem) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, inventoryItemImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("InventoryItem")
		case "id":
			out.Values[i] = ec._InventoryItem_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "kitchenId":
			out.Values[i] = ec._InventoryItem_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._InventoryItem_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "category":
			out.Values[i] = ec._InventoryItem_category(ctx, field, obj)
		case "defaultUnit":
			out.Values[i] = ec._InventoryItem_defaultUnit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "threshold":
			out.Values[i] = ec._InventoryItem_threshold(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "quantity":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._InventoryItem_quantity(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "batches":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._InventoryItem_batches(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._InventoryItem_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._InventoryItem_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var inviteImplementors = []string{"Invite"}

func (ec *executionContext) _Invite(ctx context.Context, sel ast.SelectionSet, obj *domain.Invite) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, inviteImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Invite")
		case "id":
			out.Values[i] = ec._Invite_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "householdId":
			out.Values[i] = ec._Invite_householdId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "email":
			out.Values[i] = ec._Invite_email(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "role":
			out.Values[i] = ec._Invite_role(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "status":
			out.Values[i] = ec._Invite_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "invitedBy":
			out.Values[i] = ec._Invite_invitedBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "expiresAt":
			out.Values[i] = ec._Invite_expiresAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._Invite_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var kitchenImplementors = []string{"Kitchen"}

func (ec *executionContext) _Kitchen(ctx context.Context, sel ast.SelectionSet, obj *domain.Kitchen) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, kitchenImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Kitchen")
		case "id":
			out.Values[i] = ec._Kitchen_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "householdId":
			out.Values[i] = ec._Kitchen_householdId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec._Kitchen_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec._Kitchen_description(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Kitchen_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._Kitchen_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mealPlanEntryImplementors = []string{"MealPlanEntry"}

func (ec *executionContext) _MealPlanEntry(ctx context.Context, sel ast.SelectionSet, obj *domain.MealPlanEntry) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mealPlanEntryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MealPlanEntry")
		case "id":
			out.Values[i] = ec._MealPlanEntry_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "kitchenId":
			out.Values[i] = ec._MealPlanEntry_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "date":
			out.Values[i] = ec._MealPlanEntry_date(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "meal":
			out.Values[i] = ec._MealPlanEntry_meal(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "title":
			out.Values[i] = ec._MealPlanEntry_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "recipeId":
			out.Values[i] = ec._MealPlanEntry_recipeId(ctx, field, obj)
		case "recipe":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._MealPlanEntry_recipe(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "notes":
			out.Values[i] = ec._MealPlanEntry_notes(ctx, field, obj)
		case "createdBy":
			out.Values[i] = ec._MealPlanEntry_createdBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdAt":
			out.Values[i] = ec._MealPlanEntry_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._MealPlanEntry_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var membershipImplementors = []string{"Membership"}

func (ec *executionContext) _Membership(ctx context.Context, sel ast.SelectionSet, obj *domain.Membership) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, membershipImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Membership")
		case "id":
			out.Values[i] = ec._Membership_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "householdId":
			out.Values[i] = ec._Membership_householdId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "userId":
			out.Values[i] = ec._Membership_userId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "role":
			out.Values[i] = ec._Membership_role(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "user":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Membership_user(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._Membership_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mutationImplementors = []string{"Mutation"}

func (ec *executionContext) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Mutation",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "createExpense":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createExpense(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateExpense":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateExpense(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteExpense":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteExpense(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createHousehold":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createHousehold(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateHousehold":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateHousehold(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteHousehold":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteHousehold(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "inviteMember":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_inviteMember(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "acceptInvite":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_acceptInvite(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "revokeInvite":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_revokeInvite(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateMemberRole":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateMemberRole(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "removeMember":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_removeMember(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createInventoryItem":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createInventoryItem(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateInventoryItem":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateInventoryItem(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteInventoryItem":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteInventoryItem(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "addBatch":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_addBatch(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "discardBatch":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_discardBatch(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteBatch":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteBatch(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "consume":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_consume(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createKitchen":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createKitchen(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateKitchen":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateKitchen(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteKitchen":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteKitchen(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createMealPlanEntry":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createMealPlanEntry(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateMealPlanEntry":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateMealPlanEntry(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteMealPlanEntry":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteMealPlanEntry(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "saveRecipe":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_saveRecipe(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteRecipe":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteRecipe(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "generateRecipe":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_generateRecipe(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "uploadReceipt":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_uploadReceipt(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "parseReceipt":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_parseReceipt(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "markNotificationRead":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_markNotificationRead(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "markAllNotificationsRead":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_markAllNotificationsRead(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "subscribePush":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_subscribePush(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unsubscribePush":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_unsubscribePush(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createReminder":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createReminder(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateReminder":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateReminder(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "completeReminder":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_completeReminder(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteReminder":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteReminder(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateProfile":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateProfile(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createShoppingList":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createShoppingList(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "renameShoppingList":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_renameShoppingList(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteShoppingList":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteShoppingList(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "addShoppingListItem":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_addShoppingListItem(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateShoppingListItem":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateShoppingListItem(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "setItemChecked":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_setItemChecked(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteShoppingListItem":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteShoppingListItem(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "clearCheckedItems":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_clearCheckedItems(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "addRestockSuggestions":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_addRestockSuggestions(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var notificationImplementors = []string{"Notification"}

func (ec *executionContext) _Notification(ctx context.Context, sel ast.SelectionSet, obj *domain.Notification) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, notificationImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Notification")
		case "id":
			out.Values[i] = ec._Notification_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "userId":
			out.Values[i] = ec._Notification_userId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._Notification_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "body":
			out.Values[i] = ec._Notification_body(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isRead":
			out.Values[i] = ec._Notification_isRead(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._Notification_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pushSubscriptionImplementors = []string{"PushSubscription"}

func (ec *executionContext) _PushSubscription(ctx context.Context, sel ast.SelectionSet, obj *domain.PushSubscription) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pushSubscriptionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PushSubscription")
		case "id":
			out.Values[i] = ec._PushSubscription_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "userId":
			out.Values[i] = ec._PushSubscription_userId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "endpoint":
			out.Values[i] = ec._PushSubscription_endpoint(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._PushSubscription_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var queryImplementors = []string{"Query"}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Query",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "expense":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_expense(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "expenses":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_expenses(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "expenseSummary":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_expenseSummary(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "myHouseholds":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_myHouseholds(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "household":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_household(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "invites":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_invites(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "inventoryItem":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_inventoryItem(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "inventoryItems":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_inventoryItems(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "usageLog":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_usageLog(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "kitchen":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_kitchen(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "kitchens":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_kitchens(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mealPlan":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mealPlan(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "recipe":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_recipe(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "recipes":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_recipes(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "myNotifications":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_myNotifications(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "unreadCount":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_unreadCount(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "reminder":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_reminder(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "reminders":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_reminders(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "me":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_me(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "shoppingList":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_shoppingList(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "shoppingLists":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_shoppingLists(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "restockSuggestions":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_restockSuggestions(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___schema(ctx, field)
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var receiptLineImplementors = []string{"ReceiptLine"}

func (ec *executionContext) _ReceiptLine(ctx context.Context, sel ast.SelectionSet, obj *domain.ReceiptLine) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, receiptLineImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ReceiptLine")
		case "name":
			out.Values[i] = ec._ReceiptLine_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "quantity":
			out.Values[i] = ec._ReceiptLine_quantity(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unit":
			out.Values[i] = ec._ReceiptLine_unit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "priceCents":
			out.Values[i] = ec._ReceiptLine_priceCents(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var recipeImplementors = []string{"Recipe"}

func (ec *executionContext) _Recipe(ctx context.Context, sel ast.SelectionSet, obj *domain.Recipe) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, recipeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Recipe")
		case "id":
			out.Values[i] = ec._Recipe_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "kitchenId":
			out.Values[i] = ec._Recipe_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._Recipe_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "ingredients":
			out.Values[i] = ec._Recipe_ingredients(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "instructions":
			out.Values[i] = ec._Recipe_instructions(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "servings":
			out.Values[i] = ec._Recipe_servings(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "generated":
			out.Values[i] = ec._Recipe_generated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdBy":
			out.Values[i] = ec._Recipe_createdBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._Recipe_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var recipeIngredientImplementors = []string{"RecipeIngredient"}

func (ec *executionContext) _RecipeIngredient(ctx context.Context, sel ast.SelectionSet, obj *domain.RecipeIngredient) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, recipeIngredientImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("RecipeIngredient")
		case "name":
			out.Values[i] = ec._RecipeIngredient_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "quantity":
			out.Values[i] = ec._RecipeIngredient_quantity(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unit":
			out.Values[i] = ec._RecipeIngredient_unit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var reminderImplementors = []string{"Reminder"}

func (ec *executionContext) _Reminder(ctx context.Context, sel ast.SelectionSet, obj *domain.Reminder) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, reminderImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Reminder")
		case "id":
			out.Values[i] = ec._Reminder_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "kitchenId":
			out.Values[i] = ec._Reminder_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec._Reminder_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "title":
			out.Values[i] = ec._Reminder_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "body":
			out.Values[i] = ec._Reminder_body(ctx, field, obj)
		case "entityId":
			out.Values[i] = ec._Reminder_entityId(ctx, field, obj)
		case "scheduledAt":
			out.Values[i] = ec._Reminder_scheduledAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isCompleted":
			out.Values[i] = ec._Reminder_isCompleted(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isRecurring":
			out.Values[i] = ec._Reminder_isRecurring(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "frequency":
			out.Values[i] = ec._Reminder_frequency(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Reminder_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._Reminder_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var restockSuggestionImplementors = []string{"RestockSuggestion"}

func (ec *executionContext) _RestockSuggestion(ctx context.Context, sel ast.SelectionSet, obj *shopping.RestockSuggestion) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, restockSuggestionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("RestockSuggestion")
		case "itemId":
			out.Values[i] = ec._RestockSuggestion_itemId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec._RestockSuggestion_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "quantity":
			out.Values[i] = ec._RestockSuggestion_quantity(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unit":
			out.Values[i] = ec._RestockSuggestion_unit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var shoppingListImplementors = []string{"ShoppingList"}

func (ec *executionContext) _ShoppingList(ctx context.Context, sel ast.SelectionSet, obj *domain.ShoppingList) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, shoppingListImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ShoppingList")
		case "id":
			out.Values[i] = ec._ShoppingList_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "kitchenId":
			out.Values[i] = ec._ShoppingList_kitchenId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._ShoppingList_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdBy":
			out.Values[i] = ec._ShoppingList_createdBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "items":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._ShoppingList_items(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._ShoppingList_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._ShoppingList_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var shoppingListItemImplementors = []string{"ShoppingListItem"}

func (ec *executionContext) _ShoppingListItem(ctx context.Context, sel ast.SelectionSet, obj *domain.ShoppingListItem) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, shoppingListItemImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ShoppingListItem")
		case "id":
			out.Values[i] = ec._ShoppingListItem_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "listId":
			out.Values[i] = ec._ShoppingListItem_listId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "itemId":
			out.Values[i] = ec._ShoppingListItem_itemId(ctx, field, obj)
		case "item":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._ShoppingListItem_item(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "name":
			out.Values[i] = ec._ShoppingListItem_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "quantity":
			out.Values[i] = ec._ShoppingListItem_quantity(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "unit":
			out.Values[i] = ec._ShoppingListItem_unit(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isChecked":
			out.Values[i] = ec._ShoppingListItem_isChecked(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdAt":
			out.Values[i] = ec._ShoppingListItem_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._ShoppingListItem_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var usageLogImplementors = []string{"UsageLog"}

func (ec *executionContext) _UsageLog(ctx context.Context, sel ast.SelectionSet, obj *domain.UsageLog) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, usageLogImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("UsageLog")
		case "id":
			out.Values[i] = ec._UsageLog_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "itemId":
			out.Values[i] = ec._UsageLog_itemId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "batchId":
			out.Values[i] = ec._UsageLog_batchId(ctx, field, obj)
		case "userId":
			out.Values[i] = ec._UsageLog_userId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "action":
			out.Values[i] = ec._UsageLog_action(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "quantity":
			out.Values[i] = ec._UsageLog_quantity(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._UsageLog_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var userImplementors = []string{"User"}

func (ec *executionContext) _User(ctx context.Context, sel ast.SelectionSet, obj *domain.User) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, userImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("User")
		case "id":
			out.Values[i] = ec._User_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "email":
			out.Values[i] = ec._User_email(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec._User_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "avatarUrl":
			out.Values[i] = ec._User_avatarUrl(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._User_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __DirectiveImplementors = []string{"__Directive"}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __DirectiveImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Directive")
		case "name":
			out.Values[i] = ec.___Directive_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Directive_description(ctx, field, obj)
		case "isRepeatable":
			out.Values[i] = ec.___Directive_isRepeatable(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "locations":
			out.Values[i] = ec.___Directive_locations(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "args":
			out.Values[i] = ec.___Directive_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __EnumValueImplementors = []string{"__EnumValue"}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __EnumValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__EnumValue")
		case "name":
			out.Values[i] = ec.___EnumValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___EnumValue_description(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___EnumValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___EnumValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __FieldImplementors = []string{"__Field"}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __FieldImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Field")
		case "name":
			out.Values[i] = ec.___Field_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Field_description(ctx, field, obj)
		case "args":
			out.Values[i] = ec.___Field_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec.___Field_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isDeprecated":
			out.Values[i] = ec.___Field_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___Field_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __InputValueImplementors = []string{"__InputValue"}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __InputValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__InputValue")
		case "name":
			out.Values[i] = ec.___InputValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___InputValue_description(ctx, field, obj)
		case "type":
			out.Values[i] = ec.___InputValue_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "defaultValue":
			out.Values[i] = ec.___InputValue_defaultValue(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___InputValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___InputValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __SchemaImplementors = []string{"__Schema"}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __SchemaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Schema")
		case "description":
			out.Values[i] = ec.___Schema_description(ctx, field, obj)
		case "types":
			out.Values[i] = ec.___Schema_types(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "queryType":
			out.Values[i] = ec.___Schema_queryType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mutationType":
			out.Values[i] = ec.___Schema_mutationType(ctx, field, obj)
		case "subscriptionType":
			out.Values[i] = ec.___Schema_subscriptionType(ctx, field, obj)
		case "directives":
			out.Values[i] = ec.___Schema_directives(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __TypeImplementors = []string{"__Type"}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __TypeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Type")
		case "kind":
			out.Values[i] = ec.___Type_kind(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec.___Type_name(ctx, field, obj)
		case "description":
			out.Values[i] = ec.___Type_description(ctx, field, obj)
		case "specifiedByURL":
			out.Values[i] = ec.___Type_specifiedByURL(ctx, field, obj)
		case "fields":
			out.Values[i] = ec.___Type_fields(ctx, field, obj)
		case "interfaces":
			out.Values[i] = ec.___Type_interfaces(ctx, field, obj)
		case "possibleTypes":
			out.Values[i] = ec.___Type_possibleTypes(ctx, field, obj)
		case "enumValues":
			out.Values[i] = ec.___Type_enumValues(ctx, field, obj)
		case "inputFields":
			out.Values[i] = ec.___Type_inputFields(ctx, field, obj)
		case "ofType":
			out.Values[i] = ec.___Type_ofType(ctx, field, obj)
		case "isOneOf":
			out.Values[i] = ec.___Type_isOneOf(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

// endregion **************************** object.gotpl ****************************

// region    ***************************** type.gotpl *****************************

func (ec *executionContext) unmarshalNAddBatchInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐAddBatchInput(ctx context.Context, v any) (inventory.AddBatchInput, error) {
	res, err := ec.unmarshalInputAddBatchInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNAddShoppingListItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐAddLineInput(ctx context.Context, v any) (shopping.AddLineInput, error) {
	res, err := ec.unmarshalInputAddShoppingListItemInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNBatchStatus2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐBatchStatus(ctx context.Context, v any) (domain.BatchStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.BatchStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBatchStatus2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐBatchStatus(ctx context.Context, sel ast.SelectionSet, v domain.BatchStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalBoolean(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNCategoryTotal2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCategoryTotal(ctx context.Context, sel ast.SelectionSet, v model.CategoryTotal) graphql.Marshaler {
	return ec._CategoryTotal(ctx, sel, &v)
}

func (ec *executionContext) marshalNCategoryTotal2ᚕgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCategoryTotalᚄ(ctx context.Context, sel ast.SelectionSet, v []model.CategoryTotal) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCategoryTotal2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCategoryTotal(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNConsumeInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐConsumeInput(ctx context.Context, v any) (inventory.ConsumeInput, error) {
	res, err := ec.unmarshalInputConsumeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateExpenseInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋexpenseᚐCreateInput(ctx context.Context, v any) (expense.CreateInput, error) {
	res, err := ec.unmarshalInputCreateExpenseInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateHouseholdInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐCreateInput(ctx context.Context, v any) (household.CreateInput, error) {
	res, err := ec.unmarshalInputCreateHouseholdInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateInventoryItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐCreateItemInput(ctx context.Context, v any) (inventory.CreateItemInput, error) {
	res, err := ec.unmarshalInputCreateInventoryItemInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateKitchenInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋkitchenᚐCreateInput(ctx context.Context, v any) (kitchen.CreateInput, error) {
	res, err := ec.unmarshalInputCreateKitchenInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateMealPlanEntryInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐCreateEntryInput(ctx context.Context, v any) (mealplan.CreateEntryInput, error) {
	res, err := ec.unmarshalInputCreateMealPlanEntryInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateReminderInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋreminderᚐCreateInput(ctx context.Context, v any) (reminder.CreateInput, error) {
	res, err := ec.unmarshalInputCreateReminderInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateShoppingListInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐCreateListInput(ctx context.Context, v any) (shopping.CreateListInput, error) {
	res, err := ec.unmarshalInputCreateShoppingListInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNDateTime2timeᚐTime(ctx context.Context, v any) (time.Time, error) {
	res, err := model.UnmarshalDateTime(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNDateTime2timeᚐTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	_ = sel
	res := model.MarshalDateTime(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNExpense2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpense(ctx context.Context, sel ast.SelectionSet, v domain.Expense) graphql.Marshaler {
	return ec._Expense(ctx, sel, &v)
}

func (ec *executionContext) marshalNExpense2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Expense) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNExpense2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpense(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNExpense2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpense(ctx context.Context, sel ast.SelectionSet, v *domain.Expense) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Expense(ctx, sel, v)
}

func (ec *executionContext) unmarshalNExpenseCategory2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx context.Context, v any) (domain.ExpenseCategory, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ExpenseCategory(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNExpenseCategory2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx context.Context, sel ast.SelectionSet, v domain.ExpenseCategory) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNExpenseSummary2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐExpenseSummary(ctx context.Context, sel ast.SelectionSet, v model.ExpenseSummary) graphql.Marshaler {
	return ec._ExpenseSummary(ctx, sel, &v)
}

func (ec *executionContext) marshalNExpenseSummary2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐExpenseSummary(ctx context.Context, sel ast.SelectionSet, v *model.ExpenseSummary) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ExpenseSummary(ctx, sel, v)
}

func (ec *executionContext) unmarshalNFloat2float64(ctx context.Context, v any) (float64, error) {
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNFloat2float64(ctx context.Context, sel ast.SelectionSet, v float64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalFloatContext(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalNGenerateRecipeInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐGenerateRecipeInput(ctx context.Context, v any) (mealplan.GenerateRecipeInput, error) {
	res, err := ec.unmarshalInputGenerateRecipeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNHousehold2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHousehold(ctx context.Context, sel ast.SelectionSet, v domain.Household) graphql.Marshaler {
	return ec._Household(ctx, sel, &v)
}

func (ec *executionContext) marshalNHousehold2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHouseholdᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Household) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNHousehold2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHousehold(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNHousehold2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐHousehold(ctx context.Context, sel ast.SelectionSet, v *domain.Household) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Household(ctx, sel, v)
}

func (ec *executionContext) unmarshalNInt2int(ctx context.Context, v any) (int, error) {
	res, err := graphql.UnmarshalInt(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int(ctx context.Context, sel ast.SelectionSet, v int) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNInt2int64(ctx context.Context, v any) (int64, error) {
	res, err := graphql.UnmarshalInt64(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int64(ctx context.Context, sel ast.SelectionSet, v int64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt64(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNInventoryBatch2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatch(ctx context.Context, sel ast.SelectionSet, v domain.InventoryBatch) graphql.Marshaler {
	return ec._InventoryBatch(ctx, sel, &v)
}

func (ec *executionContext) marshalNInventoryBatch2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatchᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.InventoryBatch) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNInventoryBatch2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatch(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNInventoryBatch2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryBatch(ctx context.Context, sel ast.SelectionSet, v *domain.InventoryBatch) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._InventoryBatch(ctx, sel, v)
}

func (ec *executionContext) marshalNInventoryItem2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem(ctx context.Context, sel ast.SelectionSet, v domain.InventoryItem) graphql.Marshaler {
	return ec._InventoryItem(ctx, sel, &v)
}

func (ec *executionContext) marshalNInventoryItem2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItemᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.InventoryItem) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem(ctx context.Context, sel ast.SelectionSet, v *domain.InventoryItem) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._InventoryItem(ctx, sel, v)
}

func (ec *executionContext) marshalNInvite2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInvite(ctx context.Context, sel ast.SelectionSet, v domain.Invite) graphql.Marshaler {
	return ec._Invite(ctx, sel, &v)
}

func (ec *executionContext) marshalNInvite2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInviteᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Invite) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNInvite2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInvite(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNInvite2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInvite(ctx context.Context, sel ast.SelectionSet, v *domain.Invite) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Invite(ctx, sel, v)
}

func (ec *executionContext) unmarshalNInviteMemberInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐInviteInput(ctx context.Context, v any) (household.InviteInput, error) {
	res, err := ec.unmarshalInputInviteMemberInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNInviteStatus2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInviteStatus(ctx context.Context, v any) (domain.InviteStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.InviteStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInviteStatus2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInviteStatus(ctx context.Context, sel ast.SelectionSet, v domain.InviteStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNKitchen2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchen(ctx context.Context, sel ast.SelectionSet, v domain.Kitchen) graphql.Marshaler {
	return ec._Kitchen(ctx, sel, &v)
}

func (ec *executionContext) marshalNKitchen2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchenᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Kitchen) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNKitchen2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchen(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNKitchen2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐKitchen(ctx context.Context, sel ast.SelectionSet, v *domain.Kitchen) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Kitchen(ctx, sel, v)
}

func (ec *executionContext) marshalNMealPlanEntry2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntry(ctx context.Context, sel ast.SelectionSet, v domain.MealPlanEntry) graphql.Marshaler {
	return ec._MealPlanEntry(ctx, sel, &v)
}

func (ec *executionContext) marshalNMealPlanEntry2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntryᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.MealPlanEntry) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMealPlanEntry2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntry(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMealPlanEntry2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealPlanEntry(ctx context.Context, sel ast.SelectionSet, v *domain.MealPlanEntry) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._MealPlanEntry(ctx, sel, v)
}

func (ec *executionContext) unmarshalNMealType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealType(ctx context.Context, v any) (domain.MealType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.MealType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNMealType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMealType(ctx context.Context, sel ast.SelectionSet, v domain.MealType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNMembership2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembership(ctx context.Context, sel ast.SelectionSet, v domain.Membership) graphql.Marshaler {
	return ec._Membership(ctx, sel, &v)
}

func (ec *executionContext) marshalNMembership2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembershipᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Membership) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMembership2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembership(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMembership2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐMembership(ctx context.Context, sel ast.SelectionSet, v *domain.Membership) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Membership(ctx, sel, v)
}

func (ec *executionContext) marshalNNotification2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐNotificationᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Notification) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNNotification2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐNotification(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNNotification2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐNotification(ctx context.Context, sel ast.SelectionSet, v *domain.Notification) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Notification(ctx, sel, v)
}

func (ec *executionContext) marshalNPushSubscription2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐPushSubscription(ctx context.Context, sel ast.SelectionSet, v domain.PushSubscription) graphql.Marshaler {
	return ec._PushSubscription(ctx, sel, &v)
}

func (ec *executionContext) marshalNPushSubscription2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐPushSubscription(ctx context.Context, sel ast.SelectionSet, v *domain.PushSubscription) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PushSubscription(ctx, sel, v)
}

func (ec *executionContext) marshalNReceiptLine2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReceiptLineᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.ReceiptLine) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNReceiptLine2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReceiptLine(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNReceiptLine2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReceiptLine(ctx context.Context, sel ast.SelectionSet, v *domain.ReceiptLine) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ReceiptLine(ctx, sel, v)
}

func (ec *executionContext) marshalNRecipe2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe(ctx context.Context, sel ast.SelectionSet, v domain.Recipe) graphql.Marshaler {
	return ec._Recipe(ctx, sel, &v)
}

func (ec *executionContext) marshalNRecipe2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Recipe) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNRecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNRecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe(ctx context.Context, sel ast.SelectionSet, v *domain.Recipe) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Recipe(ctx, sel, v)
}

func (ec *executionContext) marshalNRecipeIngredient2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredient(ctx context.Context, sel ast.SelectionSet, v domain.RecipeIngredient) graphql.Marshaler {
	return ec._RecipeIngredient(ctx, sel, &v)
}

func (ec *executionContext) marshalNRecipeIngredient2ᚕgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredientᚄ(ctx context.Context, sel ast.SelectionSet, v []domain.RecipeIngredient) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNRecipeIngredient2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredient(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNRecipeIngredientInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredient(ctx context.Context, v any) (domain.RecipeIngredient, error) {
	res, err := ec.unmarshalInputRecipeIngredientInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNRecipeIngredientInput2ᚕgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredientᚄ(ctx context.Context, v any) ([]domain.RecipeIngredient, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]domain.RecipeIngredient, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNRecipeIngredientInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipeIngredient(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNReminder2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder(ctx context.Context, sel ast.SelectionSet, v domain.Reminder) graphql.Marshaler {
	return ec._Reminder(ctx, sel, &v)
}

func (ec *executionContext) marshalNReminder2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminderᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.Reminder) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNReminder2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNReminder2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminder(ctx context.Context, sel ast.SelectionSet, v *domain.Reminder) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Reminder(ctx, sel, v)
}

func (ec *executionContext) unmarshalNReminderType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminderType(ctx context.Context, v any) (domain.ReminderType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ReminderType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNReminderType2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐReminderType(ctx context.Context, sel ast.SelectionSet, v domain.ReminderType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNRestockSuggestion2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐRestockSuggestionᚄ(ctx context.Context, sel ast.SelectionSet, v []*shopping.RestockSuggestion) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNRestockSuggestion2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐRestockSuggestion(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNRestockSuggestion2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐRestockSuggestion(ctx context.Context, sel ast.SelectionSet, v *shopping.RestockSuggestion) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._RestockSuggestion(ctx, sel, v)
}

func (ec *executionContext) unmarshalNRole2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRole(ctx context.Context, v any) (domain.Role, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.Role(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNRole2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRole(ctx context.Context, sel ast.SelectionSet, v domain.Role) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNSaveRecipeInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐSaveRecipeInput(ctx context.Context, v any) (mealplan.SaveRecipeInput, error) {
	res, err := ec.unmarshalInputSaveRecipeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNShoppingList2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingList(ctx context.Context, sel ast.SelectionSet, v domain.ShoppingList) graphql.Marshaler {
	return ec._ShoppingList(ctx, sel, &v)
}

func (ec *executionContext) marshalNShoppingList2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.ShoppingList) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNShoppingList2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingList(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNShoppingList2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingList(ctx context.Context, sel ast.SelectionSet, v *domain.ShoppingList) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ShoppingList(ctx, sel, v)
}

func (ec *executionContext) marshalNShoppingListItem2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItem(ctx context.Context, sel ast.SelectionSet, v domain.ShoppingListItem) graphql.Marshaler {
	return ec._ShoppingListItem(ctx, sel, &v)
}

func (ec *executionContext) marshalNShoppingListItem2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItemᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.ShoppingListItem) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNShoppingListItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItem(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNShoppingListItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐShoppingListItem(ctx context.Context, sel ast.SelectionSet, v *domain.ShoppingListItem) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ShoppingListItem(ctx, sel, v)
}

func (ec *executionContext) unmarshalNString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNSubscribePushInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋnotificationᚐSubscribeInput(ctx context.Context, v any) (notification.SubscribeInput, error) {
	res, err := ec.unmarshalInputSubscribePushInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, v any) (uuid.UUID, error) {
	res, err := model.UnmarshalUUID(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, sel ast.SelectionSet, v uuid.UUID) graphql.Marshaler {
	_ = sel
	res := model.MarshalUUID(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNUpdateExpenseInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋexpenseᚐUpdateInput(ctx context.Context, v any) (expense.UpdateInput, error) {
	res, err := ec.unmarshalInputUpdateExpenseInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateHouseholdInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐUpdateInput(ctx context.Context, v any) (household.UpdateInput, error) {
	res, err := ec.unmarshalInputUpdateHouseholdInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateInventoryItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋinventoryᚐUpdateItemInput(ctx context.Context, v any) (inventory.UpdateItemInput, error) {
	res, err := ec.unmarshalInputUpdateInventoryItemInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateKitchenInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋkitchenᚐUpdateInput(ctx context.Context, v any) (kitchen.UpdateInput, error) {
	res, err := ec.unmarshalInputUpdateKitchenInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateMealPlanEntryInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋmealplanᚐUpdateEntryInput(ctx context.Context, v any) (mealplan.UpdateEntryInput, error) {
	res, err := ec.unmarshalInputUpdateMealPlanEntryInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateMemberRoleInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋhouseholdᚐUpdateRoleInput(ctx context.Context, v any) (household.UpdateRoleInput, error) {
	res, err := ec.unmarshalInputUpdateMemberRoleInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateProfileInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋauthᚐUpdateProfileInput(ctx context.Context, v any) (auth.UpdateProfileInput, error) {
	res, err := ec.unmarshalInputUpdateProfileInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateReminderInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋreminderᚐUpdateInput(ctx context.Context, v any) (reminder.UpdateInput, error) {
	res, err := ec.unmarshalInputUpdateReminderInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateShoppingListItemInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋserviceᚋshoppingᚐUpdateLineInput(ctx context.Context, v any) (shopping.UpdateLineInput, error) {
	res, err := ec.unmarshalInputUpdateShoppingListItemInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUploadReceiptInput2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUploadReceiptInput(ctx context.Context, v any) (model.UploadReceiptInput, error) {
	res, err := ec.unmarshalInputUploadReceiptInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUsageAction2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageAction(ctx context.Context, v any) (domain.UsageAction, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.UsageAction(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUsageAction2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageAction(ctx context.Context, sel ast.SelectionSet, v domain.UsageAction) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNUsageLog2ᚕᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageLogᚄ(ctx context.Context, sel ast.SelectionSet, v []*domain.UsageLog) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNUsageLog2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageLog(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNUsageLog2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUsageLog(ctx context.Context, sel ast.SelectionSet, v *domain.UsageLog) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._UsageLog(ctx, sel, v)
}

func (ec *executionContext) marshalNUser2githubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUser(ctx context.Context, sel ast.SelectionSet, v domain.User) graphql.Marshaler {
	return ec._User(ctx, sel, &v)
}

func (ec *executionContext) marshalNUser2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐUser(ctx context.Context, sel ast.SelectionSet, v *domain.User) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._User(ctx, sel, v)
}

func (ec *executionContext) marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx context.Context, sel ast.SelectionSet, v introspection.Directive) graphql.Marshaler {
	return ec.___Directive(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Directive) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalN__DirectiveLocation2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__DirectiveLocation2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN__DirectiveLocation2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__DirectiveLocation2string(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx context.Context, sel ast.SelectionSet, v introspection.EnumValue) graphql.Marshaler {
	return ec.___EnumValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx context.Context, sel ast.SelectionSet, v introspection.Field) graphql.Marshaler {
	return ec.___Field(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx context.Context, sel ast.SelectionSet, v introspection.InputValue) graphql.Marshaler {
	return ec.___InputValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v introspection.Type) graphql.Marshaler {
	return ec.___Type(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

func (ec *executionContext) unmarshalN__TypeKind2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__TypeKind2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalOBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(v)
	return res
}

func (ec *executionContext) unmarshalOBoolean2ᚖbool(ctx context.Context, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalBoolean(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2ᚖbool(ctx context.Context, sel ast.SelectionSet, v *bool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(*v)
	return res
}

func (ec *executionContext) unmarshalODateTime2ᚖtimeᚐTime(ctx context.Context, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalDateTime(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalODateTime2ᚖtimeᚐTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalDateTime(*v)
	return res
}

func (ec *executionContext) unmarshalOExpenseCategory2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx context.Context, v any) (*domain.ExpenseCategory, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.ExpenseCategory(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOExpenseCategory2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐExpenseCategory(ctx context.Context, sel ast.SelectionSet, v *domain.ExpenseCategory) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) unmarshalOExpenseFilter2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐExpenseFilter(ctx context.Context, v any) (*model.ExpenseFilter, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputExpenseFilter(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalOFrequency2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐFrequency(ctx context.Context, v any) (*domain.Frequency, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := domain.Frequency(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOFrequency2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐFrequency(ctx context.Context, sel ast.SelectionSet, v *domain.Frequency) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) marshalOInventoryItem2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐInventoryItem(ctx context.Context, sel ast.SelectionSet, v *domain.InventoryItem) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._InventoryItem(ctx, sel, v)
}

func (ec *executionContext) unmarshalOInventoryItemFilter2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋtransportᚋgraphqlᚋmodelᚐInventoryItemFilter(ctx context.Context, v any) (*model.InventoryItemFilter, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputInventoryItemFilter(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalORecipe2ᚖgithubᚗcomᚋhearthhqᚋhearthᚑbackendᚋinternalᚋdomainᚐRecipe(ctx context.Context, sel ast.SelectionSet, v *domain.Recipe) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Recipe(ctx, sel, v)
}

func (ec *executionContext) unmarshalOString2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalString(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(*v)
	return res
}

func (ec *executionContext) unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, v any) (*uuid.UUID, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalUUID(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, sel ast.SelectionSet, v *uuid.UUID) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalUUID(*v)
	return res
}

func (ec *executionContext) marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.EnumValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Field) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema(ctx context.Context, sel ast.SelectionSet, v *introspection.Schema) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Schema(ctx, sel, v)
}

func (ec *executionContext) marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

// endregion ***************************** type.gotpl *****************************
