package domain

// Role represents a member's privilege level within a household.
// Roles form a total order: VIEWER < MEMBER < ADMIN < OWNER.
type Role string

const (
	RoleViewer Role = "VIEWER"
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleMember, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// rank maps a role to its position in the privilege order.
// Invalid roles rank below VIEWER.
func (r Role) rank() int {
	switch r {
	case RoleViewer:
		return 0
	case RoleMember:
		return 1
	case RoleAdmin:
		return 2
	case RoleOwner:
		return 3
	}
	return -1
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// BatchStatus represents the lifecycle state of an inventory batch.
type BatchStatus string

const (
	BatchStatusActive  BatchStatus = "ACTIVE"
	BatchStatusUsed    BatchStatus = "USED"
	BatchStatusExpired BatchStatus = "EXPIRED"
	BatchStatusWasted  BatchStatus = "WASTED"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusActive, BatchStatusUsed, BatchStatusExpired, BatchStatusWasted:
		return true
	}
	return false
}

// UsageAction represents the kind of event recorded in the usage log.
type UsageAction string

const (
	UsageActionUsed     UsageAction = "USED"
	UsageActionConsumed UsageAction = "CONSUMED"
	UsageActionCooked   UsageAction = "COOKED"
	UsageActionWasted   UsageAction = "WASTED"
	UsageActionExpired  UsageAction = "EXPIRED"
)

func (a UsageAction) String() string { return string(a) }

func (a UsageAction) IsValid() bool {
	switch a {
	case UsageActionUsed, UsageActionConsumed, UsageActionCooked,
		UsageActionWasted, UsageActionExpired:
		return true
	}
	return false
}

// CountsAsConsumption reports whether the action contributes to the
// mean-daily-consumption rate used for restock prediction.
func (a UsageAction) CountsAsConsumption() bool {
	switch a {
	case UsageActionUsed, UsageActionConsumed, UsageActionCooked:
		return true
	}
	return false
}

// ReminderType classifies what a reminder is about.
type ReminderType string

const (
	ReminderTypeLowStock ReminderType = "LOW_STOCK"
	ReminderTypeExpiry   ReminderType = "EXPIRY"
	ReminderTypeShopping ReminderType = "SHOPPING"
	ReminderTypeMealPrep ReminderType = "MEAL_PREP"
	ReminderTypeCustom   ReminderType = "CUSTOM"
)

func (t ReminderType) String() string { return string(t) }

func (t ReminderType) IsValid() bool {
	switch t {
	case ReminderTypeLowStock, ReminderTypeExpiry, ReminderTypeShopping,
		ReminderTypeMealPrep, ReminderTypeCustom:
		return true
	}
	return false
}

// Frequency represents how often a recurring reminder repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// MealType identifies the slot of a meal plan entry.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeSnack     MealType = "SNACK"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// ExpenseCategory classifies a kitchen expense.
type ExpenseCategory string

const (
	ExpenseCategoryGroceries ExpenseCategory = "GROCERIES"
	ExpenseCategoryEquipment ExpenseCategory = "EQUIPMENT"
	ExpenseCategoryDiningOut ExpenseCategory = "DINING_OUT"
	ExpenseCategoryOther     ExpenseCategory = "OTHER"
)

func (c ExpenseCategory) String() string { return string(c) }

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryGroceries, ExpenseCategoryEquipment,
		ExpenseCategoryDiningOut, ExpenseCategoryOther:
		return true
	}
	return false
}

// InviteStatus represents the lifecycle state of a household invitation.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusRevoked  InviteStatus = "REVOKED"
	InviteStatusExpired  InviteStatus = "EXPIRED"
)

func (s InviteStatus) String() string { return string(s) }

func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRevoked, InviteStatusExpired:
		return true
	}
	return false
}
