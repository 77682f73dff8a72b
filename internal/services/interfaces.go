package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moneyplanner/internal/models"
)

// IncomeServicer defines the contract for income-record business logic.
type IncomeServicer interface {
	CreateIncome(name string, amount decimal.Decimal, foreign bool) (*models.IncomeItem, error)
	ListIncome() ([]models.IncomeItem, error)
	UpdateIncome(id string, name string, amount *decimal.Decimal, foreign *bool) (*models.IncomeItem, error)
	DeleteIncome(id string) error
}

// ExpenseServicer defines the contract for expense and savings-goal
// business logic, including the presentation sort/filter pipeline.
type ExpenseServicer interface {
	CreateExpense(name string, amount decimal.Decimal, categoryName string, foreign bool, priority models.Priority) (*models.ExpenseItem, error)
	CreateSavingsGoal(name string, amount decimal.Decimal, foreign bool) (*models.ExpenseItem, error)
	ListActiveExpenses(status StatusFilter, option SortOption) ([]models.ExpenseItem, error)
	ListSavingsGoals() ([]models.ExpenseItem, error)
	GetExpenseByID(id string) (*models.ExpenseItem, error)
	UpdateExpense(id string, name string, amount *decimal.Decimal, categoryName string, foreign *bool, priority *models.Priority, paid *bool) (*models.ExpenseItem, error)
	DeleteExpense(id string) error
}

// CategoryServicer defines the contract for category business logic,
// including the one-time default seeding.
type CategoryServicer interface {
	CreateCategory(name, icon string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	UpdateCategory(id string, name, icon string, position *int) (*models.Category, error)
	DeleteCategory(id string) error
	EnsureDefaults() error
	RestoreDefaults() error
}

// SettingsServicer defines the contract for the persisted configuration
// scalars: the exchange rate and the accumulated savings balance.
type SettingsServicer interface {
	ExchangeRate() (decimal.Decimal, error)
	SetExchangeRate(rate decimal.Decimal) error
	AccumulatedSavings() (decimal.Decimal, error)
	Deposit(amount decimal.Decimal, foreign bool) (decimal.Decimal, error)
	Withdraw(amount decimal.Decimal, foreign bool) (decimal.Decimal, error)

	// AddToSavings applies a base-currency delta inside an existing store
	// transaction. Month closing uses it so the balance update commits or
	// rolls back with the snapshot.
	AddToSavings(tx *gorm.DB, delta decimal.Decimal) (decimal.Decimal, error)
}

// ReportServicer exposes the live aggregation views over the active
// working set. Every call recomputes from store state.
type ReportServicer interface {
	Summary() (*Summary, error)
	CategoryBreakdown(priorities []models.Priority) ([]CategoryTotal, error)
	PriorityBreakdown() ([]PriorityTotal, error)
}

// YearGroup bundles the archived months of one calendar year.
type YearGroup struct {
	Year    int                   `json:"year"`
	Records []models.MonthHistory `json:"records"`
}

// MonthReport is the per-month drill-down of an archived record, shaped
// like the live breakdown views.
type MonthReport struct {
	History    *models.MonthHistory `json:"history"`
	Categories []CategoryTotal      `json:"categories"`
	Priorities []PriorityTotal      `json:"priorities"`
}

// HistoryServicer defines the contract for the month-closing transition
// and the read-only archive.
type HistoryServicer interface {
	FinishMonth(year int, month time.Month) (*models.MonthHistory, error)
	ListByYear() ([]YearGroup, error)
	MonthReport(id string, priorities []models.Priority, status StatusFilter) (*MonthReport, error)
	ClearHistory() error
}
