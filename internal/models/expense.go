package models

import "github.com/shopspring/decimal"

// Priority ranks how necessary an expense is.
type Priority string

const (
	PriorityEssential Priority = "essential"
	PriorityNeededNow Priority = "needed_now"
	PriorityWant      Priority = "want"
)

// Priorities lists all priorities in display order.
var Priorities = []Priority{PriorityEssential, PriorityNeededNow, PriorityWant}

// Valid reports whether p is a known priority value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityEssential, PriorityNeededNow, PriorityWant:
		return true
	}
	return false
}

// SavingsCategoryName is the reserved category name that marks an expense
// row as a savings top-up rather than a regular expense.
const SavingsCategoryName = "savings"

// ExpenseItem is a planned expense or savings top-up. A row is "active"
// while MonthHistoryID is nil; finishing a month points it at the created
// MonthHistory, which removes it from the working set permanently.
type ExpenseItem struct {
	Base
	Name         string          `gorm:"not null" json:"name"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	CategoryName string          `gorm:"not null;index" json:"category_name"`
	Foreign      bool            `gorm:"column:is_foreign;not null;default:false" json:"foreign"`
	Priority     Priority        `gorm:"not null;default:essential" json:"priority"`
	Paid         bool            `gorm:"not null;default:false" json:"paid"`

	MonthHistoryID *string       `gorm:"type:uuid;index" json:"month_history_id,omitempty"`
	MonthHistory   *MonthHistory `gorm:"foreignKey:MonthHistoryID" json:"-"`
}

// IsSavingsGoal reports whether the row is a savings top-up.
func (e *ExpenseItem) IsSavingsGoal() bool {
	return e.CategoryName == SavingsCategoryName
}

// Archived reports whether the row belongs to a closed month.
func (e *ExpenseItem) Archived() bool {
	return e.MonthHistoryID != nil
}
