package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthHistory is the immutable snapshot produced by finishing a month.
// The four totals are computed once at closing time with the exchange rate
// in effect then; they are never recomputed.
type MonthHistory struct {
	Base
	Date          time.Time       `gorm:"not null;index" json:"date"`
	TotalIncome   decimal.Decimal `gorm:"type:numeric;not null" json:"total_income"`
	TotalExpenses decimal.Decimal `gorm:"type:numeric;not null" json:"total_expenses"`
	TotalSaved    decimal.Decimal `gorm:"type:numeric;not null" json:"total_saved"`
	Remaining     decimal.Decimal `gorm:"type:numeric;not null" json:"remaining"`

	// Expenses are the archived rows of the closed month. Deleting a
	// history deletes them with it.
	Expenses []ExpenseItem `gorm:"foreignKey:MonthHistoryID" json:"expenses,omitempty"`
}
