package models

import "github.com/shopspring/decimal"

// IncomeItem is a single income source for the current month. Income never
// archives: finishing a month deletes every income row outright.
type IncomeItem struct {
	Base
	Name    string          `gorm:"not null" json:"name"`
	Amount  decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Foreign bool            `gorm:"column:is_foreign;not null;default:false" json:"foreign"`
}
