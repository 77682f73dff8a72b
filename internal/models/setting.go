package models

import "time"

// Setting keys for the persisted configuration scalars.
const (
	SettingExchangeRate       = "exchange_rate"
	SettingAccumulatedSavings = "accumulated_savings"
)

// Setting is a persisted key/value configuration scalar. Decimal values
// are stored as strings.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
