package models

import (
	"time"

	"moneyplanner/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the common columns shared by all planner tables.
// CreatedAt is also the user-visible "date added" of a record.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUIDv7 primary key to new records.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every model known to the store, in migration order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&IncomeItem{},
		&MonthHistory{},
		&ExpenseItem{},
		&Setting{},
	}
}
