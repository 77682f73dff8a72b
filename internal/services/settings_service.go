package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
	"moneyplanner/internal/money"
)

// Defaults for the persisted configuration scalars.
var (
	defaultExchangeRate       = decimal.RequireFromString("41.5")
	defaultAccumulatedSavings = decimal.Zero
)

// settingsService reads and writes the persisted configuration scalars.
// It is the only mutation path for the accumulated savings balance besides
// month closing, which goes through AddToSavings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// ExchangeRate returns the manually entered exchange rate.
func (s *settingsService) ExchangeRate() (decimal.Decimal, error) {
	return s.get(s.db, models.SettingExchangeRate, defaultExchangeRate)
}

// SetExchangeRate stores a new exchange rate. Non-positive rates are
// rejected: the inverse conversion divides by the rate.
func (s *settingsService) SetExchangeRate(rate decimal.Decimal) error {
	if rate.Sign() <= 0 {
		return apperrors.ErrInvalidRate
	}
	return s.put(s.db, models.SettingExchangeRate, rate)
}

// AccumulatedSavings returns the running savings balance in base currency.
func (s *settingsService) AccumulatedSavings() (decimal.Decimal, error) {
	return s.get(s.db, models.SettingAccumulatedSavings, defaultAccumulatedSavings)
}

// Deposit adds a manual amount to the savings balance, converting foreign
// amounts at the current rate. Returns the new balance.
func (s *settingsService) Deposit(amount decimal.Decimal, foreign bool) (decimal.Decimal, error) {
	return s.adjust(amount, foreign, false)
}

// Withdraw removes a manual amount from the savings balance. The balance
// is allowed to go negative; nothing clamps it.
func (s *settingsService) Withdraw(amount decimal.Decimal, foreign bool) (decimal.Decimal, error) {
	return s.adjust(amount, foreign, true)
}

func (s *settingsService) adjust(amount decimal.Decimal, foreign, negate bool) (decimal.Decimal, error) {
	if amount.Sign() < 0 {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	var balance decimal.Decimal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rate, err := s.get(tx, models.SettingExchangeRate, defaultExchangeRate)
		if err != nil {
			return err
		}
		delta := money.ToBase(amount, foreign, rate)
		if negate {
			delta = delta.Neg()
		}
		balance, err = s.AddToSavings(tx, delta)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// AddToSavings applies a base-currency delta to the savings balance within
// the given transaction and returns the new balance.
func (s *settingsService) AddToSavings(tx *gorm.DB, delta decimal.Decimal) (decimal.Decimal, error) {
	current, err := s.get(tx, models.SettingAccumulatedSavings, defaultAccumulatedSavings)
	if err != nil {
		return decimal.Zero, err
	}
	balance := current.Add(delta)
	if err := s.put(tx, models.SettingAccumulatedSavings, balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *settingsService) get(tx *gorm.DB, key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	var setting models.Setting
	if err := tx.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback, nil
		}
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	value, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return value, nil
}

func (s *settingsService) put(tx *gorm.DB, key string, value decimal.Decimal) error {
	setting := &models.Setting{Key: key, Value: value.String()}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
