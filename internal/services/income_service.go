package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
)

// incomeService handles income-record business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome creates a new income source for the current month.
func (s *incomeService) CreateIncome(name string, amount decimal.Decimal, foreign bool) (*models.IncomeItem, error) {
	if amount.Sign() < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income amount must not be negative")
	}

	item := &models.IncomeItem{
		Name:    name,
		Amount:  amount,
		Foreign: foreign,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// ListIncome returns all income sources ordered by date added.
func (s *incomeService) ListIncome() ([]models.IncomeItem, error) {
	var items []models.IncomeItem
	if err := s.db.Order("created_at").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// UpdateIncome updates an income source. Empty name and nil fields are
// left unchanged.
func (s *incomeService) UpdateIncome(id string, name string, amount *decimal.Decimal, foreign *bool) (*models.IncomeItem, error) {
	item, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if amount != nil {
		if amount.Sign() < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income amount must not be negative")
		}
		updates["amount"] = *amount
	}
	if foreign != nil {
		updates["is_foreign"] = *foreign
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return item, nil
}

// DeleteIncome deletes a single income source.
func (s *incomeService) DeleteIncome(id string) error {
	item, err := s.getByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *incomeService) getByID(id string) (*models.IncomeItem, error) {
	var item models.IncomeItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}
