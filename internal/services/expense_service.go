package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
)

// expenseService handles expense and savings-goal business logic.
type expenseService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewExpenseService creates a new ExpenseServicer. The settings service
// supplies the exchange rate for amount-ordered views.
func NewExpenseService(db *gorm.DB, settings SettingsServicer) ExpenseServicer {
	return &expenseService{db: db, settings: settings}
}

// CreateExpense creates a new active expense. The reserved savings
// category is rejected here; use CreateSavingsGoal for top-ups.
func (s *expenseService) CreateExpense(name string, amount decimal.Decimal, categoryName string, foreign bool, priority models.Priority) (*models.ExpenseItem, error) {
	if categoryName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if categoryName == models.SavingsCategoryName {
		return nil, apperrors.ErrReservedName
	}
	if priority == "" {
		priority = models.PriorityEssential
	}
	if !priority.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown priority")
	}

	item := &models.ExpenseItem{
		Name:         name,
		Amount:       amount,
		CategoryName: categoryName,
		Foreign:      foreign,
		Priority:     priority,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// CreateSavingsGoal creates an active savings top-up. Goals are expense
// rows under the reserved category name; they archive with the month but
// count toward savings rather than spending.
func (s *expenseService) CreateSavingsGoal(name string, amount decimal.Decimal, foreign bool) (*models.ExpenseItem, error) {
	item := &models.ExpenseItem{
		Name:         name,
		Amount:       amount,
		CategoryName: models.SavingsCategoryName,
		Foreign:      foreign,
		Priority:     models.PriorityEssential,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// ListActiveExpenses returns the presentation view of the active working
// set: savings goals excluded, status filter and sort order applied. The
// stored rows are never reordered; the view is a derived copy.
func (s *expenseService) ListActiveExpenses(status StatusFilter, option SortOption) ([]models.ExpenseItem, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown status filter")
	}
	if option != "" && !option.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown sort option")
	}

	rate, err := s.settings.ExchangeRate()
	if err != nil {
		return nil, err
	}

	var items []models.ExpenseItem
	if err := s.db.
		Where("month_history_id IS NULL AND category_name <> ?", models.SavingsCategoryName).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return SortExpenses(FilterByStatus(items, status), option, rate), nil
}

// ListSavingsGoals returns the active savings top-ups by date added.
func (s *expenseService) ListSavingsGoals() ([]models.ExpenseItem, error) {
	var items []models.ExpenseItem
	if err := s.db.
		Where("month_history_id IS NULL AND category_name = ?", models.SavingsCategoryName).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// GetExpenseByID returns an expense row, active or archived.
func (s *expenseService) GetExpenseByID(id string) (*models.ExpenseItem, error) {
	var item models.ExpenseItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// UpdateExpense updates an active expense or savings goal. Archived rows
// are read-only once a month is finished.
func (s *expenseService) UpdateExpense(id string, name string, amount *decimal.Decimal, categoryName string, foreign *bool, priority *models.Priority, paid *bool) (*models.ExpenseItem, error) {
	item, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}
	if item.Archived() {
		return nil, apperrors.ErrExpenseArchived
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if categoryName != "" {
		// A regular expense cannot be turned into a savings goal in place,
		// and a goal keeps its reserved category.
		if (categoryName == models.SavingsCategoryName) != item.IsSavingsGoal() {
			return nil, apperrors.ErrReservedName
		}
		updates["category_name"] = categoryName
	}
	if foreign != nil {
		updates["is_foreign"] = *foreign
	}
	if priority != nil {
		if !priority.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown priority")
		}
		updates["priority"] = *priority
	}
	if paid != nil {
		updates["paid"] = *paid
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return item, nil
}

// DeleteExpense deletes an active expense or savings goal. Archived rows
// can only disappear by clearing their month history.
func (s *expenseService) DeleteExpense(id string) error {
	item, err := s.GetExpenseByID(id)
	if err != nil {
		return err
	}
	if item.Archived() {
		return apperrors.ErrExpenseArchived
	}
	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
