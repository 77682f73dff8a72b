package services

import (
	"gorm.io/gorm"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
)

// reportService computes the live aggregation views. Totals are derived
// from store state on every call; nothing here is cached or stored.
type reportService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, settings SettingsServicer) ReportServicer {
	return &reportService{db: db, settings: settings}
}

// Summary returns the current month's headline totals.
func (s *reportService) Summary() (*Summary, error) {
	rate, err := s.settings.ExchangeRate()
	if err != nil {
		return nil, err
	}

	incomes, expenses, goals, err := loadActiveSets(s.db)
	if err != nil {
		return nil, err
	}

	summary := Summarize(incomes, expenses, goals, rate)
	return &summary, nil
}

// CategoryBreakdown returns per-category totals over the active expenses,
// restricted to the given priority subset (nil means all priorities).
func (s *reportService) CategoryBreakdown(priorities []models.Priority) ([]CategoryTotal, error) {
	rate, err := s.settings.ExchangeRate()
	if err != nil {
		return nil, err
	}

	_, expenses, _, err := loadActiveSets(s.db)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(expenses, rate, priorities), nil
}

// PriorityBreakdown returns per-priority totals over the active expenses.
func (s *reportService) PriorityBreakdown() ([]PriorityTotal, error) {
	rate, err := s.settings.ExchangeRate()
	if err != nil {
		return nil, err
	}

	_, expenses, _, err := loadActiveSets(s.db)
	if err != nil {
		return nil, err
	}
	return GroupByPriority(expenses, rate), nil
}

// loadActiveSets loads the three active collections the aggregation engine
// works on: income sources, regular expenses, and savings goals. Month
// closing reuses it inside its transaction so the snapshot and the
// reassignment see the same rows.
func loadActiveSets(tx *gorm.DB) ([]models.IncomeItem, []models.ExpenseItem, []models.ExpenseItem, error) {
	var incomes []models.IncomeItem
	if err := tx.Order("created_at").Find(&incomes).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.ExpenseItem
	if err := tx.
		Where("month_history_id IS NULL AND category_name <> ?", models.SavingsCategoryName).
		Order("created_at").
		Find(&expenses).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.ExpenseItem
	if err := tx.
		Where("month_history_id IS NULL AND category_name = ?", models.SavingsCategoryName).
		Order("created_at").
		Find(&goals).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return incomes, expenses, goals, nil
}
