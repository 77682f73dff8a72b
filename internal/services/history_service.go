package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
)

// historyService owns the month-closing transition and the read-only
// archive views.
type historyService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewHistoryService creates a new HistoryServicer.
func NewHistoryService(db *gorm.DB, settings SettingsServicer) HistoryServicer {
	return &historyService{db: db, settings: settings}
}

// FinishMonth closes the current period: it snapshots the totals into a
// new MonthHistory dated the first of the given month, reassigns every
// active expense and savings goal to it, adds the period's savings to the
// accumulated balance, and wipes the income list. All of it happens in one
// store transaction; a failure at any step leaves the period open and
// untouched. Closing an empty period is fine and yields all-zero totals.
func (s *historyService) FinishMonth(year int, month time.Month) (*models.MonthHistory, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year is required")
	}

	rate, err := s.settings.ExchangeRate()
	if err != nil {
		return nil, err
	}

	var record *models.MonthHistory
	err = s.db.Transaction(func(tx *gorm.DB) error {
		incomes, expenses, goals, err := loadActiveSets(tx)
		if err != nil {
			return err
		}

		summary := Summarize(incomes, expenses, goals, rate)

		// The archive entry is dated by the user's month selection, not by
		// the wall clock, so a month can be closed late or early.
		record = &models.MonthHistory{
			Date:          time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			TotalIncome:   summary.TotalIncome,
			TotalExpenses: summary.TotalExpenses,
			TotalSaved:    summary.TotalSavings,
			Remaining:     summary.Remaining,
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(&models.ExpenseItem{}).
			Where("month_history_id IS NULL").
			Update("month_history_id", record.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if _, err := s.settings.AddToSavings(tx, summary.TotalSavings); err != nil {
			return err
		}

		// Income does not carry forward or archive.
		if err := tx.Where("1 = 1").Delete(&models.IncomeItem{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListByYear groups the archive by calendar year, newest year first and
// newest month first within a year.
func (s *historyService) ListByYear() ([]YearGroup, error) {
	var records []models.MonthHistory
	if err := s.db.Order("date DESC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var groups []YearGroup
	index := make(map[int]int)
	for _, record := range records {
		year := record.Date.Year()
		i, ok := index[year]
		if !ok {
			i = len(groups)
			index[year] = i
			groups = append(groups, YearGroup{Year: year})
		}
		groups[i].Records = append(groups[i].Records, record)
	}
	return groups, nil
}

// MonthReport re-runs the live grouping and filter rules over an archived
// month's expenses. Only the breakdowns are recomputed; the snapshot
// totals on the record stay as frozen at closing time.
func (s *historyService) MonthReport(id string, priorities []models.Priority, status StatusFilter) (*MonthReport, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown status filter")
	}

	var record models.MonthHistory
	if err := s.db.
		Preload("Expenses", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at") }).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHistoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rate, err := s.settings.ExchangeRate()
	if err != nil {
		return nil, err
	}

	filtered := FilterByPriorities(FilterByStatus(record.Expenses, status), priorities)
	return &MonthReport{
		History:    &record,
		Categories: GroupByCategory(filtered, rate, nil),
		Priorities: GroupByPriority(filtered, rate),
	}, nil
}

// ClearHistory deletes the whole archive. Archived expenses go with their
// month records; the cascade runs inside the same transaction so both
// engines behave identically.
func (s *historyService) ClearHistory() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("month_history_id IS NOT NULL").Delete(&models.ExpenseItem{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("1 = 1").Delete(&models.MonthHistory{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
