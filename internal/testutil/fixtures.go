package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"moneyplanner/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: name,
		Icon: "circle",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestIncome creates an income item with the given base-currency amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount decimal.Decimal) *models.IncomeItem {
	t.Helper()
	return CreateTestIncomeForeign(t, db, amount, false)
}

// CreateTestIncomeForeign creates an income item in the given currency.
func CreateTestIncomeForeign(t *testing.T, db *gorm.DB, amount decimal.Decimal, foreign bool) *models.IncomeItem {
	t.Helper()

	item := &models.IncomeItem{
		Name:    fmt.Sprintf("Test Income %d", nextID()),
		Amount:  amount,
		Foreign: foreign,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return item
}

// CreateTestExpense creates an active base-currency expense in the given
// category with essential priority.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryName string, amount decimal.Decimal) *models.ExpenseItem {
	t.Helper()

	return CreateTestExpenseFull(t, db, models.ExpenseItem{
		Name:         fmt.Sprintf("Test Expense %d", nextID()),
		Amount:       amount,
		CategoryName: categoryName,
		Priority:     models.PriorityEssential,
	})
}

// CreateTestExpenseFull creates an expense from a fully specified template,
// filling in a unique name and priority when absent.
func CreateTestExpenseFull(t *testing.T, db *gorm.DB, item models.ExpenseItem) *models.ExpenseItem {
	t.Helper()

	if item.Name == "" {
		item.Name = fmt.Sprintf("Test Expense %d", nextID())
	}
	if item.Priority == "" {
		item.Priority = models.PriorityEssential
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return &item
}

// CreateTestSavingsGoal creates an active savings-goal row.
func CreateTestSavingsGoal(t *testing.T, db *gorm.DB, amount decimal.Decimal) *models.ExpenseItem {
	t.Helper()

	goal := &models.ExpenseItem{
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		Amount:       amount,
		CategoryName: models.SavingsCategoryName,
		Priority:     models.PriorityEssential,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test savings goal: %v", err)
	}
	return goal
}
