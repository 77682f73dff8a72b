package testutil_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"moneyplanner/internal/errors"
	"moneyplanner/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"categories", "income_items", "month_histories", "expense_items", "settings"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	category := testutil.CreateTestCategoryWithName(t, db, "Food")
	if category.ID == "" {
		t.Fatal("category should have a non-empty ID")
	}

	income := testutil.CreateTestIncome(t, db, decimal.RequireFromString("6000"))
	if !income.Amount.Equal(decimal.RequireFromString("6000")) {
		t.Errorf("expected amount 6000, got %s", income.Amount)
	}
	if income.Foreign {
		t.Error("expected base-currency income")
	}

	item := testutil.CreateTestExpense(t, db, "Food", decimal.RequireFromString("100"))
	if item.CategoryName != "Food" {
		t.Errorf("expected category Food, got %s", item.CategoryName)
	}
	if item.Archived() {
		t.Error("fixture expense should be active")
	}

	goal := testutil.CreateTestSavingsGoal(t, db, decimal.RequireFromString("400"))
	if !goal.IsSavingsGoal() {
		t.Error("expected a savings goal")
	}
}

func TestAssertAppError(t *testing.T) {
	// Sanity check against a real sentinel.
	testutil.AssertAppError(t, errors.ErrExpenseNotFound, "EXPENSE_NOT_FOUND")
}
