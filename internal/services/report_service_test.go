package services

import (
	"testing"

	"moneyplanner/internal/models"
	"moneyplanner/internal/testutil"
)

func TestReportSummary(t *testing.T) {
	t.Run("live_totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settings := NewSettingsService(db)
		svc := NewReportService(db, settings)

		testutil.CreateTestIncome(t, db, d("6000"))
		testutil.CreateTestExpense(t, db, "Housing", d("2000"))
		testutil.CreateTestExpense(t, db, "Food", d("500"))
		testutil.CreateTestSavingsGoal(t, db, d("400"))

		summary, err := svc.Summary()
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, d("6000"), summary.TotalIncome, "income")
		testutil.AssertDecimalEqual(t, d("2500"), summary.TotalExpenses, "expenses")
		testutil.AssertDecimalEqual(t, d("400"), summary.TotalSavings, "savings")
		testutil.AssertDecimalEqual(t, d("3100"), summary.Remaining, "remaining")
	})

	t.Run("recomputes_after_rate_change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settings := NewSettingsService(db)
		svc := NewReportService(db, settings)

		testutil.CreateTestIncomeForeign(t, db, d("100"), true)

		before, err := svc.Summary()
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, d("4150"), before.TotalIncome, "income at default rate")

		testutil.AssertNoError(t, settings.SetExchangeRate(d("40")))

		after, err := svc.Summary()
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, d("4000"), after.TotalIncome, "income at new rate")
	})

	t.Run("archived_rows_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settings := NewSettingsService(db)
		svc := NewReportService(db, settings)

		item := testutil.CreateTestExpense(t, db, "Housing", d("2000"))
		history := &models.MonthHistory{}
		testutil.AssertNoError(t, db.Create(history).Error)
		testutil.AssertNoError(t, db.Model(item).Update("month_history_id", history.ID).Error)

		summary, err := svc.Summary()
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, d("0"), summary.TotalExpenses, "archived rows must not count")
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("grouped_and_ordered", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewSettingsService(db))

		testutil.CreateTestExpense(t, db, "Housing", d("2000"))
		testutil.CreateTestExpense(t, db, "Food", d("300"))
		testutil.CreateTestExpense(t, db, "Food", d("200"))
		testutil.CreateTestSavingsGoal(t, db, d("400"))

		breakdown, err := svc.CategoryBreakdown(nil)
		testutil.AssertNoError(t, err)

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(breakdown))
		}
		if breakdown[0].Category != "Housing" {
			t.Errorf("largest category first, got %s", breakdown[0].Category)
		}
		testutil.AssertDecimalEqual(t, d("500"), breakdown[1].Total, "Food total")
	})

	t.Run("priority_subset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewSettingsService(db))

		testutil.CreateTestExpenseFull(t, db, models.ExpenseItem{
			Amount: d("2000"), CategoryName: "Housing", Priority: models.PriorityEssential,
		})
		testutil.CreateTestExpenseFull(t, db, models.ExpenseItem{
			Amount: d("100"), CategoryName: "Housing", Priority: models.PriorityWant,
		})

		breakdown, err := svc.CategoryBreakdown([]models.Priority{models.PriorityWant})
		testutil.AssertNoError(t, err)
		if len(breakdown) != 1 {
			t.Fatalf("expected 1 group, got %d", len(breakdown))
		}
		testutil.AssertDecimalEqual(t, d("100"), breakdown[0].Total, "want-only total")
	})

	t.Run("empty_subset_selects_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewSettingsService(db))

		testutil.CreateTestExpense(t, db, "Housing", d("2000"))

		breakdown, err := svc.CategoryBreakdown([]models.Priority{})
		testutil.AssertNoError(t, err)
		if len(breakdown) != 0 {
			t.Errorf("expected no groups, got %d", len(breakdown))
		}
	})
}

func TestPriorityBreakdown(t *testing.T) {
	t.Run("fixed_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewSettingsService(db))

		testutil.CreateTestExpenseFull(t, db, models.ExpenseItem{
			Amount: d("50"), CategoryName: "Food", Priority: models.PriorityWant,
		})
		testutil.CreateTestExpenseFull(t, db, models.ExpenseItem{
			Amount: d("2000"), CategoryName: "Housing", Priority: models.PriorityEssential,
		})

		breakdown, err := svc.PriorityBreakdown()
		testutil.AssertNoError(t, err)

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(breakdown))
		}
		if breakdown[0].Priority != models.PriorityEssential || breakdown[1].Priority != models.PriorityWant {
			t.Errorf("expected essential before want, got %v", breakdown)
		}
	})
}
