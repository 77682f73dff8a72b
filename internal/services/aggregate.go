package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"moneyplanner/internal/models"
	"moneyplanner/internal/money"
)

// StatusFilter selects expenses by payment status.
type StatusFilter string

const (
	StatusAll    StatusFilter = "all"
	StatusPaid   StatusFilter = "paid"
	StatusUnpaid StatusFilter = "unpaid"
)

// Valid reports whether f is a known status filter.
func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusPaid, StatusUnpaid:
		return true
	}
	return false
}

// SortOption orders the expense view. Amount sorts compare base-currency
// converted values, so a foreign expense ranks by what it actually costs.
type SortOption string

const (
	SortDateDesc   SortOption = "date_desc"
	SortDateAsc    SortOption = "date_asc"
	SortAmountDesc SortOption = "amount_desc"
	SortAmountAsc  SortOption = "amount_asc"
)

// Valid reports whether o is a known sort option.
func (o SortOption) Valid() bool {
	switch o {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return true
	}
	return false
}

// Summary holds the month's headline totals, all in base currency.
// Remaining may be negative; nothing clamps it.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalSavings  decimal.Decimal `json:"total_savings"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PriorityTotal is one slice of the priority breakdown.
type PriorityTotal struct {
	Priority models.Priority `json:"priority"`
	Total    decimal.Decimal `json:"total"`
}

// The functions below are pure: they derive view data from the slices they
// are given and never touch the store. The same functions serve the live
// working set and the archived expenses of a closed month.

// TotalIncome sums income in base currency.
func TotalIncome(incomes []models.IncomeItem, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range incomes {
		total = total.Add(money.ToBase(item.Amount, item.Foreign, rate))
	}
	return total
}

// sumExpenses sums expense amounts in base currency.
func sumExpenses(items []models.ExpenseItem, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(money.ToBase(item.Amount, item.Foreign, rate))
	}
	return total
}

// Summarize computes the month's totals from the active working set.
// expenses must exclude savings goals and goals must contain only them;
// callers split on the reserved category name when loading.
func Summarize(incomes []models.IncomeItem, expenses, goals []models.ExpenseItem, rate decimal.Decimal) Summary {
	income := TotalIncome(incomes, rate)
	spent := sumExpenses(expenses, rate)
	saved := sumExpenses(goals, rate)
	return Summary{
		TotalIncome:   income,
		TotalExpenses: spent,
		TotalSavings:  saved,
		TotalSpent:    spent.Add(saved),
		Remaining:     income.Sub(spent.Add(saved)),
	}
}

// FilterByStatus returns the expenses matching the status filter, in their
// original relative order.
func FilterByStatus(expenses []models.ExpenseItem, status StatusFilter) []models.ExpenseItem {
	if status == "" || status == StatusAll {
		return expenses
	}
	out := make([]models.ExpenseItem, 0, len(expenses))
	for _, item := range expenses {
		if (status == StatusPaid) == item.Paid {
			out = append(out, item)
		}
	}
	return out
}

// FilterByPriorities returns the expenses whose priority is in the given
// subset. A nil subset selects everything; an empty one selects nothing.
func FilterByPriorities(expenses []models.ExpenseItem, priorities []models.Priority) []models.ExpenseItem {
	if priorities == nil {
		return expenses
	}
	selected := make(map[models.Priority]bool, len(priorities))
	for _, p := range priorities {
		selected[p] = true
	}
	out := make([]models.ExpenseItem, 0, len(expenses))
	for _, item := range expenses {
		if selected[item.Priority] {
			out = append(out, item)
		}
	}
	return out
}

// SortExpenses returns a sorted copy of the expense view. The sort is
// stable, so equal keys keep their input order; the input slice itself is
// never reordered.
func SortExpenses(expenses []models.ExpenseItem, option SortOption, rate decimal.Decimal) []models.ExpenseItem {
	out := make([]models.ExpenseItem, len(expenses))
	copy(out, expenses)

	switch option {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return money.ToBase(out[i].Amount, out[i].Foreign, rate).
				GreaterThan(money.ToBase(out[j].Amount, out[j].Foreign, rate))
		})
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return money.ToBase(out[i].Amount, out[i].Foreign, rate).
				LessThan(money.ToBase(out[j].Amount, out[j].Foreign, rate))
		})
	default: // SortDateDesc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// GroupByCategory sums expenses per category name after applying the
// priority subset. Results are ordered by total descending with category
// name ascending as the tiebreak, so chart ordering is reproducible.
func GroupByCategory(expenses []models.ExpenseItem, rate decimal.Decimal, priorities []models.Priority) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, item := range FilterByPriorities(expenses, priorities) {
		totals[item.CategoryName] = totals[item.CategoryName].Add(money.ToBase(item.Amount, item.Foreign, rate))
	}

	out := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// GroupByPriority sums expenses per priority, in fixed priority order.
// Priorities with no expenses are omitted.
func GroupByPriority(expenses []models.ExpenseItem, rate decimal.Decimal) []PriorityTotal {
	totals := make(map[models.Priority]decimal.Decimal)
	for _, item := range expenses {
		totals[item.Priority] = totals[item.Priority].Add(money.ToBase(item.Amount, item.Foreign, rate))
	}

	out := make([]PriorityTotal, 0, len(totals))
	for _, p := range models.Priorities {
		if total, ok := totals[p]; ok {
			out = append(out, PriorityTotal{Priority: p, Total: total})
		}
	}
	return out
}
