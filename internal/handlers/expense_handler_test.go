package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
	"moneyplanner/internal/services"
	"moneyplanner/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn      func(name string, amount decimal.Decimal, categoryName string, foreign bool, priority models.Priority) (*models.ExpenseItem, error)
	createSavingsGoalFn  func(name string, amount decimal.Decimal, foreign bool) (*models.ExpenseItem, error)
	listActiveExpensesFn func(status services.StatusFilter, option services.SortOption) ([]models.ExpenseItem, error)
	listSavingsGoalsFn   func() ([]models.ExpenseItem, error)
	getExpenseByIDFn     func(id string) (*models.ExpenseItem, error)
	updateExpenseFn      func(id string, name string, amount *decimal.Decimal, categoryName string, foreign *bool, priority *models.Priority, paid *bool) (*models.ExpenseItem, error)
	deleteExpenseFn      func(id string) error
}

func (m *mockExpenseService) CreateExpense(name string, amount decimal.Decimal, categoryName string, foreign bool, priority models.Priority) (*models.ExpenseItem, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(name, amount, categoryName, foreign, priority)
	}
	return &models.ExpenseItem{}, nil
}

func (m *mockExpenseService) CreateSavingsGoal(name string, amount decimal.Decimal, foreign bool) (*models.ExpenseItem, error) {
	if m.createSavingsGoalFn != nil {
		return m.createSavingsGoalFn(name, amount, foreign)
	}
	return &models.ExpenseItem{}, nil
}

func (m *mockExpenseService) ListActiveExpenses(status services.StatusFilter, option services.SortOption) ([]models.ExpenseItem, error) {
	if m.listActiveExpensesFn != nil {
		return m.listActiveExpensesFn(status, option)
	}
	return []models.ExpenseItem{}, nil
}

func (m *mockExpenseService) ListSavingsGoals() ([]models.ExpenseItem, error) {
	if m.listSavingsGoalsFn != nil {
		return m.listSavingsGoalsFn()
	}
	return []models.ExpenseItem{}, nil
}

func (m *mockExpenseService) GetExpenseByID(id string) (*models.ExpenseItem, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(id)
	}
	return &models.ExpenseItem{}, nil
}

func (m *mockExpenseService) UpdateExpense(id string, name string, amount *decimal.Decimal, categoryName string, foreign *bool, priority *models.Priority, paid *bool) (*models.ExpenseItem, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(id, name, amount, categoryName, foreign, priority, paid)
	}
	return &models.ExpenseItem{}, nil
}

func (m *mockExpenseService) DeleteExpense(id string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(id)
	}
	return nil
}

// verify interface compliance
var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.POST("/expenses", handler.CreateExpense)
	r.GET("/expenses", handler.ListExpenses)
	r.PUT("/expenses/:id", handler.UpdateExpense)
	r.DELETE("/expenses/:id", handler.DeleteExpense)
	r.POST("/savings-goals", handler.CreateSavingsGoal)
	r.GET("/savings-goals", handler.ListSavingsGoals)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(name string, amount decimal.Decimal, categoryName string, foreign bool, priority models.Priority) (*models.ExpenseItem, error) {
				return &models.ExpenseItem{
					Name:         name,
					Amount:       amount,
					CategoryName: categoryName,
					Foreign:      foreign,
					Priority:     priority,
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses",
			`{"name":"Rent","amount":"2000","category_name":"Housing","priority":"essential"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		item := result["expense"].(map[string]interface{})
		if item["name"] != "Rent" {
			t.Errorf("expected name Rent, got %v", item["name"])
		}
		if item["category_name"] != "Housing" {
			t.Errorf("expected category Housing, got %v", item["category_name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/expenses", `{"amount":"2000","category_name":"Housing"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown priority", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/expenses",
			`{"name":"Rent","amount":"2000","category_name":"Housing","priority":"urgent"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on reserved category", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(string, decimal.Decimal, string, bool, models.Priority) (*models.ExpenseItem, error) {
				return nil, apperrors.ErrReservedName
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses",
			`{"name":"Sneaky","amount":"100","category_name":"savings"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RESERVED_NAME")
	})
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	t.Run("passes status and sort through", func(t *testing.T) {
		var gotStatus services.StatusFilter
		var gotSort services.SortOption
		svc := &mockExpenseService{
			listActiveExpensesFn: func(status services.StatusFilter, option services.SortOption) ([]models.ExpenseItem, error) {
				gotStatus, gotSort = status, option
				return []models.ExpenseItem{{Name: "Rent"}}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses?status=unpaid&sort=amount_desc", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotStatus != services.StatusUnpaid || gotSort != services.SortAmountDesc {
			t.Errorf("expected unpaid/amount_desc, got %s/%s", gotStatus, gotSort)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses?status=overdue", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown sort", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses?sort=name", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_CreateSavingsGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			createSavingsGoalFn: func(name string, amount decimal.Decimal, foreign bool) (*models.ExpenseItem, error) {
				return &models.ExpenseItem{
					Name:         name,
					Amount:       amount,
					CategoryName: models.SavingsCategoryName,
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/savings-goals", `{"name":"Fund","amount":"400"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		item := result["expense"].(map[string]interface{})
		if item["category_name"] != models.SavingsCategoryName {
			t.Errorf("expected reserved category, got %v", item["category_name"])
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("returns 409 on archived row", func(t *testing.T) {
		svc := &mockExpenseService{
			updateExpenseFn: func(string, string, *decimal.Decimal, string, *bool, *models.Priority, *bool) (*models.ExpenseItem, error) {
				return nil, apperrors.ErrExpenseArchived
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "PUT", "/expenses/abc", `{"paid":true}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_ARCHIVED")
	})

	t.Run("passes paid flag through", func(t *testing.T) {
		var gotPaid *bool
		svc := &mockExpenseService{
			updateExpenseFn: func(id string, name string, amount *decimal.Decimal, categoryName string, foreign *bool, priority *models.Priority, paid *bool) (*models.ExpenseItem, error) {
				gotPaid = paid
				return &models.ExpenseItem{Paid: *paid}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "PUT", "/expenses/abc", `{"paid":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPaid == nil || !*gotPaid {
			t.Error("expected paid=true to reach the service")
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "DELETE", "/expenses/abc", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockExpenseService{
			deleteExpenseFn: func(string) error { return apperrors.ErrExpenseNotFound },
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "DELETE", "/expenses/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
