package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"moneyplanner/internal/handlers"
	"moneyplanner/internal/logger"
	"moneyplanner/internal/middleware"
	"moneyplanner/internal/models"
	"moneyplanner/internal/services"
	"moneyplanner/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	settingsService := services.NewSettingsService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db, settingsService)
	categoryService := services.NewCategoryService(db)
	reportService := services.NewReportService(db, settingsService)
	historyService := services.NewHistoryService(db, settingsService)

	if err := categoryService.EnsureDefaults(); err != nil {
		t.Fatalf("failed to seed default categories: %v", err)
	}

	// Handlers
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	income := v1.Group("/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.ListIncome)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	goals := v1.Group("/savings-goals")
	goals.POST("", expenseHandler.CreateSavingsGoal)
	goals.GET("", expenseHandler.ListSavingsGoals)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.POST("/restore-defaults", categoryHandler.RestoreDefaults)

	summary := v1.Group("/summary")
	summary.GET("", reportHandler.GetSummary)
	summary.GET("/categories", reportHandler.GetCategoryBreakdown)
	summary.GET("/priorities", reportHandler.GetPriorityBreakdown)

	history := v1.Group("/history")
	history.POST("/finish", historyHandler.FinishMonth)
	history.GET("", historyHandler.ListHistory)
	history.GET("/:id/report", historyHandler.GetMonthReport)
	history.DELETE("", historyHandler.ClearHistory)

	settings := v1.Group("/settings")
	settings.GET("/rate", settingsHandler.GetRate)
	settings.PUT("/rate", settingsHandler.SetRate)
	settings.GET("/savings", settingsHandler.GetSavings)
	settings.POST("/savings/deposit", settingsHandler.Deposit)
	settings.POST("/savings/withdraw", settingsHandler.Withdraw)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustCreate posts a record and fails the test unless it was created.
func (app *testApp) mustCreate(t *testing.T, path, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", path, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %s failed: %d %s", path, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}
