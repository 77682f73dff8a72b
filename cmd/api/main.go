package main

import (
	"fmt"
	"net/http"
	"os"

	"moneyplanner/internal/config"
	"moneyplanner/internal/database"
	"moneyplanner/internal/handlers"
	"moneyplanner/internal/logger"
	"moneyplanner/internal/middleware"
	"moneyplanner/internal/services"
	"moneyplanner/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	validator.Register()

	// Services
	db := dbManager.DB()
	settingsService := services.NewSettingsService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db, settingsService)
	categoryService := services.NewCategoryService(db)
	reportService := services.NewReportService(db, settingsService)
	historyService := services.NewHistoryService(db, settingsService)

	// Seed the default categories on a fresh store.
	if err := categoryService.EnsureDefaults(); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	// Handlers
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS for the local UI.
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

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

	log.Infof("Starting MoneyPlanner server on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
