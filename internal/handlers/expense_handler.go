package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
	"moneyplanner/internal/services"
)

// ExpenseHandler handles expense and savings-goal requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for adding an
// expense.
type CreateExpenseRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryName string          `json:"category_name" binding:"required"`
	Foreign      bool            `json:"foreign"`
	Priority     string          `json:"priority" binding:"omitempty,priority"`
}

// CreateSavingsGoalRequest represents the request payload for adding a
// savings top-up.
type CreateSavingsGoalRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100"`
	Amount  decimal.Decimal `json:"amount"`
	Foreign bool            `json:"foreign"`
}

// UpdateExpenseRequest represents the request payload for updating an
// expense or savings goal. Omitted fields stay unchanged.
type UpdateExpenseRequest struct {
	Name         string           `json:"name" binding:"omitempty,min=1,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	CategoryName string           `json:"category_name"`
	Foreign      *bool            `json:"foreign"`
	Priority     *string          `json:"priority" binding:"omitempty"`
	Paid         *bool            `json:"paid"`
}

// ListExpensesQuery holds the presentation pipeline parameters.
type ListExpensesQuery struct {
	Status string `form:"status" binding:"omitempty,status_filter"`
	Sort   string `form:"sort" binding:"omitempty,sort_option"`
}

// CreateExpense handles adding a new expense.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.expenseService.CreateExpense(
		req.Name, req.Amount, req.CategoryName, req.Foreign, models.Priority(req.Priority),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": item})
}

// CreateSavingsGoal handles adding a new savings top-up.
func (h *ExpenseHandler) CreateSavingsGoal(c *gin.Context) {
	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.expenseService.CreateSavingsGoal(req.Name, req.Amount, req.Foreign)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": item})
}

// ListExpenses handles listing the active expense view with the status
// filter and sort order applied.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var query ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items, err := h.expenseService.ListActiveExpenses(
		services.StatusFilter(query.Status), services.SortOption(query.Sort),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": items})
}

// ListSavingsGoals handles listing the active savings top-ups.
func (h *ExpenseHandler) ListSavingsGoals(c *gin.Context) {
	items, err := h.expenseService.ListSavingsGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": items})
}

// UpdateExpense handles updating an active expense or savings goal.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var priority *models.Priority
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		priority = &p
	}

	item, err := h.expenseService.UpdateExpense(
		c.Param("id"), req.Name, req.Amount, req.CategoryName, req.Foreign, priority, req.Paid,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": item})
}

// DeleteExpense handles deleting an active expense or savings goal.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
