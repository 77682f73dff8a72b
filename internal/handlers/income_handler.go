package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/services"
)

// IncomeHandler handles income-record requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for adding an income
// source.
type CreateIncomeRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100"`
	Amount  decimal.Decimal `json:"amount"`
	Foreign bool            `json:"foreign"`
}

// UpdateIncomeRequest represents the request payload for updating an
// income source. Omitted fields stay unchanged.
type UpdateIncomeRequest struct {
	Name    string           `json:"name" binding:"omitempty,min=1,max=100"`
	Amount  *decimal.Decimal `json:"amount"`
	Foreign *bool            `json:"foreign"`
}

// CreateIncome handles adding a new income source.
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.incomeService.CreateIncome(req.Name, req.Amount, req.Foreign)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"income": item})
}

// ListIncome handles listing all income sources.
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	items, err := h.incomeService.ListIncome()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"income": items})
}

// UpdateIncome handles updating an income source.
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.incomeService.UpdateIncome(c.Param("id"), req.Name, req.Amount, req.Foreign)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"income": item})
}

// DeleteIncome handles deleting an income source.
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	if err := h.incomeService.DeleteIncome(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
