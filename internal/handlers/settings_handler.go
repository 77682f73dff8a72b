package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/services"
)

// SettingsHandler handles the persisted configuration scalars.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SetRateRequest represents the request payload for updating the exchange
// rate.
type SetRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// SavingsAdjustmentRequest represents the request payload for manual
// savings deposits and withdrawals.
type SavingsAdjustmentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Foreign bool            `json:"foreign"`
}

// GetRate handles reading the exchange rate.
func (h *SettingsHandler) GetRate(c *gin.Context) {
	rate, err := h.settingsService.ExchangeRate()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": rate})
}

// SetRate handles updating the exchange rate.
func (h *SettingsHandler) SetRate(c *gin.Context) {
	var req SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.settingsService.SetExchangeRate(req.Rate); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": req.Rate})
}

// GetSavings handles reading the accumulated savings balance.
func (h *SettingsHandler) GetSavings(c *gin.Context) {
	balance, err := h.settingsService.AccumulatedSavings()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// Deposit handles a manual savings deposit.
func (h *SettingsHandler) Deposit(c *gin.Context) {
	var req SavingsAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.settingsService.Deposit(req.Amount, req.Foreign)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// Withdraw handles a manual savings withdrawal.
func (h *SettingsHandler) Withdraw(c *gin.Context) {
	var req SavingsAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.settingsService.Withdraw(req.Amount, req.Foreign)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
