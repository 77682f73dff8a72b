package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/services"
)

// HistoryHandler handles month closing and archive requests.
type HistoryHandler struct {
	historyService services.HistoryServicer
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService services.HistoryServicer) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// FinishMonthRequest represents the request payload for closing the
// current period under a chosen calendar month.
type FinishMonthRequest struct {
	Year  int `json:"year" binding:"required,min=1970,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// MonthReportQuery holds the archive drill-down filter parameters.
type MonthReportQuery struct {
	Status string `form:"status" binding:"omitempty,status_filter"`
}

// FinishMonth handles closing the current period into the archive.
func (h *HistoryHandler) FinishMonth(c *gin.Context) {
	var req FinishMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.historyService.FinishMonth(req.Year, time.Month(req.Month))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"history": record})
}

// ListHistory handles listing the archive grouped by year.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	groups, err := h.historyService.ListByYear()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": groups})
}

// GetMonthReport handles the per-month drill-down of an archived record.
func (h *HistoryHandler) GetMonthReport(c *gin.Context) {
	var query MonthReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	priorities, err := parsePriorities(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.historyService.MonthReport(
		c.Param("id"), priorities, services.StatusFilter(query.Status),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// ClearHistory handles deleting the whole archive.
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if err := h.historyService.ClearHistory(); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
