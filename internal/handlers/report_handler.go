package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyplanner/internal/services"
)

// ReportHandler serves the live aggregation views.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the current month's headline totals.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown handles the per-category totals, optionally
// restricted to a priority subset via ?priorities=essential,want.
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	priorities, err := parsePriorities(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.CategoryBreakdown(priorities)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// GetPriorityBreakdown handles the per-priority totals.
func (h *ReportHandler) GetPriorityBreakdown(c *gin.Context) {
	breakdown, err := h.reportService.PriorityBreakdown()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"priorities": breakdown})
}
