package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/logger"
	"moneyplanner/internal/models"
)

// respondWithError writes a consistent JSON error response. AppErrors use
// their own status, code, and message; anything else is logged and mapped
// to a generic internal error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{"code": appErr.Code, "message": appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// parsePriorities parses the "priorities" query parameter: a comma
// separated priority subset. Absent means no filtering (nil); present but
// empty selects nothing, matching the chart toggles all being off.
func parsePriorities(c *gin.Context) ([]models.Priority, error) {
	raw, exists := c.GetQuery("priorities")
	if !exists {
		return nil, nil
	}

	priorities := []models.Priority{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p := models.Priority(part)
		if !p.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown priority "+part)
		}
		priorities = append(priorities, p)
	}
	return priorities, nil
}
