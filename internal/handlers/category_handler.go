package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/services"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for adding a
// category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Icon string `json:"icon"`
}

// UpdateCategoryRequest represents the request payload for updating a
// category. Omitted fields stay unchanged.
type UpdateCategoryRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Icon     string `json:"icon"`
	Position *int   `json:"position"`
}

// CreateCategory handles adding a new category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Icon)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// ListCategories handles listing all categories in display order.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// UpdateCategory handles renaming or repositioning a category.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Param("id"), req.Name, req.Icon, req.Position)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles deleting a category. Expenses keep the deleted
// name as a plain label.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreDefaults handles re-inserting the default category list.
func (h *CategoryHandler) RestoreDefaults(c *gin.Context) {
	if err := h.categoryService.RestoreDefaults(); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
