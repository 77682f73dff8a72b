package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "moneyplanner/internal/errors"
	"moneyplanner/internal/models"
)

// DefaultCategoryNames is the fixed seed list, in display order.
var DefaultCategoryNames = []string{
	"Food", "Housing", "Transport", "Entertainment", "Health", "Essentials", "Other",
}

// categoryService handles category business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category at the end of the display order.
func (s *categoryService) CreateCategory(name, icon string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if name == models.SavingsCategoryName {
		return nil, apperrors.ErrReservedName
	}
	if icon == "" {
		icon = "circle"
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category := &models.Category{
		Name:     name,
		Icon:     icon,
		Position: int(count),
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// ListCategories returns all categories in display order.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("position, created_at").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// UpdateCategory renames or repositions a category. Renaming does not
// touch expenses that carry the old name; they keep it as plain text.
func (s *categoryService) UpdateCategory(id string, name, icon string, position *int) (*models.Category, error) {
	category, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		if name == models.SavingsCategoryName {
			return nil, apperrors.ErrReservedName
		}
		updates["name"] = name
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if position != nil {
		updates["position"] = *position
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return category, nil
}

// DeleteCategory deletes a category. Expenses referencing it by name are
// left as-is; orphaned labels are accepted behavior.
func (s *categoryService) DeleteCategory(id string) error {
	category, err := s.getByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// EnsureDefaults seeds the default category set exactly once: only when no
// categories exist at all. An existing set is never touched, even if it
// shares nothing with the defaults.
func (s *categoryService) EnsureDefaults() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}
	return s.insertDefaults()
}

// RestoreDefaults re-inserts the default list additively. User categories
// stay, and names already present are inserted again: duplicates are the
// documented behavior, not deduplicated.
func (s *categoryService) RestoreDefaults() error {
	return s.insertDefaults()
}

func (s *categoryService) insertDefaults() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, name := range DefaultCategoryNames {
			category := &models.Category{Name: name, Icon: "circle", Position: i}
			if err := tx.Create(category).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

func (s *categoryService) getByID(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
