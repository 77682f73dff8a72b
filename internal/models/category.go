package models

// Category is a display label for grouping expenses. Expenses reference
// categories by name, not by ID: renaming or deleting a category leaves
// existing expenses carrying the old name as plain text.
type Category struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Icon     string `gorm:"not null;default:circle" json:"icon"`
	Position int    `gorm:"not null;default:0" json:"position"`
}
