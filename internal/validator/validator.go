// Package validator registers custom validation functions with Gin's
// binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("priority", validatePriority)
		_ = v.RegisterValidation("status_filter", validateStatusFilter)
		_ = v.RegisterValidation("sort_option", validateSortOption)
	}
}

func validatePriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "essential", "needed_now", "want":
		return true
	}
	return false
}

func validateStatusFilter(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "paid", "unpaid":
		return true
	}
	return false
}

func validateSortOption(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date_desc", "date_asc", "amount_desc", "amount_asc":
		return true
	}
	return false
}
