// Package errors provides the structured error type used by every service.
// Service errors carry a stable code and an HTTP status so the handler
// layer can respond consistently without leaking internal details.
package errors

import "net/http"

// AppError is a structured application error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the internal error to errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as its cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Record errors.
var (
	ErrIncomeNotFound   = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income item not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound  = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrHistoryNotFound  = &AppError{Code: "HISTORY_NOT_FOUND", Message: "Month history not found", StatusCode: http.StatusNotFound}
)

// Domain-rule errors.
var (
	ErrExpenseArchived = &AppError{Code: "EXPENSE_ARCHIVED", Message: "Archived expenses cannot be modified", StatusCode: http.StatusConflict}
	ErrInvalidRate     = &AppError{Code: "INVALID_RATE", Message: "Exchange rate must be positive", StatusCode: http.StatusBadRequest}
	ErrReservedName    = &AppError{Code: "RESERVED_NAME", Message: "This category name is reserved", StatusCode: http.StatusBadRequest}
)
