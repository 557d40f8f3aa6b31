// Package errors provides the application error taxonomy.
// Every service-layer failure is expressed as an *AppError so handlers can
// render a stable code and message without leaking internal details.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so that
// errors.Is(err, ErrBudgetPercentage) matches copies made by Wrap and WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrDatabase       = &AppError{Code: "DATABASE_ERROR", Message: "A database error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Budget configuration errors.
var (
	ErrBudgetsNotFound              = &AppError{Code: "BUDGETS_NOT_FOUND", Message: "No budgets found", StatusCode: http.StatusNotFound}
	ErrBudgetPercentage             = &AppError{Code: "BUDGET_PERCENTAGE", Message: "The total percentage must be 100%", StatusCode: http.StatusBadRequest}
	ErrBudgetConfigurationNameInUse = &AppError{Code: "BUDGET_CONFIGURATION_NAME_IN_USE", Message: "Budget configuration name already in use", StatusCode: http.StatusConflict}
	ErrBudgetConfigurationNotFound  = &AppError{Code: "BUDGET_CONFIGURATION_NOT_FOUND", Message: "Budget configuration not found", StatusCode: http.StatusNotFound}
)

// Wage errors.
var (
	ErrMissingMonthlyWageSummaryID = &AppError{Code: "MISSING_MONTHLY_WAGE_SUMMARY_ID", Message: "Monthly wage summary id is missing", StatusCode: http.StatusInternalServerError}
)

// BudgetPercentage builds the percentage mismatch error carrying the computed total.
func BudgetPercentage(total int) *AppError {
	return WithMessage(ErrBudgetPercentage,
		fmt.Sprintf("The total percentage must be 100%%. Current total: %d%%", total))
}

// Database wraps a persistence failure, keeping the original error as the cause.
func Database(cause error) *AppError {
	return Wrap(ErrDatabase, cause)
}
