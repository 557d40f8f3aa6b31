// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetplan/internal/models"
)

var monthYearRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("wage_currency", validateWageCurrency)
	_ = v.RegisterValidation("month_year", validateMonthYear)
	v.RegisterStructValidation(validateBudgetAction, models.BudgetAction{})
}

func validateWageCurrency(fl validator.FieldLevel) bool {
	switch models.Currency(fl.Field().String()) {
	case models.CurrencyUSD, models.CurrencyARS:
		return true
	}
	return false
}

func validateMonthYear(fl validator.FieldLevel) bool {
	return monthYearRegex.MatchString(fl.Field().String())
}

// validateBudgetAction rejects actions that are ambiguous or cannot be applied:
// delete together with create, delete without an id, and create carrying an id.
func validateBudgetAction(sl validator.StructLevel) {
	action := sl.Current().Interface().(models.BudgetAction)

	if action.Delete && action.Create {
		sl.ReportError(action.Create, "Create", "create", "excluded_with_delete", "")
	}
	if action.Delete && action.ID == nil {
		sl.ReportError(action.ID, "ID", "id", "required_with_delete", "")
	}
	if action.Create && action.ID != nil {
		sl.ReportError(action.ID, "ID", "id", "excluded_with_create", "")
	}
}
