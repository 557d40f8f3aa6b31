package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetplan/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestConfiguration creates an active configuration with one budget per
// percentage, named "Budget 1", "Budget 2", ...
func CreateTestConfiguration(t *testing.T, db *gorm.DB, userID uint, percentages ...int) *models.BudgetConfiguration {
	t.Helper()
	return CreateTestConfigurationNamed(t, db, userID, fmt.Sprintf("Configuration %d", nextID()), true, percentages...)
}

// CreateTestConfigurationNamed creates a configuration with the given name and state.
func CreateTestConfigurationNamed(t *testing.T, db *gorm.DB, userID uint, name string, active bool, percentages ...int) *models.BudgetConfiguration {
	t.Helper()

	configuration := &models.BudgetConfiguration{
		UserID:   userID,
		Name:     name,
		IsActive: active,
	}
	for i, pct := range percentages {
		configuration.Budgets = append(configuration.Budgets, models.Budget{
			UserID:     userID,
			Name:       fmt.Sprintf("Budget %d", i+1),
			Percentage: pct,
		})
	}
	if err := db.Create(configuration).Error; err != nil {
		t.Fatalf("failed to create test configuration: %v", err)
	}
	return configuration
}

// CreateTestWageSummary creates a monthly wage summary holding amount.
func CreateTestWageSummary(t *testing.T, db *gorm.DB, userID uint, monthAndYear string, amount string) *models.MonthlyWageSummary {
	t.Helper()

	value := decimal.RequireFromString(amount)
	summary := &models.MonthlyWageSummary{
		UserID:       userID,
		MonthAndYear: monthAndYear,
		TotalWage:    value,
		Remaining:    value,
	}
	if err := db.Create(summary).Error; err != nil {
		t.Fatalf("failed to create test wage summary: %v", err)
	}
	return summary
}

// LoadBudgets returns the budgets of a configuration ordered by id.
func LoadBudgets(t *testing.T, db *gorm.DB, configurationID uint) []models.Budget {
	t.Helper()

	var budgets []models.Budget
	if err := db.Where("budget_configuration_id = ?", configurationID).Order("id").Find(&budgets).Error; err != nil {
		t.Fatalf("failed to load budgets: %v", err)
	}
	return budgets
}
