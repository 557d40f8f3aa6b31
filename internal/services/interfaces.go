package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, firstName, lastName string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// NewBudget is one budget of a configuration being created.
type NewBudget struct {
	Name       string
	Percentage int
}

// BudgetConfigurationServicer defines the contract for budget configuration business logic.
type BudgetConfigurationServicer interface {
	CreateConfiguration(ctx context.Context, userID uint, name string, budgets []NewBudget) (*models.BudgetConfiguration, error)
	GetUserConfigurations(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetConfiguration], error)
	GetConfigurationByID(ctx context.Context, userID, configurationID uint) (*models.BudgetConfiguration, error)
	UpdateConfiguration(ctx context.Context, userID, configurationID uint, name *string, actions []models.BudgetAction) (*models.BudgetConfiguration, error)
	DeleteConfiguration(ctx context.Context, userID, configurationID uint) error
	ActivateConfiguration(ctx context.Context, userID, configurationID uint) (*models.BudgetConfiguration, error)
}

// WageServicer defines the contract for wage postings.
type WageServicer interface {
	RecordWage(ctx context.Context, userID uint, amount decimal.Decimal, currency models.Currency, date time.Time) (*models.Wage, error)
	GetUserWages(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Wage], error)
	GetMonthlyWageSummaries(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.MonthlyWageSummary], error)
}

// AllocationTrigger distributes a posted wage across the user's active budgets.
type AllocationTrigger interface {
	Distribute(ctx context.Context, userID, monthlyWageSummaryID uint, amount decimal.Decimal) error
}

// RateSource returns how many ARS one USD buys. It never fails; implementations
// degrade to a fixed fallback rate.
type RateSource interface {
	USDToARS(ctx context.Context) float64
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
