package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetConfiguration is a named set of budgets whose percentages add up to 100.
// A user has at most one active configuration; wages are distributed across it.
type BudgetConfiguration struct {
	Base
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	Name     string   `gorm:"not null" json:"name"`
	IsActive bool     `gorm:"not null;default:false" json:"is_active"`
	Budgets  []Budget `gorm:"foreignKey:BudgetConfigurationID" json:"budgets,omitempty"`
}

// Budget is one percentage share of a configuration. RemainingAllocation
// accumulates the share of every wage posted while the configuration is active.
type Budget struct {
	Base
	BudgetConfigurationID uint            `gorm:"not null;index" json:"budget_configuration_id"`
	UserID                uint            `gorm:"not null;index" json:"user_id"`
	Name                  string          `gorm:"not null" json:"name"`
	Percentage            int             `gorm:"not null" json:"percentage"`
	RemainingAllocation   decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"remaining_allocation"`
	MonthlyWageSummaryID  *uint           `gorm:"index" json:"monthly_wage_summary_id,omitempty"`
}

// BudgetAllocationUpdate credits a single budget with its share of a wage.
// Allocation is added to the stored remaining_allocation.
type BudgetAllocationUpdate struct {
	ID                   uint
	Allocation           decimal.Decimal
	MonthlyWageSummaryID uint
	UpdatedAt            time.Time
}
