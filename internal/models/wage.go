package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the currency a wage is posted in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyARS Currency = "ARS"
)

// MonthlyWageSummary aggregates every wage a user posted for one month.
type MonthlyWageSummary struct {
	Base
	UserID       uint            `gorm:"not null;uniqueIndex:idx_wage_summary_user_month" json:"user_id"`
	MonthAndYear string          `gorm:"not null;size:7;uniqueIndex:idx_wage_summary_user_month" json:"month_and_year"`
	TotalWage    decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"total_wage"`
	Remaining    decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"remaining"`
}

// Wage is a single wage posting, stored with its USD and ARS equivalents.
type Wage struct {
	Base
	UserID               uint            `gorm:"not null;index" json:"user_id"`
	Amount               decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Currency             Currency        `gorm:"not null;size:3" json:"currency"`
	AmountUSD            decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_usd"`
	AmountARS            decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount_ars"`
	ExchangeRate         float64         `gorm:"not null" json:"exchange_rate"`
	Date                 time.Time       `gorm:"not null" json:"date"`
	MonthlyWageSummaryID uint            `gorm:"not null;index" json:"monthly_wage_summary_id"`
}
