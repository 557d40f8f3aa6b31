package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
)

// WageRepository reads and writes wages and their monthly summaries.
type WageRepository interface {
	// GetMonthlyWageSummary returns nil without an error when no summary exists yet.
	GetMonthlyWageSummary(ctx context.Context, userID uint, monthAndYear string) (*models.MonthlyWageSummary, error)
	CreateMonthlyWageSummary(ctx context.Context, summary *models.MonthlyWageSummary) error
	UpdateMonthlyWageSummary(ctx context.Context, summaryID uint, amount decimal.Decimal) (*models.MonthlyWageSummary, error)
	CreateWage(ctx context.Context, wage *models.Wage) error
	ListWages(ctx context.Context, userID uint, page pagination.PageRequest) ([]models.Wage, int64, error)
	ListMonthlyWageSummaries(ctx context.Context, userID uint, page pagination.PageRequest) ([]models.MonthlyWageSummary, int64, error)
	Transaction(ctx context.Context, fn func(repo WageRepository) error) error
}

type wageRepository struct {
	db *gorm.DB
}

// NewWageRepository creates a gorm-backed WageRepository.
func NewWageRepository(db *gorm.DB) WageRepository {
	return &wageRepository{db: db}
}

func (r *wageRepository) GetMonthlyWageSummary(ctx context.Context, userID uint, monthAndYear string) (*models.MonthlyWageSummary, error) {
	var summary models.MonthlyWageSummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month_and_year = ?", userID, monthAndYear).
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *wageRepository) CreateMonthlyWageSummary(ctx context.Context, summary *models.MonthlyWageSummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

// UpdateMonthlyWageSummary adds amount to both running totals and returns the updated row.
func (r *wageRepository) UpdateMonthlyWageSummary(ctx context.Context, summaryID uint, amount decimal.Decimal) (*models.MonthlyWageSummary, error) {
	db := r.db.WithContext(ctx)
	err := db.Model(&models.MonthlyWageSummary{}).
		Where("id = ?", summaryID).
		Updates(map[string]interface{}{
			"total_wage": gorm.Expr("total_wage + ?", amount),
			"remaining":  gorm.Expr("remaining + ?", amount),
		}).Error
	if err != nil {
		return nil, err
	}

	var summary models.MonthlyWageSummary
	if err := db.First(&summary, summaryID).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *wageRepository) CreateWage(ctx context.Context, wage *models.Wage) error {
	return r.db.WithContext(ctx).Create(wage).Error
}

func (r *wageRepository) ListWages(ctx context.Context, userID uint, page pagination.PageRequest) ([]models.Wage, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Wage{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var wages []models.Wage
	err := base.Order("date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&wages).Error
	return wages, total, err
}

func (r *wageRepository) ListMonthlyWageSummaries(ctx context.Context, userID uint, page pagination.PageRequest) ([]models.MonthlyWageSummary, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.MonthlyWageSummary{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var summaries []models.MonthlyWageSummary
	err := base.Order("month_and_year DESC").Scopes(pagination.Paginate(page)).Find(&summaries).Error
	return summaries, total, err
}

func (r *wageRepository) Transaction(ctx context.Context, fn func(repo WageRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&wageRepository{db: tx})
	})
}
