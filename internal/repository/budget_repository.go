// Package repository holds the gorm-backed persistence used by the services.
// Methods return raw database errors; callers decide how to classify them.
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
)

// ConfigurationFilter selects budget configurations. Nil fields are ignored.
type ConfigurationFilter struct {
	ID          *uint
	UserID      *uint
	Name        *string
	IsActive    *bool
	ExcludeID   *uint
	WithBudgets bool
}

// BudgetUpdate changes the name and/or percentage of one budget. Nil fields are left untouched.
type BudgetUpdate struct {
	ID         uint
	Name       *string
	Percentage *int
}

// BudgetRepository reads and writes budget configurations and their budgets.
type BudgetRepository interface {
	GetBudgetsByConfigurationID(ctx context.Context, configurationID uint) ([]models.Budget, error)
	FindConfigurations(ctx context.Context, filter ConfigurationFilter) ([]models.BudgetConfiguration, error)
	ListConfigurations(ctx context.Context, userID uint, page pagination.PageRequest) ([]models.BudgetConfiguration, int64, error)
	CreateConfiguration(ctx context.Context, configuration *models.BudgetConfiguration) error
	UpdateConfigurationName(ctx context.Context, configurationID uint, name string) error
	DeactivateConfigurations(ctx context.Context, userID uint) error
	ActivateConfiguration(ctx context.Context, configurationID uint) error
	DeleteConfiguration(ctx context.Context, configurationID uint) error
	DeleteBudgets(ctx context.Context, configurationID uint, ids []uint) error
	CreateBudgets(ctx context.Context, budgets []models.Budget) error
	UpdateBudgets(ctx context.Context, configurationID uint, updates []BudgetUpdate) error
	SingleUpdateBudget(ctx context.Context, update models.BudgetAllocationUpdate) error
	Transaction(ctx context.Context, fn func(repo BudgetRepository) error) error
}

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a gorm-backed BudgetRepository.
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) GetBudgetsByConfigurationID(ctx context.Context, configurationID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	err := r.db.WithContext(ctx).
		Where("budget_configuration_id = ?", configurationID).
		Order("id").
		Find(&budgets).Error
	return budgets, err
}

func (r *budgetRepository) FindConfigurations(ctx context.Context, filter ConfigurationFilter) ([]models.BudgetConfiguration, error) {
	q := r.db.WithContext(ctx).Model(&models.BudgetConfiguration{})
	if filter.ID != nil {
		q = q.Where("id = ?", *filter.ID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Name != nil {
		q = q.Where("name = ?", *filter.Name)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.ExcludeID != nil {
		q = q.Where("id <> ?", *filter.ExcludeID)
	}
	if filter.WithBudgets {
		q = q.Preload("Budgets", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
	}

	var configurations []models.BudgetConfiguration
	err := q.Order("id").Find(&configurations).Error
	return configurations, err
}

func (r *budgetRepository) ListConfigurations(ctx context.Context, userID uint, page pagination.PageRequest) ([]models.BudgetConfiguration, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.BudgetConfiguration{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var configurations []models.BudgetConfiguration
	err := base.
		Preload("Budgets", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Scopes(pagination.Paginate(page)).
		Find(&configurations).Error
	return configurations, total, err
}

// CreateConfiguration inserts the configuration together with its Budgets.
func (r *budgetRepository) CreateConfiguration(ctx context.Context, configuration *models.BudgetConfiguration) error {
	return r.db.WithContext(ctx).Create(configuration).Error
}

func (r *budgetRepository) UpdateConfigurationName(ctx context.Context, configurationID uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&models.BudgetConfiguration{}).
		Where("id = ?", configurationID).
		Update("name", name).Error
}

func (r *budgetRepository) DeactivateConfigurations(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.BudgetConfiguration{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}

func (r *budgetRepository) ActivateConfiguration(ctx context.Context, configurationID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.BudgetConfiguration{}).
		Where("id = ?", configurationID).
		Update("is_active", true).Error
}

// DeleteConfiguration soft-deletes the configuration and all of its budgets.
func (r *budgetRepository) DeleteConfiguration(ctx context.Context, configurationID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_configuration_id = ?", configurationID).Delete(&models.Budget{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BudgetConfiguration{}, configurationID).Error
	})
}

func (r *budgetRepository) DeleteBudgets(ctx context.Context, configurationID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("budget_configuration_id = ? AND id IN ?", configurationID, ids).
		Delete(&models.Budget{}).Error
}

func (r *budgetRepository) CreateBudgets(ctx context.Context, budgets []models.Budget) error {
	if len(budgets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&budgets).Error
}

// UpdateBudgets applies each update scoped to the configuration, so ids that
// belong elsewhere are left untouched.
func (r *budgetRepository) UpdateBudgets(ctx context.Context, configurationID uint, updates []BudgetUpdate) error {
	db := r.db.WithContext(ctx)
	for _, u := range updates {
		fields := make(map[string]interface{})
		if u.Name != nil {
			fields["name"] = *u.Name
		}
		if u.Percentage != nil {
			fields["percentage"] = *u.Percentage
		}
		if len(fields) == 0 {
			continue
		}
		err := db.Model(&models.Budget{}).
			Where("id = ? AND budget_configuration_id = ?", u.ID, configurationID).
			Updates(fields).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// SingleUpdateBudget increments remaining_allocation in place, so concurrent
// wage postings do not overwrite each other.
func (r *budgetRepository) SingleUpdateBudget(ctx context.Context, update models.BudgetAllocationUpdate) error {
	updatedAt := update.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return r.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("id = ?", update.ID).
		Updates(map[string]interface{}{
			"remaining_allocation":    gorm.Expr("remaining_allocation + ?", update.Allocation),
			"monthly_wage_summary_id": update.MonthlyWageSummaryID,
			"updated_at":              updatedAt,
		}).Error
}

func (r *budgetRepository) Transaction(ctx context.Context, fn func(repo BudgetRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&budgetRepository{db: tx})
	})
}
