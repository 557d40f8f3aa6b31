package services

import (
	"context"

	"budgetplan/internal/chain"
	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/logger"
	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
	"budgetplan/internal/repository"
)

// budgetConfigurationService handles budget configuration business logic.
type budgetConfigurationService struct {
	repo            repository.BudgetRepository
	createValidator chain.Validator[NewBudgetConfiguration]
	patchValidator  chain.Validator[BudgetConfigurationPatch]
	ownership       chain.Validator[BudgetConfigurationPatch]
	mutator         *BudgetConfigurationMutator
}

// NewBudgetConfigurationService creates a new BudgetConfigurationServicer.
func NewBudgetConfigurationService(repo repository.BudgetRepository) BudgetConfigurationServicer {
	return &budgetConfigurationService{
		repo:            repo,
		createValidator: NewCreateValidator(repo),
		patchValidator:  NewPatchValidator(repo),
		ownership:       NewOwnershipValidator(repo),
		mutator:         NewBudgetConfigurationMutator(repo),
	}
}

// CreateConfiguration creates a configuration with its budgets and makes it
// the user's active one.
func (s *budgetConfigurationService) CreateConfiguration(
	ctx context.Context,
	userID uint,
	name string,
	budgets []NewBudget,
) (*models.BudgetConfiguration, error) {
	validated, err := s.createValidator.Validate(ctx, NewBudgetConfiguration{
		UserID:  userID,
		Name:    name,
		Budgets: budgets,
	})
	if err != nil {
		return nil, err
	}

	configuration := &models.BudgetConfiguration{
		UserID:   validated.UserID,
		Name:     validated.Name,
		IsActive: true,
	}
	for _, b := range validated.Budgets {
		configuration.Budgets = append(configuration.Budgets, models.Budget{
			UserID:     validated.UserID,
			Name:       b.Name,
			Percentage: b.Percentage,
		})
	}

	err = s.repo.Transaction(ctx, func(repo repository.BudgetRepository) error {
		if err := repo.DeactivateConfigurations(ctx, userID); err != nil {
			return err
		}
		return repo.CreateConfiguration(ctx, configuration)
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	logger.Get().Infow("budget configuration created",
		"budget_configuration_id", configuration.ID,
		"user_id", userID,
		"budgets", len(configuration.Budgets),
	)
	return configuration, nil
}

// GetUserConfigurations returns a paginated list of the user's configurations with their budgets.
func (s *budgetConfigurationService) GetUserConfigurations(
	ctx context.Context,
	userID uint,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.BudgetConfiguration], error) {
	page = page.Normalize()

	configurations, total, err := s.repo.ListConfigurations(ctx, userID, page)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	return pagination.NewPageResponse(page, configurations, total), nil
}

// GetConfigurationByID returns a configuration with its budgets if it belongs to the user.
func (s *budgetConfigurationService) GetConfigurationByID(ctx context.Context, userID, configurationID uint) (*models.BudgetConfiguration, error) {
	found, err := s.repo.FindConfigurations(ctx, repository.ConfigurationFilter{
		ID:          &configurationID,
		UserID:      &userID,
		WithBudgets: true,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if len(found) == 0 {
		return nil, apperrors.ErrBudgetConfigurationNotFound
	}
	return &found[0], nil
}

// UpdateConfiguration validates a patch through the patch chain and applies it.
func (s *budgetConfigurationService) UpdateConfiguration(
	ctx context.Context,
	userID, configurationID uint,
	name *string,
	actions []models.BudgetAction,
) (*models.BudgetConfiguration, error) {
	patch, err := s.patchValidator.Validate(ctx, BudgetConfigurationPatch{
		BudgetConfigurationID:   configurationID,
		BudgetConfigurationName: name,
		UserID:                  userID,
		Actions:                 actions,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.mutator.PartialUpdate(ctx, patch); err != nil {
		return nil, err
	}

	return s.GetConfigurationByID(ctx, userID, configurationID)
}

// DeleteConfiguration soft-deletes a configuration and its budgets.
func (s *budgetConfigurationService) DeleteConfiguration(ctx context.Context, userID, configurationID uint) error {
	if _, err := s.ownership.Validate(ctx, BudgetConfigurationPatch{
		BudgetConfigurationID: configurationID,
		UserID:                userID,
	}); err != nil {
		return err
	}

	if err := s.repo.DeleteConfiguration(ctx, configurationID); err != nil {
		return apperrors.Database(err)
	}
	return nil
}

// ActivateConfiguration makes the configuration the one wages are distributed across.
func (s *budgetConfigurationService) ActivateConfiguration(ctx context.Context, userID, configurationID uint) (*models.BudgetConfiguration, error) {
	if _, err := s.ownership.Validate(ctx, BudgetConfigurationPatch{
		BudgetConfigurationID: configurationID,
		UserID:                userID,
	}); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(repo repository.BudgetRepository) error {
		if err := repo.DeactivateConfigurations(ctx, userID); err != nil {
			return err
		}
		return repo.ActivateConfiguration(ctx, configurationID)
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	return s.GetConfigurationByID(ctx, userID, configurationID)
}
