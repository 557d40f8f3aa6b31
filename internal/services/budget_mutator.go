package services

import (
	"context"

	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/logger"
	"budgetplan/internal/models"
	"budgetplan/internal/repository"
)

// BudgetConfigurationMutator applies a validated patch to the repository.
type BudgetConfigurationMutator struct {
	repo repository.BudgetRepository
}

// NewBudgetConfigurationMutator creates a mutator over repo.
func NewBudgetConfigurationMutator(repo repository.BudgetRepository) *BudgetConfigurationMutator {
	return &BudgetConfigurationMutator{repo: repo}
}

// PartialUpdate applies rename, deletes, creates and updates in that order,
// inside one transaction. When the patch touched budgets, the configuration
// is re-read before commit and must still total 100%.
func (m *BudgetConfigurationMutator) PartialUpdate(ctx context.Context, patch BudgetConfigurationPatch) (bool, error) {
	err := m.repo.Transaction(ctx, func(repo repository.BudgetRepository) error {
		if err := applyPatch(ctx, repo, patch); err != nil {
			return err
		}
		if patch.Buckets.Empty() {
			return nil
		}

		budgets, err := repo.GetBudgetsByConfigurationID(ctx, patch.BudgetConfigurationID)
		if err != nil {
			return apperrors.Database(err)
		}
		if total := SumPercentages(budgets); total != 100 {
			return apperrors.BudgetPercentage(total)
		}
		return nil
	})
	if err != nil {
		err = asAppError(err)
		logger.Get().Warnw("budget configuration patch not applied",
			"budget_configuration_id", patch.BudgetConfigurationID,
			"user_id", patch.UserID,
			"error", err,
		)
		return false, err
	}
	return true, nil
}

func applyPatch(ctx context.Context, repo repository.BudgetRepository, patch BudgetConfigurationPatch) error {
	configID := patch.BudgetConfigurationID

	if patch.BudgetConfigurationName != nil {
		if err := repo.UpdateConfigurationName(ctx, configID, *patch.BudgetConfigurationName); err != nil {
			return apperrors.Database(err)
		}
	}

	if len(patch.Buckets.Delete) > 0 {
		ids := make([]uint, 0, len(patch.Buckets.Delete))
		for _, action := range patch.Buckets.Delete {
			ids = append(ids, *action.ID)
		}
		if err := repo.DeleteBudgets(ctx, configID, ids); err != nil {
			return apperrors.Database(err)
		}
	}

	if len(patch.Buckets.Create) > 0 {
		budgets := make([]models.Budget, 0, len(patch.Buckets.Create))
		for _, action := range patch.Buckets.Create {
			name, percentage := "", 0
			if action.Name != nil {
				name = *action.Name
			}
			if action.Percentage != nil {
				percentage = *action.Percentage
			}
			if name == "" || percentage == 0 {
				continue
			}
			budgets = append(budgets, models.Budget{
				BudgetConfigurationID: configID,
				UserID:                patch.UserID,
				Name:                  name,
				Percentage:            percentage,
			})
		}
		if err := repo.CreateBudgets(ctx, budgets); err != nil {
			return apperrors.Database(err)
		}
	}

	if len(patch.Buckets.Update) > 0 {
		updates := make([]repository.BudgetUpdate, 0, len(patch.Buckets.Update))
		for _, action := range patch.Buckets.Update {
			updates = append(updates, repository.BudgetUpdate{
				ID:         *action.ID,
				Name:       action.Name,
				Percentage: action.Percentage,
			})
		}
		if err := repo.UpdateBudgets(ctx, configID, updates); err != nil {
			return apperrors.Database(err)
		}
	}

	return nil
}
