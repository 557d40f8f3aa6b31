package services

import (
	"context"

	"budgetplan/internal/chain"
	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/models"
	"budgetplan/internal/repository"
)

// BudgetConfigurationPatch flows through the patch chain. Actions holds the
// raw request lines; the reconciliation link fills Buckets.
type BudgetConfigurationPatch struct {
	BudgetConfigurationID   uint
	BudgetConfigurationName *string
	UserID                  uint
	Actions                 []models.BudgetAction
	Buckets                 BudgetBuckets
}

// NewBudgetConfiguration flows through the creation chain.
type NewBudgetConfiguration struct {
	UserID  uint
	Name    string
	Budgets []NewBudget
}

// NewPatchValidator builds the chain run before a configuration patch is applied:
// ownership, then name availability, then percentage reconciliation.
func NewPatchValidator(repo repository.BudgetRepository) *chain.Chain[BudgetConfigurationPatch] {
	return chain.New[BudgetConfigurationPatch](
		configurationOwnedBy(repo),
		patchNameAvailable(repo),
		reconcilePatch(repo),
	)
}

// NewCreateValidator builds the chain run before a configuration is created.
func NewCreateValidator(repo repository.BudgetRepository) *chain.Chain[NewBudgetConfiguration] {
	return chain.New[NewBudgetConfiguration](
		createNameAvailable(repo),
		createPercentagesComplete,
	)
}

// NewOwnershipValidator builds the chain used by operations that only need
// the configuration to exist and belong to the caller.
func NewOwnershipValidator(repo repository.BudgetRepository) *chain.Chain[BudgetConfigurationPatch] {
	return chain.New[BudgetConfigurationPatch](configurationOwnedBy(repo))
}

func configurationOwnedBy(repo repository.BudgetRepository) chain.Link[BudgetConfigurationPatch] {
	return func(ctx context.Context, patch BudgetConfigurationPatch) (BudgetConfigurationPatch, error) {
		found, err := repo.FindConfigurations(ctx, repository.ConfigurationFilter{
			ID:     &patch.BudgetConfigurationID,
			UserID: &patch.UserID,
		})
		if err != nil {
			return patch, apperrors.Database(err)
		}
		if len(found) == 0 {
			return patch, apperrors.ErrBudgetConfigurationNotFound
		}
		return patch, nil
	}
}

func patchNameAvailable(repo repository.BudgetRepository) chain.Link[BudgetConfigurationPatch] {
	return func(ctx context.Context, patch BudgetConfigurationPatch) (BudgetConfigurationPatch, error) {
		if patch.BudgetConfigurationName == nil {
			return patch, nil
		}
		err := ensureNameAvailable(ctx, repo, patch.UserID, *patch.BudgetConfigurationName, &patch.BudgetConfigurationID)
		return patch, err
	}
}

func createNameAvailable(repo repository.BudgetRepository) chain.Link[NewBudgetConfiguration] {
	return func(ctx context.Context, cfg NewBudgetConfiguration) (NewBudgetConfiguration, error) {
		return cfg, ensureNameAvailable(ctx, repo, cfg.UserID, cfg.Name, nil)
	}
}

func ensureNameAvailable(ctx context.Context, repo repository.BudgetRepository, userID uint, name string, excludeID *uint) error {
	found, err := repo.FindConfigurations(ctx, repository.ConfigurationFilter{
		UserID:    &userID,
		Name:      &name,
		ExcludeID: excludeID,
	})
	if err != nil {
		return apperrors.Database(err)
	}
	if len(found) > 0 {
		return apperrors.ErrBudgetConfigurationNameInUse
	}
	return nil
}

// reconcilePatch is skipped entirely for rename-only patches.
func reconcilePatch(repo repository.BudgetRepository) chain.Link[BudgetConfigurationPatch] {
	return func(ctx context.Context, patch BudgetConfigurationPatch) (BudgetConfigurationPatch, error) {
		if len(patch.Actions) == 0 {
			return patch, nil
		}

		existing, err := repo.GetBudgetsByConfigurationID(ctx, patch.BudgetConfigurationID)
		if err != nil {
			return patch, apperrors.Database(err)
		}
		if len(existing) == 0 {
			return patch, apperrors.ErrBudgetsNotFound
		}

		buckets, total := ReconcileBudgetActions(existing, patch.Actions)
		if total != 100 {
			return patch, apperrors.BudgetPercentage(total)
		}

		patch.Buckets = buckets
		return patch, nil
	}
}

func createPercentagesComplete(_ context.Context, cfg NewBudgetConfiguration) (NewBudgetConfiguration, error) {
	if len(cfg.Budgets) == 0 {
		return cfg, apperrors.ErrBudgetsNotFound
	}
	total := 0
	for _, b := range cfg.Budgets {
		total += b.Percentage
	}
	if total != 100 {
		return cfg, apperrors.BudgetPercentage(total)
	}
	return cfg, nil
}
