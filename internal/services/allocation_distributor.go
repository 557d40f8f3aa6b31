package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/logger"
	"budgetplan/internal/models"
	"budgetplan/internal/repository"
)

// allocationPlaces is the precision allocations are rounded to (cents).
const allocationPlaces = 2

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.New(1, -allocationPlaces)
)

// allocationDistributor credits each budget of the active configuration with
// its percentage share of a wage.
type allocationDistributor struct {
	repo repository.BudgetRepository
	now  func() time.Time
}

// NewAllocationDistributor creates an AllocationTrigger backed by repo.
func NewAllocationDistributor(repo repository.BudgetRepository) AllocationTrigger {
	return &allocationDistributor{repo: repo, now: time.Now}
}

// AllocationShare returns percentage% of amount, rounded half away from zero to cents.
func AllocationShare(amount decimal.Decimal, percentage int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percentage))).Div(hundred).Round(allocationPlaces)
}

// SplitAmount divides amount across percentages so that the shares add up to
// exactly the rounded share of the whole. Each share is truncated to cents and
// the cents left over go to the shares with the largest truncated remainder,
// earliest first on ties.
func SplitAmount(amount decimal.Decimal, percentages []int) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(percentages))
	if len(percentages) == 0 {
		return shares
	}

	total := 0
	remainders := make([]decimal.Decimal, len(percentages))
	allocated := decimal.Zero
	for i, pct := range percentages {
		total += pct
		exact := amount.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)
		shares[i] = exact.Truncate(allocationPlaces)
		remainders[i] = exact.Sub(shares[i])
		allocated = allocated.Add(shares[i])
	}

	order := make([]int, len(percentages))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	leftover := AllocationShare(amount, total).Sub(allocated)
	for k := 0; leftover.GreaterThanOrEqual(cent); k++ {
		i := order[k%len(order)]
		shares[i] = shares[i].Add(cent)
		leftover = leftover.Sub(cent)
	}
	return shares
}

// Distribute credits every budget of the active configuration with its share
// of amount, one concurrent update per budget. Every update is attempted; the
// first failure is returned.
func (d *allocationDistributor) Distribute(ctx context.Context, userID, monthlyWageSummaryID uint, amount decimal.Decimal) error {
	active := true
	configurations, err := d.repo.FindConfigurations(ctx, repository.ConfigurationFilter{
		UserID:      &userID,
		IsActive:    &active,
		WithBudgets: true,
	})
	if err != nil {
		return apperrors.Database(err)
	}
	if len(configurations) == 0 {
		logger.Get().Warnw("no active budget configuration, wage left unallocated",
			"user_id", userID,
			"monthly_wage_summary_id", monthlyWageSummaryID,
		)
		return nil
	}

	configuration := configurations[0]
	updatedAt := d.now()

	percentages := make([]int, len(configuration.Budgets))
	for i, budget := range configuration.Budgets {
		percentages[i] = budget.Percentage
	}
	shares := SplitAmount(amount, percentages)

	var g errgroup.Group
	for i, budget := range configuration.Budgets {
		update := models.BudgetAllocationUpdate{
			ID:                   budget.ID,
			Allocation:           shares[i],
			MonthlyWageSummaryID: monthlyWageSummaryID,
			UpdatedAt:            updatedAt,
		}
		g.Go(func() error {
			return d.repo.SingleUpdateBudget(ctx, update)
		})
	}

	if err := g.Wait(); err != nil {
		return apperrors.Database(err)
	}

	logger.Get().Infow("wage distributed",
		"user_id", userID,
		"budget_configuration_id", configuration.ID,
		"budgets", len(configuration.Budgets),
		"amount", amount.String(),
	)
	return nil
}
