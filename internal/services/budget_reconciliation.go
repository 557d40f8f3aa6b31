package services

import (
	"budgetplan/internal/models"
)

// BudgetBuckets is the classification of a batch of budget actions.
type BudgetBuckets struct {
	Update []models.BudgetAction
	Delete []models.BudgetAction
	Create []models.BudgetAction
}

// Empty reports whether no action landed in any bucket.
func (b BudgetBuckets) Empty() bool {
	return len(b.Update) == 0 && len(b.Delete) == 0 && len(b.Create) == 0
}

// ReconcileBudgetActions classifies actions against the existing budgets of a
// configuration and returns the total percentage that applying them yields.
//
// Deletes of unknown ids and actions that are neither delete, create nor
// update are dropped. Updates contribute new minus old percentage when both
// are known; a rename without a percentage contributes nothing.
func ReconcileBudgetActions(existing []models.Budget, actions []models.BudgetAction) (BudgetBuckets, int) {
	byID := make(map[uint]models.Budget, len(existing))
	total := 0
	for _, b := range existing {
		byID[b.ID] = b
		total += b.Percentage
	}

	var buckets BudgetBuckets
	for _, action := range actions {
		switch {
		case action.IsDelete():
			current, ok := byID[*action.ID]
			if !ok {
				continue
			}
			buckets.Delete = append(buckets.Delete, action)
			total -= current.Percentage

		case action.IsCreate():
			buckets.Create = append(buckets.Create, action)
			if action.Percentage != nil {
				total += *action.Percentage
			}

		case action.IsUpdate():
			buckets.Update = append(buckets.Update, action)
			if current, ok := byID[*action.ID]; ok && action.Percentage != nil {
				total += *action.Percentage - current.Percentage
			}
		}
	}

	return buckets, total
}

// SumPercentages adds up the percentage of every budget.
func SumPercentages(budgets []models.Budget) int {
	total := 0
	for _, b := range budgets {
		total += b.Percentage
	}
	return total
}
