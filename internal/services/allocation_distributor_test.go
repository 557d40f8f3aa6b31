package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"budgetplan/internal/models"
	"budgetplan/internal/repository"
	"budgetplan/internal/testutil"
)

func TestAllocationShare(t *testing.T) {
	tests := []struct {
		amount     string
		percentage int
		want       string
	}{
		{"5000", 50, "2500"},
		{"1000", 33, "330"},
		{"333.33", 33, "110"},
		{"0.05", 50, "0.03"},
		{"1234.56", 0, "0"},
		{"1234.56", 100, "1234.56"},
	}

	for _, tt := range tests {
		got := AllocationShare(decimal.RequireFromString(tt.amount), tt.percentage)
		testutil.AssertDecimal(t, got, tt.want, tt.amount+" share")
	}
}

func TestSplitAmount(t *testing.T) {
	tenOf := func(pct int) []int {
		out := make([]int, 10)
		for i := range out {
			out[i] = pct
		}
		return out
	}

	tests := []struct {
		name        string
		amount      string
		percentages []int
		want        []string
		total       string
	}{
		{"even split", "5000", []int{50, 50}, []string{"2500", "2500"}, "5000"},
		{"odd cent goes to first tie", "10.01", []int{50, 50}, []string{"5.01", "5"}, "10.01"},
		{"single cent", "0.01", []int{50, 50}, []string{"0.01", "0"}, "0.01"},
		{"cents across ten budgets", "0.05", tenOf(10), []string{"0.01", "0.01", "0.01", "0.01", "0.01", "0", "0", "0", "0", "0"}, "0.05"},
		{"largest remainder wins", "100.01", []int{33, 33, 34}, []string{"33", "33", "34.01"}, "100.01"},
		{"thirds", "100", []int{33, 33, 34}, []string{"33", "33", "34"}, "100"},
		{"zero percent budget", "99.99", []int{0, 60, 40}, []string{"0", "59.99", "40"}, "99.99"},
		{"sub-cent amount is rounded", "10.005", []int{50, 50}, []string{"5.01", "5"}, "10.01"},
		{"partial configuration", "200", []int{25, 25}, []string{"50", "50"}, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := SplitAmount(decimal.RequireFromString(tt.amount), tt.percentages)
			if len(shares) != len(tt.want) {
				t.Fatalf("expected %d shares, got %d", len(tt.want), len(shares))
			}
			sum := decimal.Zero
			for i, share := range shares {
				testutil.AssertDecimal(t, share, tt.want[i], fmt.Sprintf("share %d", i))
				if share.IsNegative() {
					t.Errorf("share %d is negative: %s", i, share)
				}
				sum = sum.Add(share)
			}
			testutil.AssertDecimal(t, sum, tt.total, "sum of shares")
		})
	}

	t.Run("no budgets", func(t *testing.T) {
		if shares := SplitAmount(decimal.NewFromInt(100), nil); len(shares) != 0 {
			t.Errorf("expected no shares, got %v", shares)
		}
	})
}

// allocationRepo serves a fixed active configuration and records allocation updates.
type allocationRepo struct {
	repository.BudgetRepository
	configurations []models.BudgetConfiguration
	failID         uint

	mu      sync.Mutex
	updates map[uint]models.BudgetAllocationUpdate
}

func (r *allocationRepo) FindConfigurations(context.Context, repository.ConfigurationFilter) ([]models.BudgetConfiguration, error) {
	return r.configurations, nil
}

func (r *allocationRepo) SingleUpdateBudget(_ context.Context, update models.BudgetAllocationUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updates == nil {
		r.updates = make(map[uint]models.BudgetAllocationUpdate)
	}
	r.updates[update.ID] = update
	if update.ID == r.failID {
		return errors.New("deadlock detected")
	}
	return nil
}

func TestDistribute(t *testing.T) {
	ctx := context.Background()

	t.Run("splits_wage_by_percentage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		distributor := NewAllocationDistributor(repository.NewBudgetRepository(db))
		user := testutil.CreateTestUser(t, db)
		cfg := testutil.CreateTestConfiguration(t, db, user.ID, 50, 50)
		summary := testutil.CreateTestWageSummary(t, db, user.ID, "2024-03", "5000")

		err := distributor.Distribute(ctx, user.ID, summary.ID, decimal.NewFromInt(5000))
		testutil.AssertNoError(t, err)

		for _, b := range testutil.LoadBudgets(t, db, cfg.ID) {
			testutil.AssertDecimal(t, b.RemainingAllocation, "2500", "remaining allocation")
			if b.MonthlyWageSummaryID == nil || *b.MonthlyWageSummaryID != summary.ID {
				t.Errorf("expected budget linked to summary %d, got %v", summary.ID, b.MonthlyWageSummaryID)
			}
		}
	})

	t.Run("accumulates_on_existing_allocation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		distributor := NewAllocationDistributor(repository.NewBudgetRepository(db))
		user := testutil.CreateTestUser(t, db)
		cfg := testutil.CreateTestConfiguration(t, db, user.ID, 70, 30)
		summary := testutil.CreateTestWageSummary(t, db, user.ID, "2024-03", "1500")

		testutil.AssertNoError(t, distributor.Distribute(ctx, user.ID, summary.ID, decimal.NewFromInt(1000)))
		testutil.AssertNoError(t, distributor.Distribute(ctx, user.ID, summary.ID, decimal.NewFromInt(500)))

		budgets := testutil.LoadBudgets(t, db, cfg.ID)
		testutil.AssertDecimal(t, budgets[0].RemainingAllocation, "1050", "first budget")
		testutil.AssertDecimal(t, budgets[1].RemainingAllocation, "450", "second budget")
	})

	t.Run("shares_add_up_to_wage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		distributor := NewAllocationDistributor(repository.NewBudgetRepository(db))
		user := testutil.CreateTestUser(t, db)
		cfg := testutil.CreateTestConfiguration(t, db, user.ID, 50, 50)
		summary := testutil.CreateTestWageSummary(t, db, user.ID, "2024-03", "10.01")

		testutil.AssertNoError(t, distributor.Distribute(ctx, user.ID, summary.ID, decimal.RequireFromString("10.01")))

		sum := decimal.Zero
		for _, b := range testutil.LoadBudgets(t, db, cfg.ID) {
			sum = sum.Add(b.RemainingAllocation)
		}
		testutil.AssertDecimal(t, sum, "10.01", "total allocated")
	})

	t.Run("concurrent_wages_are_not_lost", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		distributor := NewAllocationDistributor(repository.NewBudgetRepository(db))
		user := testutil.CreateTestUser(t, db)
		cfg := testutil.CreateTestConfiguration(t, db, user.ID, 50, 50)
		summary := testutil.CreateTestWageSummary(t, db, user.ID, "2024-03", "400")

		var wg sync.WaitGroup
		errs := make(chan error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- distributor.Distribute(ctx, user.ID, summary.ID, decimal.NewFromInt(100))
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			testutil.AssertNoError(t, err)
		}

		for _, b := range testutil.LoadBudgets(t, db, cfg.ID) {
			testutil.AssertDecimal(t, b.RemainingAllocation, "200", "remaining allocation")
		}
	})

	t.Run("only_active_configuration", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		distributor := NewAllocationDistributor(repository.NewBudgetRepository(db))
		user := testutil.CreateTestUser(t, db)
		inactive := testutil.CreateTestConfigurationNamed(t, db, user.ID, "Old", false, 100)
		testutil.CreateTestConfiguration(t, db, user.ID, 100)
		summary := testutil.CreateTestWageSummary(t, db, user.ID, "2024-03", "100")

		testutil.AssertNoError(t, distributor.Distribute(ctx, user.ID, summary.ID, decimal.NewFromInt(100)))

		testutil.AssertDecimal(t, testutil.LoadBudgets(t, db, inactive.ID)[0].RemainingAllocation, "0", "inactive budget")
	})

	t.Run("no_active_configuration", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		distributor := NewAllocationDistributor(repository.NewBudgetRepository(db))
		user := testutil.CreateTestUser(t, db)

		err := distributor.Distribute(ctx, user.ID, 1, decimal.NewFromInt(100))
		testutil.AssertNoError(t, err)
	})

	t.Run("failed_update_is_reported", func(t *testing.T) {
		cfg := models.BudgetConfiguration{Budgets: budgetsOf(20, 30, 50)}
		repo := &allocationRepo{configurations: []models.BudgetConfiguration{cfg}, failID: 2}
		distributor := NewAllocationDistributor(repo)

		err := distributor.Distribute(ctx, 1, 9, decimal.NewFromInt(100))
		testutil.AssertAppError(t, err, "DATABASE_ERROR")

		if len(repo.updates) != 3 {
			t.Errorf("expected every budget to be attempted, got %d", len(repo.updates))
		}
		testutil.AssertDecimal(t, repo.updates[3].Allocation, "50", "third budget")
		if repo.updates[1].MonthlyWageSummaryID != 9 {
			t.Errorf("expected summary id 9, got %d", repo.updates[1].MonthlyWageSummaryID)
		}
	})
}
