package testutil_test

import (
	"errors"
	"testing"

	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "budget_configurations", "budgets", "monthly_wage_summaries", "wages", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	if err := second.Table("users").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Errorf("expected an empty second database, got %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	cfg := testutil.CreateTestConfiguration(t, db, user.ID, 60, 40)
	if !cfg.IsActive {
		t.Error("expected configuration to be active")
	}
	budgets := testutil.LoadBudgets(t, db, cfg.ID)
	if len(budgets) != 2 || budgets[0].Percentage != 60 || budgets[1].Percentage != 40 {
		t.Errorf("unexpected budgets: %+v", budgets)
	}

	inactive := testutil.CreateTestConfigurationNamed(t, db, user.ID, "Spare", false, 100)
	var isActive bool
	if err := db.Table("budget_configurations").Select("is_active").Where("id = ?", inactive.ID).Scan(&isActive).Error; err != nil {
		t.Fatalf("read is_active: %v", err)
	}
	if isActive {
		t.Error("expected configuration to be inactive")
	}

	summary := testutil.CreateTestWageSummary(t, db, user.ID, "2024-05", "1500.50")
	testutil.AssertDecimal(t, summary.TotalWage, "1500.5", "total wage")
}

func TestAssertAppError(t *testing.T) {
	wrapped := apperrors.Database(errors.New("boom"))
	testutil.AssertAppError(t, wrapped, "DATABASE_ERROR")
	testutil.AssertNoError(t, nil)
}
