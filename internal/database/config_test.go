package database

import (
	"testing"

	"budgetplan/internal/config"
)

func TestConfig_ConnectionStrings(t *testing.T) {
	cfg := NewConfig(&config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "alice",
		DBPassword: "s3cret",
		DBName:     "budgets",
		DBSSLMode:  "require",
	})

	wantDSN := "host=db port=5433 user=alice password=s3cret dbname=budgets sslmode=require"
	if got := cfg.DSN(); got != wantDSN {
		t.Errorf("DSN() = %q, want %q", got, wantDSN)
	}

	wantURL := "postgres://alice:s3cret@db:5433/budgets?sslmode=require"
	if got := cfg.URL(); got != wantURL {
		t.Errorf("URL() = %q, want %q", got, wantURL)
	}
}
