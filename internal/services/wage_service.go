package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
	"budgetplan/internal/repository"
)

// MonthAndYearLayout is the time layout of MonthlyWageSummary.MonthAndYear.
const MonthAndYearLayout = "2006-01"

// wageService records wages, keeps monthly summaries and triggers allocation.
type wageService struct {
	repo        repository.WageRepository
	rates       RateSource
	allocations AllocationTrigger
}

// NewWageService creates a new WageServicer.
func NewWageService(repo repository.WageRepository, rates RateSource, allocations AllocationTrigger) WageServicer {
	return &wageService{repo: repo, rates: rates, allocations: allocations}
}

// RecordWage stores a wage, folds it into the month's summary and distributes
// it across the user's active budgets. A failed distribution is returned
// after the wage has been stored.
func (s *wageService) RecordWage(
	ctx context.Context,
	userID uint,
	amount decimal.Decimal,
	currency models.Currency,
	date time.Time,
) (*models.Wage, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if currency != models.CurrencyUSD && currency != models.CurrencyARS {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be USD or ARS")
	}
	if date.IsZero() {
		date = time.Now()
	}

	rate := s.rates.USDToARS(ctx)
	amountUSD, amountARS := convert(amount, currency, rate)

	wage := &models.Wage{
		UserID:       userID,
		Amount:       amount,
		Currency:     currency,
		AmountUSD:    amountUSD,
		AmountARS:    amountARS,
		ExchangeRate: rate,
		Date:         date,
	}

	err := s.repo.Transaction(ctx, func(repo repository.WageRepository) error {
		summary, err := upsertMonthlySummary(ctx, repo, userID, date.Format(MonthAndYearLayout), amount)
		if err != nil {
			return err
		}
		if summary == nil || summary.ID == 0 {
			return apperrors.ErrMissingMonthlyWageSummaryID
		}

		wage.MonthlyWageSummaryID = summary.ID
		if err := repo.CreateWage(ctx, wage); err != nil {
			return apperrors.Database(err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	if err := s.allocations.Distribute(ctx, userID, wage.MonthlyWageSummaryID, amount); err != nil {
		return nil, err
	}

	return wage, nil
}

func upsertMonthlySummary(
	ctx context.Context,
	repo repository.WageRepository,
	userID uint,
	monthAndYear string,
	amount decimal.Decimal,
) (*models.MonthlyWageSummary, error) {
	summary, err := repo.GetMonthlyWageSummary(ctx, userID, monthAndYear)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	if summary == nil {
		summary = &models.MonthlyWageSummary{
			UserID:       userID,
			MonthAndYear: monthAndYear,
			TotalWage:    amount,
			Remaining:    amount,
		}
		if err := repo.CreateMonthlyWageSummary(ctx, summary); err != nil {
			return nil, apperrors.Database(err)
		}
		return summary, nil
	}

	summary, err = repo.UpdateMonthlyWageSummary(ctx, summary.ID, amount)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return summary, nil
}

// convert returns the USD and ARS equivalents of amount, rate being ARS per USD.
func convert(amount decimal.Decimal, currency models.Currency, rate float64) (usd, ars decimal.Decimal) {
	r := decimal.NewFromFloat(rate)
	if currency == models.CurrencyUSD {
		return amount, amount.Mul(r).Round(allocationPlaces)
	}
	return amount.Div(r).Round(allocationPlaces), amount
}

// GetUserWages returns a paginated list of the user's wages, newest first.
func (s *wageService) GetUserWages(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Wage], error) {
	page = page.Normalize()

	wages, total, err := s.repo.ListWages(ctx, userID, page)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	return pagination.NewPageResponse(page, wages, total), nil
}

// GetMonthlyWageSummaries returns a paginated list of the user's monthly summaries, newest first.
func (s *wageService) GetMonthlyWageSummaries(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.MonthlyWageSummary], error) {
	page = page.Normalize()

	summaries, total, err := s.repo.ListMonthlyWageSummaries(ctx, userID, page)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	return pagination.NewPageResponse(page, summaries, total), nil
}
