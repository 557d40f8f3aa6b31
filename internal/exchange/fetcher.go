// Package exchange fetches the USD to ARS exchange rate used to price wages.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"budgetplan/internal/config"
	"budgetplan/internal/logger"
)

const (
	usdARSTicker = "USDARS=X"
	userAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// chartResponse is the subset of the Yahoo v8 chart payload we read.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		Currency           string  `json:"currency"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Options configures a Fetcher.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	CacheTTL   time.Duration
	Fallback   float64
}

// Fetcher returns how many ARS one USD buys. A fetched rate is cached for
// CacheTTL; when every attempt fails the fallback rate is returned instead.
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
	retries    int
	retryDelay time.Duration
	cacheTTL   time.Duration
	fallback   float64
	now        func() time.Time

	mu        sync.RWMutex
	rate      float64
	expiresAt time.Time
}

// NewFetcher creates a Fetcher from opts.
func NewFetcher(opts Options) *Fetcher {
	retries := opts.Retries
	if retries < 1 {
		retries = 1
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		retries:    retries,
		retryDelay: opts.RetryDelay,
		cacheTTL:   opts.CacheTTL,
		fallback:   opts.Fallback,
		now:        time.Now,
	}
}

// NewFetcherFromConfig creates a Fetcher using the EXCHANGE_RATE_* settings.
func NewFetcherFromConfig(cfg *config.Config) *Fetcher {
	return NewFetcher(Options{
		BaseURL:    cfg.ExchangeRateURL,
		Timeout:    cfg.ExchangeRateTimeout,
		Retries:    cfg.ExchangeRateRetries,
		RetryDelay: cfg.ExchangeRateRetryDelay,
		CacheTTL:   cfg.ExchangeRateCacheTTL,
		Fallback:   cfg.ExchangeRateFallback,
	})
}

// USDToARS returns the cached rate, fetching a fresh one when it has expired.
// It never fails.
func (f *Fetcher) USDToARS(ctx context.Context) float64 {
	if rate, ok := f.cached(); ok {
		return rate
	}

	rate, err := f.Rate(ctx)
	if err != nil {
		logger.Get().Warnw("exchange rate unavailable, using fallback",
			"ticker", usdARSTicker,
			"fallback", f.fallback,
			"error", err,
		)
		return f.fallback
	}

	f.mu.Lock()
	f.rate = rate
	f.expiresAt = f.now().Add(f.cacheTTL)
	f.mu.Unlock()

	return rate
}

func (f *Fetcher) cached() (float64, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.rate > 0 && f.now().Before(f.expiresAt) {
		return f.rate, true
	}
	return 0, false
}

// Rate fetches the current rate, retrying with a linearly growing delay.
// It returns the last error once all attempts have failed.
func (f *Fetcher) Rate(ctx context.Context) (float64, error) {
	var lastErr error
	for attempt := 1; attempt <= f.retries; attempt++ {
		rate, err := f.fetchRate(ctx)
		if err == nil {
			return rate, nil
		}
		lastErr = err
		logger.Get().Debugw("exchange rate attempt failed",
			"attempt", attempt,
			"retries", f.retries,
			"error", err,
		)

		if attempt == f.retries {
			break
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(f.retryDelay * time.Duration(attempt)):
		}
	}
	return 0, fmt.Errorf("fetching %s after %d attempts: %w", usdARSTicker, f.retries, lastErr)
}

func (f *Fetcher) fetchRate(ctx context.Context) (float64, error) {
	url := f.baseURL + "/" + usdARSTicker + "?interval=1d&range=1d"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building exchange rate request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange rate request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate request: unexpected status %d", resp.StatusCode)
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return 0, fmt.Errorf("decoding exchange rate response: %w", err)
	}

	if chart.Chart.Error != nil {
		return 0, fmt.Errorf("exchange rate chart error: %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return 0, fmt.Errorf("no exchange rate results for %s", usdARSTicker)
	}

	rate := chart.Chart.Result[0].Meta.RegularMarketPrice
	if rate <= 0 {
		return 0, fmt.Errorf("invalid exchange rate for %s: %f", usdARSTicker, rate)
	}
	return rate, nil
}
