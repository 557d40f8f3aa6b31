package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetplan/internal/config"
	"budgetplan/internal/exchange"
	"budgetplan/internal/logger"
	"budgetplan/internal/middleware"
	"budgetplan/internal/models"
	"budgetplan/internal/testutil"
	"budgetplan/internal/validator"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp holds the full application stack for end-to-end tests.
type testApp struct {
	t      *testing.T
	DB     *gorm.DB
	Router *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	rates := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"USDARS=X","currency":"ARS","regularMarketPrice":1000}}],"error":null}}`))
	}))
	t.Cleanup(rates.Close)

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	fetcher := exchange.NewFetcher(exchange.Options{
		BaseURL:  rates.URL,
		Timeout:  time.Second,
		Retries:  1,
		CacheTTL: time.Minute,
		Fallback: 1,
	})

	router := NewRouter(Dependencies{
		Config: &config.Config{JWTSecret: testSecret, CORSAllowedOrigins: []string{"*"}},
		DB:     db,
		Rates:  fetcher,
	})
	return &testApp{t: t, DB: db, Router: router}
}

func (a *testApp) request(method, path, token, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// registerUser creates a user through the API and returns a bearer token for it.
func (a *testApp) registerUser(email string) string {
	a.t.Helper()
	rec := a.request("POST", "/api/v1/users", "", fmt.Sprintf(`{"email":%q}`, email))
	if rec.Code != http.StatusCreated {
		a.t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decode(a.t, rec, &body)

	token, err := middleware.IssueToken(testSecret, body.User.ID, time.Hour)
	if err != nil {
		a.t.Fatalf("issue token: %v", err)
	}
	return token
}

// createConfiguration posts a configuration and returns its id and budget ids in order.
func (a *testApp) createConfiguration(token, name string, percentages ...int) (uint, []uint) {
	a.t.Helper()
	budgets := make([]string, len(percentages))
	for i, pct := range percentages {
		budgets[i] = fmt.Sprintf(`{"name":"Budget %d","percentage":%d}`, i+1, pct)
	}
	body := fmt.Sprintf(`{"name":%q,"budgets":[%s]}`, name, strings.Join(budgets, ","))

	rec := a.request("POST", "/api/v1/budget-configurations", token, body)
	if rec.Code != http.StatusCreated {
		a.t.Fatalf("create configuration: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Configuration models.BudgetConfiguration `json:"budget_configuration"`
	}
	decode(a.t, rec, &resp)

	ids := make([]uint, len(resp.Configuration.Budgets))
	for i, b := range resp.Configuration.Budgets {
		ids[i] = b.ID
	}
	return resp.Configuration.ID, ids
}

func (a *testApp) budgets(configurationID uint) map[string]models.Budget {
	a.t.Helper()
	out := make(map[string]models.Budget)
	for _, b := range testutil.LoadBudgets(a.t, a.DB, configurationID) {
		out[b.Name] = b
	}
	return out
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decode(t, rec, &body)
	return body.Error.Code, body.Error.Message
}

func TestHealthAndAuth(t *testing.T) {
	app := setupApp(t)

	if rec := app.request("GET", "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	rec := app.request("GET", "/api/v1/budget-configurations", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if code, _ := errorOf(t, rec); code != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED, got %s", code)
	}

	token := app.registerUser("profile@example.com")
	rec = app.request("GET", "/api/v1/profile", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestBudgetConfigurationFlow(t *testing.T) {
	t.Run("update then delete is balanced", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("a@example.com")
		cfgID, ids := app.createConfiguration(token, "Plan", 30, 70)

		body := fmt.Sprintf(`{"budgets":[{"id":%d,"percentage":100},{"id":%d,"delete":true}]}`, ids[0], ids[1])
		rec := app.request("PATCH", fmt.Sprintf("/api/v1/budget-configurations/%d", cfgID), token, body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		budgets := app.budgets(cfgID)
		if len(budgets) != 1 || budgets["Budget 1"].Percentage != 100 {
			t.Errorf("expected a single 100%% budget, got %+v", budgets)
		}
	})

	t.Run("deletes and create are balanced", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("b@example.com")
		cfgID, ids := app.createConfiguration(token, "Plan", 60, 20, 20)

		body := fmt.Sprintf(`{"budgets":[{"id":%d,"delete":true},{"id":%d,"delete":true},{"create":true,"name":"Life","percentage":40}]}`,
			ids[1], ids[2])
		rec := app.request("PATCH", fmt.Sprintf("/api/v1/budget-configurations/%d", cfgID), token, body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		budgets := app.budgets(cfgID)
		if len(budgets) != 2 || budgets["Budget 1"].Percentage != 60 || budgets["Life"].Percentage != 40 {
			t.Errorf("unexpected budgets: %+v", budgets)
		}
	})

	t.Run("reports the computed total", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("c@example.com")
		cfgID, ids := app.createConfiguration(token, "Plan", 60, 40)

		body := fmt.Sprintf(`{"budgets":[{"id":%d,"percentage":70}]}`, ids[0])
		rec := app.request("PATCH", fmt.Sprintf("/api/v1/budget-configurations/%d", cfgID), token, body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		code, message := errorOf(t, rec)
		if code != "BUDGET_PERCENTAGE" || message != "The total percentage must be 100%. Current total: 110%" {
			t.Errorf("unexpected error %s: %s", code, message)
		}
		if budgets := app.budgets(cfgID); budgets["Budget 1"].Percentage != 60 {
			t.Errorf("expected budget to keep 60%%, got %d", budgets["Budget 1"].Percentage)
		}
	})

	t.Run("other users cannot see a configuration", func(t *testing.T) {
		app := setupApp(t)
		owner := app.registerUser("owner@example.com")
		intruder := app.registerUser("intruder@example.com")
		cfgID, _ := app.createConfiguration(owner, "Plan", 100)

		path := fmt.Sprintf("/api/v1/budget-configurations/%d", cfgID)
		if rec := app.request("GET", path, intruder, ""); rec.Code != http.StatusNotFound {
			t.Errorf("get: expected 404, got %d", rec.Code)
		}
		if rec := app.request("DELETE", path, intruder, ""); rec.Code != http.StatusNotFound {
			t.Errorf("delete: expected 404, got %d", rec.Code)
		}
		if rec := app.request("GET", path, owner, ""); rec.Code != http.StatusOK {
			t.Errorf("owner get: expected 200, got %d", rec.Code)
		}
	})

	t.Run("audit trail is written", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("audit@example.com")
		cfgID, _ := app.createConfiguration(token, "Plan", 100)
		app.request("POST", fmt.Sprintf("/api/v1/budget-configurations/%d/activate", cfgID), token, "")

		var count int64
		app.DB.Model(&models.AuditLog{}).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 audit rows, got %d", count)
		}
	})
}

func TestWageFlow(t *testing.T) {
	t.Run("wage is split across active budgets", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("d@example.com")
		cfgID, _ := app.createConfiguration(token, "Plan", 50, 50)

		rec := app.request("POST", "/api/v1/wages", token, `{"amount":"5000","currency":"USD","date":"2024-03-15"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		for name, b := range app.budgets(cfgID) {
			if !b.RemainingAllocation.Equal(decimal.NewFromInt(2500)) {
				t.Errorf("%s: expected 2500, got %s", name, b.RemainingAllocation)
			}
		}
	})

	t.Run("same month accumulates into one summary", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("e@example.com")
		app.createConfiguration(token, "Plan", 100)

		for _, body := range []string{
			`{"amount":"3000","currency":"USD","date":"2024-04-01"}`,
			`{"amount":"5000","currency":"USD","date":"2024-04-20"}`,
		} {
			if rec := app.request("POST", "/api/v1/wages", token, body); rec.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
			}
		}

		rec := app.request("GET", "/api/v1/wages/summaries", token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var page struct {
			Data []models.MonthlyWageSummary `json:"data"`
		}
		decode(t, rec, &page)
		if len(page.Data) != 1 {
			t.Fatalf("expected one summary, got %d", len(page.Data))
		}
		if page.Data[0].MonthAndYear != "2024-04" || !page.Data[0].TotalWage.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("unexpected summary: %+v", page.Data[0])
		}

		rec = app.request("GET", "/api/v1/wages", token, "")
		var wages struct {
			TotalItems int64 `json:"total_items"`
		}
		decode(t, rec, &wages)
		if wages.TotalItems != 2 {
			t.Errorf("expected 2 wages, got %d", wages.TotalItems)
		}
	})

	t.Run("ars wage is converted with the fetched rate", func(t *testing.T) {
		app := setupApp(t)
		token := app.registerUser("ars@example.com")

		rec := app.request("POST", "/api/v1/wages", token, `{"amount":"250000","currency":"ARS"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Wage models.Wage `json:"wage"`
		}
		decode(t, rec, &resp)
		if !resp.Wage.AmountUSD.Equal(decimal.NewFromInt(250)) || resp.Wage.ExchangeRate != 1000 {
			t.Errorf("unexpected conversion: usd=%s rate=%f", resp.Wage.AmountUSD, resp.Wage.ExchangeRate)
		}
	})
}
