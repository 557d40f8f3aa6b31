package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetplan/internal/errors"
	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
	"budgetplan/internal/services"
)

const wageDateLayout = "2006-01-02"

// WageHandler handles wage postings.
type WageHandler struct {
	wageService  services.WageServicer
	auditService services.AuditServicer
}

// NewWageHandler creates a new WageHandler.
func NewWageHandler(wageService services.WageServicer, auditService services.AuditServicer) *WageHandler {
	return &WageHandler{wageService: wageService, auditService: auditService}
}

// RecordWageRequest represents the request payload for posting a wage.
type RecordWageRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"5000.00"`
	Currency models.Currency `json:"currency" binding:"required,wage_currency"`
	Date     string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// RecordWage handles posting a wage.
// @Summary     Post a wage
// @Description Record a wage, add it to the month's summary and distribute it across the active budgets
// @Tags        wages
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordWageRequest true "Wage details"
// @Success     201 {object} models.Wage "Wage recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wages [post]
func (h *WageHandler) RecordWage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	if !req.Amount.IsPositive() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero"))
		return
	}

	var date time.Time
	if req.Date != "" {
		// Already checked by the datetime binding.
		date, _ = time.Parse(wageDateLayout, req.Date)
	}

	wage, err := h.wageService.RecordWage(c.Request.Context(), userID, req.Amount, req.Currency, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "RECORD_WAGE", "wage", wage.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "currency": req.Currency})

	c.JSON(http.StatusCreated, gin.H{"wage": wage})
}

// GetWages handles listing the user's wages.
// @Summary     Get wages
// @Description Get a paginated list of the user's wages, newest first
// @Tags        wages
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Wage] "Paginated wages"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wages [get]
func (h *WageHandler) GetWages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.wageService.GetUserWages(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMonthlySummaries handles listing the user's monthly wage summaries.
// @Summary     Get monthly wage summaries
// @Description Get a paginated list of the user's monthly wage totals, newest month first
// @Tags        wages
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.MonthlyWageSummary] "Paginated summaries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wages/summaries [get]
func (h *WageHandler) GetMonthlySummaries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.wageService.GetMonthlyWageSummaries(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
