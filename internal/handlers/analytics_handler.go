package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendly/internal/services"
)

const analyticsTrendBuckets = 12

// AnalyticsHandler serves the long-range analytics views.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetTrends returns the 12-bucket expense and investment trends
// @Summary     Get trends
// @Description Get expense and investment totals per month bucket for the trailing year
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Trend series"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trends [get]
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	expenseTrend, err := h.analyticsService.ExpenseTrend(userID, analyticsTrendBuckets, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentTrend, err := h.analyticsService.InvestmentTrend(userID, analyticsTrendBuckets, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expense_trend":    expenseTrend,
		"investment_trend": investmentTrend,
	})
}

// GetBreakdown returns per-category and per-type breakdowns for a month
// @Summary     Get monthly breakdown
// @Description Get expense-by-category and investment-by-type sums for a month
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, default current)"
// @Success     200 {object} map[string]interface{} "Breakdown data"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/breakdown [get]
func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	monthYear, err := monthYearQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.MonthlyTotals(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseBreakdown, err := h.analyticsService.ExpenseBreakdown(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentBreakdown, err := h.analyticsService.InvestmentBreakdown(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	savingsRate, err := h.analyticsService.SavingsRate(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month_year":           monthYear,
		"totals":               totals,
		"expense_breakdown":    expenseBreakdown,
		"investment_breakdown": investmentBreakdown,
		"savings_rate":         savingsRate,
	})
}
