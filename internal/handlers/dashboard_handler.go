package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendly/internal/bucket"
	"spendly/internal/services"
)

const (
	dashboardTrendBuckets = 6
	dashboardRecentLimit  = 5
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	analyticsService  services.AnalyticsServicer
	expenseService    services.ExpenseServicer
	investmentService services.InvestmentServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	analyticsService services.AnalyticsServicer,
	expenseService services.ExpenseServicer,
	investmentService services.InvestmentServicer,
) *DashboardHandler {
	return &DashboardHandler{
		analyticsService:  analyticsService,
		expenseService:    expenseService,
		investmentService: investmentService,
	}
}

// GetDashboard returns the current month's aggregated view
// @Summary     Get dashboard
// @Description Get current-month totals, breakdowns, budget comparison, trend, and recent activity
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Dashboard data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	monthYear := bucket.Current()

	totals, err := h.analyticsService.MonthlyTotals(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.analyticsService.ExpenseBreakdown(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.analyticsService.BudgetVsActual(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trend, err := h.analyticsService.ExpenseTrend(userID, dashboardTrendBuckets, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	recentExpenses, err := h.expenseService.GetRecentExpenses(userID, dashboardRecentLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recentInvestments, err := h.investmentService.GetRecentInvestments(userID, dashboardRecentLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month_year":         monthYear,
		"totals":             totals,
		"expense_breakdown":  breakdown,
		"budgets":            budgets,
		"expense_trend":      trend,
		"recent_expenses":    recentExpenses,
		"recent_investments": recentInvestments,
	})
}
