package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendly/internal/errors"
	"spendly/internal/models"
	"spendly/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetBudgetsRequest represents the payload for the bulk budget upsert.
// Allocations maps category name to the allocated amount in cents.
type SetBudgetsRequest struct {
	Allocations map[models.ExpenseCategory]int64 `json:"allocations" binding:"required"`
}

// SetBudgets handles the bulk monthly budget upsert
// @Summary     Set monthly budgets
// @Description Upsert budget allocations for the month; the whole payload is validated before any write
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month   query string            false "Month (YYYY-MM, default current)"
// @Param       request body  SetBudgetsRequest true  "Category allocations in cents"
// @Success     200 {array} models.Budget "Budget rows after upsert"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [put]
func (h *BudgetHandler) SetBudgets(c *gin.Context) {
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

	var req SetBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budgets, err := h.budgetService.SetMonthlyBudgets(userID, monthYear, req.Allocations)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BUDGETS", "budget", 0, c.ClientIP(),
		map[string]interface{}{"month_year": monthYear, "categories": len(req.Allocations)})

	c.JSON(http.StatusOK, gin.H{
		"month_year": monthYear,
		"budgets":    budgets,
	})
}

// GetBudgets returns the month's budget rows
// @Summary     List monthly budgets
// @Description Get the budget rows for a month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, default current)"
// @Success     200 {array} models.Budget "Budget rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	budgets, err := h.budgetService.GetMonthlyBudgets(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month_year": monthYear,
		"budgets":    budgets,
	})
}

// GetBudgetOverview returns allocation state for every category
// @Summary     Get budget overview
// @Description Get per-category allocation, spend, and percent used for a month, including unbudgeted categories
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, default current)"
// @Success     200 {array} services.BudgetOverviewRow "Overview rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/overview [get]
func (h *BudgetHandler) GetBudgetOverview(c *gin.Context) {
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

	rows, err := h.budgetService.GetMonthlyOverview(userID, monthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month_year": monthYear,
		"overview":   rows,
	})
}
