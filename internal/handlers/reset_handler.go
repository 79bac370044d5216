package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendly/internal/errors"
	"spendly/internal/services"
)

// ResetHandler handles the destructive month reset.
type ResetHandler struct {
	resetService services.ResetServicer
	auditService services.AuditServicer
}

// NewResetHandler creates a new ResetHandler.
func NewResetHandler(resetService services.ResetServicer, auditService services.AuditServicer) *ResetHandler {
	return &ResetHandler{resetService: resetService, auditService: auditService}
}

// ResetCurrentMonth deletes the current month's transactions
// @Summary     Reset current month
// @Description Delete the current month's expenses and investments. Requires explicit confirmation; budgets and reports are untouched.
// @Tags        reset
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ConfirmRequest true "Explicit confirmation"
// @Success     200 {object} services.ResetResult "Deletion counts"
// @Failure     400 {object} ErrorResponse "Confirmation missing"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reset/month [post]
func (h *ResetHandler) ResetCurrentMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Confirmation is checked before any data is touched.
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		respondWithError(c, apperrors.ErrConfirmationRequired)
		return
	}

	result, err := h.resetService.ResetCurrentMonth(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RESET_MONTH", "reset", 0, c.ClientIP(),
		map[string]interface{}{
			"month_year":          result.MonthYear,
			"expenses_deleted":    result.ExpensesDeleted,
			"investments_deleted": result.InvestmentsDeleted,
		})

	c.JSON(http.StatusOK, gin.H{"result": result})
}
