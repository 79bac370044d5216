package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendly/internal/errors"
	"spendly/internal/services"
)

// ReportHandler handles monthly report generation requests.
type ReportHandler struct {
	reportService services.ReportServicer
	auditService  services.AuditServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, auditService services.AuditServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, auditService: auditService}
}

// ConfirmRequest represents an explicit confirmation payload.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// GenerateMonthlyReport generates and returns the current month's report
// @Summary     Generate monthly report
// @Description Generate the current month's report artifact and return it for download. Requires explicit confirmation.
// @Tags        reports
// @Accept      json
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       request body ConfirmRequest true "Explicit confirmation"
// @Success     200 {file} file "Report artifact"
// @Failure     400 {object} ErrorResponse "Confirmation missing"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [post]
func (h *ReportHandler) GenerateMonthlyReport(c *gin.Context) {
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

	file, warning, err := h.reportService.GenerateMonthlyReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "GENERATE_REPORT", "report", 0, c.ClientIP(),
		map[string]interface{}{"filename": file.Filename, "degraded": warning != ""})

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	if warning != "" {
		c.Header("X-Report-Warning", warning)
	}
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
