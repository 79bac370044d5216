package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spendly/internal/bucket"
	apperrors "spendly/internal/errors"
	"spendly/internal/logger"
	"spendly/internal/models"
	"spendly/internal/report"
)

const trendBuckets = 6

// reportService assembles the current month's data, renders it with the
// process's primary renderer, and degrades to plain text when PDF
// rendering fails. The artifact is written under MediaDir/reports with a
// deterministic name, so regenerating a month overwrites in place.
type reportService struct {
	db        *gorm.DB
	analytics AnalyticsServicer
	primary   report.Renderer
	fallback  report.Renderer
	cfg       report.Config
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, analytics AnalyticsServicer, cfg report.Config) ReportServicer {
	return &reportService{
		db:        db,
		analytics: analytics,
		primary:   report.NewRenderer(cfg),
		fallback:  report.NewTextRenderer(cfg),
		cfg:       cfg,
	}
}

// GenerateMonthlyReport builds the report for the current bucket, persists
// the artifact and the MonthlyReport row, and returns the file for
// delivery. The warning return is non-empty whenever the artifact is text
// instead of PDF, whether the capability is absent or the render failed.
func (s *reportService) GenerateMonthlyReport(userID uint) (*ReportFile, string, error) {
	monthYear := bucket.Current()

	data, err := s.gather(userID, monthYear)
	if err != nil {
		return nil, "", err
	}

	renderer := s.primary
	warning := ""
	if renderer.Format() == report.FormatText {
		// The PDF capability is absent, so the silent text fallback still
		// carries a user-visible advisory.
		warning = "PDF rendering is unavailable; a plain-text report was produced instead."
	}

	artifact, renderErr := renderer.Render(data)
	if renderErr != nil {
		logger.Get().Warnw("Report rendering degraded to text",
			"user_id", userID,
			"month_year", monthYear,
			"error", renderErr,
		)
		data.FailureDetail = renderErr.Error()
		renderer = s.fallback
		warning = "PDF generation failed; a plain-text report was produced instead."
		artifact, err = renderer.Render(data)
		if err != nil {
			return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	format := renderer.Format()
	filename := fmt.Sprintf("monthly_report_%s_%s.%s", data.Username, monthYear, format)
	path, err := s.writeArtifact(filename, artifact)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrReportWriteFailed, err)
	}

	row := models.MonthlyReport{
		UserID:           userID,
		MonthYear:        monthYear,
		TotalIncome:      data.TotalIncome,
		TotalExpenses:    data.TotalExpenses,
		TotalInvestments: data.TotalInvestments,
		TotalSavings:     data.TotalSavings,
		GeneratedAt:      data.GeneratedAt,
		ArtifactPath:     path,
		ArtifactFormat:   string(format),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month_year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_income", "total_expenses", "total_investments", "total_savings",
			"generated_at", "artifact_path", "artifact_format",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ReportFile{
		Path:        path,
		Filename:    filename,
		ContentType: format.ContentType(),
		Data:        artifact,
	}, warning, nil
}

// gather collects everything the renderer needs for one user-month.
func (s *reportService) gather(userID uint, monthYear string) (*report.Data, error) {
	var user models.User
	err := s.db.Preload("Profile").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals, err := s.analytics.MonthlyTotals(userID, monthYear)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.analytics.ExpenseBreakdown(userID, monthYear)
	if err != nil {
		return nil, err
	}
	trend, err := s.analytics.ExpenseTrend(userID, trendBuckets, time.Now())
	if err != nil {
		return nil, err
	}

	// The report covers the requested month only; the dashboard's budget
	// fallback does not apply here.
	comparison, err := s.analytics.BudgetVsActual(userID, monthYear)
	if err != nil {
		return nil, err
	}
	budgetRows := make([]report.BudgetRow, 0, len(comparison.Rows))
	if !comparison.FellBack {
		for _, row := range comparison.Rows {
			budgetRows = append(budgetRows, report.BudgetRow{
				Category:    string(row.Category),
				Allocated:   row.Allocated,
				Actual:      row.Actual,
				Remaining:   row.Remaining,
				PercentUsed: row.PercentUsed,
			})
		}
	}

	expenses, err := s.monthExpenses(userID, monthYear)
	if err != nil {
		return nil, err
	}
	investments, err := s.monthInvestments(userID, monthYear)
	if err != nil {
		return nil, err
	}

	data := &report.Data{
		Username:         user.Username,
		Email:            user.Email,
		MonthYear:        monthYear,
		GeneratedAt:      time.Now(),
		TotalIncome:      totals.Income,
		TotalExpenses:    totals.Expenses,
		TotalInvestments: totals.Investments,
		TotalSavings:     totals.Savings,
		BudgetRows:       budgetRows,
		Expenses:         expenses,
		Investments:      investments,
	}
	if user.Profile != nil {
		data.FullName = user.Profile.FullName
	}
	for _, slice := range breakdown {
		data.ExpenseBreakdown = append(data.ExpenseBreakdown, report.CategorySlice{
			Category: string(slice.Category),
			Total:    slice.Total,
		})
	}
	for _, point := range trend {
		data.Trend = append(data.Trend, report.TrendPoint{
			Bucket: point.Bucket,
			Total:  point.Total,
		})
	}
	return data, nil
}

func (s *reportService) monthExpenses(userID uint, monthYear string) ([]report.TransactionRow, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND month_year = ?", userID, monthYear).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	rows := make([]report.TransactionRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, report.TransactionRow{
			Date:        e.Date,
			Label:       string(e.Category),
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	return rows, nil
}

func (s *reportService) monthInvestments(userID uint, monthYear string) ([]report.TransactionRow, error) {
	var investments []models.Investment
	err := s.db.Where("user_id = ? AND month_year = ?", userID, monthYear).
		Order("date DESC").
		Find(&investments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	rows := make([]report.TransactionRow, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, report.TransactionRow{
			Date:        inv.Date,
			Label:       string(inv.Type),
			Description: inv.Description,
			Amount:      inv.Amount,
		})
	}
	return rows, nil
}

// writeArtifact persists the artifact atomically under MediaDir/reports.
// Temp-write + rename means a crashed write never leaves a truncated
// report behind, and regeneration replaces the prior artifact in place.
func (s *reportService) writeArtifact(filename string, artifact []byte) (string, error) {
	dir := filepath.Join(s.cfg.MediaDir, "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, artifact, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return path, nil
}
