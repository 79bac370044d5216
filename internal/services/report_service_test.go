package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	"spendly/internal/bucket"
	"spendly/internal/models"
	"spendly/internal/report"
	"spendly/internal/testutil"
)

func textReportService(t *testing.T, db *gorm.DB) (ReportServicer, string) {
	t.Helper()
	mediaDir := t.TempDir()
	svc := NewReportService(db, NewAnalyticsService(db), report.Config{
		MediaDir:       mediaDir,
		CurrencySymbol: "₨",
		CurrencyCode:   "PKR",
		PDFEnabled:     false,
	})
	return svc, mediaDir
}

// failingRenderer simulates a broken PDF pipeline.
type failingRenderer struct{}

func (failingRenderer) Format() report.Format { return report.FormatPDF }
func (failingRenderer) Render(*report.Data) ([]byte, error) {
	return nil, errors.New("font directory missing")
}

func TestGenerateMonthlyReport(t *testing.T) {
	t.Run("writes_text_artifact", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, mediaDir := textReportService(t, db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID, 520000)
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 180000)
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentStocks, 30000)

		file, warning, err := svc.GenerateMonthlyReport(user.ID)
		testutil.AssertNoError(t, err)

		if !strings.Contains(warning, "PDF rendering is unavailable") {
			t.Errorf("expected a capability-absence advisory, got %q", warning)
		}
		wantName := "monthly_report_" + user.Username + "_" + bucket.Current() + ".txt"
		if file.Filename != wantName {
			t.Errorf("expected filename %s, got %s", wantName, file.Filename)
		}
		if file.ContentType != "text/plain" {
			t.Errorf("expected text/plain, got %s", file.ContentType)
		}

		content, err := os.ReadFile(filepath.Join(mediaDir, "reports", wantName))
		if err != nil {
			t.Fatalf("failed to read artifact: %v", err)
		}
		text := string(content)
		for _, want := range []string{
			"Spendly Monthly Report - " + bucket.Current(),
			"Monthly Salary: ₨5,200.00",
			"Total Expenses: ₨1,800.00",
			"Total Investments: ₨300.00",
			"Total Savings: ₨3,100.00",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("expected artifact to contain %q\ngot:\n%s", want, text)
			}
		}
	})

	t.Run("upserts_single_snapshot_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := textReportService(t, db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID, 100000)

		first, _, err := svc.GenerateMonthlyReport(user.ID)
		testutil.AssertNoError(t, err)

		testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 40000)

		second, _, err := svc.GenerateMonthlyReport(user.ID)
		testutil.AssertNoError(t, err)

		if first.Path != second.Path {
			t.Errorf("expected deterministic path, got %s then %s", first.Path, second.Path)
		}

		var count int64
		db.Model(&models.MonthlyReport{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 snapshot row, got %d", count)
		}

		var row models.MonthlyReport
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).First(&row).Error)
		if row.TotalExpenses != 40000 {
			t.Errorf("expected snapshot to reflect latest totals, got %d", row.TotalExpenses)
		}
	})

	t.Run("degrades_to_text_when_pdf_fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, mediaDir := textReportService(t, db)
		svc.(*reportService).primary = failingRenderer{}
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID, 100000)

		file, warning, err := svc.GenerateMonthlyReport(user.ID)
		testutil.AssertNoError(t, err)

		if !strings.Contains(warning, "PDF generation failed") {
			t.Errorf("expected a degradation warning, got %q", warning)
		}
		if !strings.HasSuffix(file.Filename, ".txt") {
			t.Errorf("expected a .txt fallback artifact, got %s", file.Filename)
		}

		content, err := os.ReadFile(filepath.Join(mediaDir, "reports", file.Filename))
		if err != nil {
			t.Fatalf("failed to read artifact: %v", err)
		}
		text := string(content)
		if !strings.Contains(text, "PDF GENERATION ERROR") {
			t.Error("expected failure banner in fallback artifact")
		}
		if !strings.Contains(text, "font directory missing") {
			t.Error("expected failure detail in fallback artifact")
		}

		var row models.MonthlyReport
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).First(&row).Error)
		if row.ArtifactFormat != "txt" {
			t.Errorf("expected txt artifact format recorded, got %s", row.ArtifactFormat)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := textReportService(t, db)

		_, _, err := svc.GenerateMonthlyReport(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
