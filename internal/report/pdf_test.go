package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func samplePDFData() *Data {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	return &Data{
		Username:         "asim",
		FullName:         "Asim Khan",
		Email:            "asim@example.com",
		MonthYear:        "2024-06",
		GeneratedAt:      time.Date(2024, 6, 30, 18, 45, 12, 0, time.UTC),
		TotalIncome:      520000,
		TotalExpenses:    180000,
		TotalInvestments: 30000,
		TotalSavings:     310000,
		ExpenseBreakdown: []CategorySlice{
			{Category: "Food", Total: 100000},
			{Category: "Transport", Total: 80000},
		},
		BudgetRows: []BudgetRow{
			{Category: "Food", Allocated: 120000, Actual: 100000, Remaining: 20000, PercentUsed: 83.3},
		},
		Trend: []TrendPoint{
			{Bucket: "2024-04", Total: 150000},
			{Bucket: "2024-05", Total: 210000},
			{Bucket: "2024-06", Total: 180000},
		},
		Expenses: []TransactionRow{
			{Date: date, Label: "Food", Description: "groceries", Amount: 100000},
			{Date: date, Label: "Transport", Description: "fuel", Amount: 80000},
		},
		Investments: []TransactionRow{
			{Date: date, Label: "Stocks", Description: "index fund", Amount: 30000},
		},
	}
}

func TestPDFRenderer(t *testing.T) {
	t.Run("produces_pdf_bytes", func(t *testing.T) {
		mediaDir := t.TempDir()
		r := NewPDFRenderer(Config{MediaDir: mediaDir, CurrencyCode: "PKR", PDFEnabled: true})

		out, err := r.Render(samplePDFData())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Errorf("expected PDF magic prefix, got %q", out[:min(8, len(out))])
		}
	})

	t.Run("writes_chart_images", func(t *testing.T) {
		mediaDir := t.TempDir()
		r := NewPDFRenderer(Config{MediaDir: mediaDir, CurrencyCode: "PKR", PDFEnabled: true})

		if _, err := r.Render(samplePDFData()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, suffix := range []string{"expense", "budget", "trend"} {
			path := filepath.Join(mediaDir, "reports", "monthly_report_asim_2024-06_"+suffix+".png")
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected chart image %s: %v", path, err)
			}
		}
	})

	t.Run("keeps_multibyte_descriptions_valid", func(t *testing.T) {
		mediaDir := t.TempDir()
		r := NewPDFRenderer(Config{MediaDir: mediaDir, CurrencyCode: "PKR", PDFEnabled: true})

		data := samplePDFData()
		data.Expenses[0].Description = strings.Repeat("₨", 70)

		if _, err := r.Render(data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tolerates_empty_month", func(t *testing.T) {
		mediaDir := t.TempDir()
		r := NewPDFRenderer(Config{MediaDir: mediaDir, CurrencyCode: "PKR", PDFEnabled: true})

		data := &Data{
			Username:    "asim",
			Email:       "asim@example.com",
			MonthYear:   "2024-07",
			GeneratedAt: time.Now(),
		}
		out, err := r.Render(data)
		if err != nil {
			t.Fatalf("expected empty month to render, got %v", err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Error("expected PDF magic prefix")
		}
	})
}

func TestTruncate(t *testing.T) {
	got := truncate(strings.Repeat("₨", 70), 60)
	if !utf8.ValidString(got) {
		t.Error("expected truncation to cut on rune boundaries")
	}
	if n := utf8.RuneCountInString(got); n != 60 {
		t.Errorf("expected 60 runes including the ellipsis, got %d", n)
	}
	if got := truncate("fuel", 60); got != "fuel" {
		t.Errorf("expected short strings untouched, got %q", got)
	}
}
