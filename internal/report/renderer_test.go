package report

import (
	"strings"
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "0.00"},
		{"small", 950, "9.50"},
		{"thousands", 520000, "5,200.00"},
		{"millions", 123456789, "1,234,567.89"},
		{"negative", -312050, "-3,120.50"},
		{"single_digit_fraction", 105, "1.05"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatAmount(tc.cents); got != tc.want {
				t.Errorf("formatAmount(%d) = %q, want %q", tc.cents, got, tc.want)
			}
		})
	}
}

func TestFormatContentType(t *testing.T) {
	if got := FormatPDF.ContentType(); got != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", got)
	}
	if got := FormatText.ContentType(); got != "text/plain" {
		t.Errorf("expected text/plain, got %s", got)
	}
}

func TestNewRenderer(t *testing.T) {
	if r := NewRenderer(Config{PDFEnabled: true}); r.Format() != FormatPDF {
		t.Errorf("expected PDF renderer when enabled, got %s", r.Format())
	}
	if r := NewRenderer(Config{PDFEnabled: false}); r.Format() != FormatText {
		t.Errorf("expected text renderer when disabled, got %s", r.Format())
	}
}

func TestTextRenderer(t *testing.T) {
	data := &Data{
		Username:         "asim",
		FullName:         "Asim Khan",
		Email:            "asim@example.com",
		MonthYear:        "2024-06",
		GeneratedAt:      time.Date(2024, 6, 30, 18, 45, 12, 0, time.UTC),
		TotalIncome:      520000,
		TotalExpenses:    180000,
		TotalInvestments: 30000,
		TotalSavings:     310000,
	}

	r := NewTextRenderer(Config{CurrencySymbol: "₨", CurrencyCode: "PKR"})

	t.Run("summary_lines", func(t *testing.T) {
		out, err := r.Render(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := string(out)

		for _, want := range []string{
			"Spendly Monthly Report - 2024-06",
			"User: Asim Khan",
			"Email: asim@example.com",
			"Monthly Salary: ₨5,200.00",
			"Total Expenses: ₨1,800.00",
			"Total Investments: ₨300.00",
			"Total Savings: ₨3,100.00",
			"Report Generated: 2024-06-30 18:45:12",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("expected output to contain %q\ngot:\n%s", want, text)
			}
		}
		if strings.Contains(text, "PDF GENERATION ERROR") {
			t.Error("did not expect failure banner without failure detail")
		}
	})

	t.Run("failure_detail_embedded", func(t *testing.T) {
		degraded := *data
		degraded.FailureDetail = "image embed: corrupt PNG"

		out, err := r.Render(&degraded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := string(out)

		if !strings.Contains(text, "--- PDF GENERATION ERROR ---") {
			t.Error("expected failure banner")
		}
		if !strings.Contains(text, "image embed: corrupt PNG") {
			t.Error("expected failure detail")
		}
	})

	t.Run("falls_back_to_username", func(t *testing.T) {
		anonymous := *data
		anonymous.FullName = ""

		out, err := r.Render(&anonymous)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(out), "User: asim") {
			t.Error("expected username when full name is empty")
		}
	})
}
