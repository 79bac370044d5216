// Package report renders monthly report artifacts. A renderer capability
// (PDF with embedded charts, or plain text) is selected at startup; PDF
// render failures degrade to text with the failure detail embedded.
package report

import (
	"fmt"
	"strings"
	"time"
)

// Format identifies the artifact type a renderer produces.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

// ContentType returns the MIME type for delivery.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/plain"
}

// Config holds rendering configuration, injected at construction rather
// than read from ambient globals.
type Config struct {
	// MediaDir is the root under which reports/ and chart images live.
	MediaDir string
	// CurrencySymbol is the display symbol (e.g. "₨"), used verbatim in
	// text artifacts.
	CurrencySymbol string
	// CurrencyCode is the ISO code (e.g. "PKR").
	CurrencyCode string
	// PDFEnabled selects the PDF renderer when true.
	PDFEnabled bool
}

// TransactionRow is one itemized line in a report table.
type TransactionRow struct {
	Date        time.Time
	Label       string // category or investment type
	Description string
	Amount      int64
}

// CategorySlice is one category's share of the month's spend.
type CategorySlice struct {
	Category string
	Total    int64
}

// BudgetRow is one budget line: allocated vs actual for a category.
type BudgetRow struct {
	Category    string
	Allocated   int64
	Actual      int64
	Remaining   int64
	PercentUsed float64
}

// TrendPoint is one bucket's expense total in the trailing trend series.
type TrendPoint struct {
	Bucket string
	Total  int64
}

// Data is everything a renderer needs for one report. Amounts are cents.
type Data struct {
	Username    string
	FullName    string
	Email       string
	MonthYear   string
	GeneratedAt time.Time

	TotalIncome      int64
	TotalExpenses    int64
	TotalInvestments int64
	TotalSavings     int64

	ExpenseBreakdown []CategorySlice
	BudgetRows       []BudgetRow
	Trend            []TrendPoint
	Expenses         []TransactionRow
	Investments      []TransactionRow

	// FailureDetail carries the PDF failure diagnostic when the text
	// renderer runs as a degradation fallback.
	FailureDetail string
}

// DisplayName returns the full name when set, otherwise the username.
func (d *Data) DisplayName() string {
	if d.FullName != "" {
		return d.FullName
	}
	return d.Username
}

// Renderer turns report data into artifact bytes.
type Renderer interface {
	Format() Format
	Render(data *Data) ([]byte, error)
}

// NewRenderer selects the renderer capability for this process. PDF when
// enabled, otherwise text. Callers keep a text renderer of their own as
// the degradation fallback.
func NewRenderer(cfg Config) Renderer {
	if cfg.PDFEnabled {
		return NewPDFRenderer(cfg)
	}
	return NewTextRenderer(cfg)
}

// formatAmount renders cents as a fixed-point decimal with two places and
// thousands separators, e.g. 520000 -> "5,200.00".
func formatAmount(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, b.String(), frac)
}
