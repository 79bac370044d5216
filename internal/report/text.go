package report

import (
	"bytes"
	"fmt"
)

// textRenderer writes a flat key-value summary. It keeps the configured
// currency symbol: unlike the PDF path there is no font constraint.
type textRenderer struct {
	cfg Config
}

// NewTextRenderer creates the plain-text renderer.
func NewTextRenderer(cfg Config) Renderer {
	return &textRenderer{cfg: cfg}
}

func (r *textRenderer) Format() Format { return FormatText }

// Render never fails; it is the terminal fallback.
func (r *textRenderer) Render(data *Data) ([]byte, error) {
	symbol := r.cfg.CurrencySymbol

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Spendly Monthly Report - %s\n", data.MonthYear)
	fmt.Fprintf(&buf, "User: %s\n", data.DisplayName())
	fmt.Fprintf(&buf, "Email: %s\n", data.Email)
	fmt.Fprintf(&buf, "Monthly Salary: %s%s\n", symbol, formatAmount(data.TotalIncome))
	fmt.Fprintf(&buf, "Total Expenses: %s%s\n", symbol, formatAmount(data.TotalExpenses))
	fmt.Fprintf(&buf, "Total Investments: %s%s\n", symbol, formatAmount(data.TotalInvestments))
	fmt.Fprintf(&buf, "Total Savings: %s%s\n", symbol, formatAmount(data.TotalSavings))
	fmt.Fprintf(&buf, "Report Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))

	if data.FailureDetail != "" {
		buf.WriteString("\n--- PDF GENERATION ERROR ---\n")
		buf.WriteString(data.FailureDetail)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
