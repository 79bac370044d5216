package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// Core PDF fonts are cp1252 only, so the PDF path labels amounts with the
// ASCII currency code prefix instead of the configured symbol.
const pdfCurrencyLabel = "Rs "

// pdfRenderer produces the full PDF artifact: summary tiles, embedded
// charts, and itemized tables. Any failure is returned to the caller,
// which degrades to the text renderer.
type pdfRenderer struct {
	cfg Config
}

// NewPDFRenderer creates the PDF renderer.
func NewPDFRenderer(cfg Config) Renderer {
	return &pdfRenderer{cfg: cfg}
}

func (r *pdfRenderer) Format() Format { return FormatPDF }

func (r *pdfRenderer) Render(data *Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.drawHeader(pdf, data)
	r.drawIdentity(pdf, tr, data)
	r.drawSummaryTiles(pdf, data)
	r.drawCharts(pdf, data)
	r.drawExpenseTable(pdf, tr, data)
	r.drawInvestmentTable(pdf, tr, data)
	r.drawBudgetTable(pdf, data)
	r.drawFooter(pdf, data)

	if pdf.Err() {
		return nil, fmt.Errorf("pdf build: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// usableWidth is the Letter page width minus default margins.
const usableWidth = 195.9

func (r *pdfRenderer) drawHeader(pdf *fpdf.Fpdf, data *Data) {
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(usableWidth/2, 14, "Spendly", "", 0, "LM", true, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usableWidth/2, 14, "Monthly Report - "+data.MonthYear, "", 1, "RM", true, 0, "")
	pdf.Ln(4)
}

func (r *pdfRenderer) drawIdentity(pdf *fpdf.Fpdf, tr func(string) string, data *Data) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 7, "User", "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usableWidth-30, 7, tr(data.DisplayName()), "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 7, "Email", "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usableWidth-30, 7, tr(data.Email), "B", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func (r *pdfRenderer) drawSummaryTiles(pdf *fpdf.Fpdf, data *Data) {
	type tile struct {
		label string
		value int64
		fill  [3]int
	}
	tiles := []tile{
		{"Monthly Income", data.TotalIncome, [3]int{219, 234, 254}},
		{"Total Expenses", data.TotalExpenses, [3]int{254, 226, 226}},
		{"Total Investments", data.TotalInvestments, [3]int{220, 252, 231}},
		{"Total Savings", data.TotalSavings, [3]int{254, 249, 195}},
	}

	const gap = 3.3
	tileWidth := (usableWidth - 3*gap) / 4
	x0 := pdf.GetX()
	y0 := pdf.GetY()

	for i, t := range tiles {
		x := x0 + float64(i)*(tileWidth+gap)
		pdf.SetFillColor(t.fill[0], t.fill[1], t.fill[2])
		pdf.Rect(x, y0, tileWidth, 18, "F")

		pdf.SetXY(x, y0+2)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(tileWidth, 5, t.label, "", 0, "CM", false, 0, "")

		pdf.SetXY(x, y0+8)
		pdf.SetFont("Helvetica", "B", 11)
		if t.value < 0 {
			pdf.SetTextColor(185, 28, 28)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.CellFormat(tileWidth, 7, pdfCurrencyLabel+formatAmount(t.value), "", 0, "CM", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x0, y0+18+5)
}

// drawCharts renders the three chart images to disk next to the report
// artifact and embeds them. A chart that fails or has no data leaves a
// placeholder line instead of aborting the whole document.
func (r *pdfRenderer) drawCharts(pdf *fpdf.Fpdf, data *Data) {
	chartDir := filepath.Join(r.cfg.MediaDir, "reports")
	if err := os.MkdirAll(chartDir, 0o755); err != nil {
		r.emptyTableLine(pdf, "Charts unavailable.")
		return
	}
	base := fmt.Sprintf("monthly_report_%s_%s", data.Username, data.MonthYear)

	type chartSpec struct {
		title  string
		path   string
		render func(path string) error
	}
	specs := []chartSpec{
		{
			title: "Expenses by Category",
			path:  filepath.Join(chartDir, base+"_expense.png"),
			render: func(p string) error {
				return renderExpensePie(data.ExpenseBreakdown, p)
			},
		},
		{
			title: "Budget % Used",
			path:  filepath.Join(chartDir, base+"_budget.png"),
			render: func(p string) error {
				return renderBudgetBars(data.BudgetRows, p)
			},
		},
		{
			title: "Spending Trend",
			path:  filepath.Join(chartDir, base+"_trend.png"),
			render: func(p string) error {
				return renderTrendLine(data.Trend, p)
			},
		},
	}

	const gap = 4.0
	chartW := (usableWidth - 2*gap) / 3
	chartH := chartW * float64(chartHeight) / float64(chartWidth)
	x0 := pdf.GetX()
	y0 := pdf.GetY()

	for i, spec := range specs {
		x := x0 + float64(i)*(chartW+gap)
		if err := spec.render(spec.path); err != nil {
			pdf.SetXY(x, y0+chartH/2)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(120, 120, 120)
			pdf.CellFormat(chartW, 5, "No data for "+spec.title, "", 0, "CM", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			continue
		}
		pdf.ImageOptions(spec.path, x, y0, chartW, chartH, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	pdf.SetXY(x0, y0+chartH+6)
}

func (r *pdfRenderer) drawExpenseTable(pdf *fpdf.Fpdf, tr func(string) string, data *Data) {
	r.drawTransactionTable(pdf, tr, "Expenses", "Category", data.Expenses,
		"No expenses for this month.")
}

func (r *pdfRenderer) drawInvestmentTable(pdf *fpdf.Fpdf, tr func(string) string, data *Data) {
	r.drawTransactionTable(pdf, tr, "Investments", "Type", data.Investments,
		"No investments for this month.")
}

func (r *pdfRenderer) drawTransactionTable(pdf *fpdf.Fpdf, tr func(string) string, title, labelHeader string, rows []TransactionRow, emptyLine string) {
	r.sectionTitle(pdf, title)
	if len(rows) == 0 {
		r.emptyTableLine(pdf, emptyLine)
		return
	}

	widths := []float64{28, 36, usableWidth - 28 - 36 - 32, 32}
	r.tableHeader(pdf, []string{"Date", labelHeader, "Description", "Amount"}, widths)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 6, row.Date.Format("2006-01-02"), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, row.Label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(truncate(row.Description, 60)), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, pdfCurrencyLabel+formatAmount(row.Amount), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *pdfRenderer) drawBudgetTable(pdf *fpdf.Fpdf, data *Data) {
	r.sectionTitle(pdf, "Budgets")
	if len(data.BudgetRows) == 0 {
		r.emptyTableLine(pdf, "No budgets set for this month.")
		return
	}

	widths := []float64{46, 36, 36, 36, usableWidth - 46 - 36*3}
	r.tableHeader(pdf, []string{"Category", "Allocated", "Spent", "Remaining", "% Used"}, widths)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range data.BudgetRows {
		pdf.CellFormat(widths[0], 6, row.Category, "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, pdfCurrencyLabel+formatAmount(row.Allocated), "B", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, pdfCurrencyLabel+formatAmount(row.Actual), "B", 0, "R", false, 0, "")
		if row.Remaining < 0 {
			pdf.SetTextColor(185, 28, 28)
		}
		pdf.CellFormat(widths[3], 6, pdfCurrencyLabel+formatAmount(row.Remaining), "B", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.1f%%", row.PercentUsed), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *pdfRenderer) drawFooter(pdf *fpdf.Fpdf, data *Data) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(usableWidth, 5,
		"Report Generated: "+data.GeneratedAt.Format("2006-01-02 15:04:05")+" | Currency: "+r.cfg.CurrencyCode,
		"", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *pdfRenderer) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usableWidth, 8, title, "", 1, "L", false, 0, "")
}

func (r *pdfRenderer) tableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(229, 231, 235)
	for i, header := range headers {
		align := "L"
		if i > 0 && i == len(headers)-1 {
			align = "R"
		}
		breakLine := 0
		if i == len(headers)-1 {
			breakLine = 1
		}
		pdf.CellFormat(widths[i], 7, header, "B", breakLine, align, true, 0, "")
	}
}

func (r *pdfRenderer) emptyTableLine(pdf *fpdf.Fpdf, line string) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(usableWidth, 6, line, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

// truncate shortens a description to max runes. Cutting on rune
// boundaries keeps multi-byte text valid for the cp1252 translator.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
