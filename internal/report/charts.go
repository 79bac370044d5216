package report

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 512
	chartHeight = 360
)

// renderChartFile renders a chart to a PNG file via temp-write + rename so
// a failed render never leaves a truncated image behind.
func renderChartFile(path string, render func(f *os.File) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// renderExpensePie draws the expense-by-category pie chart.
func renderExpensePie(breakdown []CategorySlice, path string) error {
	values := make([]chart.Value, 0, len(breakdown))
	var total int64
	for _, slice := range breakdown {
		if slice.Total <= 0 {
			continue
		}
		total += slice.Total
		values = append(values, chart.Value{
			Value: float64(slice.Total) / 100,
			Label: slice.Category,
		})
	}
	if total == 0 {
		return fmt.Errorf("no expense data to chart")
	}

	pie := chart.PieChart{
		Title:  "Expenses by Category",
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	return renderChartFile(path, func(f *os.File) error {
		return pie.Render(chart.PNG, f)
	})
}

// renderBudgetBars draws percent-used bars, one per budgeted category.
func renderBudgetBars(rows []BudgetRow, path string) error {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{
			Value: row.PercentUsed,
			Label: row.Category,
		})
	}
	if len(bars) == 0 {
		return fmt.Errorf("no budget data to chart")
	}

	bar := chart.BarChart{
		Title:    "Budget % Used",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}
	return renderChartFile(path, func(f *os.File) error {
		return bar.Render(chart.PNG, f)
	})
}

// renderTrendLine draws the trailing spending trend.
func renderTrendLine(trend []TrendPoint, path string) error {
	if len(trend) < 2 {
		return fmt.Errorf("not enough trend points to chart")
	}

	xs := make([]float64, len(trend))
	ys := make([]float64, len(trend))
	ticks := make([]chart.Tick, len(trend))
	for i, point := range trend {
		xs[i] = float64(i)
		ys[i] = float64(point.Total) / 100
		ticks[i] = chart.Tick{Value: float64(i), Label: point.Bucket}
	}

	line := chart.Chart{
		Title:  "Spending Trend",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return renderChartFile(path, func(f *os.File) error {
		return line.Render(chart.PNG, f)
	})
}
