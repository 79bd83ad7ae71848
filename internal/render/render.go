// Package render renders reports as text tables and charts.
package render

import (
	"fmt"
	"io"

	"github.com/carbonledger/backend/internal/report"
	"github.com/olekukonko/tablewriter"
	"github.com/wcharczuk/go-chart/v2"
)

// Table writes the monthly report as a text table with a totals footer.
func Table(w io.Writer, summary report.MonthlySummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Amount", "Emission", "Share"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, c := range summary.CategorySummaries {
		table.Append([]string{
			c.CategoryName,
			c.TotalAmount.StringFixed(2),
			c.TotalEmission.StringFixed(3),
			c.EmissionPercentage.StringFixed(2) + " %",
		})
	}

	table.SetFooter([]string{
		summary.YearMonth.String(),
		summary.TotalSpending.StringFixed(2),
		summary.TotalEmission.StringFixed(3),
		"",
	})

	table.Render()
}

// Chart writes a PNG bar chart of the monthly emission totals.
func Chart(w io.Writer, ranged report.RangedSummary) error {
	bars := make([]chart.Value, 0, len(ranged.MonthlyTotals))
	top := 0.0
	for _, m := range ranged.MonthlyTotals {
		value := m.TotalEmission.InexactFloat64()
		top = max(top, value)

		bars = append(bars, chart.Value{
			Label: m.YearMonth.String(),
			Value: value,
		})
	}

	if len(bars) == 0 {
		return fmt.Errorf("no months to chart")
	}

	barChart := chart.BarChart{
		Title: fmt.Sprintf("Emission %s to %s", ranged.StartYearMonth, ranged.EndYearMonth),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:      max(400, 60*len(bars)+100),
		Height:     400,
		BarWidth:   40,
		BarSpacing: 20,
		Bars:       bars,
	}

	// A month range without any emission still needs a non-empty axis
	barChart.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: max(top, 1)}
	barChart.YAxis.ValueFormatter = func(v any) string {
		if vf, isFloat := v.(float64); isFloat {
			return fmt.Sprintf("%.2f", vf)
		}
		return ""
	}

	if err := barChart.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	return nil
}
