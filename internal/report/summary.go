package report

import (
	"bytes"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns the share of part in total in percent, rounded half-up
// to two decimals. It is zero when total is not positive.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	return part.Mul(hundred).DivRound(total, 2)
}

// Summarize builds the monthly report from the summaries of the month.
// names maps category IDs to category names.
func Summarize(month types.Month, summaries []models.Summary, names map[uuid.UUID]string) MonthlySummary {
	result := MonthlySummary{
		YearMonth:         month,
		CategorySummaries: make([]CategorySummary, 0, len(summaries)),
		TotalSpending:     decimal.Zero,
		TotalEmission:     decimal.Zero,
	}

	for _, s := range summaries {
		result.TotalSpending = result.TotalSpending.Add(s.TotalAmount)
		result.TotalEmission = result.TotalEmission.Add(s.TotalEmission)
	}

	for _, s := range summaries {
		result.CategorySummaries = append(result.CategorySummaries, CategorySummary{
			CategoryID:         s.CategoryID,
			CategoryName:       names[s.CategoryID],
			TotalAmount:        s.TotalAmount,
			TotalEmission:      s.TotalEmission,
			EmissionPercentage: Percentage(s.TotalEmission, result.TotalEmission),
		})
	}

	slices.SortFunc(result.CategorySummaries, func(a, b CategorySummary) int {
		if c := b.EmissionPercentage.Cmp(a.EmissionPercentage); c != 0 {
			return c
		}
		return bytes.Compare(a.CategoryID[:], b.CategoryID[:])
	})

	return result
}

// Combine builds the ranged report from monthly reports, oldest first.
func Combine(months []MonthlySummary) RangedSummary {
	result := RangedSummary{
		MonthlySummaries:       months,
		TotalSpendingAllMonths: decimal.Zero,
		TotalEmissionAllMonths: decimal.Zero,
		MonthlyTotals:          make([]MonthlyTotal, 0, len(months)),
	}

	if len(months) > 0 {
		result.StartYearMonth = months[0].YearMonth
		result.EndYearMonth = months[len(months)-1].YearMonth
	}

	for _, m := range months {
		result.TotalSpendingAllMonths = result.TotalSpendingAllMonths.Add(m.TotalSpending)
		result.TotalEmissionAllMonths = result.TotalEmissionAllMonths.Add(m.TotalEmission)
		result.MonthlyTotals = append(result.MonthlyTotals, MonthlyTotal{
			YearMonth:     m.YearMonth,
			TotalSpending: m.TotalSpending,
			TotalEmission: m.TotalEmission,
		})
	}

	return result
}
