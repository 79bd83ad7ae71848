package report

import (
	"github.com/carbonledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySummary is the spending and emission of one category in a month.
type CategorySummary struct {
	CategoryID         uuid.UUID       `json:"categoryId" example:"cee2b3c2-8bb3-4b1a-9a63-0ab4f8ea9e0a"`
	CategoryName       string          `json:"categoryName" example:"Groceries"`
	TotalAmount        decimal.Decimal `json:"totalAmount" example:"1520.5"`
	TotalEmission      decimal.Decimal `json:"totalEmission" example:"76.025"`
	EmissionPercentage decimal.Decimal `json:"emissionPercentage" example:"42.17"` // Share of the month's emission, rounded half-up to two decimals
}

// MonthlySummary is the report for one month.
type MonthlySummary struct {
	YearMonth         types.Month       `json:"yearMonth" example:"2024-03"`
	CategorySummaries []CategorySummary `json:"categorySummaries"` // Ordered by emission percentage descending, then category ID
	TotalSpending     decimal.Decimal   `json:"totalSpending" example:"3605.75"`
	TotalEmission     decimal.Decimal   `json:"totalEmission" example:"180.28"`
}

// MonthlyTotal is a single row of the per-month totals table.
type MonthlyTotal struct {
	YearMonth     types.Month     `json:"yearMonth" example:"2024-03"`
	TotalSpending decimal.Decimal `json:"totalSpending" example:"3605.75"`
	TotalEmission decimal.Decimal `json:"totalEmission" example:"180.28"`
}

// RangedSummary is the report over consecutive months.
type RangedSummary struct {
	StartYearMonth         types.Month      `json:"startYearMonth" example:"2024-01"`
	EndYearMonth           types.Month      `json:"endYearMonth" example:"2024-03"`
	MonthlySummaries       []MonthlySummary `json:"monthlySummaries"` // Oldest month first
	TotalSpendingAllMonths decimal.Decimal  `json:"totalSpendingAllMonths" example:"10211.40"`
	TotalEmissionAllMonths decimal.Decimal  `json:"totalEmissionAllMonths" example:"498.02"`
	MonthlyTotals          []MonthlyTotal   `json:"monthlyTotals"`
}
