package emission

import (
	"context"
	"errors"
	"strings"

	"github.com/carbonledger/backend/internal/models"
	"github.com/carbonledger/backend/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estimate is the emission of an amount spent in a category.
type Estimate struct {
	Category models.Category `json:"category"`                     // Category the factor was taken from
	Amount   decimal.Decimal `json:"amountSpent" example:"250.00"` // Amount spent
	Emission decimal.Decimal `json:"emission" example:"12.50"`     // Amount spent times the emission factor of the category
}

// Calculator estimates emissions for amounts that are not booked as transactions.
type Calculator struct {
	categories store.CategoryStore
}

func NewCalculator(categories store.CategoryStore) *Calculator {
	return &Calculator{categories: categories}
}

// ForAmount returns amount × emission factor of the category.
func ForAmount(amount decimal.Decimal, category models.Category) decimal.Decimal {
	return amount.Mul(category.EmissionFactor)
}

// Calculate looks up the category by name and estimates the emission of the
// amount. With a user, their own category takes precedence over a global
// category of the same name.
func (c *Calculator) Calculate(ctx context.Context, categoryName string, amount decimal.Decimal, userID *uuid.UUID) (Estimate, error) {
	categoryName = strings.TrimSpace(categoryName)
	if categoryName == "" {
		return Estimate{}, models.ErrCategoryNameEmpty
	}

	if !amount.IsPositive() {
		return Estimate{}, models.ErrAmountNotPositive
	}

	category, err := c.find(ctx, categoryName, userID)
	if err != nil {
		return Estimate{}, err
	}

	return Estimate{
		Category: category,
		Amount:   amount,
		Emission: ForAmount(amount, category),
	}, nil
}

func (c *Calculator) find(ctx context.Context, name string, userID *uuid.UUID) (models.Category, error) {
	if userID != nil {
		category, err := c.categories.FindCategoryByName(ctx, name, userID)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, models.ErrResourceNotFound) {
			return models.Category{}, err
		}
	}

	return c.categories.FindCategoryByName(ctx, name, nil)
}
